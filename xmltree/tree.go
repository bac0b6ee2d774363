// Package xmltree converts between XML documents and a generic ordered tree
// of named nodes. Namespace prefixes are kept literally as part of the tag
// name (e.g. "cbc:ID") and are never resolved to URIs, matching the raw
// prefix convention the UBL field paths depend on.
package xmltree

// Node is a single element in a parsed XML document. Repeated tags among
// siblings are preserved as separate entries in Children, in document order.
type Node struct {
	Tag        string
	Attributes map[string]string
	Text       string
	Children   []*Node
}

// NewNode returns an empty element with the given tag.
func NewNode(tag string) *Node {
	return &Node{
		Tag:        tag,
		Attributes: map[string]string{},
	}
}

// AddChild appends a child element and returns it for further population.
func (n *Node) AddChild(tag string) *Node {
	child := NewNode(tag)
	n.Children = append(n.Children, child)
	return child
}

// SetAttr sets an attribute on the element and returns the element.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	n.Attributes[name] = value
	return n
}

// SetText sets the element text and returns the element.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// First returns the first child with the given tag, or nil if there is none.
func (n *Node) First(tag string) *Node {
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// All returns every child with the given tag, in document order.
func (n *Node) All(tag string) []*Node {
	var matched []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			matched = append(matched, child)
		}
	}
	return matched
}

// ToMap converts the tree rooted at n into the nested mapping shape used by
// the parse endpoint: the root maps its tag to its value, attributes become
// "@name" entries, element text sits under "#text" when attributes or
// children are present, and repeated sibling tags collapse into a list.
// An element with no attributes, no children and no text maps to nil.
func (n *Node) ToMap() map[string]interface{} {
	return map[string]interface{}{n.Tag: n.toValue()}
}

func (n *Node) toValue() interface{} {
	if len(n.Attributes) == 0 && len(n.Children) == 0 {
		if n.Text == "" {
			return nil
		}
		return n.Text
	}

	value := map[string]interface{}{}
	for name, attr := range n.Attributes {
		value["@"+name] = attr
	}

	for _, child := range n.Children {
		childValue := child.toValue()
		existing, ok := value[child.Tag]
		if !ok {
			value[child.Tag] = childValue
			continue
		}

		// Repeated sibling tag, widen to a list preserving document order.
		if list, isList := existing.([]interface{}); isList {
			value[child.Tag] = append(list, childValue)
		} else {
			value[child.Tag] = []interface{}{existing, childValue}
		}
	}

	if n.Text != "" {
		value["#text"] = n.Text
	}

	return value
}
