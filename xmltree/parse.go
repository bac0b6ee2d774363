package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Parse reads an XML document into a Node tree. It fails if the byte stream
// is not well-formed XML, which includes empty input and mismatched or
// unclosed elements. Namespace prefixes are retained literally in tag and
// attribute names, so RawToken is used instead of Token and element matching
// is enforced here.
func Parse(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node

	for {
		token, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML: [%v]", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := NewNode(rawName(t.Name))
			for _, attr := range t.Attr {
				node.Attributes[rawName(attr.Name)] = attr.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("malformed XML: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("malformed XML: unexpected closing element </%s>", rawName(t.Name))
			}
			open := stack[len(stack)-1]
			if open.Tag != rawName(t.Name) {
				return nil, fmt.Errorf("malformed XML: element <%s> closed by </%s>", open.Tag, rawName(t.Name))
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(t))
				if text != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("malformed XML: unclosed element <%s>", stack[len(stack)-1].Tag)
	}
	if root == nil {
		return nil, fmt.Errorf("malformed XML: document has no root element")
	}

	return root, nil
}

// rawName rejoins the prefix RawToken leaves in the Space field, so
// namespaced names come back exactly as written in the source document.
func rawName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
