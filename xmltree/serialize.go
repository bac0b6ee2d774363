package xmltree

import (
	"bytes"
	"encoding/xml"
	"sort"
	"strings"
)

const header = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// Serialize renders the tree rooted at n as pretty-printed XML with the
// given indent unit, prefixed with the XML declaration.
func Serialize(n *Node, indent string) string {
	var b strings.Builder
	b.WriteString(header)
	writeNode(&b, n, indent, 0)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node, indent string, depth int) {
	prefix := strings.Repeat(indent, depth)

	b.WriteString(prefix)
	b.WriteString("<")
	b.WriteString(n.Tag)

	// Attribute order is stable so serialized output can be compared.
	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("=\"")
		b.WriteString(escape(n.Attributes[name]))
		b.WriteString("\"")
	}

	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("/>\n")
		return
	}

	b.WriteString(">")

	if len(n.Children) == 0 {
		b.WriteString(escape(n.Text))
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteString(">\n")
		return
	}

	b.WriteString("\n")
	if n.Text != "" {
		b.WriteString(strings.Repeat(indent, depth+1))
		b.WriteString(escape(n.Text))
		b.WriteString("\n")
	}
	for _, child := range n.Children {
		writeNode(b, child, indent, depth+1)
	}
	b.WriteString(prefix)
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText never fails writing to a bytes.Buffer.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
