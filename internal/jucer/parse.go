package jucer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/jucetools/jucer2cmake/internal/apperr"
)

// RootTag is the element every Jucer project document must open with.
const RootTag = "JUCERPROJECT"

// ParseFile reads and parses the project descriptor at path. A missing or
// unparsable file, or a document whose root element is not JUCERPROJECT,
// yields an error wrapping apperr.ErrInvalidProject that names the file.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s is %w", path, apperr.ErrInvalidProject)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s is %w", path, apperr.ErrInvalidProject)
	}
	return root, nil
}

// Parse decodes raw XML into a Node tree rooted at the JUCERPROJECT element.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("jucer: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Type: t.Name.Local}
			for _, attr := range t.Attr {
				node.SetProperty(attr.Name.Local, attr.Value)
			}
			if root == nil {
				if node.Type != RootTag {
					return nil, fmt.Errorf("jucer: root element is %q, want %q", node.Type, RootTag)
				}
				root = node
			} else if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("jucer: document has no root element")
	}
	return root, nil
}
