// Package jucer parses Jucer project descriptors into a generic property tree.
package jucer

import "strconv"

// Node is one element of the parsed project tree: a type tag, named string
// properties in document order, and ordered children. The zero value is an
// invalid node; all accessors degrade to their defaults on it.
type Node struct {
	Type     string
	props    []property
	Children []*Node
}

type property struct {
	key   string
	value string
}

// Valid reports whether the node exists in the parsed document.
func (n *Node) Valid() bool {
	return n != nil && n.Type != ""
}

// HasProperty reports whether the property key is present, even when empty.
func (n *Node) HasProperty(key string) bool {
	if n == nil {
		return false
	}
	for _, p := range n.props {
		if p.key == key {
			return true
		}
	}
	return false
}

// GetString returns the property value, or def when the property is absent.
// An empty value present in the document is returned as-is.
func (n *Node) GetString(key, def string) string {
	if n == nil {
		return def
	}
	for _, p := range n.props {
		if p.key == key {
			return p.value
		}
	}
	return def
}

// GetInt returns the property parsed as an integer, or def when the property
// is absent or not numeric.
func (n *Node) GetInt(key string, def int) int {
	if n == nil {
		return def
	}
	for _, p := range n.props {
		if p.key == key {
			v, err := strconv.Atoi(p.value)
			if err != nil {
				return def
			}
			return v
		}
	}
	return def
}

// GetBool returns the property interpreted as a 0/1 flag, or def when the
// property is absent or malformed.
func (n *Node) GetBool(key string, def bool) bool {
	if n == nil {
		return def
	}
	for _, p := range n.props {
		if p.key == key {
			switch p.value {
			case "1":
				return true
			case "0":
				return false
			}
			return def
		}
	}
	return def
}

// SetProperty appends or replaces a named property. Used by the parser and by
// tests building trees by hand.
func (n *Node) SetProperty(key, value string) {
	for i, p := range n.props {
		if p.key == key {
			n.props[i].value = value
			return
		}
	}
	n.props = append(n.props, property{key: key, value: value})
}

// ChildWithName returns the first child whose type tag matches, or nil.
func (n *Node) ChildWithName(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Type == tag {
			return c
		}
	}
	return nil
}

// ChildWithProperty returns the first child carrying the given property value,
// or nil.
func (n *Node) ChildWithProperty(key, value string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.HasProperty(key) && c.GetString(key, "") == value {
			return c
		}
	}
	return nil
}

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
