// Package cmake builds the Reprojucer directive sequence for a parsed Jucer
// project. Translators construct structured blocks; Script.Render serializes
// the whole sequence in one pass, so directive construction stays free of I/O.
package cmake

import "strings"

// Block is one output unit. Blocks are separated by a single blank line when
// the script is rendered.
type Block interface {
	lines() []string
}

// Directive is one build-script call: a name, an optional argument rendered on
// the call line itself, and one pre-formatted argument per following line.
type Directive struct {
	Name   string
	Inline string
	Args   []string
}

func (d Directive) lines() []string {
	if d.Inline == "" && len(d.Args) == 0 {
		return []string{d.Name + "()"}
	}
	out := make([]string, 0, len(d.Args)+2)
	out = append(out, d.Name+"("+d.Inline)
	for _, a := range d.Args {
		out = append(out, "  "+a)
	}
	return append(out, ")")
}

// Calls groups consecutive directives rendered with no blank line between
// them, such as a file list immediately followed by its header-only marking.
type Calls []Directive

func (c Calls) lines() []string {
	var out []string
	for _, d := range c {
		out = append(out, d.lines()...)
	}
	return out
}

// Raw is a block of verbatim lines.
type Raw []string

func (r Raw) lines() []string { return r }

// Script is the ordered directive sequence for one translation pass.
type Script struct {
	Blocks []Block
}

// Add appends blocks in order.
func (s *Script) Add(blocks ...Block) {
	s.Blocks = append(s.Blocks, blocks...)
}

// Render serializes all blocks, separating consecutive blocks with one blank
// line and ending with a newline. Directive order is a correctness
// requirement: configuration blocks attach to the preceding target block by
// position.
func (s *Script) Render() []byte {
	var b strings.Builder
	for i, blk := range s.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, line := range blk.lines() {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}
