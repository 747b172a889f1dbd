package cmake

import (
	"path/filepath"
	"strings"

	"github.com/jucetools/jucer2cmake/internal/jucer"
)

// groupFrame is one level of the group walk: the group's name, its pending
// file and resource lists, and a cursor into its children.
type groupFrame struct {
	name      string
	node      *jucer.Node
	next      int
	files     []string
	noCompile []string
	resources []string
}

// Groups translates the project's main group tree into file and resource
// blocks. The walk is an explicit frame stack: crossing into a nested group
// flushes the parent's accumulated lists under the current full group name,
// so a parent's own block is emitted before its subgroups', in encounter
// order. A group contributing no files and no resources emits nothing.
func Groups(project *jucer.Node, includeRoot bool) []Block {
	main := project.ChildWithName("MAINGROUP")
	if !main.Valid() {
		return nil
	}

	var blocks []Block
	stack := []*groupFrame{{name: main.GetString("name", ""), node: main}}

	fullName := func() string {
		names := make([]string, 0, len(stack))
		for _, f := range stack {
			names = append(names, f.name)
		}
		if !includeRoot && len(names) > 1 {
			names = names[1:]
		}
		return strings.Join(names, "/")
	}

	flush := func(f *groupFrame) {
		blocks = append(blocks, flushGroup(fullName(), f)...)
		f.files, f.noCompile, f.resources = nil, nil, nil
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		descended := false

		for f.next < len(f.node.Children) {
			child := f.node.Children[f.next]
			f.next++

			if child.Type == "FILE" {
				path := child.GetString("file", "")
				// A resource stays a resource whatever its compile flag says.
				if child.GetInt("resource", 0) == 1 {
					f.resources = append(f.resources, path)
					continue
				}
				f.files = append(f.files, path)
				if isCompiledSource(path) && !child.GetBool("compile", true) {
					f.noCompile = append(f.noCompile, path)
				}
				continue
			}

			flush(f)
			stack = append(stack, &groupFrame{name: child.GetString("name", ""), node: child})
			descended = true
			break
		}

		if !descended {
			flush(f)
			stack = stack[:len(stack)-1]
		}
	}

	return blocks
}

func flushGroup(fullName string, f *groupFrame) []Block {
	var blocks []Block

	if len(f.files) > 0 {
		calls := Calls{{
			Name:   "jucer_project_files",
			Inline: `"` + fullName + `"`,
			Args:   quoteAll(f.files),
		}}
		if len(f.noCompile) > 0 {
			args := make([]string, 0, len(f.noCompile)+1)
			for _, p := range f.noCompile {
				args = append(args, `"${JUCER_PROJECT_DIR}/`+p+`"`)
			}
			args = append(args, "PROPERTIES HEADER_FILE_ONLY TRUE")
			calls = append(calls, Directive{Name: "set_source_files_properties", Args: args})
		}
		blocks = append(blocks, calls)
	}

	if len(f.resources) > 0 {
		blocks = append(blocks, Calls{{
			Name:   "jucer_project_resources",
			Inline: `"` + fullName + `"`,
			Args:   quoteAll(f.resources),
		}})
	}

	return blocks
}

func isCompiledSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cpp")
}

func quoteAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, `"`+p+`"`)
	}
	return out
}
