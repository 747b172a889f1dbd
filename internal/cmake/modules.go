package cmake

import (
	"path/filepath"
	"strings"

	"github.com/jucetools/jucer2cmake/internal/jucer"
	"github.com/jucetools/jucer2cmake/internal/relpath"
	"github.com/jucetools/jucer2cmake/internal/storage"
)

// configMarker is the comment prefix module headers use to declare options.
const configMarker = "/** Config: "

// ModuleDirs returns the resolved directory of every referenced module,
// deduplicated, in declaration order. These are the directories whose headers
// feed the emitted option flags, so watch mode observes them alongside the
// descriptor.
func ModuleDirs(project *jucer.Node, root string) []string {
	modules := project.ChildWithName("MODULES")
	if !modules.Valid() {
		return nil
	}

	paths := project.ChildWithName("EXPORTFORMATS").Child(0).ChildWithName("MODULEPATHS")

	var dirs []string
	seen := make(map[string]struct{})
	for _, mod := range modules.Children {
		id := mod.GetString("id", "")
		relPath := paths.ChildWithProperty("id", id).GetString("path", "")
		dir := relpath.Resolve(root, filepath.Join(relPath, id))
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// Modules emits one jucer_project_module block per module referenced by the
// project, in declaration order. Each module's relative path comes from the
// first export format's MODULEPATHS table; its declared options come from
// scanning the module header and cross-referencing the project's JUCEOPTIONS
// node. Option order follows the header file, not the options node.
func Modules(project *jucer.Node, store storage.Provider) ([]Block, error) {
	modules := project.ChildWithName("MODULES")
	if !modules.Valid() {
		return nil, nil
	}

	paths := project.ChildWithName("EXPORTFORMATS").Child(0).ChildWithName("MODULEPATHS")
	options := project.ChildWithName("JUCEOPTIONS")

	var blocks []Block
	for _, mod := range modules.Children {
		id := mod.GetString("id", "")
		relPath := paths.ChildWithProperty("id", id).GetString("path", "")

		args := []string{id, `PATH "` + relPath + `"`}

		header := filepath.Join(relPath, id, id+".h")
		lines, err := store.ReadLines(header)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			if !strings.HasPrefix(line, configMarker) {
				continue
			}
			option := line[len(configMarker):]
			switch options.GetString(option, "") {
			case "enabled":
				args = append(args, option+" ON")
			case "disabled":
				args = append(args, option+" OFF")
			default:
				args = append(args, "# "+option)
			}
		}

		blocks = append(blocks, Directive{Name: "jucer_project_module", Args: args})
	}

	return blocks, nil
}
