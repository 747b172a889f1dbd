package cmake

import (
	"slices"
	"strings"

	"github.com/jucetools/jucer2cmake/internal/jucer"
	"github.com/jucetools/jucer2cmake/internal/relpath"
)

// exporterKind describes one supported export format: its element tag, its
// display name, the fallback VST3 SDK folder, and an optional per-kind policy
// adding validated arguments to each configuration block.
type exporterKind struct {
	id      string
	name    string
	vst3SDK string
	policy  func(cfg *jucer.Node) []string
}

var supportedExporters = []exporterKind{
	{"XCODE_MAC", "Xcode (MacOSX)", "~/SDKs/VST_SDK/VST3_SDK", osxPolicy},
	{"VS2015", "Visual Studio 2015", `c:\SDKs\VST_SDK\VST3_SDK`, nil},
	{"VS2013", "Visual Studio 2013", `c:\SDKs\VST_SDK\VST3_SDK`, nil},
}

// osxSDKs is the allow-list for the Xcode base SDK and deployment target.
var osxSDKs = []string{
	"10.5 SDK",
	"10.6 SDK",
	"10.7 SDK",
	"10.8 SDK",
	"10.9 SDK",
	"10.10 SDK",
	"10.11 SDK",
	"10.12 SDK",
}

// osxPolicy validates the OSX SDK version and deployment target against the
// allow-list. "default" maps to the Use Default literal; the deployment
// target drops the trailing " SDK". Anything else degrades to a placeholder.
func osxPolicy(cfg *jucer.Node) []string {
	args := make([]string, 0, 2)

	sdk := cfg.GetString("osxSDK", "")
	switch {
	case sdk == "default":
		args = append(args, `OSX_BASE_SDK_VERSION "Use Default"`)
	case slices.Contains(osxSDKs, sdk):
		args = append(args, `OSX_BASE_SDK_VERSION "`+sdk+`"`)
	default:
		args = append(args, "# OSX_BASE_SDK_VERSION")
	}

	compat := cfg.GetString("osxCompatibility", "")
	switch {
	case compat == "default":
		args = append(args, `OSX_DEPLOYMENT_TARGET "Use Default"`)
	case slices.Contains(osxSDKs, compat):
		args = append(args, `OSX_DEPLOYMENT_TARGET "`+compat[:len(compat)-len(" SDK")]+`"`)
	default:
		args = append(args, "# OSX_DEPLOYMENT_TARGET")
	}

	return args
}

// ExportTargets emits one jucer_export_target block per supported export
// format present in the project, each followed by its configuration blocks in
// document order. jucerDir is the descriptor's directory, the base for header
// search path relativization.
func ExportTargets(project *jucer.Node, jucerDir string) []Block {
	formats := project.ChildWithName("EXPORTFORMATS")

	hostsVST3 := project.ChildWithName("MODULES").ChildWithProperty("id", "juce_audio_processors").Valid() &&
		project.ChildWithName("JUCEOPTIONS").GetString("JUCE_PLUGINHOST_VST3", "") == "enabled"

	var blocks []Block
	for _, kind := range supportedExporters {
		exporter := formats.ChildWithName(kind.id)
		if !exporter.Valid() {
			continue
		}

		args := []string{`"` + kind.name + `"`}
		if hostsVST3 {
			folder := exporter.GetString("vst3Folder", "")
			if folder == "" {
				folder = kind.vst3SDK
			}
			args = append(args, `VST3_SDK_FOLDER "`+Escape(`\`, folder)+`"`)
		}
		args = append(args,
			Setting(exporter, "EXTRA_PREPROCESSOR_DEFINITIONS", "extraDefs"),
			Setting(exporter, "EXTRA_COMPILER_FLAGS", "extraCompilerFlags"),
		)
		blocks = append(blocks, Directive{Name: "jucer_export_target", Args: args})

		configs := exporter.ChildWithName("CONFIGURATIONS")
		if !configs.Valid() {
			continue
		}
		for _, cfg := range configs.Children {
			cargs := []string{
				`"` + kind.name + `"`,
				`NAME "` + cfg.GetString("name", "") + `"`,
				headerSearchPaths(cfg, exporter, jucerDir),
				Setting(cfg, "PREPROCESSOR_DEFINITIONS", "defines"),
			}
			if kind.policy != nil {
				cargs = append(cargs, kind.policy(cfg)...)
			}
			blocks = append(blocks, Directive{Name: "jucer_export_target_configuration", Args: cargs})
		}
	}

	return blocks
}

// headerSearchPaths rewrites the configuration's newline-separated header
// paths relative to the descriptor's directory, resolving each against the
// exporter's target folder and skipping empty segments.
func headerSearchPaths(cfg, exporter *jucer.Node, jucerDir string) string {
	raw := cfg.GetString("headerPath", "")
	if raw == "" {
		return "# HEADER_SEARCH_PATHS"
	}

	targetDir := relpath.Resolve(jucerDir, exporter.GetString("targetFolder", ""))

	var rels []string
	for _, p := range strings.Split(raw, "\n") {
		if p == "" {
			continue
		}
		rels = append(rels, relpath.From(jucerDir, relpath.Resolve(targetDir, p)))
	}

	return `HEADER_SEARCH_PATHS "` + Escape(`\`, strings.Join(rels, "\n")) + `"`
}
