package cmake

import (
	"path/filepath"

	"github.com/jucetools/jucer2cmake/internal/jucer"
	"github.com/jucetools/jucer2cmake/internal/relpath"
	"github.com/jucetools/jucer2cmake/internal/storage"
)

// Params carries everything one translation pass needs.
type Params struct {
	// ProjectFile is the descriptor path as given on the command line; only
	// its file name appears in the output.
	ProjectFile string
	// ReprojucerFile is the build-macro library file; its parent directory,
	// relative to WorkDir, becomes the module include path.
	ReprojucerFile string
	// WorkDir is the directory the generated script is written from.
	WorkDir string
	// Store reads files referenced by the descriptor (module headers).
	Store storage.Provider
	// IncludeRoot keeps the root group's name in full group names.
	IncludeRoot bool
}

// Translate builds the complete directive script for a parsed project. The
// translators run in fixed sequence — settings, plugin settings, file groups,
// modules, export targets — writing into one ordered script.
func Translate(project *jucer.Node, p Params) (*Script, error) {
	fileName := filepath.Base(p.ProjectFile)
	id := scriptIdentifier(fileName)
	includeDir := relpath.From(p.WorkDir, filepath.Dir(relpath.Resolve(p.WorkDir, p.ReprojucerFile)))

	s := &Script{}

	s.Add(Raw{
		"# This file was generated by jucer2cmake from " + fileName,
		"",
		"cmake_minimum_required(VERSION 3.4)",
		"",
	})

	s.Add(Raw{
		`list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/` + includeDir + `")`,
		"include(Reprojucer)",
		"",
	})

	// The generated script, not the translator, rejects a missing project
	// file variable: the guard turns an undefined variable into a fatal
	// error at configure time.
	s.Add(Raw{
		"if(NOT DEFINED " + id + "_FILE)",
		`  message(FATAL_ERROR "` + id + `_FILE must be defined")`,
		"endif()",
		"",
		"get_filename_component(" + id + "_FILE",
		`  "${` + id + `_FILE}" ABSOLUTE`,
		`  BASE_DIR "${CMAKE_BINARY_DIR}"`,
		")",
		"",
	})

	s.Add(Directive{Name: "jucer_project_begin", Args: []string{
		`PROJECT_FILE "${` + id + `_FILE}"`,
		Setting(project, "PROJECT_ID", "id"),
	}})

	projectType := project.GetString("projectType", "")

	s.Add(Directive{Name: "jucer_project_settings", Args: []string{
		Setting(project, "PROJECT_NAME", "name"),
		Setting(project, "PROJECT_VERSION", "version"),
		Setting(project, "COMPANY_NAME", "companyName"),
		Setting(project, "COMPANY_WEBSITE", "companyWebsite"),
		Setting(project, "COMPANY_EMAIL", "companyEmail"),
		`PROJECT_TYPE "` + projectTypeDescription(projectType) + `"`,
		Setting(project, "BUNDLE_IDENTIFIER", "bundleIdentifier"),
		`BINARYDATACPP_SIZE_LIMIT "Default"`,
		Setting(project, "BINARYDATA_NAMESPACE", "binaryDataNamespace"),
		Setting(project, "PREPROCESSOR_DEFINITIONS", "defines"),
	}})

	if projectType == "audioplug" {
		s.Add(Directive{Name: "jucer_audio_plugin_settings", Args: []string{
			OnOffSetting(project, "BUILD_VST", "buildVST"),
			OnOffSetting(project, "BUILD_AUDIOUNIT", "buildAU"),
			Setting(project, "PLUGIN_NAME", "pluginName"),
			Setting(project, "PLUGIN_DESCRIPTION", "pluginDesc"),
			Setting(project, "PLUGIN_MANUFACTURER", "pluginManufacturer"),
			Setting(project, "PLUGIN_MANUFACTURER_CODE", "pluginManufacturerCode"),
			Setting(project, "PLUGIN_CODE", "pluginCode"),
			Setting(project, "PLUGIN_CHANNEL_CONFIGURATIONS", "pluginChannelConfigs"),
			OnOffSetting(project, "PLUGIN_IS_A_SYNTH", "pluginIsSynth"),
			OnOffSetting(project, "PLUGIN_MIDI_INPUT", "pluginWantsMidiIn"),
			OnOffSetting(project, "PLUGIN_MIDI_OUTPUT", "pluginProducesMidiOut"),
			OnOffSetting(project, "MIDI_EFFECT_PLUGIN", "pluginIsMidiEffectPlugin"),
			OnOffSetting(project, "KEY_FOCUS", "pluginEditorRequiresKeys"),
			Setting(project, "PLUGIN_AU_EXPORT_PREFIX", "pluginAUExportPrefix"),
			Setting(project, "PLUGIN_AU_MAIN_TYPE", "pluginAUMainType"),
			Setting(project, "VST_CATEGORY", "pluginVSTCategory"),
		}})
	}

	s.Add(Groups(project, p.IncludeRoot)...)

	moduleBlocks, err := Modules(project, p.Store)
	if err != nil {
		return nil, err
	}
	s.Add(moduleBlocks...)

	s.Add(ExportTargets(project, p.Store.Root())...)

	s.Add(Directive{Name: "jucer_project_end"})

	return s, nil
}

// projectTypeDescription maps the descriptor's project type to its display
// description; unknown types map to the empty string.
func projectTypeDescription(projectType string) string {
	switch projectType {
	case "guiapp":
		return "GUI Application"
	case "consoleapp":
		return "Console Application"
	case "library":
		return "Static Library"
	case "audioplug":
		return "Audio Plug-in"
	}
	return ""
}

// scriptIdentifier derives the guard variable prefix from the descriptor's
// file name, replacing every non-alphanumeric byte with an underscore.
func scriptIdentifier(name string) string {
	out := []byte(name)
	for i, c := range out {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			out[i] = '_'
		}
	}
	return string(out)
}
