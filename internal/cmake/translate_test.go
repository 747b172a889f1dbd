package cmake

import (
	"strings"
	"testing"

	"github.com/jucetools/jucer2cmake/internal/jucer"
	"github.com/jucetools/jucer2cmake/internal/testutil"
)

func TestProjectTypeDescription(t *testing.T) {
	cases := map[string]string{
		"guiapp":     "GUI Application",
		"consoleapp": "Console Application",
		"library":    "Static Library",
		"audioplug":  "Audio Plug-in",
		"mystery":    "",
		"":           "",
	}
	for in, want := range cases {
		if got := projectTypeDescription(in); got != want {
			t.Errorf("projectTypeDescription(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScriptIdentifier(t *testing.T) {
	if got := scriptIdentifier("My App-1.0.jucer"); got != "My_App_1_0_jucer" {
		t.Errorf("scriptIdentifier = %q", got)
	}
	if got := scriptIdentifier("App.jucer"); got != "App_jucer" {
		t.Errorf("scriptIdentifier = %q", got)
	}
}

func TestTranslate_MinimalConsoleApp(t *testing.T) {
	dir, store := testutil.ProjectDir(t)

	project, err := jucer.Parse([]byte(`
		<JUCERPROJECT id="hzbq7x" name="MyApp" projectType="consoleapp">
			<MAINGROUP id="g0" name="MyApp">
				<GROUP id="g1" name="Source">
					<FILE id="f1" name="main.cpp" file="main.cpp"/>
				</GROUP>
			</MAINGROUP>
		</JUCERPROJECT>`))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Translate(project, Params{
		ProjectFile:    dir + "/App.jucer",
		ReprojucerFile: dir + "/cmake/Reprojucer.cmake",
		WorkDir:        dir,
		Store:          store,
		IncludeRoot:    false,
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	got := string(s.Render())

	ordered := []string{
		"cmake_minimum_required(VERSION 3.4)",
		`list(APPEND CMAKE_MODULE_PATH "${CMAKE_CURRENT_LIST_DIR}/cmake")`,
		"include(Reprojucer)",
		"if(NOT DEFINED App_jucer_FILE)",
		`  message(FATAL_ERROR "App_jucer_FILE must be defined")`,
		"get_filename_component(App_jucer_FILE",
		"jucer_project_begin(",
		`PROJECT_FILE "${App_jucer_FILE}"`,
		`PROJECT_ID "hzbq7x"`,
		"jucer_project_settings(",
		`PROJECT_NAME "MyApp"`,
		`PROJECT_TYPE "Console Application"`,
		`BINARYDATACPP_SIZE_LIMIT "Default"`,
		"jucer_project_files(\"Source\"\n  \"main.cpp\"\n)",
		"jucer_project_end()",
	}
	pos := 0
	for _, frag := range ordered {
		i := strings.Index(got[pos:], frag)
		if i < 0 {
			t.Fatalf("missing or out of order: %q\noutput:\n%s", frag, got)
		}
		pos += i
	}

	for _, absent := range []string{
		"jucer_audio_plugin_settings",
		"jucer_project_module",
		"jucer_export_target",
	} {
		// jucer_export_target would also match jucer_export_target_configuration.
		if strings.Contains(got, absent+"(") {
			t.Errorf("unexpected %s block:\n%s", absent, got)
		}
	}

	if !strings.HasSuffix(got, "jucer_project_end()\n") {
		t.Errorf("output must end with the project-end call:\n%q", got)
	}
}

func TestTranslate_PluginSettingsOnlyForAudioPlug(t *testing.T) {
	_, store := testutil.ProjectDir(t)

	project, err := jucer.Parse([]byte(`
		<JUCERPROJECT id="p1" name="Verb" projectType="audioplug"
			buildVST="1" buildAU="0" pluginName="Verb">
			<MAINGROUP id="g0" name="Verb"/>
		</JUCERPROJECT>`))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Translate(project, Params{
		ProjectFile:    "Verb.jucer",
		ReprojucerFile: "cmake/Reprojucer.cmake",
		WorkDir:        store.Root(),
		Store:          store,
		IncludeRoot:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := string(s.Render())

	if !strings.Contains(got, "jucer_audio_plugin_settings(") {
		t.Fatalf("missing plugin settings block:\n%s", got)
	}
	for _, frag := range []string{
		"BUILD_VST ON",
		"BUILD_AUDIOUNIT OFF",
		`PLUGIN_NAME "Verb"`,
		"# PLUGIN_IS_A_SYNTH",
		"# VST_CATEGORY",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q:\n%s", frag, got)
		}
	}
}

func TestTranslate_MissingSettingsDegradeToPlaceholders(t *testing.T) {
	_, store := testutil.ProjectDir(t)

	project, err := jucer.Parse([]byte(`<JUCERPROJECT id="x"><MAINGROUP id="g0" name="X"/></JUCERPROJECT>`))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Translate(project, Params{
		ProjectFile:    "X.jucer",
		ReprojucerFile: "Reprojucer.cmake",
		WorkDir:        store.Root(),
		Store:          store,
		IncludeRoot:    true,
	})
	if err != nil {
		t.Fatalf("missing properties must never fail translation: %v", err)
	}
	got := string(s.Render())

	for _, frag := range []string{
		"# PROJECT_NAME",
		"# PROJECT_VERSION",
		"# COMPANY_NAME",
		"# BUNDLE_IDENTIFIER",
		"# PREPROCESSOR_DEFINITIONS",
		`PROJECT_TYPE ""`,
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q:\n%s", frag, got)
		}
	}
}

func TestTranslate_FullPipelineOrdering(t *testing.T) {
	dir, store := testutil.ProjectDir(t)
	testutil.WriteFile(t, dir, "modules/juce_core/juce_core.h", "/** Config: JUCE_FORCE_DEBUG\n*/\n")

	project, err := jucer.Parse([]byte(`
		<JUCERPROJECT id="p2" name="App" projectType="guiapp">
			<MAINGROUP id="g0" name="App">
				<FILE id="f1" name="Main.cpp" file="Source/Main.cpp"/>
			</MAINGROUP>
			<MODULES>
				<MODULE id="juce_core"/>
			</MODULES>
			<JUCEOPTIONS JUCE_FORCE_DEBUG="enabled"/>
			<EXPORTFORMATS>
				<XCODE_MAC targetFolder="Builds/MacOSX">
					<MODULEPATHS>
						<MODULEPATH id="juce_core" path="modules"/>
					</MODULEPATHS>
					<CONFIGURATIONS>
						<CONFIGURATION name="Debug" osxSDK="default"/>
					</CONFIGURATIONS>
				</XCODE_MAC>
			</EXPORTFORMATS>
		</JUCERPROJECT>`))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Translate(project, Params{
		ProjectFile:    dir + "/App.jucer",
		ReprojucerFile: dir + "/Reprojucer.cmake",
		WorkDir:        dir,
		Store:          store,
		IncludeRoot:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := string(s.Render())

	ordered := []string{
		"jucer_project_begin(",
		"jucer_project_settings(",
		`jucer_project_files("App"`,
		"jucer_project_module(",
		"JUCE_FORCE_DEBUG ON",
		"jucer_export_target(",
		`"Xcode (MacOSX)"`,
		"jucer_export_target_configuration(",
		`NAME "Debug"`,
		`OSX_BASE_SDK_VERSION "Use Default"`,
		"jucer_project_end()",
	}
	pos := 0
	for _, frag := range ordered {
		i := strings.Index(got[pos:], frag)
		if i < 0 {
			t.Fatalf("missing or out of order: %q\noutput:\n%s", frag, got)
		}
		pos += i
	}
}
