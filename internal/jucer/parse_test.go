package jucer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jucetools/jucer2cmake/internal/apperr"
)

const sampleProject = `<?xml version="1.0" encoding="UTF-8"?>
<JUCERPROJECT id="a1b2c3" name="MyApp" projectType="consoleapp" version="1.0.0">
  <MAINGROUP id="g0" name="MyApp">
    <GROUP id="g1" name="Source">
      <FILE id="f1" name="Main.cpp" compile="1" resource="0" file="Source/Main.cpp"/>
    </GROUP>
  </MAINGROUP>
  <MODULES>
    <MODULE id="juce_core" showAllCode="1"/>
  </MODULES>
  <JUCEOPTIONS JUCE_FORCE_DEBUG="enabled"/>
</JUCERPROJECT>
`

func TestParse_Tree(t *testing.T) {
	root, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Type != "JUCERPROJECT" {
		t.Errorf("root type = %q, want JUCERPROJECT", root.Type)
	}
	if got := root.GetString("name", ""); got != "MyApp" {
		t.Errorf("name = %q, want %q", got, "MyApp")
	}

	group := root.ChildWithName("MAINGROUP").ChildWithName("GROUP")
	if !group.Valid() {
		t.Fatal("expected GROUP child under MAINGROUP")
	}
	file := group.ChildWithName("FILE")
	if got := file.GetString("file", ""); got != "Source/Main.cpp" {
		t.Errorf("file = %q, want %q", got, "Source/Main.cpp")
	}
	if !file.GetBool("compile", false) {
		t.Error("compile = false, want true")
	}
}

func TestParse_WrongRoot(t *testing.T) {
	_, err := Parse([]byte(`<NOTAPROJECT name="x"/>`))
	if err == nil {
		t.Fatal("expected error for wrong root element")
	}
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse([]byte("this is not xml <<<"))
	if err == nil {
		t.Fatal("expected error for unparsable input")
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.jucer"))
	if !errors.Is(err, apperr.ErrInvalidProject) {
		t.Errorf("err = %v, want ErrInvalidProject", err)
	}
}

func TestParseFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.jucer")
	if err := os.WriteFile(path, []byte(sampleProject), 0o644); err != nil {
		t.Fatal(err)
	}
	root, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.GetString("projectType", "") != "consoleapp" {
		t.Errorf("projectType = %q, want consoleapp", root.GetString("projectType", ""))
	}
}

func TestAccessors_Defaults(t *testing.T) {
	n := &Node{Type: "FILE"}
	n.SetProperty("compile", "0")
	n.SetProperty("count", "3")
	n.SetProperty("junk", "abc")

	if n.GetBool("compile", true) {
		t.Error("compile = true, want false")
	}
	if n.GetBool("resource", false) {
		t.Error("absent resource should fall back to default false")
	}
	if got := n.GetInt("count", -1); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	if got := n.GetInt("junk", -1); got != -1 {
		t.Errorf("malformed int should fall back to default, got %d", got)
	}
	if got := n.GetString("missing", "def"); got != "def" {
		t.Errorf("missing string = %q, want %q", got, "def")
	}

	var nilNode *Node
	if nilNode.Valid() {
		t.Error("nil node reported valid")
	}
	if got := nilNode.GetString("x", "d"); got != "d" {
		t.Errorf("nil GetString = %q, want %q", got, "d")
	}
	if nilNode.ChildWithName("X") != nil {
		t.Error("nil ChildWithName should return nil")
	}
}

func TestChildWithProperty(t *testing.T) {
	root, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatal(err)
	}
	mod := root.ChildWithName("MODULES").ChildWithProperty("id", "juce_core")
	if !mod.Valid() {
		t.Fatal("expected juce_core module")
	}
	if root.ChildWithName("MODULES").ChildWithProperty("id", "juce_dsp") != nil {
		t.Error("expected nil for unknown module id")
	}
}
