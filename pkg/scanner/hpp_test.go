package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHPPAnalyzerEmptyClassBody(t *testing.T) {
	path := writeTestFile(t, "empty.hpp", `class emptyClass { uniform[] = {}; };`)

	result, err := (&HPPAnalyzer{}).Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(result.Classes, []string{"emptyClass"}) {
		t.Errorf("expected [emptyClass], got %v", result.Classes)
	}
	if len(result.Equipment) != 0 {
		t.Errorf("expected no equipment, got %v", result.Equipment)
	}
}

func TestHPPAnalyzerClassesAndEquipment(t *testing.T) {
	path := writeTestFile(t, "loadout.hpp", `
class BaseLoadout {
	uniform[] = {"Tarkov_Uniforms_10"};
	items[] = {LIST_3("ACE_fieldDressing")};
};
class Rifleman : BaseLoadout {
	primaryWeapon[] = {"CUP_arifle_AK74"};
};
`)

	result, err := (&HPPAnalyzer{}).Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	wantClasses := []string{"BaseLoadout", "Rifleman"}
	if !reflect.DeepEqual(result.Classes, wantClasses) {
		t.Errorf("expected classes %v, got %v", wantClasses, result.Classes)
	}

	wantEquipment := []string{"ACE_fieldDressing", "CUP_arifle_AK74", "Tarkov_Uniforms_10"}
	if !reflect.DeepEqual(result.Equipment, wantEquipment) {
		t.Errorf("expected equipment %v, got %v", wantEquipment, result.Equipment)
	}
}

func TestHPPAnalyzerListMacroDigitIndependent(t *testing.T) {
	path := writeTestFile(t, "macro.hpp", `
class Medic {
	items[] = {LIST_10("ACE_fieldDressing"), LIST_2("ACE_morphine")};
};
`)

	result, err := (&HPPAnalyzer{}).Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	want := []string{"ACE_fieldDressing", "ACE_morphine"}
	if !reflect.DeepEqual(result.Equipment, want) {
		t.Errorf("expected equipment %v, got %v", want, result.Equipment)
	}
}

func TestHPPAnalyzerNestedClassFlattening(t *testing.T) {
	// A nested class's literals count toward the outer class's body scan
	// too; the inner class is also matched as its own header.
	path := writeTestFile(t, "nested.hpp", `
class Outer {
	class Inner {
		items[] = {"InnerItem"};
	};
	items[] = {"OuterItem"};
};
`)

	result, err := (&HPPAnalyzer{}).Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	wantClasses := []string{"Outer", "Inner"}
	if !reflect.DeepEqual(result.Classes, wantClasses) {
		t.Errorf("expected classes %v, got %v", wantClasses, result.Classes)
	}
	wantEquipment := []string{"InnerItem", "OuterItem"}
	if !reflect.DeepEqual(result.Equipment, wantEquipment) {
		t.Errorf("expected equipment %v, got %v", wantEquipment, result.Equipment)
	}
}

func TestHPPAnalyzerDuplicateClassNamesPreserved(t *testing.T) {
	path := writeTestFile(t, "dup.hpp", `
class Alias { x[] = {"A"}; };
class Alias { x[] = {"B"}; };
`)

	result, err := (&HPPAnalyzer{}).Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(result.Classes, []string{"Alias", "Alias"}) {
		t.Errorf("expected duplicate class entries, got %v", result.Classes)
	}
}

func TestHPPAnalyzerUnterminatedBody(t *testing.T) {
	// A missing closing brace must not fail; the body scan runs to end of
	// input.
	path := writeTestFile(t, "truncated.hpp", `class Broken { items[] = {"StillFound"`)

	result, err := (&HPPAnalyzer{}).Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(result.Classes, []string{"Broken"}) {
		t.Errorf("expected [Broken], got %v", result.Classes)
	}
	if !reflect.DeepEqual(result.Equipment, []string{"StillFound"}) {
		t.Errorf("expected [StillFound], got %v", result.Equipment)
	}
}

func TestHPPAnalyzerResolvesDataDir(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "shared.hpp"),
		[]byte(`class Shared { items[] = {"SharedItem"}; };`), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}

	// The requested path does not exist; the analyzer falls back to the
	// same-named file in the data directory.
	missing := filepath.Join(t.TempDir(), "shared.hpp")
	result, err := (&HPPAnalyzer{DataDirs: []string{dataDir}}).Analyze(missing)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(result.Equipment, []string{"SharedItem"}) {
		t.Errorf("expected [SharedItem], got %v", result.Equipment)
	}
}

func TestClassBodyEnd(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   int
		want    int
	}{
		{"flat body", `a};`, 0, 2},
		{"nested braces", `{x}y};`, 0, 5},
		{"unterminated", `{{`, 0, 2},
		{"empty body", `};`, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classBodyEnd(tt.content, tt.start); got != tt.want {
				t.Errorf("classBodyEnd(%q, %d) = %d, want %d", tt.content, tt.start, got, tt.want)
			}
		})
	}
}
