package scanner

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/yeisme/missionscan/pkg/utils/fsop"
)

func TestScanUnsupportedType(t *testing.T) {
	s := New(Options{})

	_, err := s.Scan("mission/readme.txt")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if !strings.Contains(err.Error(), "txt") {
		t.Errorf("error should name the offending type: %v", err)
	}
}

func TestScanNotFound(t *testing.T) {
	s := New(Options{})

	_, err := s.Scan(filepath.Join(t.TempDir(), "missing.sqf"))
	if !errors.Is(err, fsop.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScanExtensionCaseInsensitive(t *testing.T) {
	path := writeTestFile(t, "ARSENAL.SQF", `x = "NVGoggles";`)
	s := New(Options{})

	result, err := s.Scan(path)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(result.Equipment, []string{"NVGoggles"}) {
		t.Errorf("unexpected equipment: %v", result.Equipment)
	}
}

func TestScanFilesNeverAborts(t *testing.T) {
	good := writeTestFile(t, "good.sqf", `x = "ItemGPS";`)
	missing := filepath.Join(t.TempDir(), "missing.sqf")
	unsupported := writeTestFile(t, "notes.txt", "not a mission file")

	s := New(Options{})
	results := s.ScanFiles([]string{good, missing, unsupported})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Records come back in input order.
	if results[0].File != good || results[1].File != missing || results[2].File != unsupported {
		t.Errorf("results out of order: %v", results)
	}

	if results[0].Error != "" {
		t.Errorf("good file should not carry an error: %q", results[0].Error)
	}
	for _, r := range results[1:] {
		if r.Error == "" {
			t.Errorf("expected error record for %s", r.File)
		}
		if len(r.Classes) != 0 || len(r.Equipment) != 0 {
			t.Errorf("error record for %s should have empty classes/equipment", r.File)
		}
	}
}

func TestScanDirOneFilePerDialect(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"arsenal.sqf":     `items[] = {"Tarkov_Uniforms_10"};`,
		"loadout.hpp":     `class Rifleman { items[] = {"ACE_fieldDressing"}; };`,
		"description.ext": `class CfgLoadouts` + "\n" + `#include "loadouts.hpp"`,
		"readme.md":       "ignored entirely",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	s := New(Options{})
	results, err := s.ScanDir(root)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	byExt := map[string]Result{}
	for _, r := range results {
		byExt[strings.TrimPrefix(filepath.Ext(r.File), ".")] = r
	}

	if len(byExt["sqf"].Classes) != 0 {
		t.Errorf("sqf record should have no classes: %v", byExt["sqf"].Classes)
	}
	if !reflect.DeepEqual(byExt["hpp"].Classes, []string{"Rifleman"}) {
		t.Errorf("unexpected hpp classes: %v", byExt["hpp"].Classes)
	}
	if !reflect.DeepEqual(byExt["ext"].Classes, []string{"CfgLoadouts"}) {
		t.Errorf("unexpected ext classes: %v", byExt["ext"].Classes)
	}
}

func TestScanDirRecursesAndExcludes(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "loadouts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "backup"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "loadouts", "a.sqf"), []byte(`x = "A";`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "backup", "b.sqf"), []byte(`x = "B";`), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(Options{Exclude: []string{"backup/"}})
	results, err := s.ScanDir(root)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if filepath.Base(results[0].File) != "a.sqf" {
		t.Errorf("expected a.sqf, got %s", results[0].File)
	}
}

func TestResultJSONRoundTrip(t *testing.T) {
	sqf := writeTestFile(t, "a.sqf", `x = "ItemMap";`)
	missing := filepath.Join(t.TempDir(), "gone.sqf")

	s := New(Options{})
	results := s.ScanFiles([]string{sqf, missing})

	data, err := json.Marshal(results)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded []Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(results, decoded) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", decoded, results)
	}
}
