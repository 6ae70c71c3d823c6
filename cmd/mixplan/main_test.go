package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-mix/logging"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(nil)
	os.Exit(m.Run())
}

func writeCrate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crate.tsv")
	data := "Opener\tAm\t122\n" +
		"Second\tC\t124\n" +
		"//Skipped\tF#\t170\n" +
		"Third\tG\t123\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-tracks", writeCrate(t), "-preset", "quick", "-key-counts"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Am (8A):", "TRACK", "uses 3 of 3 input tracks"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunJSONAndMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "mixplan.prom")

	var out bytes.Buffer
	err := run([]string{
		"-tracks", writeCrate(t),
		"-strategy", "exhaustive",
		"-json",
		"-metrics-out", metricsPath,
	}, &out)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Used  int `json:"used"`
		Input int `json:"input"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if doc.Used != 3 || doc.Input != 3 {
		t.Errorf("used %d of %d, want 3 of 3", doc.Used, doc.Input)
	}

	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `mixplan_mixes_total{outcome="complete"} 1`) {
		t.Errorf("metrics file missing mix counter:\n%s", data)
	}
}

func TestRunRejectsBadArguments(t *testing.T) {
	crate := writeCrate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"missing tracks", nil},
		{"unknown preset", []string{"-tracks", crate, "-preset", "forever"}},
		{"unknown strategy", []string{"-tracks", crate, "-strategy", "greedy"}},
		{"unknown format", []string{"-tracks", crate, "-format", "csv"}},
		{"bad log level", []string{"-tracks", crate, "-log-level", "loud"}},
		{"missing file", []string{"-tracks", filepath.Join(t.TempDir(), "none.tsv")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
