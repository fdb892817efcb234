package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestOrdinalCommand(t *testing.T) {
	out, err := run(t, "ordinal", "1", "2", "3", "11")
	if err != nil {
		t.Fatalf("ordinal: %v", err)
	}
	if out != "1st\n2nd\n3rd\n11th\n" {
		t.Fatalf("output = %q", out)
	}

	out, err = run(t, "ordinal", "--locale", "fr", "--suffixes", "er,e,e,e", "1", "2")
	if err != nil {
		t.Fatalf("ordinal fr: %v", err)
	}
	if out != "1er\n2e\n" {
		t.Fatalf("fr output = %q", out)
	}

	if _, err := run(t, "ordinal", "--suffixes", "a,b", "1"); err == nil {
		t.Fatal("expected error for incomplete suffix set")
	}
	if _, err := run(t, "ordinal", "first"); err == nil {
		t.Fatal("expected error for non-numeric argument")
	}
}

func TestNumberCommand(t *testing.T) {
	out, err := run(t, "number", "--style", "decimal", "1234.5")
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	if out != "1,234.50\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestResolveCommandJSON(t *testing.T) {
	out, err := run(t, "resolve", "-f", filepath.Join("..", "..", "testdata", "settings.json"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var doc struct {
		Formats struct {
			Dates struct {
				Locales      string `json:"locales"`
				Variant      string `json:"variant"`
				WeekStartsOn int    `json:"weekStartsOn"`
			} `json:"dates"`
		} `json:"formats"`
		Themes struct {
			Light []string `json:"light"`
		} `json:"themes"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}

	if doc.Formats.Dates.Locales != "en-GB" || doc.Formats.Dates.Variant != "custom" {
		t.Fatalf("dates = %+v", doc.Formats.Dates)
	}
	if len(doc.Themes.Light) != 1 || doc.Themes.Light[0] != "paper" {
		t.Fatalf("themes = %+v", doc.Themes)
	}
}

func TestResolveCommandYAMLWithWeekStart(t *testing.T) {
	out, err := run(t, "--week-start", "en=monday", "resolve", "-o", "yaml")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}

	formats := doc["formats"].(map[string]any)
	dates := formats["dates"].(map[string]any)
	if dates["weekStartsOn"] != 1 {
		t.Fatalf("weekStartsOn = %#v", dates["weekStartsOn"])
	}
	if dates["locales"] != "en" {
		t.Fatalf("locales = %#v", dates["locales"])
	}
}

func TestResolveCommandErrors(t *testing.T) {
	if _, err := run(t, "--week-start", "monday", "resolve"); err == nil {
		t.Fatal("expected error for malformed --week-start")
	}
	if _, err := run(t, "resolve", "-o", "xml"); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("error = %v, want unknown output format", err)
	}
	if _, err := run(t, "resolve", "-f", "missing.yaml"); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestServeCommandInvalidAddress(t *testing.T) {
	if _, err := run(t, "serve", "--addr", "bad::addr::"); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestLoadInputRejectsBadS3URL(t *testing.T) {
	if _, err := run(t, "resolve", "-f", "s3://bucket-only"); err == nil || !strings.Contains(err.Error(), "s3") {
		t.Fatalf("error = %v, want s3 url error", err)
	}
}
