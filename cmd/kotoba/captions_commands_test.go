package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"kotoba/internal/captions"
	"kotoba/internal/testsupport"
)

func writeCaptionPair(t *testing.T, dir string) (string, string) {
	t.Helper()
	primary := testsupport.WriteFile(t, filepath.Join(dir, "ep.ja.vtt"), testsupport.PrimaryVTT)
	secondary := testsupport.WriteFile(t, filepath.Join(dir, "ep.zh.vtt"), testsupport.SecondaryVTT)
	return primary, secondary
}

func TestCaptionsAlignTable(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, secondary := writeCaptionPair(t, env.baseDir)

	out, _, err := runCLI(t, []string{"captions", "align", primary, secondary}, env.configPath)
	if err != nil {
		t.Fatalf("captions align: %v", err)
	}
	for _, want := range []string{"ある", "いい", "日本語", "中文", "3 primary, 3 secondary, aligned: yes"} {
		requireContains(t, out, want)
	}
}

func TestCaptionsAlignJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, secondary := writeCaptionPair(t, env.baseDir)

	out, _, err := runCLI(t, []string{"captions", "align", primary, secondary, "--output", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("captions align: %v", err)
	}
	var set captions.Set
	if err := json.Unmarshal([]byte(out), &set); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if set.ID == "" || !set.Aligned {
		t.Fatalf("unexpected set header: id=%q aligned=%v", set.ID, set.Aligned)
	}
	got := make([]string, 0, len(set.Secondary))
	for _, c := range set.Secondary {
		got = append(got, c.Text)
	}
	if strings.Join(got, "|") != "A|B|中文" {
		t.Fatalf("aligned secondary = %v", got)
	}
	if set.Secondary[1].StartSeconds != 2 || set.Secondary[1].EndSeconds != 4 {
		t.Fatalf("secondary should carry primary timing, got %+v", set.Secondary[1])
	}
}

func TestCaptionsAlignYAMLOnMismatchSkipsEqualCounts(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, secondary := writeCaptionPair(t, env.baseDir)
	secondary = testsupport.WriteFile(t, secondary, testsupport.SecondaryVTT+"\n00:00:08.000 --> 00:00:09.000\n最後\n")

	out, _, err := runCLI(t, []string{"captions", "align", primary, secondary, "-o", "yaml", "--mode", "on_mismatch"}, env.configPath)
	if err != nil {
		t.Fatalf("captions align: %v", err)
	}
	var decoded struct {
		Aligned   bool `yaml:"aligned"`
		Secondary []struct {
			Text string `yaml:"text"`
		} `yaml:"secondary"`
	}
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if decoded.Aligned {
		t.Fatal("expected alignment to be skipped for equal counts")
	}
	if len(decoded.Secondary) != 3 || decoded.Secondary[0].Text != "A。B" {
		t.Fatalf("secondary should be untouched, got %+v", decoded.Secondary)
	}
}

func TestCaptionsAlignRejectsUnknownOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, secondary := writeCaptionPair(t, env.baseDir)
	if _, _, err := runCLI(t, []string{"captions", "align", primary, secondary, "-o", "xml"}, env.configPath); err == nil {
		t.Fatal("expected error for unsupported output")
	}
}

func TestCaptionsAt(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, secondary := writeCaptionPair(t, env.baseDir)

	tests := []struct {
		name      string
		at        string
		primary   string
		secondary string
	}{
		{name: "first caption", at: "1", primary: "ある", secondary: "A"},
		{name: "shared boundary picks earlier", at: "2", primary: "ある", secondary: "A"},
		{name: "second caption", at: "3.5", primary: "いい", secondary: "B"},
		{name: "gap", at: "4.5", primary: "(none)", secondary: "(none)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, []string{"captions", "at", primary, secondary, "--time", tt.at}, env.configPath)
			if err != nil {
				t.Fatalf("captions at: %v", err)
			}
			requireContains(t, out, "primary:   "+tt.primary+"\n")
			requireContains(t, out, "secondary: "+tt.secondary+"\n")
		})
	}
}

func TestCaptionsAtRequiresTime(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, _ := writeCaptionPair(t, env.baseDir)
	if _, _, err := runCLI(t, []string{"captions", "at", primary}, env.configPath); err == nil {
		t.Fatal("expected error without --time")
	}
}

func TestCaptionsAtJSONPrimaryOnly(t *testing.T) {
	env := setupCLITestEnv(t)
	primary, _ := writeCaptionPair(t, env.baseDir)

	out, _, err := runCLI(t, []string{"captions", "at", primary, "-t", "6", "-o", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("captions at: %v", err)
	}
	var active captions.Active
	if err := json.Unmarshal([]byte(out), &active); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if active.Primary == nil || active.Primary.Text != "日本語" {
		t.Fatalf("primary = %+v", active.Primary)
	}
	if active.Secondary != nil {
		t.Fatalf("expected no secondary, got %+v", active.Secondary)
	}
}

func TestCaptionsAlignShowsEffectiveEndForOpenEnded(t *testing.T) {
	env := setupCLITestEnv(t)
	primary := testsupport.WriteFile(t, filepath.Join(env.baseDir, "open.ja.vtt"),
		"WEBVTT\n\n00:00:10.000 --> bogus\nこんにちは\n")
	secondary := testsupport.WriteFile(t, filepath.Join(env.baseDir, "open.zh.vtt"),
		"WEBVTT\n\n00:00:10.000 --> 00:00:12.000\n你好\n")

	out, _, err := runCLI(t, []string{"captions", "align", primary, secondary}, env.configPath)
	if err != nil {
		t.Fatalf("captions align: %v", err)
	}
	requireContains(t, out, "00:00:15.000")
	requireContains(t, out, "你好")
	if strings.Contains(out, "00:00:00.000") {
		t.Fatalf("open-ended caption printed a zero end:\n%s", out)
	}
}
