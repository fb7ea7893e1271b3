package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"kotoba/internal/library"
	"kotoba/internal/testsupport"
)

func TestOpenRecordsRecentVideo(t *testing.T) {
	env := setupCLITestEnv(t)
	video := testsupport.WriteVideoWithSidecars(t, filepath.Join(env.baseDir, "videos"), "episode01")

	out, _, err := runCLI(t, []string{"open", video, "--title", "Episode 1", "--url", "https://example.com/ep1"}, env.configPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	requireContains(t, out, "episode01.ja.vtt")
	requireContains(t, out, "episode01.zh-Hant.vtt")
	requireContains(t, out, "aligned: yes")

	out, _, err = runCLI(t, []string{"recent", "-o", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	var items []library.Recent
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 recent item, got %d", len(items))
	}
	if items[0].Title != "Episode 1" || items[0].URL != "https://example.com/ep1" {
		t.Fatalf("unexpected recent item %+v", items[0])
	}
	if items[0].VideoPath != video {
		t.Fatalf("video path = %q, want %q", items[0].VideoPath, video)
	}

	out, _, err = runCLI(t, []string{"recent"}, env.configPath)
	if err != nil {
		t.Fatalf("recent table: %v", err)
	}
	requireContains(t, out, "Episode 1")

	out, _, err = runCLI(t, []string{"recent", "--clear"}, env.configPath)
	if err != nil {
		t.Fatalf("recent --clear: %v", err)
	}
	requireContains(t, out, "Removed 1 recent videos")

	out, _, err = runCLI(t, []string{"recent"}, env.configPath)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	requireContains(t, out, "No recent videos")
}

func TestOpenWithoutCaptionsFails(t *testing.T) {
	env := setupCLITestEnv(t)
	video := testsupport.WriteFile(t, filepath.Join(env.baseDir, "bare.mp4"), "")
	if _, _, err := runCLI(t, []string{"open", video}, env.configPath); err == nil {
		t.Fatal("expected error for video without sidecars")
	}
}

func TestWordCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"word", "ｶﾀｶﾅ"}, env.configPath)
	if err != nil {
		t.Fatalf("word: %v", err)
	}
	requireContains(t, out, "カタカナ")
	requireContains(t, out, "未知")
	requireContains(t, out, "Japanese (jpn)")

	out, _, err = runCLI(t, []string{"word", "日本", "-o", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("word json: %v", err)
	}
	var record map[string]string
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record["surface"] != "日本" || record["pos"] != "未知" {
		t.Fatalf("unexpected record %v", record)
	}
}
