package library_test

import (
	"path/filepath"
	"testing"

	"kotoba/internal/library"
	"kotoba/internal/testsupport"
)

func TestDiscoverFindsLanguageSidecars(t *testing.T) {
	dir := t.TempDir()
	video := testsupport.WriteVideoWithSidecars(t, dir, "episode01")

	got := library.Discover(video, "ja", "zh")
	if got.PrimaryPath != filepath.Join(dir, "episode01.ja.vtt") {
		t.Fatalf("unexpected primary: %q", got.PrimaryPath)
	}
	if got.SecondaryPath != filepath.Join(dir, "episode01.zh-Hant.vtt") {
		t.Fatalf("unexpected secondary: %q", got.SecondaryPath)
	}
	if got.VideoPath != video || got.Empty() {
		t.Fatalf("unexpected sources: %+v", got)
	}
}

func TestDiscoverSuffixPriority(t *testing.T) {
	dir := t.TempDir()
	video := testsupport.WriteFile(t, filepath.Join(dir, "movie.mkv"), "")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.jpn.srt"), "")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.jp.srt"), "")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.zh.vtt"), "")
	testsupport.WriteFile(t, filepath.Join(dir, "movie.zh-TW.srt"), "")

	got := library.Discover(video, "ja", "zh")
	if got.PrimaryPath != filepath.Join(dir, "movie.jp.srt") {
		t.Fatalf("expected jp before jpn, got %q", got.PrimaryPath)
	}
	if got.SecondaryPath != filepath.Join(dir, "movie.zh-TW.srt") {
		t.Fatalf("expected zh-TW before zh, got %q", got.SecondaryPath)
	}
}

func TestDiscoverFallsBackToPlainCaptionFile(t *testing.T) {
	dir := t.TempDir()
	video := testsupport.WriteFile(t, filepath.Join(dir, "clip.mp4"), "")
	testsupport.WriteFile(t, filepath.Join(dir, "clip.vtt"), testsupport.PrimaryVTT)

	got := library.Discover(video, "ja", "zh")
	if got.PrimaryPath != filepath.Join(dir, "clip.vtt") {
		t.Fatalf("expected unsuffixed fallback, got %q", got.PrimaryPath)
	}
	if got.SecondaryPath != "" {
		t.Fatalf("expected no secondary, got %q", got.SecondaryPath)
	}
}

func TestDiscoverSkipsPlainFileWhenSecondaryFound(t *testing.T) {
	dir := t.TempDir()
	video := testsupport.WriteFile(t, filepath.Join(dir, "clip.mp4"), "")
	testsupport.WriteFile(t, filepath.Join(dir, "clip.vtt"), testsupport.PrimaryVTT)
	testsupport.WriteFile(t, filepath.Join(dir, "clip.zh.vtt"), testsupport.SecondaryVTT)

	got := library.Discover(video, "ja", "zh")
	if got.PrimaryPath != "" {
		t.Fatalf("expected no primary when a secondary sidecar exists, got %q", got.PrimaryPath)
	}
	if got.SecondaryPath != filepath.Join(dir, "clip.zh.vtt") {
		t.Fatalf("unexpected secondary: %q", got.SecondaryPath)
	}
}

func TestDiscoverNothingFound(t *testing.T) {
	dir := t.TempDir()
	video := testsupport.WriteFile(t, filepath.Join(dir, "bare.mp4"), "")

	got := library.Discover(video, "ja", "zh")
	if !got.Empty() {
		t.Fatalf("expected empty sources, got %+v", got)
	}
}
