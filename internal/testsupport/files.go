package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// PrimaryVTT is a three-cue Japanese track with a gap between 4s and 5s.
const PrimaryVTT = `WEBVTT

00:00:00.000 --> 00:00:02.000
ある

00:00:02.000 --> 00:00:04.000
いい

00:00:05.000 --> 00:00:07.500
日本語
`

// SecondaryVTT carries one run-on cue that splits into two halves.
const SecondaryVTT = `WEBVTT

00:00:00.500 --> 00:00:03.500
A。B

00:00:05.000 --> 00:00:07.500
中文
`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteVideoWithSidecars creates an empty video file plus ja and zh-Hant
// sidecars under dir and returns the video path.
func WriteVideoWithSidecars(t testing.TB, dir, name string) string {
	t.Helper()

	video := WriteFile(t, filepath.Join(dir, name+".mp4"), "")
	WriteFile(t, filepath.Join(dir, name+".ja.vtt"), PrimaryVTT)
	WriteFile(t, filepath.Join(dir, name+".zh-Hant.vtt"), SecondaryVTT)
	return video
}
