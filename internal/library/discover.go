package library

import (
	"os"
	"path/filepath"
	"strings"

	"kotoba/internal/language"
)

var captionExtensions = []string{".vtt", ".srt"}

// Sources names the caption files for one video. Empty paths mean the track
// is absent.
type Sources struct {
	VideoPath     string `json:"video_path,omitempty"`
	PrimaryPath   string `json:"primary_path,omitempty"`
	SecondaryPath string `json:"secondary_path,omitempty"`
}

// Empty reports whether neither caption track was found.
func (s Sources) Empty() bool {
	return s.PrimaryPath == "" && s.SecondaryPath == ""
}

// Discover looks for sidecar caption files next to videoPath. For each track
// the language suffixes are tried in priority order, VTT before SRT; the
// first existing file wins. When neither sidecar exists, an unsuffixed
// "<base>.vtt" or "<base>.srt" is used as the primary track.
func Discover(videoPath, primaryLang, secondaryLang string) Sources {
	sources := Sources{VideoPath: videoPath}
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	if strings.TrimSpace(base) == "" {
		return sources
	}

	sources.PrimaryPath = findSidecar(base, language.SidecarSuffixes(primaryLang))
	sources.SecondaryPath = findSidecar(base, language.SidecarSuffixes(secondaryLang))
	if sources.Empty() {
		for _, ext := range captionExtensions {
			if candidate := base + ext; fileExists(candidate) && candidate != videoPath {
				sources.PrimaryPath = candidate
				break
			}
		}
	}
	return sources
}

func findSidecar(base string, suffixes []string) string {
	for _, suffix := range suffixes {
		for _, ext := range captionExtensions {
			candidate := base + "." + suffix + ext
			if fileExists(candidate) {
				return candidate
			}
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
