package captions

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a caption file syntax.
type Format string

const (
	FormatVTT Format = "vtt"
	FormatSRT Format = "srt"
)

// ErrUnsupportedFormat is returned for files whose syntax cannot be inferred.
var ErrUnsupportedFormat = errors.New("unsupported caption format")

// FormatFromPath infers the caption format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt", ".webvtt":
		return FormatVTT, nil
	case ".srt":
		return FormatSRT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseFile reads a caption file, choosing the parser by extension.
func ParseFile(path string) (Track, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open captions: %w", err)
	}
	defer file.Close()

	track, err := Parse(file, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return track, nil
}

// Parse reads captions in the given format. Cues with unreadable timing are
// skipped; inverted bounds are kept as-is.
func Parse(r io.Reader, format Format) (Track, error) {
	blocks, err := readBlocks(r)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatVTT:
		return parseVTTBlocks(blocks), nil
	case FormatSRT:
		return parseSRTBlocks(blocks), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// readBlocks splits the input on blank lines, normalizing CRLF and a leading BOM.
func readBlocks(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var blocks [][]string
	var current []string
	first := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks, nil
}

var (
	vttTagRe       = regexp.MustCompile(`<[^>]*>`)
	vttEntityRepl  = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&nbsp;", " ", "&lrm;", "", "&rlm;", "")
	skippedVTTHead = []string{"WEBVTT", "NOTE", "STYLE", "REGION"}
)

func parseVTTBlocks(blocks [][]string) Track {
	var track Track
	for _, block := range blocks {
		if isVTTMetaBlock(block[0]) {
			continue
		}
		timing := -1
		for i, line := range block {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		// Cue identifiers occupy at most one line before the timing line.
		if timing < 0 || timing > 1 {
			continue
		}
		caption, ok := parseTimingLine(block[timing])
		if !ok {
			continue
		}
		lines := make([]string, 0, len(block)-timing-1)
		for _, line := range block[timing+1:] {
			lines = append(lines, cleanVTTText(line))
		}
		caption.Text = strings.Join(lines, "\n")
		track = append(track, caption)
	}
	return track
}

func isVTTMetaBlock(first string) bool {
	for _, head := range skippedVTTHead {
		if first == head || strings.HasPrefix(first, head+" ") || strings.HasPrefix(first, head+"\t") {
			return true
		}
	}
	return false
}

func cleanVTTText(line string) string {
	line = vttTagRe.ReplaceAllString(line, "")
	return vttEntityRepl.Replace(line)
}

func parseSRTBlocks(blocks [][]string) Track {
	var track Track
	for _, block := range blocks {
		// Index line is optional in practice; locate the timing line.
		timing := -1
		for i, line := range block {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 || timing > 1 {
			continue
		}
		caption, ok := parseTimingLine(block[timing])
		if !ok {
			continue
		}
		caption.Text = strings.Join(block[timing+1:], "\n")
		track = append(track, caption)
	}
	return track
}

// parseTimingLine reads "start --> end [settings]". An unreadable end time
// yields an open-ended caption rather than dropping the cue.
func parseTimingLine(line string) (Caption, bool) {
	left, right, ok := strings.Cut(line, "-->")
	if !ok {
		return Caption{}, false
	}
	start, err := parseTimestamp(left)
	if err != nil {
		return Caption{}, false
	}
	caption := Caption{
		Start:        FormatTimestamp(start),
		StartSeconds: start,
	}
	fields := strings.Fields(right)
	if len(fields) == 0 {
		caption.OpenEnded = true
		return caption, true
	}
	end, err := parseTimestamp(fields[0])
	if err != nil {
		caption.OpenEnded = true
		return caption, true
	}
	caption.End = FormatTimestamp(end)
	caption.EndSeconds = end
	return caption, true
}
