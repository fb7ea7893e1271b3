package captions

import "strings"

const sentenceStop = "。"

// sentenceNormalizer folds newlines and ". " sequences into the full-width stop.
var sentenceNormalizer = strings.NewReplacer("\n", sentenceStop, ". ", sentenceStop)

// hasSentenceBoundary reports whether text carries any split candidate.
func hasSentenceBoundary(text string) bool {
	return strings.Contains(text, "\n") ||
		strings.Contains(text, sentenceStop) ||
		strings.Contains(text, ". ")
}

// Split breaks a multi-sentence caption into evenly timed parts. Captions
// with fewer than two non-empty sentences come back unchanged. Parts keep the
// original display timestamps; only the seconds fields are subdivided. An
// unresolved open-ended caption is divided over DefaultOpenEndedDuration.
func Split(c Caption) []Caption {
	if !hasSentenceBoundary(c.Text) {
		return []Caption{c}
	}
	raw := strings.Split(sentenceNormalizer.Replace(c.Text), sentenceStop)
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) < 2 {
		return []Caption{c}
	}

	partDuration := (c.EffectiveEnd(DefaultOpenEndedDuration) - c.StartSeconds) / float64(len(parts))
	out := make([]Caption, 0, len(parts))
	for i, part := range parts {
		start := c.StartSeconds + float64(i)*partDuration
		out = append(out, Caption{
			Start:        c.Start,
			End:          c.End,
			StartSeconds: start,
			EndSeconds:   start + partDuration,
			Text:         part,
			OpenEnded:    c.OpenEnded,
		})
	}
	return out
}

// SplitTrack applies Split to every caption, preserving order.
func SplitTrack(track Track) Track {
	out := make(Track, 0, len(track))
	for _, c := range track {
		out = append(out, Split(c)...)
	}
	return out
}
