package captions

import "math"

// Overlap returns the seconds during which both captions are active, or zero
// when they are disjoint.
func Overlap(a, b Caption) float64 {
	overlap := math.Min(a.EndSeconds, b.EndSeconds) - math.Max(a.StartSeconds, b.StartSeconds)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// intersects applies the inclusive-bounds candidate filter.
func intersects(p, s Caption) bool {
	return s.StartSeconds <= p.EndSeconds && s.EndSeconds >= p.StartSeconds
}

// Align re-keys secondary onto primary's timeline. When either track is
// empty, secondary is returned unchanged. Otherwise secondary captions are
// split at sentence boundaries and every primary caption receives the text of
// the split caption with the largest positive overlap. Ties go to the
// earliest caption in source order; primaries with no positive overlap get an
// empty text. The result always has len(primary) entries and never aliases
// either input. Open-ended captions that are still unresolved take
// DefaultOpenEndedDuration; Load resolves them with the configured duration
// first.
func Align(primary, secondary Track) Track {
	if len(primary) == 0 || len(secondary) == 0 {
		return secondary
	}

	primary = primary.ResolveOpenEnded(DefaultOpenEndedDuration)
	candidates := SplitTrack(secondary.ResolveOpenEnded(DefaultOpenEndedDuration))
	aligned := make(Track, 0, len(primary))
	for _, p := range primary {
		text := ""
		if best, ok := bestOverlap(p, candidates); ok {
			text = best.Text
		}
		aligned = append(aligned, Caption{
			Start:        p.Start,
			End:          p.End,
			StartSeconds: p.StartSeconds,
			EndSeconds:   p.EndSeconds,
			Text:         text,
			OpenEnded:    p.OpenEnded,
		})
	}
	return aligned
}

// bestOverlap picks the candidate with the strictly greatest overlap. The
// running maximum starts at zero, so captions that merely touch p never win.
func bestOverlap(p Caption, candidates Track) (Caption, bool) {
	var best Caption
	found := false
	maxOverlap := 0.0
	for _, s := range candidates {
		if !intersects(p, s) {
			continue
		}
		if overlap := Overlap(p, s); overlap > maxOverlap {
			maxOverlap = overlap
			best = s
			found = true
		}
	}
	return best, found
}
