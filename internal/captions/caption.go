package captions

import "time"

// Caption is one timed text unit.
type Caption struct {
	// Start and End are display strings; all timing math uses the seconds fields.
	Start        string  `json:"start" yaml:"start"`
	End          string  `json:"end" yaml:"end"`
	StartSeconds float64 `json:"start_seconds" yaml:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds" yaml:"end_seconds"`
	Text         string  `json:"text" yaml:"text"`
	// OpenEnded marks a caption whose source carried no end time.
	OpenEnded bool `json:"open_ended,omitempty" yaml:"open_ended,omitempty"`
}

// Duration returns EndSeconds - StartSeconds. Malformed captions yield a
// negative value.
func (c Caption) Duration() float64 {
	return c.EndSeconds - c.StartSeconds
}

// EffectiveEnd returns the second at which the caption stops showing. An
// open-ended caption that has not been resolved yet lasts openEnded past its
// start.
func (c Caption) EffectiveEnd(openEnded time.Duration) float64 {
	if c.OpenEnded && c.Duration() <= 0 {
		return c.StartSeconds + openEnded.Seconds()
	}
	return c.EndSeconds
}

// Track is an ordered caption sequence in source order.
type Track []Caption

// Clone returns an independent copy of the track. A nil track stays nil.
func (t Track) Clone() Track {
	if t == nil {
		return nil
	}
	out := make(Track, len(t))
	copy(out, t)
	return out
}

// ResolveOpenEnded returns a copy of the track in which every open-ended
// caption carries its effective end in EndSeconds and End. The OpenEnded flag
// is kept. A nil track stays nil.
func (t Track) ResolveOpenEnded(openEnded time.Duration) Track {
	out := t.Clone()
	for i, c := range out {
		if !c.OpenEnded || c.EndSeconds > c.StartSeconds {
			continue
		}
		out[i].EndSeconds = c.EffectiveEnd(openEnded)
		out[i].End = FormatTimestamp(out[i].EndSeconds)
	}
	return out
}

// Set is the immutable result of loading a primary and secondary track.
type Set struct {
	ID        string    `json:"id" yaml:"id"`
	Primary   Track     `json:"primary" yaml:"primary"`
	Secondary Track     `json:"secondary" yaml:"secondary"`
	Aligned   bool      `json:"aligned" yaml:"aligned"`
	LoadedAt  time.Time `json:"loaded_at" yaml:"loaded_at"`
}

// Empty reports whether neither track carries captions.
func (s *Set) Empty() bool {
	return s == nil || (len(s.Primary) == 0 && len(s.Secondary) == 0)
}
