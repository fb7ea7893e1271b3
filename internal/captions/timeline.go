package captions

import "time"

// DefaultOpenEndedDuration is how long an open-ended caption stays active.
const DefaultOpenEndedDuration = 5 * time.Second

// Find returns the first caption in stored order whose span contains t
// (bounds inclusive). Unresolved open-ended captions last openEnded past
// their start.
func Find(track Track, t float64, openEnded time.Duration) (Caption, bool) {
	for _, c := range track {
		if c.StartSeconds <= t && t <= c.EffectiveEnd(openEnded) {
			return c, true
		}
	}
	return Caption{}, false
}

// Active holds the captions showing on each track at one instant.
type Active struct {
	Primary   *Caption `json:"primary" yaml:"primary"`
	Secondary *Caption `json:"secondary" yaml:"secondary"`
}

// Equal compares the displayed text on both tracks.
func (a Active) Equal(b Active) bool {
	return captionText(a.Primary) == captionText(b.Primary) &&
		captionText(a.Secondary) == captionText(b.Secondary) &&
		(a.Primary == nil) == (b.Primary == nil) &&
		(a.Secondary == nil) == (b.Secondary == nil)
}

// PrimaryText returns the primary text or "".
func (a Active) PrimaryText() string { return captionText(a.Primary) }

// SecondaryText returns the secondary text or "".
func (a Active) SecondaryText() string { return captionText(a.Secondary) }

func captionText(c *Caption) string {
	if c == nil {
		return ""
	}
	return c.Text
}

// Timeline answers active-caption queries against a loaded Set.
type Timeline struct {
	set       *Set
	openEnded time.Duration
}

// NewTimeline binds a Set for querying. A non-positive openEnded falls back
// to DefaultOpenEndedDuration.
func NewTimeline(set *Set, openEnded time.Duration) Timeline {
	if openEnded <= 0 {
		openEnded = DefaultOpenEndedDuration
	}
	return Timeline{set: set, openEnded: openEnded}
}

// Query returns the active caption on each track at t seconds. Out of range
// times simply produce nil entries.
func (tl Timeline) Query(t float64) Active {
	var active Active
	if tl.set == nil {
		return active
	}
	if c, ok := Find(tl.set.Primary, t, tl.openEnded); ok {
		active.Primary = &c
	}
	if c, ok := Find(tl.set.Secondary, t, tl.openEnded); ok {
		active.Secondary = &c
	}
	return active
}
