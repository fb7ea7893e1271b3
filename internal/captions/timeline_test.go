package captions

import (
	"testing"
	"time"
)

func TestFindBoundaryInclusion(t *testing.T) {
	track := Track{{StartSeconds: 5, EndSeconds: 8, Text: "x"}}
	tests := []struct {
		at   float64
		want bool
	}{
		{5.0, true},
		{8.0, true},
		{6.5, true},
		{4.999, false},
		{8.001, false},
	}
	for _, tc := range tests {
		if _, ok := Find(track, tc.at, DefaultOpenEndedDuration); ok != tc.want {
			t.Errorf("Find(%v) found = %v, want %v", tc.at, ok, tc.want)
		}
	}
}

func TestFindGapReturnsNothing(t *testing.T) {
	track := Track{
		{StartSeconds: 0, EndSeconds: 2, Text: "a"},
		{StartSeconds: 4, EndSeconds: 6, Text: "b"},
	}
	if c, ok := Find(track, 3, DefaultOpenEndedDuration); ok {
		t.Fatalf("expected no caption in gap, got %#v", c)
	}
	if _, ok := Find(track, -1, DefaultOpenEndedDuration); ok {
		t.Fatal("expected no caption before first")
	}
	if _, ok := Find(track, 100, DefaultOpenEndedDuration); ok {
		t.Fatal("expected no caption after last")
	}
}

func TestFindFirstMatchWinsOnOverlap(t *testing.T) {
	track := Track{
		{StartSeconds: 0, EndSeconds: 5, Text: "first"},
		{StartSeconds: 2, EndSeconds: 6, Text: "second"},
	}
	c, ok := Find(track, 3, DefaultOpenEndedDuration)
	if !ok || c.Text != "first" {
		t.Fatalf("got %#v, want first", c)
	}
}

func TestFindOpenEndedUsesDefaultDuration(t *testing.T) {
	track := Track{{StartSeconds: 10, Text: "open", OpenEnded: true}}
	if _, ok := Find(track, 15, DefaultOpenEndedDuration); !ok {
		t.Fatal("expected open-ended caption active at start+5s")
	}
	if _, ok := Find(track, 15.01, DefaultOpenEndedDuration); ok {
		t.Fatal("expected open-ended caption inactive after start+5s")
	}
	if _, ok := Find(track, 11.5, 1*time.Second); ok {
		t.Fatal("expected configured duration to shorten the window")
	}
}

func TestTimelineQueryPerTrack(t *testing.T) {
	set := &Set{
		Primary:   Track{{StartSeconds: 0, EndSeconds: 5, Text: "ある"}, {StartSeconds: 5, EndSeconds: 10, Text: "いい"}},
		Secondary: Track{{StartSeconds: 0, EndSeconds: 5, Text: "有"}, {StartSeconds: 5, EndSeconds: 10, Text: ""}},
	}
	tl := NewTimeline(set, 0)

	active := tl.Query(2)
	if active.PrimaryText() != "ある" || active.SecondaryText() != "有" {
		t.Fatalf("at 2s got %q/%q", active.PrimaryText(), active.SecondaryText())
	}
	active = tl.Query(20)
	if active.Primary != nil || active.Secondary != nil {
		t.Fatalf("expected nothing at 20s, got %#v", active)
	}
	if got := NewTimeline(nil, 0).Query(1); got.Primary != nil || got.Secondary != nil {
		t.Fatalf("nil set should produce empty result, got %#v", got)
	}
}

func TestActiveEqual(t *testing.T) {
	a := Active{Primary: &Caption{Text: "x"}}
	b := Active{Primary: &Caption{Text: "x", StartSeconds: 3}}
	if !a.Equal(b) {
		t.Fatal("expected equal when texts match")
	}
	if a.Equal(Active{}) {
		t.Fatal("expected unequal when one side is empty")
	}
	if !(Active{Secondary: &Caption{}}).Equal(Active{Secondary: &Caption{}}) {
		t.Fatal("expected empty-text secondaries to compare equal")
	}
	if (Active{Secondary: &Caption{}}).Equal(Active{}) {
		t.Fatal("expected empty-text secondary to differ from no secondary")
	}
}
