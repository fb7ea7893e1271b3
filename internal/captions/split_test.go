package captions

import (
	"math"
	"reflect"
	"testing"
)

func TestSplitNoBoundaryReturnsCaptionUnchanged(t *testing.T) {
	c := Caption{Start: "00:00:01.000", End: "00:00:03.000", StartSeconds: 1, EndSeconds: 3, Text: "こんにちは"}
	parts := Split(c)
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if !reflect.DeepEqual(parts[0], c) {
		t.Fatalf("part = %#v, want %#v", parts[0], c)
	}
}

func TestSplitSingleSentenceWithTrailingStop(t *testing.T) {
	c := Caption{StartSeconds: 0, EndSeconds: 2, Text: "你好。"}
	parts := Split(c)
	if len(parts) != 1 || parts[0].Text != "你好。" {
		t.Fatalf("expected unchanged caption, got %#v", parts)
	}
}

func TestSplitDividesDurationEvenly(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTexts []string
	}{
		{name: "full-width stop", text: "A。B", wantTexts: []string{"A", "B"}},
		{name: "newline", text: "第一行\n第二行", wantTexts: []string{"第一行", "第二行"}},
		{name: "ascii period space", text: "One. Two. Three", wantTexts: []string{"One", "Two", "Three"}},
		{name: "empty parts dropped", text: "甲。。 \n乙。", wantTexts: []string{"甲", "乙"}},
		{name: "parts trimmed", text: "  左 。 右  ", wantTexts: []string{"左", "右"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Caption{Start: "00:00:10.000", End: "00:00:16.000", StartSeconds: 10, EndSeconds: 16, Text: tc.text}
			parts := Split(c)
			if len(parts) != len(tc.wantTexts) {
				t.Fatalf("got %d parts, want %d: %#v", len(parts), len(tc.wantTexts), parts)
			}
			step := 6.0 / float64(len(parts))
			var total float64
			for i, p := range parts {
				if p.Text != tc.wantTexts[i] {
					t.Errorf("part %d text = %q, want %q", i, p.Text, tc.wantTexts[i])
				}
				if math.Abs(p.StartSeconds-(10+float64(i)*step)) > 1e-9 {
					t.Errorf("part %d start = %f", i, p.StartSeconds)
				}
				if p.Start != c.Start || p.End != c.End {
					t.Errorf("part %d display times = %q/%q, want original", i, p.Start, p.End)
				}
				total += p.Duration()
			}
			if math.Abs(total-c.Duration()) > 1e-9 {
				t.Errorf("durations sum to %f, want %f", total, c.Duration())
			}
		})
	}
}

func TestSplitTrackPreservesOrder(t *testing.T) {
	track := Track{
		{StartSeconds: 0, EndSeconds: 2, Text: "一。二"},
		{StartSeconds: 2, EndSeconds: 4, Text: "三"},
	}
	got := SplitTrack(track)
	want := []string{"一", "二", "三"}
	if len(got) != len(want) {
		t.Fatalf("got %d captions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Errorf("caption %d = %q, want %q", i, got[i].Text, want[i])
		}
	}
}

func TestSplitOpenEndedRunsForward(t *testing.T) {
	c := Caption{Start: "00:00:10.000", StartSeconds: 10, Text: "A。B", OpenEnded: true}
	parts := Split(c)
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(parts))
	}
	want := [][2]float64{{10, 12.5}, {12.5, 15}}
	for i, p := range parts {
		if p.StartSeconds != want[i][0] || p.EndSeconds != want[i][1] {
			t.Errorf("part %d = [%v,%v], want %v", i, p.StartSeconds, p.EndSeconds, want[i])
		}
	}
}
