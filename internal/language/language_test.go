package language

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ja", "ja"},
		{"JA", "ja"},
		{"jpn", "ja"},
		{"japanese", "ja"},
		{"Japanese", "ja"},
		{"zh", "zh"},
		{"zho", "zh"},
		{"chi", "zh"},
		{"chinese", "zh"},
		{"zh-Hant", "zh"},
		{"zh-TW", "zh"},
		{"zh_Hant", "zh"},
		{"en", "en"},
		{"", ""},
		{" ", ""},
		{"not a language", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToISO3(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ja", "jpn"},
		{"zh-Hant", "zho"},
		{"chinese", "zho"},
		{"", "und"},
		{"not a language", "und"},
	}
	for _, tt := range tests {
		if got := ToISO3(tt.input); got != tt.expected {
			t.Errorf("ToISO3(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("jpn"); got != "Japanese" {
		t.Fatalf("DisplayName(jpn) = %q", got)
	}
	if got := DisplayName("zh-TW"); got != "Chinese" {
		t.Fatalf("DisplayName(zh-TW) = %q", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Fatalf("DisplayName(\"\") = %q", got)
	}
	if got := DisplayName("xx"); got != "XX" {
		t.Fatalf("DisplayName(xx) = %q", got)
	}
}

func TestSidecarSuffixes(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"ja", []string{"ja", "jp", "jpn"}},
		{"japanese", []string{"ja", "jp", "jpn"}},
		{"zh", []string{"zh-Hant", "zh-TW", "zh"}},
		{"zh-Hans", []string{"zh-Hans", "zh-Hant", "zh-TW", "zh"}},
		{"zh-TW", []string{"zh-TW", "zh-Hant", "zh"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SidecarSuffixes(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("SidecarSuffixes(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"jpn", "ja", "Chinese", "zh-Hant", "bogus value", ""})
	want := []string{"ja", "zh"}
	if !slices.Equal(got, want) {
		t.Fatalf("NormalizeList = %v, want %v", got, want)
	}
}
