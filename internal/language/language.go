package language

import (
	"strings"

	"golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "chi" vs "zho")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "japanese")
	// suffixes are file name suffixes seen on sidecar caption files, most
	// specific first.
	suffixes []string
}

var languages = []entry{
	{"ja", "jpn", "", "Japanese", []string{"japanese"}, []string{"ja", "jp", "jpn"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}, []string{"zh-Hant", "zh-TW", "zh"}},
	{"en", "eng", "", "English", []string{"english"}, []string{"en", "eng"}},
	{"ko", "kor", "", "Korean", []string{"korean"}, []string{"ko", "kor"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}, []string{"es", "spa"}},
	{"fr", "fra", "fre", "French", []string{"french"}, []string{"fr", "fra"}},
	{"de", "deu", "ger", "German", []string{"german"}, []string{"de", "deu"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	if tag, err := language.Parse(code); err == nil {
		base, _ := tag.Base()
		if e, ok := byCode2[base.String()]; ok {
			return e
		}
	}
	return nil
}

// Tag parses a language code into a BCP 47 tag. Words and ISO 639-2 codes
// are mapped first so "japanese" and "jpn" both resolve to "ja".
func Tag(code string) (language.Tag, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return language.Und, false
	}
	if e := lookup(code); e != nil && !strings.Contains(code, "-") && !strings.Contains(code, "_") {
		return language.Make(e.code2), true
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Parse returns the ISO 639-1 base language for code, or "" when the code
// is not recognized. "zh-Hant", "chi" and "Chinese" all return "zh".
func Parse(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	tag, ok := Tag(code)
	if !ok {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

// ToISO3 converts any recognized language code to ISO 639-2 (3-letter).
// Returns "und" for unrecognized input.
func ToISO3(code string) string {
	if e := lookup(code); e != nil {
		return e.code3
	}
	tag, ok := Tag(code)
	if !ok {
		return "und"
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "und"
	}
	return base.ISO3()
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// SidecarSuffixes lists file name suffixes to try for a caption track in
// the given language, in priority order. A configured tag more specific than
// its base language ("zh-Hans") is tried first.
func SidecarSuffixes(code string) []string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	add := func(values ...string) {
		for _, v := range values {
			key := strings.ToLower(v)
			if v == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}
	if tag, ok := Tag(trimmed); ok {
		if canonical := tag.String(); strings.Contains(canonical, "-") {
			add(canonical)
		}
	}
	if e := lookup(trimmed); e != nil {
		add(e.suffixes...)
		return out
	}
	add(trimmed)
	return out
}

// NormalizeList deduplicates and normalizes a list of language codes to ISO 639-1.
// Unrecognized entries are dropped.
func NormalizeList(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		mapped := Parse(code)
		if mapped == "" {
			continue
		}
		if _, ok := seen[mapped]; ok {
			continue
		}
		seen[mapped] = struct{}{}
		normalized = append(normalized, mapped)
	}
	return normalized
}
