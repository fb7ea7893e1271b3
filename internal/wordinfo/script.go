package wordinfo

import "unicode"

// Script is the writing system a word is written in.
type Script string

const (
	ScriptNone     Script = ""
	ScriptKanji    Script = "kanji"
	ScriptHiragana Script = "hiragana"
	ScriptKatakana Script = "katakana"
	ScriptLatin    Script = "latin"
	ScriptMixed    Script = "mixed"
	ScriptOther    Script = "other"
)

// ClassifyScript reports the single script used by s, or ScriptMixed. Digits,
// punctuation, spaces and the prolonged sound mark are ignored.
func ClassifyScript(s string) Script {
	found := ScriptNone
	for _, r := range s {
		var current Script
		switch {
		case r == 'ー' || unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r) || unicode.IsSymbol(r):
			continue
		case unicode.Is(unicode.Han, r) || r == '々':
			current = ScriptKanji
		case unicode.Is(unicode.Hiragana, r):
			current = ScriptHiragana
		case unicode.Is(unicode.Katakana, r):
			current = ScriptKatakana
		case unicode.Is(unicode.Latin, r):
			current = ScriptLatin
		default:
			current = ScriptOther
		}
		if found == ScriptNone {
			found = current
			continue
		}
		if found != current {
			return ScriptMixed
		}
	}
	return found
}
