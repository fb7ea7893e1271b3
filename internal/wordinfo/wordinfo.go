// Package wordinfo produces the per-word records shown in the dictionary
// panel when a learner selects text from a caption.
//
// A morphological analyzer can be plugged in through the Analyzer
// interface. Without one, or when it fails, FallbackAnalyzer returns the
// normalized surface form with part of speech "未知".
package wordinfo

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"kotoba/internal/logging"
)

// UnknownPOS is reported when no analyzer could classify the word.
const UnknownPOS = "未知"

// Record describes one analyzed word.
type Record struct {
	Surface       string `json:"surface" yaml:"surface"`
	Lemma         string `json:"lemma" yaml:"lemma"`
	POS           string `json:"pos" yaml:"pos"`
	Pronunciation string `json:"pronunciation" yaml:"pronunciation"`
	Script        Script `json:"script" yaml:"script"`
}

// Analyzer turns a selected word into a Record.
type Analyzer interface {
	Analyze(ctx context.Context, word string) (Record, error)
}

// FallbackAnalyzer echoes the normalized word back.
type FallbackAnalyzer struct{}

// Analyze implements Analyzer.
func (FallbackAnalyzer) Analyze(_ context.Context, word string) (Record, error) {
	surface := Normalize(word)
	return Record{
		Surface:       surface,
		Lemma:         surface,
		POS:           UnknownPOS,
		Pronunciation: surface,
		Script:        ClassifyScript(surface),
	}, nil
}

// Normalize applies NFKC and width folding so half-width katakana become
// full-width and full-width Latin becomes ASCII. Surrounding space is trimmed.
func Normalize(word string) string {
	return strings.TrimSpace(width.Fold.String(norm.NFKC.String(word)))
}

// Service runs the configured analyzer and degrades to the fallback.
type Service struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewService wraps analyzer. A nil analyzer means FallbackAnalyzer.
func NewService(analyzer Analyzer, logger *slog.Logger) *Service {
	if analyzer == nil {
		analyzer = FallbackAnalyzer{}
	}
	return &Service{analyzer: analyzer, logger: logging.NewComponentLogger(logger, "wordinfo")}
}

// Lookup analyzes word. It never fails: analyzer errors and empty results
// produce the fallback record.
func (s *Service) Lookup(ctx context.Context, word string) Record {
	fallback, _ := FallbackAnalyzer{}.Analyze(ctx, word)
	if fallback.Surface == "" {
		return fallback
	}
	record, err := s.analyzer.Analyze(ctx, fallback.Surface)
	if err != nil {
		logging.WarnWithContext(s.logger, "word analysis failed", "word_analysis_failed",
			logging.String("word", fallback.Surface),
			logging.Error(err),
			logging.String(logging.FieldImpact, "dictionary panel shows the raw word"),
		)
		return fallback
	}
	if record.Surface == "" {
		return fallback
	}
	if record.Lemma == "" {
		record.Lemma = record.Surface
	}
	if record.POS == "" {
		record.POS = UnknownPOS
	}
	if record.Script == "" {
		record.Script = ClassifyScript(record.Surface)
	}
	return record
}
