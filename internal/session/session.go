package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"kotoba/internal/captions"
	"kotoba/internal/config"
	"kotoba/internal/library"
	"kotoba/internal/logging"
)

// ErrNoCaptions is returned when no caption set is available.
var ErrNoCaptions = errors.New("no captions loaded")

// Options configures a Session.
type Options struct {
	Mode      captions.AlignMode
	OpenEnded time.Duration
	Logger    *slog.Logger
	Now       func() time.Time
}

// loaded pairs a caption set with the files it was read from. It is swapped
// as one value so readers never see a set with another load's sources.
type loaded struct {
	set        *captions.Set
	sources    library.Sources
	hasSources bool
}

// Session holds the current caption set.
type Session struct {
	current atomic.Pointer[loaded]
	opts    Options
	logger  *slog.Logger
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.OpenEnded <= 0 {
		opts.OpenEnded = captions.DefaultOpenEndedDuration
	}
	if opts.Mode == "" {
		opts.Mode = captions.AlignAlways
	}
	return &Session{opts: opts, logger: logging.NewComponentLogger(opts.Logger, "session")}
}

// NewFromConfig creates a session using the [captions] settings.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	mode, err := captions.ParseAlignMode(cfg.Captions.AlignMode)
	if err != nil {
		return nil, fmt.Errorf("captions.align_mode: %w", err)
	}
	return New(Options{Mode: mode, OpenEnded: cfg.OpenEndedDuration(), Logger: logger}), nil
}

// Open reads the caption files named by src and makes them current. A
// missing or unreadable file is logged and treated as an empty track.
func (s *Session) Open(ctx context.Context, src library.Sources) (*captions.Set, error) {
	if src.Empty() {
		return nil, fmt.Errorf("open %s: %w", src.VideoPath, ErrNoCaptions)
	}
	primary := s.readTrack(ctx, src.PrimaryPath, "primary")
	secondary := s.readTrack(ctx, src.SecondaryPath, "secondary")
	return s.load(ctx, primary, secondary, src, true), nil
}

// Load aligns already-parsed tracks and makes the result current.
func (s *Session) Load(ctx context.Context, primary, secondary captions.Track) *captions.Set {
	return s.load(ctx, primary, secondary, library.Sources{}, false)
}

func (s *Session) load(ctx context.Context, primary, secondary captions.Track, src library.Sources, hasSources bool) *captions.Set {
	set := captions.Load(primary, secondary, captions.LoadOptions{Mode: s.opts.Mode, OpenEnded: s.opts.OpenEnded, Now: s.opts.Now})
	s.current.Store(&loaded{set: set, sources: src, hasSources: hasSources})

	logger := logging.WithContext(logging.WithLoadID(ctx, set.ID), s.logger)
	logger.Info("captions loaded",
		logging.Int("primary", len(set.Primary)),
		logging.Int("secondary", len(set.Secondary)),
		logging.Bool("aligned", set.Aligned),
		logging.String("align_mode", string(s.opts.Mode)),
	)
	return set
}

func (s *Session) readTrack(ctx context.Context, path, role string) captions.Track {
	if path == "" {
		return nil
	}
	track, err := captions.ParseFile(path)
	if err != nil {
		hint := "check the caption file is readable VTT or SRT"
		if errors.Is(err, os.ErrNotExist) {
			hint = "place the caption file next to the video"
		}
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "caption file unreadable", "caption_read_failed",
			logging.String("track", role),
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, role+" captions hidden"),
		)
		return nil
	}
	return track
}

// Current returns the loaded set or ErrNoCaptions.
func (s *Session) Current() (*captions.Set, error) {
	cur := s.current.Load()
	if cur == nil {
		return nil, ErrNoCaptions
	}
	return cur.set, nil
}

// Sources returns the current set together with the files it was read from.
// ok is false when the set was built from already-parsed tracks; set is nil
// when nothing is loaded.
func (s *Session) Sources() (set *captions.Set, src library.Sources, ok bool) {
	cur := s.current.Load()
	if cur == nil {
		return nil, library.Sources{}, false
	}
	return cur.set, cur.sources, cur.hasSources
}

// Query returns the captions active at t seconds on the current set.
func (s *Session) Query(t float64) captions.Active {
	var set *captions.Set
	if cur := s.current.Load(); cur != nil {
		set = cur.set
	}
	return captions.NewTimeline(set, s.opts.OpenEnded).Query(t)
}

// Reset drops the current set, e.g. when the media changes.
func (s *Session) Reset() {
	s.current.Store(nil)
}
