package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kotoba/internal/captions"
	"kotoba/internal/logging"
)

// PositionSource reports the playback position in seconds. ok is false when
// nothing is playing.
type PositionSource interface {
	Position(ctx context.Context) (seconds float64, ok bool, err error)
}

// Display renders the active caption pair.
type Display interface {
	Show(active captions.Active)
	Clear()
}

// Watcher polls a PositionSource and updates a Display when the active
// captions change.
type Watcher struct {
	session  *Session
	source   PositionSource
	display  Display
	interval time.Duration
	logger   *slog.Logger

	last  captions.Active
	shown bool
}

// NewWatcher creates a watcher polling every interval.
func NewWatcher(s *Session, source PositionSource, display Display, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Watcher{
		session:  s,
		source:   source,
		display:  display,
		interval: interval,
		logger:   logging.NewComponentLogger(logger, "watcher"),
	}
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	pos, ok, err := w.source.Position(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.logger.Warn("read playback position failed", logging.Error(err))
		}
		return
	}
	if !ok {
		return
	}
	w.update(pos, w.session.Query(pos))
}

func (w *Watcher) update(pos float64, active captions.Active) {
	if active.Primary == nil && active.Secondary == nil {
		if w.shown {
			w.display.Clear()
			w.shown = false
			w.last = captions.Active{}
		}
		return
	}
	if w.shown && active.Equal(w.last) {
		return
	}
	w.display.Show(active)
	w.last = active
	w.shown = true
	w.logger.Debug("caption changed",
		logging.Float64("position", pos),
		logging.String("primary", active.PrimaryText()),
		logging.String("secondary", active.SecondaryText()),
	)
}
