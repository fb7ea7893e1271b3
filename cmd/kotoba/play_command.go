package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"kotoba/internal/captions"
	"kotoba/internal/instance"
	"kotoba/internal/library"
	"kotoba/internal/logging"
	"kotoba/internal/session"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var from float64
	var speed float64
	var copyPrimary bool

	cmd := &cobra.Command{
		Use:   "play <video>",
		Short: "Show the video's captions in the terminal against a playback clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if speed <= 0 {
				return errors.New("--speed must be positive")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lock, err := instance.Acquire(cfg.LockPath())
			if err != nil {
				return err
			}
			defer func() { _ = lock.Release() }()

			sess, err := ctx.newSession()
			if err != nil {
				return err
			}
			src := library.Discover(args[0], cfg.Captions.PrimaryLanguage, cfg.Captions.SecondaryLanguage)
			set, err := sess.Open(cmd.Context(), src)
			if err != nil {
				return err
			}

			end := lastEnd(set, cfg.OpenEndedDuration())
			if from > end {
				return fmt.Errorf("--from %.1fs is past the last caption (%.1fs)", from, end)
			}
			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			runCtx, cancel := context.WithTimeout(runCtx, time.Duration((end-from)/speed*float64(time.Second))+cfg.PollInterval())
			defer cancel()

			display := newTerminalDisplay(cmd.OutOrStdout(), copyPrimary || cfg.Playback.CopyPrimary, ctx.log())
			clock := newPlaybackClock(from, speed, time.Now)
			watcher := session.NewWatcher(sess, clock, display, cfg.PollInterval(), ctx.log())
			if err := watcher.Run(runCtx); err != nil {
				return err
			}
			display.Clear()
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "Start position in seconds")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "Playback speed multiplier")
	cmd.Flags().BoolVar(&copyPrimary, "copy", false, "Copy each new primary caption to the clipboard")
	return cmd
}

// lastEnd returns the latest moment any caption is visible.
func lastEnd(set *captions.Set, openEnded time.Duration) float64 {
	var end float64
	for _, track := range []captions.Track{set.Primary, set.Secondary} {
		for _, c := range track {
			end = max(end, c.EffectiveEnd(openEnded))
		}
	}
	return end
}

// playbackClock is a PositionSource driven by wall time.
type playbackClock struct {
	from  float64
	speed float64
	now   func() time.Time
	start time.Time
}

func newPlaybackClock(from, speed float64, now func() time.Time) *playbackClock {
	return &playbackClock{from: from, speed: speed, now: now, start: now()}
}

func (c *playbackClock) Position(ctx context.Context) (float64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	return c.from + c.now().Sub(c.start).Seconds()*c.speed, true, nil
}

// terminalDisplay prints caption pairs, optionally copying the primary text
// to the clipboard for dictionary lookups.
type terminalDisplay struct {
	mu       sync.Mutex
	out      io.Writer
	color    bool
	copyText func(string) error
	logger   *slog.Logger
	lastCopy string
}

func newTerminalDisplay(out io.Writer, copyPrimary bool, logger *slog.Logger) *terminalDisplay {
	d := &terminalDisplay{out: out, color: shouldColorize(out), logger: logger}
	if copyPrimary {
		d.copyText = clipboard.WriteAll
	}
	return d
}

func (d *terminalDisplay) Show(active captions.Active) {
	d.mu.Lock()
	defer d.mu.Unlock()

	stamp := ""
	if active.Primary != nil {
		stamp = captions.FormatTimestamp(active.Primary.StartSeconds)
	} else if active.Secondary != nil {
		stamp = captions.FormatTimestamp(active.Secondary.StartSeconds)
	}
	primary := oneLine(active.PrimaryText())
	secondary := oneLine(active.SecondaryText())
	if d.color {
		fmt.Fprintf(d.out, "%s%s%s  %s%s%s\n", ansiDim, stamp, ansiReset, ansiBold, primary, ansiReset)
		if secondary != "" {
			fmt.Fprintf(d.out, "%14s%s%s%s\n", "", ansiDim, secondary, ansiReset)
		}
	} else {
		fmt.Fprintf(d.out, "%s  %s\n", stamp, primary)
		if secondary != "" {
			fmt.Fprintf(d.out, "%14s%s\n", "", secondary)
		}
	}

	if d.copyText != nil && primary != "" && primary != d.lastCopy {
		if err := d.copyText(active.PrimaryText()); err != nil {
			d.logger.Warn("copy caption to clipboard failed", logging.Args(logging.Error(err))...)
		}
		d.lastCopy = primary
	}
}

func (d *terminalDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
