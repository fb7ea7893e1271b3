package captions

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AlignMode controls when Load re-keys the secondary track.
type AlignMode string

const (
	// AlignAlways aligns whenever both tracks are present.
	AlignAlways AlignMode = "always"
	// AlignOnMismatch skips alignment when both tracks have the same count.
	AlignOnMismatch AlignMode = "on_mismatch"
)

// ParseAlignMode normalizes a configured mode; empty means AlignAlways.
func ParseAlignMode(value string) (AlignMode, error) {
	switch AlignMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", AlignAlways:
		return AlignAlways, nil
	case AlignOnMismatch:
		return AlignOnMismatch, nil
	default:
		return "", fmt.Errorf("unknown align mode %q", value)
	}
}

// LoadOptions tunes Load.
type LoadOptions struct {
	Mode AlignMode
	// OpenEnded is how long captions without an end time stay active. A
	// non-positive value uses DefaultOpenEndedDuration.
	OpenEnded time.Duration
	// Now stamps Set.LoadedAt; nil uses time.Now.
	Now func() time.Time
}

// Load builds a fresh Set from raw tracks. Open-ended captions on both tracks
// get their effective end before alignment. The returned tracks share no
// backing storage with the inputs.
func Load(primary, secondary Track, opts LoadOptions) *Set {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	openEnded := opts.OpenEnded
	if openEnded <= 0 {
		openEnded = DefaultOpenEndedDuration
	}
	primary = primary.ResolveOpenEnded(openEnded)
	secondary = secondary.ResolveOpenEnded(openEnded)
	set := &Set{
		ID:       uuid.NewString(),
		Primary:  primary,
		LoadedAt: now().UTC(),
	}

	skip := opts.Mode == AlignOnMismatch && len(primary) == len(secondary)
	if len(primary) == 0 || len(secondary) == 0 || skip {
		set.Secondary = secondary
		return set
	}
	set.Secondary = Align(primary, secondary)
	set.Aligned = true
	return set
}
