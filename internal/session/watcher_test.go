package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"kotoba/internal/captions"
)

type scriptedSource struct {
	positions []float64
	idx       int
	err       error
}

func (s *scriptedSource) Position(context.Context) (float64, bool, error) {
	if s.err != nil {
		return 0, false, s.err
	}
	if s.idx >= len(s.positions) {
		return 0, false, nil
	}
	pos := s.positions[s.idx]
	s.idx++
	return pos, true, nil
}

type recordingDisplay struct {
	events []string
}

func (d *recordingDisplay) Show(active captions.Active) {
	d.events = append(d.events, active.PrimaryText()+"|"+active.SecondaryText())
}

func (d *recordingDisplay) Clear() {
	d.events = append(d.events, "clear")
}

func loadedSession() *Session {
	s := New(Options{})
	s.Load(context.Background(),
		captions.Track{
			{StartSeconds: 0, EndSeconds: 2, Text: "ある"},
			{StartSeconds: 2, EndSeconds: 4, Text: "いい"},
		},
		captions.Track{{StartSeconds: 0.5, EndSeconds: 3.5, Text: "A。B"}},
	)
	return s
}

func TestWatcherPushesOnlyChanges(t *testing.T) {
	source := &scriptedSource{positions: []float64{0.5, 1.0, 1.5, 3.0, 3.1, 4.5, 5.0, 1.0}}
	display := &recordingDisplay{}
	w := NewWatcher(loadedSession(), source, display, time.Millisecond, nil)

	for range source.positions {
		w.poll(context.Background())
	}

	want := []string{"ある|A", "いい|B", "clear", "ある|A"}
	if len(display.events) != len(want) {
		t.Fatalf("events = %v, want %v", display.events, want)
	}
	for i := range want {
		if display.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", display.events, want)
		}
	}
}

func TestWatcherIgnoresPositionErrors(t *testing.T) {
	display := &recordingDisplay{}
	w := NewWatcher(loadedSession(), &scriptedSource{err: errors.New("player gone")}, display, time.Millisecond, nil)
	w.poll(context.Background())
	if len(display.events) != 0 {
		t.Fatalf("expected no display updates, got %v", display.events)
	}
}

func TestWatcherRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	source := &scriptedSource{positions: []float64{1}}
	display := &recordingDisplay{}
	w := NewWatcher(loadedSession(), source, display, time.Millisecond, nil)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	if len(display.events) != 1 || display.events[0] != "ある|A" {
		t.Fatalf("unexpected events: %v", display.events)
	}
}
