package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoop_RunsInOrderOnOneGoroutine(t *testing.T) {
	l := NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var got []int
	finished := make(chan struct{})
	for i := 0; i < 5; i++ {
		l.Post(func() { got = append(got, i) })
	}
	l.Post(func() { close(finished) })

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not drain")
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestTimedPenalty(t *testing.T) {
	s := newFakeSurface()
	p := &TimedPenalty{Surface: s, Duration: time.Millisecond}

	p.Show(3)
	if s.penalty != "3 ATTEMPTS REMAIN" {
		t.Fatalf("penalty = %q", s.penalty)
	}
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	p.Hide()
	if s.penalty != "" {
		t.Fatal("Hide did not clear penalty")
	}

	p.Show(0)
	if s.penalty != "YOU LOST" {
		t.Fatalf("penalty = %q", s.penalty)
	}

	long := &TimedPenalty{Surface: s, Duration: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := long.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait on cancelled ctx: %v", err)
	}
}
