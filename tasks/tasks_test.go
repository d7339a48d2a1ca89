package tasks

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func drainAll(t *testing.T, q *Queue) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for q.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("tasks still pending: %d", q.Pending())
		}
		q.Drain()
		time.Sleep(time.Millisecond)
	}
}

func TestCompletionOnlyOnDrain(t *testing.T) {
	q := NewQueue()
	finished := make(chan struct{})
	called := false

	q.Go("a", func() (any, error) {
		defer close(finished)
		return 7, nil
	}, func(v any, err error) {
		if err != nil || v.(int) != 7 {
			t.Errorf("done(%v, %v), want (7, nil)", v, err)
		}
		called = true
	})

	<-finished
	time.Sleep(10 * time.Millisecond)
	if called {
		t.Fatal("callback ran before Drain")
	}
	if q.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", q.Pending())
	}
	drainAll(t, q)
	if !called {
		t.Fatal("callback never ran")
	}
}

func TestSameKeyLoadsOnce(t *testing.T) {
	q := NewQueue()
	var loads atomic.Int32
	release := make(chan struct{})
	load := func() (any, error) {
		loads.Add(1)
		<-release
		return "img", nil
	}

	got := 0
	for i := 0; i < 3; i++ {
		q.Go("images/a.png", load, func(v any, err error) {
			if v.(string) == "img" {
				got++
			}
		})
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	drainAll(t, q)

	if got != 3 {
		t.Fatalf("callbacks = %d, want 3", got)
	}
	if n := loads.Load(); n != 1 {
		t.Fatalf("loads = %d, want 1", n)
	}
}

func TestErrorsAndPanicsReachCallback(t *testing.T) {
	q := NewQueue()
	boom := errors.New("boom")
	var errs []error

	q.Go("err", func() (any, error) { return nil, boom }, func(_ any, err error) { errs = append(errs, err) })
	q.Go("panic", func() (any, error) { panic("bad file") }, func(_ any, err error) { errs = append(errs, err) })
	drainAll(t, q)

	if len(errs) != 2 {
		t.Fatalf("got %d callbacks, want 2", len(errs))
	}
	for _, err := range errs {
		if err == nil {
			t.Fatal("expected an error")
		}
	}
}
