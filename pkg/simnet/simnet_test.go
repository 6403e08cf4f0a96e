package simnet

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo_DisabledIsFree(t *testing.T) {
	inj := New(false, time.Second, time.Second, 1)

	start := time.Now()
	if err := inj.Do(context.Background()); err != nil {
		t.Fatalf("disabled injector must never fail: %v", err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatalf("disabled injector must not delay")
	}
}

func TestDo_ZeroRateNeverFails(t *testing.T) {
	inj := New(true, 0, 0, 0)
	for i := 0; i < 200; i++ {
		if err := inj.Do(context.Background()); err != nil {
			t.Fatalf("call %d failed with rate 0: %v", i, err)
		}
	}
}

func TestDo_HighRateFails(t *testing.T) {
	inj := New(true, 0, 0, 0.999)
	failed := false
	for i := 0; i < 200; i++ {
		if err := inj.Do(context.Background()); err != nil {
			if !errors.Is(err, ErrInjected) {
				t.Fatalf("unexpected error type: %v", err)
			}
			failed = true
			break
		}
	}
	if !failed {
		t.Fatalf("expected at least one injected failure at rate 0.999")
	}
}

func TestDo_ContextCancelCutsLatency(t *testing.T) {
	inj := New(true, 5*time.Second, 5*time.Second, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := inj.Do(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancellation must cut the injected delay short")
	}
}

func TestUpdate_DisablesInjection(t *testing.T) {
	inj := New(true, 0, 0, 0.999)
	inj.Update(false, 0, 0, 0.999)

	for i := 0; i < 100; i++ {
		if err := inj.Do(context.Background()); err != nil {
			t.Fatalf("updated-off injector must not fail: %v", err)
		}
	}
}
