// Package simnet simulates an unreliable network in front of the storage
// collaborators: every wrapped call waits a random latency and a small
// fraction of calls fail with a retryable error. It exists so the builder
// and submission flows can be exercised against realistic transport
// conditions without a real flaky network.
package simnet

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrInjected marks a failure produced by the injector rather than a real
// collaborator. Callers treat it as transient and retryable.
var ErrInjected = errors.New("simnet: injected transient failure")

type Injector struct {
	mu          sync.Mutex
	enabled     bool
	minLatency  time.Duration
	maxLatency  time.Duration
	failureRate float64
	rng         *rand.Rand
}

func New(enabled bool, minLatency, maxLatency time.Duration, failureRate float64) *Injector {
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	return &Injector{
		enabled:     enabled,
		minLatency:  minLatency,
		maxLatency:  maxLatency,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Update swaps the tunables at runtime; the config watcher calls this on
// hot reload.
func (i *Injector) Update(enabled bool, minLatency, maxLatency time.Duration, failureRate float64) {
	if maxLatency < minLatency {
		maxLatency = minLatency
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.enabled = enabled
	i.minLatency = minLatency
	i.maxLatency = maxLatency
	i.failureRate = failureRate
}

// Do waits the injected latency, honoring ctx cancellation, then rolls for
// failure. A nil return means the wrapped call may proceed.
func (i *Injector) Do(ctx context.Context) error {
	i.mu.Lock()
	enabled := i.enabled
	minLatency := i.minLatency
	maxLatency := i.maxLatency
	failureRate := i.failureRate
	var delay time.Duration
	var failed bool
	if enabled {
		delay = minLatency
		if span := maxLatency - minLatency; span > 0 {
			delay += time.Duration(i.rng.Int63n(int64(span)))
		}
		failed = i.rng.Float64() < failureRate
	}
	i.mu.Unlock()

	if !enabled {
		return nil
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if failed {
		return ErrInjected
	}
	return nil
}
