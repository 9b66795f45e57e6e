// Package core provides the transport dispatch framework for hermes_urls.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotAvailable marks a transport that cannot deliver right now (for
// example, no running instance is listening). The dispatcher falls through
// to the next transport without treating it as a delivery failure.
var ErrNotAvailable = errors.New("transport not available")

// Transport defines one way of getting a URL payload to the editor.
type Transport interface {
	// Name returns the transport's identifier, used for reporting.
	Name() string
	// Deliver hands the payload to the editor through this transport.
	Deliver(ctx context.Context, payload string) error
}

// Result captures one delivery attempt.
type Result struct {
	Transport string    `json:"transport"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error"`
	StartedAt time.Time `json:"started_utc"`
	EndedAt   time.Time `json:"ended_utc"`
}

// Clock provides time functions for testability.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Dispatcher tries an ordered list of transports until one delivers.
type Dispatcher struct {
	transports []Transport
	timeout    time.Duration
	clock      Clock
}

// NewDispatcher creates a dispatcher with a per-transport timeout.
func NewDispatcher(timeout time.Duration, clock Clock) *Dispatcher {
	if clock == nil {
		clock = SystemClock{}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Dispatcher{
		transports: make([]Transport, 0),
		timeout:    timeout,
		clock:      clock,
	}
}

// Register appends a transport to the delivery order.
func (d *Dispatcher) Register(t Transport) {
	d.transports = append(d.transports, t)
}

// Dispatch attempts delivery through each transport in order and stops at
// the first success. It returns the name of the transport that delivered,
// along with results for every attempt made.
func (d *Dispatcher) Dispatch(ctx context.Context, payload string) (string, []Result, error) {
	if len(d.transports) == 0 {
		return "", nil, fmt.Errorf("no transports registered")
	}

	var results []Result
	for _, transport := range d.transports {
		result := d.attempt(ctx, transport, payload)
		results = append(results, result)

		if result.OK {
			log.Debug().Str("transport", transport.Name()).Msg("delivered")
			return transport.Name(), results, nil
		}
	}

	return "", results, fmt.Errorf("no transport delivered payload: %s", results[len(results)-1].Error)
}

// attempt runs a single transport with timeout and error handling.
func (d *Dispatcher) attempt(parentCtx context.Context, transport Transport, payload string) Result {
	startTime := d.clock.Now().UTC()

	ctx, cancel := context.WithTimeout(parentCtx, d.timeout)
	defer cancel()

	// Transports backed by blocking syscalls cannot watch ctx themselves, so
	// the deadline is enforced here. A delivery that outruns it may still
	// complete in the background; the attempt is recorded as failed either way.
	done := make(chan error, 1)
	go func() {
		done <- transport.Deliver(ctx, payload)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = fmt.Errorf("delivery timed out after %s: %w", d.timeout, ctx.Err())
	}
	endTime := d.clock.Now().UTC()

	if err != nil {
		if errors.Is(err, ErrNotAvailable) {
			log.Debug().Str("transport", transport.Name()).Err(err).Msg("transport not available, falling through")
		} else {
			log.Warn().Str("transport", transport.Name()).Err(err).Msg("transport failed, falling through")
		}
		return Result{
			Transport: transport.Name(),
			OK:        false,
			Error:     err.Error(),
			StartedAt: startTime,
			EndedAt:   endTime,
		}
	}

	return Result{
		Transport: transport.Name(),
		OK:        true,
		Error:     "",
		StartedAt: startTime,
		EndedAt:   endTime,
	}
}
