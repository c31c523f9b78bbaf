package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mappulator-service/internal/platform/obs"
	"mappulator-service/internal/ports"
	"sync"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
)

// Activator runs the permission-gated location fetch once per process.
//
// Sequence: request permission, read the current position, refresh every
// distance and replace the displayed list. A denied permission or a failed
// fix leaves the store at its initial, distance-less state. There is no retry.
type Activator struct {
	provider ports.LocationProvider
	store    *LocationStore

	once sync.Once
	done chan struct{}
	err  error
}

func NewActivator(provider ports.LocationProvider, store *LocationStore) *Activator {
	return &Activator{
		provider: provider,
		store:    store,
		done:     make(chan struct{}),
	}
}

// Activate performs the fetch on first call and returns its outcome on every
// call. Callers may ignore the error: failures are already absorbed.
func (a *Activator) Activate(ctx context.Context) error {
	a.once.Do(func() {
		defer close(a.done)
		a.err = a.run(ctx)
		if a.err != nil {
			log.Printf("activation skipped: %v", a.err)
		}
	})
	<-a.done
	return a.err
}

// Done is closed once activation has finished, whatever its outcome.
func (a *Activator) Done() <-chan struct{} {
	return a.done
}

func (a *Activator) run(ctx context.Context) (err error) {
	defer obs.Time(ctx, "activation.run")(&err)

	if a.provider == nil || a.store == nil {
		return errors.New("activate: provider and store must be non-nil")
	}

	perm, err := a.provider.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("activate: request permission: %w: %w", ErrPermissionDenied, err)
	}
	if perm != ports.PermissionGranted {
		return fmt.Errorf("activate: status %q: %w", perm, ErrPermissionDenied)
	}

	fix, err := a.provider.CurrentPosition(ctx)
	if err != nil {
		return fmt.Errorf("activate: current position: %w: %w", ErrPositionUnavailable, err)
	}

	next := a.store.RefreshDistances(a.store.Current(), fix)
	if err := a.store.ReplaceFor(fix, next); err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	log.Printf("distances refreshed count=%d lat=%.4f lon=%.4f", len(next), fix.Latitude, fix.Longitude)
	return nil
}
