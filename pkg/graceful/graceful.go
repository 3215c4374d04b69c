// Package graceful runs registered shutdown callbacks on SIGINT / SIGTERM.
package graceful

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
)

type Callback func() error

var (
	mu        sync.Mutex
	callbacks []Callback
)

func AddCallback(cb Callback) {
	mu.Lock()
	defer mu.Unlock()

	callbacks = append(callbacks, cb)
}

// WaitShutdown blocks until a termination signal, then runs callbacks.
func WaitShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit

	return ShutdownNow()
}

// ShutdownNow runs all callbacks concurrently and returns the first error.
// Callbacks are consumed: a second call runs nothing.
func ShutdownNow() error {
	mu.Lock()
	pending := callbacks
	callbacks = nil
	mu.Unlock()

	var group errgroup.Group
	for _, cb := range pending {
		group.Go(cb)
	}

	return group.Wait()
}
