package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/onlypets/go-petstore-api/internal/store"
)

// ToastWorker expires toasts after their display window, independent of any
// rendering. Removal goes through the store, so it is idempotent with
// explicit dismissal.
type ToastWorker struct {
	st    *store.Store
	ttl   time.Duration
	sweep time.Duration
	log   *slog.Logger
	done  chan struct{}
}

func NewToastWorker(st *store.Store, ttl, sweep time.Duration, log *slog.Logger) *ToastWorker {
	return &ToastWorker{
		st:    st,
		ttl:   ttl,
		sweep: sweep,
		log:   log,
		done:  make(chan struct{}),
	}
}

func (w *ToastWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.sweep)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := w.st.ExpireToasts(w.ttl); n > 0 {
					w.log.Debug("expired toasts", "count", n)
				}
			case <-w.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	w.log.Info("toast worker started", "ttl", w.ttl, "sweep", w.sweep)
}

func (w *ToastWorker) Stop() { close(w.done) }
