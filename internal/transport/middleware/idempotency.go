package middleware

import (
	"net/http"
	"sync"
	"time"
)

// IdempotencyGuard rejects a repeated X-Idempotency-Key within the
// retention window, so double-submitted POSTs do not create duplicate
// records. Keys are scoped per client token, held in memory.
type IdempotencyGuard struct {
	seen sync.Map // map[string]time.Time
	ttl  time.Duration
	stop chan struct{}
}

// NewIdempotencyGuard creates a guard with background cleanup.
// Call Stop() on shutdown.
func NewIdempotencyGuard(ttl time.Duration) *IdempotencyGuard {
	g := &IdempotencyGuard{ttl: ttl, stop: make(chan struct{})}
	go g.cleanup()
	return g
}

// Stop terminates the background cleanup goroutine.
func (g *IdempotencyGuard) Stop() {
	close(g.stop)
}

// Guard returns middleware that applies the idempotency check to
// mutating requests. Requests without the header pass through.
func (g *IdempotencyGuard) Guard() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("X-Idempotency-Key")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			// The key alone would let one client block another, so the
			// bearer token is folded into the stored key.
			scoped := r.Header.Get("Authorization") + "\x00" + key

			now := time.Now()
			if prev, loaded := g.seen.LoadOrStore(scoped, now); loaded {
				if now.Sub(prev.(time.Time)) < g.ttl {
					http.Error(w, "duplicate request", http.StatusConflict)
					return
				}
				g.seen.Store(scoped, now)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *IdempotencyGuard) cleanup() {
	ticker := time.NewTicker(g.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-g.ttl)
			g.seen.Range(func(key, value any) bool {
				if value.(time.Time).Before(cutoff) {
					g.seen.Delete(key)
				}
				return true
			})
		}
	}
}
