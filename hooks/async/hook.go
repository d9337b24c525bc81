// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/nscache"
//	"github.com/unkn0wn-root/nscache/hooks/async"
//	"github.com/unkn0wn-root/nscache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    StoreErrorEvery: 10, // sample logs: ~every 10th absorbed store error
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := nscache.New[User](nscache.Options[User]{
//	    Store: store,
//	    Codec: codec.JSON[User]{},
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/nscache"
)

type Hooks struct {
	inner nscache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ nscache.Hooks = (*Hooks)(nil)

func New(inner nscache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) StoreError(op, key string, err error) {
	h.try(func() { h.inner.StoreError(op, key, err) })
}
func (h *Hooks) EpochResolveError(ns string, err error) {
	h.try(func() { h.inner.EpochResolveError(ns, err) })
}
func (h *Hooks) EpochRotated(ns string) { h.try(func() { h.inner.EpochRotated(ns) }) }
