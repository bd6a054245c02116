package tutorial

import "github.com/panjf2000/ants/v2"

// dispatcher runs blocking store calls on a single background worker and
// awaits their completion, keeping them off the caller's goroutine while
// preserving the single-writer ordering of coordinator operations.
type dispatcher struct {
	pool *ants.Pool
}

func newDispatcher() (*dispatcher, error) {
	pool, err := ants.NewPool(1, ants.WithPreAlloc(true))
	if err != nil {
		return nil, err
	}
	return &dispatcher{pool: pool}, nil
}

// do submits fn to the worker and blocks until it completes. If the pool has
// been released, fn runs inline.
func (d *dispatcher) do(fn func()) {
	done := make(chan struct{})
	if err := d.pool.Submit(func() {
		defer close(done)
		fn()
	}); err != nil {
		fn()
		return
	}
	<-done
}

func (d *dispatcher) release() {
	d.pool.Release()
}
