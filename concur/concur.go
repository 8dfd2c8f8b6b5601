// Package concur runs independent functions concurrently and reports the
// first error. Parts are independent of each other, so the codec fans out
// per-part work through Indexed; result order is the caller's slice order,
// not completion order.
package concur

import "sync"

type Funcs []func() error

func (fns Funcs) FirstErr() (err error) {
	errs := make(chan error)
	wg := sync.WaitGroup{}
	wg.Add(len(fns))
	for _, fn := range fns {
		fn := fn
		go func() {
			defer wg.Done()
			errs <- fn()
		}()
	}
	go func() {
		defer close(errs)
		wg.Wait()
	}()
	for e := range errs {
		if e != nil && err == nil {
			err = e
		}
	}
	return
}

// Indexed calls fn(0..n-1) concurrently, one goroutine per index.
func Indexed(n int, fn func(int) error) error {
	fns := make(Funcs, n)
	for i := range fns {
		i := i
		fns[i] = func() error {
			return fn(i)
		}
	}
	return fns.FirstErr()
}
