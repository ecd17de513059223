// Package parallel splits raster work into horizontal bands processed by a
// fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Workers returns n, or GOMAXPROCS when n is 0 or negative.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Bands calls fn once for each band [y0, y1) covering rows [0, height) and
// waits for all calls to return. At most workers bands run at once; fn must
// only touch rows inside its band.
func Bands(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	workers = min(Workers(workers), height)
	if workers == 1 {
		fn(0, height)
		return
	}

	rows := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rows {
		y1 := min(y0+rows, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
