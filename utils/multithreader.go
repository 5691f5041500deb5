// Package utils holds helpers shared by the command and the library.
package utils

import (
	"runtime"
	"sync"
)

// MultiThread runs f for every integer in [start, end) across a number of goroutines, and waits
// for them to finish. If workers is less than 1, one goroutine per CPU is used.
//
// Once any call to f returns an error, no further indexes are handed out; calls already running
// finish, and the error from the lowest index is returned.
//
// MultiThread should be run sequentially, not in a separate goroutine.
func MultiThread(start, end int, f func(int) error, workers int) error {
	if end <= start {
		return nil
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > end-start {
		workers = end - start
	}

	index := start
	var indexMux sync.Mutex

	errIndex := end
	var firstErr error

	var wg sync.WaitGroup

	wg.Add(workers)
	for thread := 0; thread < workers; thread++ {
		go func() {
			defer wg.Done()

			for {
				indexMux.Lock()
				if index >= end || firstErr != nil {
					indexMux.Unlock()
					return
				}

				i := index
				index++
				indexMux.Unlock()

				if err := f(i); err != nil {
					indexMux.Lock()
					if i < errIndex {
						errIndex, firstErr = i, err
					}
					indexMux.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	return firstErr
}
