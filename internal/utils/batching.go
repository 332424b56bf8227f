package utils

import "sync"

// BatchSize is the number of records scored per worker.
const BatchSize = 256

// Batches splits items into consecutive slices of at most size items.
// The slices share the backing array of items.
func Batches[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = BatchSize
	}
	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}

// ParallelMap applies fn to every item, one goroutine per batch, and
// returns the results in input order.
func ParallelMap[T, R any](items []T, size int, fn func(T) R) []R {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out
	}
	if size <= 0 {
		size = BatchSize
	}

	var wg sync.WaitGroup
	for i, batch := range Batches(items, size) {
		wg.Add(1)
		go func(offset int, batch []T) {
			defer wg.Done()
			for j, item := range batch {
				out[offset+j] = fn(item)
			}
		}(i*size, batch)
	}
	wg.Wait()
	return out
}
