package shortcrypt

import (
	"runtime"
	"sync"
)

// BatchEncryptToURL runs EncryptToURL over every plaintext concurrently
// across a bounded worker pool, mirroring the teacher's chunk-parallel
// encryption (parallel.go) adapted from per-chunk AEAD calls to
// per-plaintext transport encoding. workers <= 0 defaults to
// runtime.NumCPU(); it is clamped to len(plaintexts) so no more workers
// than items are started. EncryptToURL never fails, so the returned error
// slice always has all-nil errors; it is kept for symmetry with the
// Batch*Decrypt* functions.
func (sc *ShortCrypt) BatchEncryptToURL(plaintexts [][]byte, workers int) ([]string, []error) {
	results := make([]string, len(plaintexts))
	errs := make([]error, len(plaintexts))
	runBatch(workers, len(plaintexts), func(i int) {
		results[i] = sc.EncryptToURL(plaintexts[i])
	})
	return results, errs
}

// BatchDecryptURL runs DecryptURL over every text concurrently across a
// bounded worker pool. A failure at index i is recorded in errs[i] and
// does not block completion of any other index.
func (sc *ShortCrypt) BatchDecryptURL(texts []string, workers int) ([][]byte, []error) {
	results := make([][]byte, len(texts))
	errs := make([]error, len(texts))
	runBatch(workers, len(texts), func(i int) {
		plain, err := sc.DecryptURL(texts[i])
		results[i], errs[i] = plain, err
	})
	return results, errs
}

// BatchEncryptToQR is BatchEncryptToURL for the QR-alphanumeric transport.
func (sc *ShortCrypt) BatchEncryptToQR(plaintexts [][]byte, workers int) ([]string, []error) {
	results := make([]string, len(plaintexts))
	errs := make([]error, len(plaintexts))
	runBatch(workers, len(plaintexts), func(i int) {
		results[i] = sc.EncryptToQR(plaintexts[i])
	})
	return results, errs
}

// BatchDecryptQR is BatchDecryptURL for the QR-alphanumeric transport.
func (sc *ShortCrypt) BatchDecryptQR(texts []string, workers int) ([][]byte, []error) {
	results := make([][]byte, len(texts))
	errs := make([]error, len(texts))
	runBatch(workers, len(texts), func(i int) {
		plain, err := sc.DecryptQR(texts[i])
		results[i], errs[i] = plain, err
	})
	return results, errs
}

// runBatch fans work(i) out across a bounded worker pool for i in
// [0, n), waiting for all of them to finish. Each i is handled by exactly
// one worker, so work need not synchronize its own writes.
func runBatch(workers, n int, work func(i int)) {
	if n == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				work(i)
			}
		}()
	}
	wg.Wait()
}
