// cmd/conctest hammers the store from many goroutines and checks that
// the collection lock holds up: reads see consistent snapshots, writes
// never get lost, and the reject policy admits exactly one winner per
// key. Every scenario runs once per index kind.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"rosterdb/index"
	"rosterdb/store"
)

func main() {
	fmt.Println("rosterdb concurrency test")
	fmt.Println("=========================")

	passed, failed := 0, 0
	for _, kind := range []string{index.KindBST, index.KindAVL, index.KindBTree} {
		fmt.Printf("\nindex kind: %s\n", kind)
		st := store.Open(store.Options{IndexKind: kind})

		for _, sc := range []struct {
			name string
			fn   func(*store.Store) bool
		}{
			{"Setup", scenarioSetup},
			{"Concurrent reads", scenarioConcurrentReads},
			{"Reads during writes", scenarioReadsDuringWrites},
			{"Concurrent writes", scenarioConcurrentWrites},
			{"Concurrent updates", scenarioConcurrentUpdates},
			{"Duplicate storm", scenarioDuplicateStorm},
		} {
			if sc.fn(st) {
				passed++
			} else {
				failed++
			}
		}
	}

	fmt.Printf("\n%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func studentID(i int) string { return fmt.Sprintf("S%05d", i) }

func scenarioSetup(st *store.Store) bool {
	start := time.Now()
	for i := 0; i < 1000; i++ {
		_, err := st.Students.Insert(store.Student{
			ID:      studentID(i),
			Name:    fmt.Sprintf("Student %d", i),
			Program: "CS",
		})
		if err != nil {
			return fail("Setup", "insert %d: %v", i, err)
		}
	}
	if n := st.Students.Len(); n != 1000 {
		return fail("Setup", "expected 1000 records, got %d", n)
	}
	return pass("Setup", "inserted 1000 records", time.Since(start))
}

func scenarioConcurrentReads(st *store.Store) bool {
	start := time.Now()
	const goroutines = 10
	const readsPerGoroutine = 500

	var wg sync.WaitGroup
	var errCount atomic.Int64

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for q := 0; q < readsPerGoroutine; q++ {
				id := studentID((g*readsPerGoroutine + q) % 1000)
				if _, err := st.Students.Get(id); err != nil {
					errCount.Add(1)
				}
			}
			if len(st.Students.List()) != 1000 {
				errCount.Add(1)
			}
		}(g)
	}
	wg.Wait()

	if errs := errCount.Load(); errs > 0 {
		return fail("Concurrent reads", "%d errors out of %d reads", errs, goroutines*readsPerGoroutine)
	}
	return pass("Concurrent reads",
		fmt.Sprintf("%d goroutines × %d reads, 0 errors", goroutines, readsPerGoroutine),
		time.Since(start))
}

func scenarioReadsDuringWrites(st *store.Store) bool {
	start := time.Now()
	const readers = 10

	var wg sync.WaitGroup
	var errCount atomic.Int64
	var minCount, maxCount atomic.Int64
	minCount.Store(999999)

	// Writer goroutine: insert 1000 more records.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1000; i < 2000; i++ {
			_, err := st.Students.Insert(store.Student{ID: studentID(i), Name: "Late Add", Program: "IT"})
			if err != nil {
				errCount.Add(1)
			}
		}
	}()

	// Reader goroutines: watch the count move while writes happen.
	for g := 0; g < readers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := 0; q < 50; q++ {
				count := int64(st.Students.Len())
				for {
					cur := minCount.Load()
					if count >= cur || minCount.CompareAndSwap(cur, count) {
						break
					}
				}
				for {
					cur := maxCount.Load()
					if count <= cur || maxCount.CompareAndSwap(cur, count) {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	if errs := errCount.Load(); errs > 0 {
		return fail("Reads during writes", "%d errors", errs)
	}
	lo, hi := minCount.Load(), maxCount.Load()
	if lo < 1000 || hi > 2000 {
		return fail("Reads during writes", "counts out of range: [%d..%d]", lo, hi)
	}
	if n := st.Students.Len(); n != 2000 {
		return fail("Reads during writes", "final count %d, expected 2000", n)
	}
	return pass("Reads during writes",
		fmt.Sprintf("1000 records inserted while reading, counts in [%d..%d]", lo, hi),
		time.Since(start))
}

func scenarioConcurrentWrites(st *store.Store) bool {
	start := time.Now()
	const goroutines = 10
	const rowsPerGoroutine = 100

	var wg sync.WaitGroup
	var errCount atomic.Int64

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			base := 2000 + g*rowsPerGoroutine
			for i := 0; i < rowsPerGoroutine; i++ {
				_, err := st.Students.Insert(store.Student{ID: studentID(base + i), Name: "Batch", Program: "SE"})
				if err != nil {
					errCount.Add(1)
				}
			}
		}(g)
	}
	wg.Wait()

	if errs := errCount.Load(); errs > 0 {
		return fail("Concurrent writes", "%d insert errors", errs)
	}
	if n := st.Students.Len(); n != 3000 {
		return fail("Concurrent writes", "final count %d, expected 3000", n)
	}
	return pass("Concurrent writes",
		fmt.Sprintf("%d goroutines × %d rows, final count 3000", goroutines, rowsPerGoroutine),
		time.Since(start))
}

// scenarioConcurrentUpdates checks that Update's read-modify-write is
// atomic under the lock: increments never get lost.
func scenarioConcurrentUpdates(st *store.Store) bool {
	start := time.Now()
	const goroutines = 10
	const updatesPerGoroutine = 100

	var wg sync.WaitGroup
	var errCount atomic.Int64

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < updatesPerGoroutine; i++ {
				err := st.Students.Update(studentID(0), func(s store.Student) store.Student {
					s.CGPA += 0.001
					return s
				})
				if err != nil {
					errCount.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if errs := errCount.Load(); errs > 0 {
		return fail("Concurrent updates", "%d update errors", errs)
	}
	s, err := st.Students.Get(studentID(0))
	if err != nil {
		return fail("Concurrent updates", "record vanished: %v", err)
	}
	want := float64(goroutines*updatesPerGoroutine) * 0.001
	if math.Abs(s.CGPA-want) > 1e-9 {
		return fail("Concurrent updates", "CGPA %.6f, expected %.6f: increments lost", s.CGPA, want)
	}
	return pass("Concurrent updates",
		fmt.Sprintf("%d increments applied, none lost", goroutines*updatesPerGoroutine),
		time.Since(start))
}

// scenarioDuplicateStorm races goroutines inserting the same ID and
// expects the reject policy to admit exactly one.
func scenarioDuplicateStorm(st *store.Store) bool {
	start := time.Now()
	const goroutines = 10

	var wg sync.WaitGroup
	var wins, rejects atomic.Int64

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			_, err := st.Students.Insert(store.Student{ID: "S99999", Name: fmt.Sprintf("Racer %d", g)})
			var dup *store.DuplicateKeyError
			switch {
			case err == nil:
				wins.Add(1)
			case errors.As(err, &dup):
				rejects.Add(1)
			}
		}(g)
	}
	wg.Wait()

	if w, r := wins.Load(), rejects.Load(); w != 1 || r != int64(goroutines-1) {
		return fail("Duplicate storm", "%d winners, %d rejects (want 1 and %d)", w, r, goroutines-1)
	}
	return pass("Duplicate storm",
		fmt.Sprintf("%d racers, exactly one insert won", goroutines),
		time.Since(start))
}

func pass(name, detail string, d time.Duration) bool {
	fmt.Printf("[PASS] %s: %s (%dms)\n", name, detail, d.Milliseconds())
	return true
}

func fail(name, format string, args ...any) bool {
	fmt.Printf("[FAIL] %s: %s\n", name, fmt.Sprintf(format, args...))
	return false
}
