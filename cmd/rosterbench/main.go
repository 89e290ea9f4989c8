// rosterbench races the three index kinds against each other on the
// same key set: random UUID keys for the general case, then sequential
// keys to show the plain BST degenerating while the balanced kinds
// stay flat.
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"rosterdb/index"
)

var kinds = []string{index.KindBST, index.KindAVL, index.KindBTree}

func main() {
	n := flag.Int("n", 50000, "random keys per run")
	ordered := flag.Int("ordered", 10000, "keys for the sorted-insert run (quadratic on the plain BST)")
	degree := flag.Int("degree", index.DefaultBTreeDegree, "btree fan-out")
	flag.Parse()

	fmt.Println("rosterdb index benchmark")
	fmt.Println("========================")
	fmt.Printf("%d random keys, %d sorted keys, btree degree %d\n\n", *n, *ordered, *degree)

	keys := randomKeys(*n)
	probes := make([]string, *n)
	for i := range probes {
		probes[i] = uuid.NewString()
	}

	fmt.Printf("%-8s %10s %10s %10s %10s %10s %8s\n",
		"kind", "insert", "hit", "miss", "scan", "delete", "height")
	for _, kind := range kinds {
		r := benchKind(kind, keys, probes, *degree)
		fmt.Printf("%-8s %10s %10s %10s %10s %10s %8d\n",
			r.kind, ms(r.insert), ms(r.hit), ms(r.miss), ms(r.scan), ms(r.remove), r.height)
	}

	fmt.Printf("\nsorted-key insert (n=%d)\n", *ordered)
	fmt.Printf("%-8s %10s %8s\n", "kind", "insert", "height")
	for _, kind := range kinds {
		ix := index.New[string, int](kind, strings.Compare, index.RejectDuplicates, *degree)
		start := time.Now()
		for i := 0; i < *ordered; i++ {
			ix.Insert(fmt.Sprintf("k%08d", i), i)
		}
		fmt.Printf("%-8s %10s %8d\n", kind, ms(time.Since(start)), ix.Height())
	}
	fmt.Println("\nsorted input turns the plain bst into a linked list; its height equals n")
}

type result struct {
	kind   string
	insert time.Duration
	hit    time.Duration
	miss   time.Duration
	scan   time.Duration
	remove time.Duration
	height int
}

func benchKind(kind string, keys, probes []string, degree int) result {
	ix := index.New[string, int](kind, strings.Compare, index.RejectDuplicates, degree)
	r := result{kind: kind}

	start := time.Now()
	for i, k := range keys {
		ix.Insert(k, i)
	}
	r.insert = time.Since(start)
	r.height = ix.Height()

	start = time.Now()
	for _, k := range keys {
		if _, ok := ix.Search(k); !ok {
			panic("benchmark key vanished: " + k)
		}
	}
	r.hit = time.Since(start)

	start = time.Now()
	for _, k := range probes {
		if _, ok := ix.Search(k); ok {
			panic("probe key unexpectedly present: " + k)
		}
	}
	r.miss = time.Since(start)

	start = time.Now()
	seen := 0
	ix.Ascend(func(string, int) bool {
		seen++
		return true
	})
	r.scan = time.Since(start)
	if seen != len(keys) {
		panic(fmt.Sprintf("scan saw %d of %d keys", seen, len(keys)))
	}

	start = time.Now()
	for i := 0; i < len(keys); i += 2 {
		ix.Delete(keys[i])
	}
	r.remove = time.Since(start)

	return r
}

func randomKeys(n int) []string {
	bar := progressbar.NewOptions(n,
		progressbar.OptionSetDescription("generating keys"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)
	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
		bar.Add(1)
	}
	fmt.Println()
	return keys
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
}
