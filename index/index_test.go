package index

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"
)

// allKinds runs fn once per implementation so the whole contract is
// exercised against every tree.
func allKinds(t *testing.T, policy DuplicatePolicy, fn func(t *testing.T, ix Index[string, int])) {
	t.Helper()
	for _, kind := range []string{KindBST, KindAVL, KindBTree} {
		t.Run(kind, func(t *testing.T) {
			fn(t, New[string, int](kind, strings.Compare, policy, 4))
		})
	}
}

func collectKeys[K, R any](ix Index[K, R]) []K {
	var keys []K
	ix.Ascend(func(k K, _ R) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func wantKeys(t *testing.T, ix Index[string, int], want ...string) {
	t.Helper()
	got := collectKeys(ix)
	if len(got) != len(want) {
		t.Fatalf("in-order keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order keys = %v, want %v", got, want)
		}
	}
}

func TestIndex_InsertAndSearch(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		for i, key := range []string{"mango", "banana", "tamarind", "apple"} {
			if out := ix.Insert(key, i); out != Inserted {
				t.Fatalf("insert %q = %v, want inserted", key, out)
			}
		}
		rec, ok := ix.Search("banana")
		if !ok || rec != 1 {
			t.Errorf("search banana = (%d, %v), want (1, true)", rec, ok)
		}
		rec, ok = ix.Search("apple")
		if !ok || rec != 3 {
			t.Errorf("search apple = (%d, %v), want (3, true)", rec, ok)
		}
		if _, ok := ix.Search("durian"); ok {
			t.Error("search durian should return false")
		}
		if got := ix.Len(); got != 4 {
			t.Errorf("len = %d, want 4", got)
		}
	})
}

func TestIndex_SearchEmpty(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		if _, ok := ix.Search("anything"); ok {
			t.Error("search on empty index should return false")
		}
		if got := ix.Len(); got != 0 {
			t.Errorf("empty len = %d, want 0", got)
		}
		if got := ix.Height(); got != 0 {
			t.Errorf("empty height = %d, want 0", got)
		}
	})
}

func TestIndex_RejectDuplicates(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		if out := ix.Insert("k1", 100); out != Inserted {
			t.Fatalf("first insert = %v, want inserted", out)
		}
		if out := ix.Insert("k1", 200); out != Ignored {
			t.Fatalf("duplicate insert = %v, want ignored", out)
		}
		// Original record must survive.
		rec, _ := ix.Search("k1")
		if rec != 100 {
			t.Errorf("search k1 = %d, want 100 (original)", rec)
		}
		if got := ix.Len(); got != 1 {
			t.Errorf("len = %d, want 1", got)
		}
	})
}

func TestIndex_OverwriteDuplicates(t *testing.T) {
	allKinds(t, OverwriteDuplicates, func(t *testing.T, ix Index[string, int]) {
		if out := ix.Insert("k1", 100); out != Inserted {
			t.Fatalf("first insert = %v, want inserted", out)
		}
		if out := ix.Insert("k1", 200); out != Replaced {
			t.Fatalf("duplicate insert = %v, want replaced", out)
		}
		rec, _ := ix.Search("k1")
		if rec != 200 {
			t.Errorf("search k1 = %d, want 200 (replacement)", rec)
		}
		if got := ix.Len(); got != 1 {
			t.Errorf("len = %d, want 1 (overwrite adds no node)", got)
		}
	})
}

func TestIndex_Update(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		ix.Insert("a", 1)
		ix.Insert("b", 2)
		ix.Insert("c", 3)

		if !ix.Update("b", func(r int) int { return r * 10 }) {
			t.Fatal("update b should return true")
		}
		rec, _ := ix.Search("b")
		if rec != 20 {
			t.Errorf("search b after update = %d, want 20", rec)
		}
		// Neighbors untouched.
		if rec, _ := ix.Search("a"); rec != 1 {
			t.Errorf("search a = %d, want 1", rec)
		}
		if rec, _ := ix.Search("c"); rec != 3 {
			t.Errorf("search c = %d, want 3", rec)
		}

		if ix.Update("zz", func(r int) int { return r }) {
			t.Error("update of missing key should return false")
		}
		wantKeys(t, ix, "a", "b", "c")
	})
}

func TestIndex_DeleteLeaf(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		ix.Insert("m", 1)
		ix.Insert("b", 2)
		ix.Insert("t", 3)

		if !ix.Delete("b") {
			t.Fatal("delete b should return true")
		}
		if _, ok := ix.Search("b"); ok {
			t.Error("search b should return false after delete")
		}
		if got := ix.Len(); got != 2 {
			t.Errorf("len = %d, want 2", got)
		}
		wantKeys(t, ix, "m", "t")
	})
}

func TestIndex_DeleteAbsent(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		if ix.Delete("ghost") {
			t.Error("delete on empty index should return false")
		}
		ix.Insert("m", 1)
		if ix.Delete("ghost") {
			t.Error("delete of absent key should return false")
		}
		// Repeated delete of the same key succeeds once, then reports false.
		if !ix.Delete("m") {
			t.Error("first delete m should return true")
		}
		if ix.Delete("m") {
			t.Error("second delete m should return false")
		}
		if got := ix.Len(); got != 0 {
			t.Errorf("len = %d, want 0", got)
		}
	})
}

func TestIndex_DeleteAllThenReinsert(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		keys := []string{"c", "a", "d", "b"}
		for i, k := range keys {
			ix.Insert(k, i)
		}
		for _, k := range keys {
			if !ix.Delete(k) {
				t.Fatalf("delete %q should return true", k)
			}
		}
		if got := ix.Len(); got != 0 {
			t.Fatalf("len after delete-all = %d, want 0", got)
		}
		if out := ix.Insert("a", 99); out != Inserted {
			t.Fatalf("re-insert after delete-all = %v, want inserted", out)
		}
		rec, ok := ix.Search("a")
		if !ok || rec != 99 {
			t.Errorf("search a = (%d, %v), want (99, true)", rec, ok)
		}
	})
}

// TestIndex_DeleteTwoChildrenPromotesSuccessor covers the classic case:
// after M B T A C S Z, removing the two-child root M must promote its
// in-order successor S and keep enumeration sorted.
func TestIndex_DeleteTwoChildrenPromotesSuccessor(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		for i, k := range []string{"M", "B", "T", "A", "C", "S", "Z"} {
			ix.Insert(k, i)
		}
		if !ix.Delete("M") {
			t.Fatal("delete M should return true")
		}
		wantKeys(t, ix, "A", "B", "C", "S", "T", "Z")
		if got := ix.Len(); got != 6 {
			t.Errorf("len = %d, want 6", got)
		}
		// The promoted key keeps its own record.
		rec, ok := ix.Search("S")
		if !ok || rec != 5 {
			t.Errorf("search S = (%d, %v), want (5, true)", rec, ok)
		}
	})
}

func TestIndex_AscendOrderAndEarlyStop(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		for i, k := range []string{"pear", "fig", "yam", "date", "kiwi"} {
			ix.Insert(k, i)
		}
		wantKeys(t, ix, "date", "fig", "kiwi", "pear", "yam")

		// Stop after two pairs.
		var seen []string
		ix.Ascend(func(k string, _ int) bool {
			seen = append(seen, k)
			return len(seen) < 2
		})
		if len(seen) != 2 || seen[0] != "date" || seen[1] != "fig" {
			t.Errorf("early-stop ascend = %v, want [date fig]", seen)
		}

		// Traversal is repeatable.
		wantKeys(t, ix, "date", "fig", "kiwi", "pear", "yam")
	})
}

func TestIndex_AscendEmpty(t *testing.T) {
	allKinds(t, RejectDuplicates, func(t *testing.T, ix Index[string, int]) {
		calls := 0
		ix.Ascend(func(string, int) bool {
			calls++
			return true
		})
		if calls != 0 {
			t.Errorf("ascend on empty index made %d calls, want 0", calls)
		}
	})
}

// TestIndex_RandomChurn drives every implementation through a large
// shuffled insert/delete sequence and checks the survivors against a map.
func TestIndex_RandomChurn(t *testing.T) {
	allKinds(t, OverwriteDuplicates, func(t *testing.T, ix Index[string, int]) {
		rng := rand.New(rand.NewSource(42))
		const n = 2000

		keys := make([]string, n)
		want := make(map[string]int, n)
		for i := range keys {
			keys[i] = "key-" + string(rune('a'+i%26)) + "-" + strconv.Itoa(i)
		}
		rng.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		for i, k := range keys {
			ix.Insert(k, i)
			want[k] = i
		}
		// Delete a random half.
		for i := 0; i < n/2; i++ {
			k := keys[rng.Intn(n)]
			if _, present := want[k]; present != ix.Delete(k) {
				t.Fatalf("delete %q disagreed with model", k)
			}
			delete(want, k)
		}
		if got := ix.Len(); got != len(want) {
			t.Fatalf("len = %d, want %d", got, len(want))
		}

		// Contents and order.
		got := collectKeys(ix)
		if len(got) != len(want) {
			t.Fatalf("ascend yielded %d keys, want %d", len(got), len(want))
		}
		if !sort.StringsAreSorted(got) {
			t.Fatal("ascend keys are not sorted")
		}
		for _, k := range got {
			rec, ok := ix.Search(k)
			if !ok || rec != want[k] {
				t.Fatalf("search %q = (%d, %v), want (%d, true)", k, rec, ok, want[k])
			}
		}
	})
}

func TestNew_KindDispatch(t *testing.T) {
	cases := []struct {
		kind string
		want string
	}{
		{KindBST, "bst"},
		{KindAVL, "avl"},
		{KindBTree, "btree"},
		{"nonsense", "bst"}, // unknown kinds fall back to the plain tree
	}
	for _, tc := range cases {
		ix := New[string, int](tc.kind, strings.Compare, RejectDuplicates, 0)
		if got := ix.Kind(); got != tc.want {
			t.Errorf("New(%q).Kind() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestDuplicatePolicy_String(t *testing.T) {
	if got := RejectDuplicates.String(); got != "reject" {
		t.Errorf("RejectDuplicates.String() = %q, want reject", got)
	}
	if got := OverwriteDuplicates.String(); got != "overwrite" {
		t.Errorf("OverwriteDuplicates.String() = %q, want overwrite", got)
	}
}

func TestInsertOutcome_String(t *testing.T) {
	for out, want := range map[InsertOutcome]string{
		Inserted: "inserted",
		Replaced: "replaced",
		Ignored:  "ignored",
	} {
		if got := out.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", out, got, want)
		}
	}
}
