package store

import (
	"fmt"

	"rosterdb/deepsize"
	"rosterdb/index"
)

// Go memory layout constants (64-bit). The model prices what the runtime
// allocates for one stored entry instead of measuring the live heap.
const (
	ptrSize      = 8
	stringHeader = 16 // ptr + len
	float64Size  = 8
	intSize      = 8

	// Plain BST node: two child pointers next to the key and record.
	bstNodeOverhead = 2 * ptrSize
	// AVL node adds the cached height word.
	avlNodeOverhead = 2*ptrSize + intSize
	// Amortised per-entry cost in the B-tree: slice headers and child
	// pointers spread over nodes that splits keep at least half full.
	btreeEntryOverhead = 12
)

// studentMemSize prices the record struct: three string headers, the
// CGPA float, and the text bytes themselves.
func studentMemSize(s Student) int64 {
	return 3*stringHeader + float64Size +
		int64(len(s.ID)+len(s.Name)+len(s.Program))
}

// caseMemSize prices the record struct: seven string headers plus text.
func caseMemSize(c ConductCase) int64 {
	return 7*stringHeader +
		int64(len(c.StudentID)+len(c.Name)+len(c.Programme)+
			len(c.Offence)+len(c.Date)+len(c.Penalty)+len(c.Status))
}

// MemoryEstimate is an analytic model of one collection's heap footprint.
type MemoryEstimate struct {
	Entries     int
	KeyBytes    int64 // key string headers; the text aliases the record's ID field
	RecordBytes int64 // record structs plus their string text
	NodeBytes   int64 // tree structure overhead
}

// Total sums the model's parts.
func (m MemoryEstimate) Total() int64 {
	return m.KeyBytes + m.RecordBytes + m.NodeBytes
}

// Memory walks the collection and prices every stored entry. Keys are
// extracted from the records, so their backing text is counted once on
// the record side and only the header is charged to the key.
func (c *Collection[R]) Memory() MemoryEstimate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var perNode int64
	switch c.ix.Kind() {
	case index.KindAVL:
		perNode = avlNodeOverhead
	case index.KindBTree:
		perNode = btreeEntryOverhead
	default:
		perNode = bstNodeOverhead
	}

	var est MemoryEstimate
	c.ix.Ascend(func(_ string, rec R) bool {
		est.Entries++
		est.KeyBytes += stringHeader
		est.RecordBytes += c.sizeOf(rec)
		est.NodeBytes += perNode
		return true
	})
	return est
}

// Measured walks the live index with reflection and returns its actual
// footprint. It cross-checks the model in Memory; expect it to run a
// little higher, since the walk also sees what the model leaves out,
// such as slice capacity and text reachable through both key and record.
func (c *Collection[R]) Measured() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepsize.Of(c.ix)
}

// HumanBytes renders b in binary units.
func HumanBytes(b int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
