// cmd/memcalc calculates the estimated memory consumption of a realistic
// campus roster held in rosterdb's in-memory collections.
//
// It models the Go memory layout of one stored entry under each index
// kind, showing what the tree structure itself costs next to the record
// data. The records are typed structs, so unlike a row of boxed values
// there is no per-column interface overhead.
//
// Usage: go run cmd/memcalc/main.go
package main

import "fmt"

// ---------------------------------------------------------------------------
// Go memory layout constants (64-bit)
// ---------------------------------------------------------------------------

const (
	// string header: ptr(8) + len(8). The text bytes are counted as raw data.
	stringHeader = 16

	// float64 field (the CGPA).
	float64Size = 8

	// Key held next to the record in every node. Its backing text aliases
	// the record's ID field, so only the header is charged here.
	keyOverhead = stringHeader

	// Plain BST node: left(8) + right(8).
	bstNode = 16

	// AVL node: left(8) + right(8) + cached height(8).
	avlNode = 24

	// Amortised B-tree cost per entry: slice headers and child pointers
	// spread over nodes that splits keep at least half full (degree 32).
	btreeEntry = 12
)

// ---------------------------------------------------------------------------
// Collection modelling
// ---------------------------------------------------------------------------

type textField struct {
	name string
	avg  int // average byte length
}

type collection struct {
	name   string
	fields []textField
	floats int // float64 fields beside the strings
	rows   int
}

func campusSchema() []collection {
	return []collection{
		{
			name: "students",
			fields: []textField{
				{"id", 6},
				{"name", 20},
				{"program", 4},
			},
			floats: 1,
			rows:   50_000,
		},
		{
			name: "cases",
			fields: []textField{
				{"student_id", 6},
				{"name", 20},
				{"programme", 4},
				{"offence", 30},
				{"date", 10},
				{"penalty", 8},
				{"status", 5},
			},
			rows: 2_500,
		},
	}
}

// rawRecordSize returns the actual data bytes of one record: text plus
// numeric fields, no Go overhead.
func rawRecordSize(c collection) int {
	size := c.floats * float64Size
	for _, f := range c.fields {
		size += f.avg
	}
	return size
}

// headerOverhead returns the per-record Go overhead: one string header
// per text field.
func headerOverhead(c collection) int {
	return len(c.fields) * stringHeader
}

type indexKind struct {
	name    string
	perNode int
}

var kinds = []indexKind{
	{"Plain BST", bstNode},
	{"AVL", avlNode},
	{"B-tree (degree 32)", btreeEntry},
}

// ---------------------------------------------------------------------------
// Formatting helpers
// ---------------------------------------------------------------------------

func fmtBytes(b int) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func fmtRows(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// ---------------------------------------------------------------------------
// Print helpers
// ---------------------------------------------------------------------------

func printKind(schema []collection, kind indexKind) (grandTotal int) {
	fmt.Printf("%s\n", kind.name)
	fmt.Println(repeat('=', len(kind.name)))
	fmt.Println()

	fmt.Printf("%-12s %8s %10s %10s %10s %10s  %s\n",
		"Collection", "Rows", "Raw Data", "Headers", "Tree", "Total", "Ratio")
	fmt.Println("------------ -------- ---------- ---------- ---------- ----------  -----")

	grandRaw := 0
	for _, c := range schema {
		raw := rawRecordSize(c) * c.rows
		headers := headerOverhead(c) * c.rows
		tree := (keyOverhead + kind.perNode) * c.rows

		total := raw + headers + tree
		grandRaw += raw
		grandTotal += total

		fmt.Printf("%-12s %8s %10s %10s %10s %10s  %.2fx\n",
			c.name, fmtRows(c.rows),
			fmtBytes(raw), fmtBytes(headers), fmtBytes(tree),
			fmtBytes(total), float64(total)/float64(raw))
	}

	fmt.Println("------------ -------- ---------- ---------- ---------- ----------  -----")
	fmt.Printf("%-12s %8s %10s %10s %10s %10s  %.2fx\n",
		"TOTAL", "", fmtBytes(grandRaw), "", "",
		fmtBytes(grandTotal), float64(grandTotal)/float64(grandRaw))
	fmt.Println()

	return grandTotal
}

func repeat(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func main() {
	schema := campusSchema()

	fmt.Println("rosterdb Memory Calculator — campus roster (50K students)")
	fmt.Println("==========================================================")
	fmt.Println()

	totals := make([]int, len(kinds))
	for i, kind := range kinds {
		totals[i] = printKind(schema, kind)
	}

	fmt.Println("Comparison")
	fmt.Println("----------")
	for i, kind := range kinds {
		fmt.Printf("  %-22s %10s   (%d bytes/entry for key + node)\n",
			kind.name+":", fmtBytes(totals[i]), keyOverhead+kind.perNode)
	}
	fmt.Printf("  %-22s %10s\n", "AVL over BST:", fmtBytes(totals[1]-totals[0]))
	fmt.Printf("  %-22s %10s\n", "B-tree under BST:", fmtBytes(totals[0]-totals[2]))

	fmt.Println()
	fmt.Println("Assumptions")
	fmt.Println("-----------")
	fmt.Println("  - 64-bit platform")
	fmt.Println("  - Records are typed structs: no interface boxing per field")
	fmt.Println("  - Key text aliases the record's ID field; only the header is charged")
	fmt.Println("  - String backing arrays exactly avg bytes (no allocator rounding)")
	fmt.Println("  - B-tree degree 32, nodes at least half full after splits")
	fmt.Println("  - No GC metadata, goroutine stacks, or runtime overhead included")
}
