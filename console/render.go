package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"rosterdb/store"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(12)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// staticTable renders rows as a one-shot table: no cursor row, sized so
// nothing scrolls out of view.
func staticTable(titles []string, rows []table.Row) string {
	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		w := lipgloss.Width(title)
		for _, r := range rows {
			if n := lipgloss.Width(r[i]); n > w {
				w = n
			}
		}
		cols[i] = table.Column{Title: title, Width: w}
	}
	st := table.DefaultStyles()
	st.Selected = st.Cell
	tb := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(st),
	)
	return tb.View()
}

func renderStudents(list []store.Student) string {
	rows := lo.Map(list, func(s store.Student, _ int) table.Row {
		return table.Row{s.ID, s.Name, s.Program, fmt.Sprintf("%.2f", s.CGPA)}
	})
	return staticTable([]string{"ID", "NAME", "PROGRAM", "CGPA"}, rows)
}

func renderCases(list []store.ConductCase) string {
	rows := lo.Map(list, func(cs store.ConductCase, _ int) table.Row {
		return table.Row{cs.StudentID, cs.Name, cs.Programme, cs.Offence, cs.Date, cs.Penalty, cs.Status}
	})
	return staticTable([]string{"ID", "NAME", "PROGRAMME", "OFFENCE", "DATE", "PENALTY", "STATUS"}, rows)
}

func renderStudent(s store.Student) string {
	lines := []string{
		labelStyle.Render("ID") + s.ID,
		labelStyle.Render("Name") + s.Name,
		labelStyle.Render("Program") + s.Program,
		labelStyle.Render("CGPA") + fmt.Sprintf("%.2f", s.CGPA),
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

func renderCase(cs store.ConductCase) string {
	lines := []string{
		labelStyle.Render("ID") + cs.StudentID,
		labelStyle.Render("Name") + cs.Name,
		labelStyle.Render("Programme") + cs.Programme,
		labelStyle.Render("Offence") + cs.Offence,
		labelStyle.Render("Date") + cs.Date,
		labelStyle.Render("Penalty") + cs.Penalty,
		labelStyle.Render("Status") + cs.Status,
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

// renderStats puts the two collections' counters side by side.
func renderStats(st *store.Store) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		statsBlock(st.Students), " ", statsBlock(st.Cases))
}

func statsBlock[R any](c *store.Collection[R]) string {
	sn := c.Stats()
	head := titleStyle.Render(fmt.Sprintf("%s (%s, %s)", c.Name(), c.Kind(), c.Policy()))
	lines := []string{
		head,
		labelStyle.Render("Records") + strconv.Itoa(c.Len()),
		labelStyle.Render("Height") + strconv.Itoa(c.Height()),
		labelStyle.Render("Inserts") + strconv.FormatUint(sn.Inserts, 10),
		labelStyle.Render("Duplicates") + strconv.FormatUint(sn.Duplicates, 10),
		labelStyle.Render("Searches") + fmt.Sprintf("%d (%d hits, %.0f%%)", sn.Searches, sn.Hits, sn.HitRatio()*100),
		labelStyle.Render("Updates") + strconv.FormatUint(sn.Updates, 10),
		labelStyle.Render("Deletes") + strconv.FormatUint(sn.Deletes, 10),
		labelStyle.Render("Bloom skips") + strconv.FormatUint(sn.BloomSkips, 10),
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

// renderMemory tabulates the analytic per-collection memory model next
// to the reflection-measured footprint of the live trees.
func renderMemory(st *store.Store) string {
	sm, cm := st.Students.Memory(), st.Cases.Memory()
	smm, cmm := st.Students.Measured(), st.Cases.Measured()
	total := store.MemoryEstimate{
		Entries:     sm.Entries + cm.Entries,
		KeyBytes:    sm.KeyBytes + cm.KeyBytes,
		RecordBytes: sm.RecordBytes + cm.RecordBytes,
		NodeBytes:   sm.NodeBytes + cm.NodeBytes,
	}
	row := func(name string, m store.MemoryEstimate, measured int64) table.Row {
		return table.Row{
			name,
			strconv.Itoa(m.Entries),
			store.HumanBytes(m.KeyBytes),
			store.HumanBytes(m.RecordBytes),
			store.HumanBytes(m.NodeBytes),
			store.HumanBytes(m.Total()),
			store.HumanBytes(measured),
		}
	}
	rows := []table.Row{
		row("students", sm, smm),
		row("cases", cm, cmm),
		row("total", total, smm+cmm),
	}
	return staticTable([]string{"COLLECTION", "ENTRIES", "KEYS", "RECORDS", "NODES", "MODEL", "MEASURED"}, rows)
}
