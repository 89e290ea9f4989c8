package console

import (
	"fmt"
	"strings"
	"time"

	"rosterdb/index"
	"rosterdb/store"
)

const caseUsage = "Usage: case add|get|penalty|status|delete|list"

func (c *Console) cmdCase(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, caseUsage)
		return
	}
	switch strings.ToLower(args[0]) {
	case "add":
		c.caseAdd(args[1:])
	case "get":
		c.caseGet(args[1:])
	case "penalty":
		c.casePenalty(args[1:])
	case "status":
		c.caseStatus(args[1:])
	case "delete":
		c.caseDelete(args[1:])
	case "list":
		c.caseList()
	default:
		c.fail.Printfln("Unknown case command %q.", args[0])
		fmt.Fprintln(c.out, caseUsage)
	}
}

// caseAdd files a conduct case. The cases collection overwrites on a
// duplicate student ID, so filing again replaces the earlier record.
func (c *Console) caseAdd(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok {
		return
	}
	if id == "" {
		c.warn.Println("A case needs a student ID.")
		return
	}
	name, ok := c.readLine("Student name: ")
	if !ok {
		return
	}
	programme, ok := c.readLine("Programme: ")
	if !ok {
		return
	}
	offence, ok := c.readLine("Offence: ")
	if !ok {
		return
	}
	date, ok := c.readLine("Date (YYYY-MM-DD, blank for today): ")
	if !ok {
		return
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	penalty, ok := c.readLine("Penalty (Warning/Probation/Suspension): ")
	if !ok {
		return
	}
	if penalty == "" {
		penalty = store.PenaltyWarning
	}
	status, ok := c.readLine("Status (Open/Closed, blank for Open): ")
	if !ok {
		return
	}
	if status == "" {
		status = store.StatusOpen
	}

	out, _ := c.st.Cases.Insert(store.ConductCase{
		StudentID: id,
		Name:      name,
		Programme: programme,
		Offence:   offence,
		Date:      date,
		Penalty:   normalizeLevel(penalty),
		Status:    normalizeStatus(status),
	})
	if out == index.Replaced {
		c.warn.Printfln("Existing case for %s replaced.", id)
		return
	}
	c.info.Println("Case recorded.")
}

func (c *Console) caseGet(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	cs, err := c.st.Cases.Get(id)
	if err != nil {
		c.warn.Printfln("No case found under ID %s.", id)
		return
	}
	fmt.Fprintln(c.out, renderCase(cs))
}

func (c *Console) casePenalty(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	level, ok := c.argOrPrompt(args, 1, "Penalty (Warning/Probation/Suspension): ")
	if !ok {
		return
	}
	if level == "" {
		c.warn.Println("A penalty level is required.")
		return
	}
	level = normalizeLevel(level)
	if err := c.st.Cases.Update(id, store.CasePatch{Penalty: &level}.Apply); err != nil {
		c.warn.Printfln("No case found under ID %s.", id)
		return
	}
	c.info.Printfln("Penalty set to %s.", level)
}

func (c *Console) caseStatus(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	status, ok := c.argOrPrompt(args, 1, "Status (Open/Closed): ")
	if !ok {
		return
	}
	if status == "" {
		c.warn.Println("A status is required.")
		return
	}
	status = normalizeStatus(status)
	if err := c.st.Cases.Update(id, store.CasePatch{Status: &status}.Apply); err != nil {
		c.warn.Printfln("No case found under ID %s.", id)
		return
	}
	c.info.Printfln("Case marked %s.", status)
}

func (c *Console) caseDelete(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	if err := c.st.Cases.Delete(id); err != nil {
		c.warn.Printfln("No case found under ID %s.", id)
		return
	}
	c.info.Println("Case deleted.")
}

func (c *Console) caseList() {
	list := c.st.Cases.List()
	if len(list) == 0 {
		c.info.Println("No conduct cases on record.")
		return
	}
	fmt.Fprintln(c.out, renderCases(list))
}

// normalizeLevel maps case-insensitive spellings of the known penalty
// levels onto their canonical form and passes anything else through.
func normalizeLevel(v string) string {
	for _, known := range []string{store.PenaltyWarning, store.PenaltyProbation, store.PenaltySuspension} {
		if strings.EqualFold(v, known) {
			return known
		}
	}
	return v
}

func normalizeStatus(v string) string {
	for _, known := range []string{store.StatusOpen, store.StatusClosed} {
		if strings.EqualFold(v, known) {
			return known
		}
	}
	return v
}
