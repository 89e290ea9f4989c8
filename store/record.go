// Package store holds the two record domains and the locked collections
// that sit between the console and the ordered indexes.
package store

import "fmt"

// Conventional penalty levels and case statuses. The store accepts any
// string; the console offers these when prompting.
const (
	PenaltyWarning    = "Warning"
	PenaltyProbation  = "Probation"
	PenaltySuspension = "Suspension"

	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// Student is one academic record. The ID doubles as the index key, so it
// is immutable once inserted.
type Student struct {
	ID      string
	Name    string
	Program string
	CGPA    float64
}

// Key returns the index key.
func (s Student) Key() string { return s.ID }

func (s Student) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Program: %s, CGPA: %.2f",
		s.ID, s.Name, s.Program, s.CGPA)
}

// StudentPatch carries optional field changes for one student. A nil
// field keeps the stored value; a pointer to the zero value clears it
// explicitly. There is no ID slot: rekeying is delete plus insert.
type StudentPatch struct {
	Name    *string
	Program *string
	CGPA    *float64
}

// Apply returns a copy of s with the non-nil patch fields replaced.
func (p StudentPatch) Apply(s Student) Student {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Program != nil {
		s.Program = *p.Program
	}
	if p.CGPA != nil {
		s.CGPA = *p.CGPA
	}
	return s
}

// IsZero reports whether the patch would change nothing.
func (p StudentPatch) IsZero() bool {
	return p.Name == nil && p.Program == nil && p.CGPA == nil
}

// ConductCase is one disciplinary record, keyed by the student's ID.
// Date stays a plain "YYYY-MM-DD" string; the system never computes
// with it.
type ConductCase struct {
	StudentID string
	Name      string
	Programme string
	Offence   string
	Date      string
	Penalty   string
	Status    string
}

// Key returns the index key.
func (c ConductCase) Key() string { return c.StudentID }

func (c ConductCase) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Programme: %s, Offence: %s, Date: %s, Penalty: %s, Status: %s",
		c.StudentID, c.Name, c.Programme, c.Offence, c.Date, c.Penalty, c.Status)
}

// CasePatch carries optional field changes for one conduct case, with
// the same nil-keeps semantics as StudentPatch.
type CasePatch struct {
	Name      *string
	Programme *string
	Offence   *string
	Date      *string
	Penalty   *string
	Status    *string
}

// Apply returns a copy of c with the non-nil patch fields replaced.
func (p CasePatch) Apply(c ConductCase) ConductCase {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Programme != nil {
		c.Programme = *p.Programme
	}
	if p.Offence != nil {
		c.Offence = *p.Offence
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	if p.Penalty != nil {
		c.Penalty = *p.Penalty
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}

// IsZero reports whether the patch would change nothing.
func (p CasePatch) IsZero() bool {
	return p.Name == nil && p.Programme == nil && p.Offence == nil &&
		p.Date == nil && p.Penalty == nil && p.Status == nil
}
