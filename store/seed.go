package store

import "rosterdb/index"

// SampleStudents returns the demo enrolment rows. IDs line up with the
// conduct cases so a seeded system tells one coherent story.
func SampleStudents() []Student {
	return []Student{
		{ID: "A23001", Name: "Alice Tan", Program: "CS", CGPA: 3.75},
		{ID: "A23015", Name: "Ben Lee", Program: "IT", CGPA: 3.10},
		{ID: "A23007", Name: "Chong Mei", Program: "CS", CGPA: 3.42},
	}
}

// SampleCases returns the demo disciplinary rows.
func SampleCases() []ConductCase {
	return []ConductCase{
		{StudentID: "A23001", Name: "Alice Tan", Programme: "CS",
			Offence: "Late submission", Date: "2025-03-01",
			Penalty: PenaltyWarning, Status: StatusOpen},
		{StudentID: "A23015", Name: "Ben Lee", Programme: "IT",
			Offence: "Plagiarism", Date: "2025-03-10",
			Penalty: PenaltyProbation, Status: StatusOpen},
		{StudentID: "A23007", Name: "Chong Mei", Programme: "CS",
			Offence: "Lab absence", Date: "2025-03-12",
			Penalty: PenaltyWarning, Status: StatusClosed},
	}
}

// Seed loads the sample rows and returns how many records were newly
// added. Existing IDs follow each collection's policy: student rows are
// left alone, case rows are overwritten.
func Seed(st *Store) int {
	added := 0
	for _, s := range SampleStudents() {
		if out, _ := st.Students.Insert(s); out == index.Inserted {
			added++
		}
	}
	for _, c := range SampleCases() {
		if out, _ := st.Cases.Insert(c); out == index.Inserted {
			added++
		}
	}
	return added
}
