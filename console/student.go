package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rosterdb/store"
)

const studentUsage = "Usage: student add|get|update|delete|list"

func (c *Console) cmdStudent(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, studentUsage)
		return
	}
	switch strings.ToLower(args[0]) {
	case "add":
		c.studentAdd(args[1:])
	case "get":
		c.studentGet(args[1:])
	case "update":
		c.studentUpdate(args[1:])
	case "delete":
		c.studentDelete(args[1:])
	case "list":
		c.studentList()
	default:
		c.fail.Printfln("Unknown student command %q.", args[0])
		fmt.Fprintln(c.out, studentUsage)
	}
}

// studentAdd registers a new student. Fields not given as arguments are
// prompted one by one. A CGPA that does not parse is stored as 0.00.
func (c *Console) studentAdd(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok {
		return
	}
	if id == "" {
		c.warn.Println("A student needs an ID.")
		return
	}
	name, ok := c.argOrPrompt(args, 1, "Name: ")
	if !ok {
		return
	}
	program, ok := c.argOrPrompt(args, 2, "Program: ")
	if !ok {
		return
	}
	raw, ok := c.argOrPrompt(args, 3, "CGPA: ")
	if !ok {
		return
	}
	cgpa, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.fail.Println("Invalid CGPA, storing 0.00.")
		cgpa = 0
	}

	_, err = c.st.Students.Insert(store.Student{ID: id, Name: name, Program: program, CGPA: cgpa})
	var dup *store.DuplicateKeyError
	if errors.As(err, &dup) {
		c.warn.Printfln("Student %s already exists. Skipping insert.", id)
		return
	}
	c.info.Println("Student added.")
}

func (c *Console) studentGet(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	s, err := c.st.Students.Get(id)
	if err != nil {
		c.warn.Printfln("No student found under ID %s.", id)
		return
	}
	fmt.Fprintln(c.out, renderStudent(s))
}

// studentUpdate edits an existing record field by field. Blank input
// keeps the stored value, and a CGPA that does not parse is ignored
// with a warning instead of clobbering the old one.
func (c *Console) studentUpdate(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	cur, err := c.st.Students.Get(id)
	if err != nil {
		c.warn.Printfln("No student found under ID %s.", id)
		return
	}
	fmt.Fprintln(c.out, "Leave a field blank to keep its value.")

	var patch store.StudentPatch
	if v, ok := c.readLine(fmt.Sprintf("Name (%s): ", cur.Name)); !ok {
		return
	} else if v != "" {
		patch.Name = &v
	}
	if v, ok := c.readLine(fmt.Sprintf("Program (%s): ", cur.Program)); !ok {
		return
	} else if v != "" {
		patch.Program = &v
	}
	if raw, ok := c.readLine(fmt.Sprintf("CGPA (%.2f): ", cur.CGPA)); !ok {
		return
	} else if raw != "" {
		if v, perr := strconv.ParseFloat(raw, 64); perr != nil {
			c.warn.Println("Invalid CGPA, keeping the old value.")
		} else {
			patch.CGPA = &v
		}
	}

	if patch.IsZero() {
		c.info.Println("Nothing to change.")
		return
	}
	if err := c.st.Students.Update(id, patch.Apply); err != nil {
		c.fail.Println(err)
		return
	}
	c.info.Println("Student updated.")
}

func (c *Console) studentDelete(args []string) {
	id, ok := c.argOrPrompt(args, 0, "Student ID: ")
	if !ok || id == "" {
		return
	}
	if err := c.st.Students.Delete(id); err != nil {
		c.warn.Printfln("No student found under ID %s.", id)
		return
	}
	c.info.Println("Student deleted.")
}

func (c *Console) studentList() {
	list := c.st.Students.List()
	if len(list) == 0 {
		c.info.Println("No students on record.")
		return
	}
	fmt.Fprintln(c.out, renderStudents(list))
}
