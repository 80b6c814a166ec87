package main

import (
	"fmt"
	"io"

	"github.com/campuscore/registry/internal/registry"
)

// renderReport writes a full report in the classic console layout: courses,
// then lecturers, then student performances.
func renderReport(w io.Writer, report registry.Report) {
	fmt.Fprintln(w, "=== Full University Report ===")

	for _, c := range report.Courses {
		fmt.Fprintf(w, "%s: %s, Credits: %d, Lecturer: %s\n", c.Code, c.Title, c.CreditHours, c.Lecturer)
		fmt.Fprintln(w, "Enrolled students:")
		for _, name := range c.Students {
			fmt.Fprintf(w, "- %s\n", name)
		}
	}

	for _, l := range report.Lecturers {
		fmt.Fprintf(w, "Lecturer: %s (%s)\n", l.Name, l.Department)
		for _, t := range l.Teaching {
			fmt.Fprintf(w, "Teaching: %s (%d students)\n", t.CourseTitle, t.Students)
		}
	}

	for _, s := range report.Students {
		fmt.Fprintf(w, "%s -> GPA: %.2f, Attendance: %.1f%%", s.Name, s.GPA, s.Attendance)
		switch s.Status {
		case registry.StatusExcellent:
			fmt.Fprint(w, " | Excellent performance!")
		case registry.StatusWarning:
			fmt.Fprint(w, " | Warning: Poor performance")
		}
		fmt.Fprintln(w)
	}
}
