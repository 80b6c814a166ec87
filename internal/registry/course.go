package registry

import (
	"fmt"
	"strings"

	"github.com/campuscore/registry/internal/pkg/apperrors"
	"github.com/campuscore/registry/internal/pkg/validation"
)

// Course holds a credit weight and an enrollment roster. Roster links are
// reference-only; the registrar's directory governs student lifetime.
type Course struct {
	code        string
	title       string
	creditHours int
	lecturer    *Lecturer
	students    []*Student
}

// NewCourse creates a course. This is the one constructor that must fail
// loudly: a non-positive credit weight is rejected with an error rather than
// a boolean decline, so an invalid course can never exist.
func NewCourse(code, title string, creditHours int) (*Course, error) {
	code = strings.TrimSpace(code)
	if !validation.NewStringValidation(code).
		WithMinLength(validation.CourseCodeMinLength).
		WithMaxLength(validation.CourseCodeMaxLength).
		WithPattern(validation.CompiledPatterns.CourseCode).
		Validate() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, code)
	}

	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrInvalidCourseTitle
	}

	if !validation.NewNumericValidation(creditHours).WithMin(1).Validate() {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInvalidCreditHours, creditHours)
	}

	return &Course{
		code:        code,
		title:       title,
		creditHours: creditHours,
	}, nil
}

// EnrollStudent adds the student to the roster and registers the course on
// the student's side. This is the single authoritative place where the
// bidirectional link is established. Returns false without mutation when a
// student with the same id is already on the roster.
func (c *Course) EnrollStudent(student *Student) bool {
	if student == nil {
		return false
	}

	for _, s := range c.students {
		if s.ID() == student.ID() {
			return false
		}
	}

	c.students = append(c.students, student)
	student.RegisterCourse(c)
	return true
}

// Code returns the course's unique code.
func (c *Course) Code() string {
	return c.code
}

// Title returns the course title.
func (c *Course) Title() string {
	return c.title
}

// CreditHours returns the course's credit weight.
func (c *Course) CreditHours() int {
	return c.creditHours
}

// Lecturer returns the lecturer currently assigned to the course, or nil.
func (c *Course) Lecturer() *Lecturer {
	return c.lecturer
}

// Students returns a copy of the enrollment roster.
func (c *Course) Students() []*Student {
	out := make([]*Student, len(c.students))
	copy(out, c.students)
	return out
}

// Details returns the course's portion of a full report.
func (c *Course) Details() CourseDetails {
	lecturerName := "TBA"
	if c.lecturer != nil {
		lecturerName = c.lecturer.Name
	}

	students := make([]string, 0, len(c.students))
	for _, s := range c.students {
		students = append(students, s.Name)
	}

	return CourseDetails{
		Code:        c.code,
		Title:       c.title,
		CreditHours: c.creditHours,
		Lecturer:    lecturerName,
		Students:    students,
	}
}
