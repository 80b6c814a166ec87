package registry

import (
	"strings"

	"github.com/campuscore/registry/internal/pkg/apperrors"
)

// Lecturer is a person who teaches courses and submits grades for them.
type Lecturer struct {
	Person
	Department string

	courses []*Course
}

// NewLecturer creates a lecturer after validating the identity fields.
func NewLecturer(id, name, email, department string) (*Lecturer, error) {
	person, err := newPerson(id, name, email, "", RoleLecturer)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(department) == "" {
		return nil, apperrors.ErrInvalidDepartment
	}

	return &Lecturer{
		Person:     person,
		Department: department,
	}, nil
}

// AssignCourse adds the course to the lecturer's assigned list and points the
// course's lecturer reference at this lecturer. Returns false when the course
// code is already assigned to this lecturer. The course-side reference is
// overwritten unconditionally: if another lecturer held the course, they keep
// it in their own list while the course now reports the new lecturer
// (last writer wins).
func (l *Lecturer) AssignCourse(course *Course) bool {
	if course == nil {
		return false
	}

	for _, c := range l.courses {
		if c.code == course.code {
			return false
		}
	}

	l.courses = append(l.courses, course)
	course.lecturer = l
	return true
}

// SubmitGrades applies the same grade to every student currently on the
// course's roster, overwriting any prior grade for that course code. Returns
// the number of students graded.
func (l *Lecturer) SubmitGrades(course *Course, grade string) int {
	if course == nil {
		return 0
	}

	for _, s := range course.students {
		s.grades[course.code] = grade
	}
	return len(course.students)
}

// Courses returns a copy of the lecturer's assigned course list.
func (l *Lecturer) Courses() []*Course {
	out := make([]*Course, len(l.courses))
	copy(out, l.courses)
	return out
}

// Summary returns the lecturer's portion of a full report.
func (l *Lecturer) Summary() LecturerSummary {
	teaching := make([]TeachingLoad, 0, len(l.courses))
	for _, c := range l.courses {
		teaching = append(teaching, TeachingLoad{
			CourseTitle: c.title,
			Students:    len(c.students),
		})
	}

	return LecturerSummary{
		Name:       l.Name,
		Department: l.Department,
		Teaching:   teaching,
	}
}
