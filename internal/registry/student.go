package registry

import (
	"math"
	"strings"
	"time"
)

// gradePoints maps grade letters to grade points. Lookups are done on the
// uppercased letter; unrecognized letters score zero.
var gradePoints = map[string]float64{
	"A": 4.0,
	"B": 3.0,
	"C": 2.0,
	"D": 1.0,
	"E": 0.0,
	"F": 0.0,
}

// Student is a person enrolled in courses, carrying per-course grades and
// attendance records. Course links are reference-only: the student never owns
// the course, and the registrar's directory governs lifetime.
type Student struct {
	Person
	EnrolledAt time.Time

	courses    []*Course
	grades     map[string]string
	attendance map[string][]bool
}

// NewStudent creates a student after validating the identity fields.
func NewStudent(id, name, email, phone string) (*Student, error) {
	person, err := newPerson(id, name, email, phone, RoleStudent)
	if err != nil {
		return nil, err
	}

	return &Student{
		Person:     person,
		EnrolledAt: time.Now(),
		grades:     make(map[string]string),
		attendance: make(map[string][]bool),
	}, nil
}

// RegisterCourse adds the course to the student's course list if no course
// with the same code is present. It never touches the course's roster;
// Course.EnrollStudent owns the bidirectional link.
func (s *Student) RegisterCourse(course *Course) bool {
	if course == nil {
		return false
	}

	for _, c := range s.courses {
		if c.code == course.code {
			return false
		}
	}

	s.courses = append(s.courses, course)
	return true
}

// RecordAttendance appends one attendance entry for the given course code.
func (s *Student) RecordAttendance(courseCode string, present bool) {
	s.attendance[courseCode] = append(s.attendance[courseCode], present)
}

// ComputeGPA computes a credit-weighted grade point average over the
// student's recorded grades. A grade whose course is in the student's course
// list is weighted by that course's credit hours; otherwise it counts as a
// single credit. Returns 0.0 when no grades are recorded or the credit total
// is zero. The result is rounded to two decimal places.
func (s *Student) ComputeGPA() float64 {
	if len(s.grades) == 0 {
		return 0.0
	}

	byCode := make(map[string]*Course, len(s.courses))
	for _, c := range s.courses {
		byCode[c.code] = c
	}

	var totalPoints, totalCredits float64
	for code, grade := range s.grades {
		points := gradePoints[strings.ToUpper(grade)]
		credit := 1.0
		if c, ok := byCode[code]; ok {
			credit = float64(c.creditHours)
		}
		totalPoints += points * credit
		totalCredits += credit
	}

	if totalCredits == 0 {
		return 0.0
	}
	return math.Round(totalPoints/totalCredits*100) / 100
}

// AverageAttendance returns the mean attendance percentage across courses
// that have at least one attendance entry. Each course contributes its own
// percentage regardless of how many entries it has. Returns 0.0 when no
// course has entries. The result is rounded to one decimal place.
func (s *Student) AverageAttendance() float64 {
	var total float64
	count := 0

	for _, records := range s.attendance {
		if len(records) == 0 {
			continue
		}
		attended := 0
		for _, present := range records {
			if present {
				attended++
			}
		}
		total += float64(attended) / float64(len(records)) * 100
		count++
	}

	if count == 0 {
		return 0.0
	}
	return math.Round(total/float64(count)*10) / 10
}

// ReportPerformance computes the student's GPA and attendance once and
// classifies the pair.
func (s *Student) ReportPerformance() Performance {
	gpa := s.ComputeGPA()
	attendance := s.AverageAttendance()

	return Performance{
		GPA:        gpa,
		Attendance: attendance,
		Status:     classifyPerformance(gpa, attendance),
	}
}

// Courses returns a copy of the student's course list.
func (s *Student) Courses() []*Course {
	out := make([]*Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Grades returns a copy of the student's grade map.
func (s *Student) Grades() map[string]string {
	out := make(map[string]string, len(s.grades))
	for code, grade := range s.grades {
		out[code] = grade
	}
	return out
}

// Attendance returns a copy of the attendance entries for a course code.
func (s *Student) Attendance(courseCode string) []bool {
	records, ok := s.attendance[courseCode]
	if !ok {
		return nil
	}
	out := make([]bool, len(records))
	copy(out, records)
	return out
}
