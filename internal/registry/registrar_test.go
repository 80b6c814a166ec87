package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryAddsDeclineDuplicates(t *testing.T) {
	reg := NewRegistrar()

	alice := mustStudent(t, "S001", "Alice")
	assert.True(t, reg.AddStudent(alice))
	assert.False(t, reg.AddStudent(mustStudent(t, "S001", "Alice Clone")))

	course := mustCourse(t, "CS101", "Intro to Programming", 3)
	assert.True(t, reg.AddCourse(course))
	assert.False(t, reg.AddCourse(mustCourse(t, "CS101", "Shadow Course", 4)))

	lecturer := mustLecturer(t, "L001", "Dr. Smith", "CS")
	assert.True(t, reg.AddLecturer(lecturer))
	assert.False(t, reg.AddLecturer(mustLecturer(t, "L001", "Dr. Smith Clone", "CS")))

	got, ok := reg.StudentByID("S001")
	require.True(t, ok)
	assert.Same(t, alice, got, "the first insert wins")
}

func TestAddStudentDoesNotEnroll(t *testing.T) {
	reg := NewRegistrar()
	course := mustCourse(t, "CS101", "Intro to Programming", 3)
	reg.AddCourse(course)
	reg.AddStudent(mustStudent(t, "S001", "Alice"))

	assert.Empty(t, course.Students(), "directory membership does not imply roster membership")
}

func TestEnrollRequiresBothDirectoryEntries(t *testing.T) {
	reg := NewRegistrar()
	course := mustCourse(t, "CS101", "Intro to Programming", 3)
	alice := mustStudent(t, "S001", "Alice")
	reg.AddCourse(course)
	reg.AddStudent(alice)

	assert.False(t, reg.Enroll("S999", "CS101"), "unknown student")
	assert.False(t, reg.Enroll("S001", "CS999"), "unknown course")
	assert.False(t, reg.Enroll("X", "Y"))
	assert.Empty(t, course.Students(), "failed enrollments mutate nothing")
	assert.Empty(t, alice.Courses())

	assert.True(t, reg.Enroll("S001", "CS101"))
	assert.False(t, reg.Enroll("S001", "CS101"), "re-enrollment is declined")
	assert.Len(t, course.Students(), 1)
}

func TestFullReportEndToEnd(t *testing.T) {
	reg := NewRegistrar()

	lecturer := mustLecturer(t, "L001", "Dr. Smith", "CS")
	require.True(t, reg.AddLecturer(lecturer))

	alice := mustStudent(t, "S001", "Alice")
	bob := mustStudent(t, "S002", "Bob")
	require.True(t, reg.AddStudent(alice))
	require.True(t, reg.AddStudent(bob))

	c1 := mustCourse(t, "CS101", "Intro to Programming", 3)
	c2 := mustCourse(t, "CS201", "Data Structures", 4)
	require.True(t, reg.AddCourse(c1))
	require.True(t, reg.AddCourse(c2))

	require.True(t, lecturer.AssignCourse(c1))
	require.True(t, reg.Enroll("S001", "CS101"))
	require.True(t, reg.Enroll("S002", "CS101"))

	require.Equal(t, 2, lecturer.SubmitGrades(c1, "A"))

	for _, present := range []bool{true, true, false, true} {
		alice.RecordAttendance("CS101", present)
	}
	for _, present := range []bool{true, false, true, false} {
		bob.RecordAttendance("CS101", present)
	}

	report := reg.FullReport()

	require.Len(t, report.Courses, 2)
	assert.Equal(t, "CS101", report.Courses[0].Code, "insertion order preserved")
	assert.Equal(t, "Dr. Smith", report.Courses[0].Lecturer)
	assert.Equal(t, []string{"Alice", "Bob"}, report.Courses[0].Students)
	assert.Equal(t, "TBA", report.Courses[1].Lecturer)

	require.Len(t, report.Lecturers, 1)
	require.Len(t, report.Lecturers[0].Teaching, 1)
	assert.Equal(t, 2, report.Lecturers[0].Teaching[0].Students)

	require.Len(t, report.Students, 2)

	s1 := report.Students[0]
	assert.Equal(t, "S001", s1.ID)
	assert.Equal(t, 4.0, s1.GPA)
	assert.Equal(t, 75.0, s1.Attendance)
	assert.Equal(t, StatusNeutral, s1.Status, "attendance below ninety keeps Alice off excellent")

	s2 := report.Students[1]
	assert.Equal(t, "S002", s2.ID)
	assert.Equal(t, 4.0, s2.GPA)
	assert.Equal(t, 50.0, s2.Attendance)
	assert.Equal(t, StatusWarning, s2.Status)
}

func TestFullReportOnEmptyRegistrar(t *testing.T) {
	report := NewRegistrar().FullReport()
	assert.Empty(t, report.Courses)
	assert.Empty(t, report.Lecturers)
	assert.Empty(t, report.Students)
}
