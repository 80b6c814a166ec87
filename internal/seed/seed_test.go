package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscore/registry/internal/pkg/apperrors"
	"github.com/campuscore/registry/internal/registry"
)

func TestLoadDefaultDataset(t *testing.T) {
	dataset, err := Load("")
	require.NoError(t, err)

	assert.Len(t, dataset.Lecturers, 1)
	assert.Len(t, dataset.Students, 2)
	assert.Len(t, dataset.Courses, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.ErrorIs(t, err, apperrors.ErrDatasetNotFound)
}

func TestParseRejectsInvalidDataset(t *testing.T) {
	_, err := Parse([]byte("students: [not a mapping"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidDataset)

	missingEmail := []byte(`
students:
  - id: S001
    name: Alice
`)
	_, err = Parse(missingEmail)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDataset)

	badGrade := []byte(`
grades:
  - lecturer_id: L001
    course_code: CS101
    grade: AB
`)
	_, err = Parse(badGrade)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDataset)
}

func TestApplyDefaultDataset(t *testing.T) {
	dataset, err := Load("")
	require.NoError(t, err)

	reg := registry.NewRegistrar()
	require.NoError(t, Apply(reg, dataset, zerolog.Nop()))

	report := reg.FullReport()
	require.Len(t, report.Students, 2)

	alice := report.Students[0]
	assert.Equal(t, "S001", alice.ID)
	assert.Equal(t, 4.0, alice.GPA)
	assert.Equal(t, 75.0, alice.Attendance)
	assert.Equal(t, registry.StatusNeutral, alice.Status)

	bob := report.Students[1]
	assert.Equal(t, 50.0, bob.Attendance)
	assert.Equal(t, registry.StatusWarning, bob.Status)

	require.Len(t, report.Courses, 2)
	assert.Equal(t, "Dr. Smith", report.Courses[0].Lecturer)
	assert.Equal(t, []string{"Alice", "Bob"}, report.Courses[0].Students)
}

func TestApplyGeneratesMissingIDs(t *testing.T) {
	dataset, err := Parse([]byte(`
students:
  - name: Carol
    email: carol@uni.com
`))
	require.NoError(t, err)

	reg := registry.NewRegistrar()
	require.NoError(t, Apply(reg, dataset, zerolog.Nop()))

	report := reg.FullReport()
	require.Len(t, report.Students, 1)
	assert.NotEmpty(t, report.Students[0].ID)
	assert.Equal(t, "Carol", report.Students[0].Name)
}

func TestApplyCollectsConstructionErrors(t *testing.T) {
	dataset, err := Parse([]byte(`
students:
  - id: S001
    name: Alice
    email: alice@uni.com
courses:
  - code: CS101
    title: Intro to Programming
    credit_hours: 3
  - code: bad code
    title: Broken
    credit_hours: 2
`))
	require.NoError(t, err)

	reg := registry.NewRegistrar()
	err = Apply(reg, dataset, zerolog.Nop())
	assert.ErrorIs(t, err, apperrors.ErrInvalidCourseCode)

	_, ok := reg.CourseByCode("CS101")
	assert.True(t, ok, "valid entries are still applied")
}

func TestApplySkipsDanglingReferences(t *testing.T) {
	dataset, err := Parse([]byte(`
enrollments:
  - student_id: S001
    course_code: CS101
grades:
  - lecturer_id: L001
    course_code: CS101
    grade: A
attendance:
  - student_id: S001
    course_code: CS101
    record: [true]
`))
	require.NoError(t, err)

	reg := registry.NewRegistrar()
	assert.NoError(t, Apply(reg, dataset, zerolog.Nop()), "declined operations are not errors")
	assert.Empty(t, reg.FullReport().Students)
}
