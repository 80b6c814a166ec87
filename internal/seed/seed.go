package seed

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campuscore/registry/internal/registry"
)

// Apply replays the dataset against the registrar, going only through the
// operations the registrar and its entities expose. Declined operations
// (duplicates, missing lookups) are logged and skipped; only entity
// construction failures make Apply return an error, joined so one bad entry
// does not hide the rest.
func Apply(reg *registry.Registrar, dataset *Dataset, lgr zerolog.Logger) error {
	var finalErr error

	for _, entry := range dataset.Lecturers {
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		lecturer, err := registry.NewLecturer(id, entry.Name, entry.Email, entry.Department)
		if err != nil {
			lgr.Error().Err(err).Str("name", entry.Name).Msg("Skipping invalid lecturer")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if !reg.AddLecturer(lecturer) {
			lgr.Warn().Str("id", id).Msg("Lecturer already registered")
		}
	}

	for _, entry := range dataset.Students {
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		student, err := registry.NewStudent(id, entry.Name, entry.Email, entry.Phone)
		if err != nil {
			lgr.Error().Err(err).Str("name", entry.Name).Msg("Skipping invalid student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if !reg.AddStudent(student) {
			lgr.Warn().Str("id", id).Msg("Student already registered")
		}
	}

	for _, entry := range dataset.Courses {
		course, err := registry.NewCourse(entry.Code, entry.Title, entry.CreditHours)
		if err != nil {
			lgr.Error().Err(err).Str("code", entry.Code).Msg("Skipping invalid course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if !reg.AddCourse(course) {
			lgr.Warn().Str("code", entry.Code).Msg("Course already exists")
		}
	}

	for _, entry := range dataset.Assignments {
		lecturer, ok := reg.LecturerByID(entry.LecturerID)
		if !ok {
			lgr.Warn().Str("lecturer", entry.LecturerID).Msg("Assignment skipped: lecturer not found")
			continue
		}
		course, ok := reg.CourseByCode(entry.CourseCode)
		if !ok {
			lgr.Warn().Str("course", entry.CourseCode).Msg("Assignment skipped: course not found")
			continue
		}
		if !lecturer.AssignCourse(course) {
			lgr.Warn().
				Str("lecturer", entry.LecturerID).
				Str("course", entry.CourseCode).
				Msg("Course already assigned")
		}
	}

	for _, entry := range dataset.Enrollments {
		if !reg.Enroll(entry.StudentID, entry.CourseCode) {
			lgr.Warn().
				Str("student", entry.StudentID).
				Str("course", entry.CourseCode).
				Msg("Enrollment declined")
		}
	}

	for _, entry := range dataset.Grades {
		lecturer, ok := reg.LecturerByID(entry.LecturerID)
		if !ok {
			lgr.Warn().Str("lecturer", entry.LecturerID).Msg("Grade submission skipped: lecturer not found")
			continue
		}
		course, ok := reg.CourseByCode(entry.CourseCode)
		if !ok {
			lgr.Warn().Str("course", entry.CourseCode).Msg("Grade submission skipped: course not found")
			continue
		}
		graded := lecturer.SubmitGrades(course, entry.Grade)
		lgr.Info().
			Str("course", entry.CourseCode).
			Str("grade", entry.Grade).
			Int("students", graded).
			Msg("Grades submitted")
	}

	for _, entry := range dataset.Attendance {
		student, ok := reg.StudentByID(entry.StudentID)
		if !ok {
			lgr.Warn().Str("student", entry.StudentID).Msg("Attendance skipped: student not found")
			continue
		}
		for _, present := range entry.Record {
			student.RecordAttendance(entry.CourseCode, present)
		}
	}

	return finalErr
}
