package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/campuscore/registry/internal/pkg/apperrors"
)

//go:embed default.yaml
var defaultDataset []byte

// Dataset is the declarative form of a university: entities first, then the
// relationship-building operations to replay against the registrar.
type Dataset struct {
	Lecturers   []Lecturer         `yaml:"lecturers" validate:"dive"`
	Students    []Student          `yaml:"students" validate:"dive"`
	Courses     []Course           `yaml:"courses" validate:"dive"`
	Assignments []Assignment       `yaml:"assignments" validate:"dive"`
	Enrollments []Enrollment       `yaml:"enrollments" validate:"dive"`
	Grades      []GradeSubmission  `yaml:"grades" validate:"dive"`
	Attendance  []AttendanceRecord `yaml:"attendance" validate:"dive"`
}

// Lecturer declares a lecturer entity. A missing id gets generated.
type Lecturer struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name" validate:"required"`
	Email      string `yaml:"email" validate:"required,email"`
	Department string `yaml:"department" validate:"required"`
}

// Student declares a student entity. A missing id gets generated.
type Student struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name" validate:"required"`
	Email string `yaml:"email" validate:"required,email"`
	Phone string `yaml:"phone"`
}

// Course declares a course entity.
type Course struct {
	Code        string `yaml:"code" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	CreditHours int    `yaml:"credit_hours" validate:"required,gt=0"`
}

// Assignment assigns a course to a lecturer.
type Assignment struct {
	LecturerID string `yaml:"lecturer_id" validate:"required"`
	CourseCode string `yaml:"course_code" validate:"required"`
}

// Enrollment enrolls a student into a course through the registrar.
type Enrollment struct {
	StudentID  string `yaml:"student_id" validate:"required"`
	CourseCode string `yaml:"course_code" validate:"required"`
}

// GradeSubmission has a lecturer submit one grade to a course's roster.
type GradeSubmission struct {
	LecturerID string `yaml:"lecturer_id" validate:"required"`
	CourseCode string `yaml:"course_code" validate:"required"`
	Grade      string `yaml:"grade" validate:"required,alpha,len=1"`
}

// AttendanceRecord declares a student's attendance entries for a course.
type AttendanceRecord struct {
	StudentID  string `yaml:"student_id" validate:"required"`
	CourseCode string `yaml:"course_code" validate:"required"`
	Record     []bool `yaml:"record"`
}

// Load reads and validates a dataset. An empty path selects the embedded
// default dataset.
func Load(path string) (*Dataset, error) {
	raw := defaultDataset
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrDatasetNotFound, path)
			}
			return nil, fmt.Errorf("failed to read seed dataset: %w", err)
		}
	}

	return Parse(raw)
}

// Parse decodes and validates a YAML dataset.
func Parse(raw []byte) (*Dataset, error) {
	dataset := &Dataset{}
	if err := yaml.Unmarshal(raw, dataset); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDataset, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(dataset); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDataset, err)
	}

	return dataset, nil
}
