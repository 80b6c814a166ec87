package apperrors

import "errors"

// Person errors
var (
	ErrInvalidID    = errors.New("invalid identifier")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidEmail = errors.New("invalid email")
)

// Course errors
var (
	ErrInvalidCourseCode  = errors.New("invalid course code")
	ErrInvalidCourseTitle = errors.New("course title cannot be empty")
	ErrInvalidCreditHours = errors.New("credit hours must be positive")
)

// Lecturer errors
var (
	ErrInvalidDepartment = errors.New("department cannot be empty")
)

// Seed errors
var (
	ErrDatasetNotFound = errors.New("seed dataset not found")
	ErrInvalidDataset  = errors.New("invalid seed dataset")
)

// Is returns whether target matches err, or whether any error in errList does.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
