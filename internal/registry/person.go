package registry

import (
	"fmt"

	"github.com/campuscore/registry/internal/pkg/apperrors"
	"github.com/campuscore/registry/internal/pkg/validation"
)

// Role identifies the kind of participant a person record represents.
type Role string

const (
	RoleStudent  Role = "Student"
	RoleLecturer Role = "Lecturer"
)

// Person holds the identity and contact fields shared by all participants.
// The identifier is fixed at construction; contact fields may change later
// through UpdateContact.
type Person struct {
	id    string
	Name  string
	Email string
	Phone string
	Role  Role
}

// newPerson validates the shared identity fields and builds the base record.
func newPerson(id, name, email, phone string, role Role) (Person, error) {
	if !validation.NewStringValidation(id).
		WithMaxLength(validation.IDMaxLength).
		WithPattern(validation.CompiledPatterns.PersonID).
		Validate() {
		return Person{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, id)
	}

	if !validation.NewStringValidation(name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return Person{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidName, name)
	}

	if !validation.NewStringValidation(email).
		WithPattern(validation.CompiledPatterns.Email).
		Validate() {
		return Person{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidEmail, email)
	}

	return Person{
		id:    id,
		Name:  name,
		Email: email,
		Phone: phone,
		Role:  role,
	}, nil
}

// ID returns the person's unique identifier.
func (p *Person) ID() string {
	return p.id
}

// UpdateContact overwrites the person's contact fields. Identity is untouched.
func (p *Person) UpdateContact(email, phone string) {
	p.Email = email
	p.Phone = phone
}

// Info returns a one-line identity summary for report rendering.
func (p *Person) Info() string {
	phone := p.Phone
	if phone == "" {
		phone = "-"
	}
	return fmt.Sprintf("ID: %s, Name: %s, Email: %s, Phone: %s", p.id, p.Name, p.Email, phone)
}
