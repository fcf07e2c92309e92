// Package student provides the Student identity: the marketplace participant
// mapped from a raw user account. Orders and listings reference students by
// id and never embed them.
package student

import (
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/pkg/errs"
)

var (
	// ErrStudentIsNotConstructed is returned when a Student instance was not
	// created through RestoreStudent.
	ErrStudentIsNotConstructed = errors.New("Student must be created via RestoreStudent")
)

// Student is a marketplace participant. Registration lives outside this core;
// students are only ever reconstructed from persistence here.
type Student struct {
	id       kernel.UUID
	userID   kernel.UUID
	email    string
	isActive bool

	isConstructed bool
}

// RestoreStudent reconstructs a student identity from persistence.
func RestoreStudent(id, userID kernel.UUID, email string, isActive bool) (*Student, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &Student{
		id:            id,
		userID:        userID,
		email:         email,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the Student instance was properly constructed.
func (s *Student) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStudentIsNotConstructed
	}
	return nil
}

// ID returns the student's marketplace identifier.
func (s *Student) ID() kernel.UUID {
	return s.id
}

// UserID returns the raw user account identifier the student maps to.
func (s *Student) UserID() kernel.UUID {
	return s.userID
}

// Email returns the student's contact email.
func (s *Student) Email() string {
	return s.email
}

// IsActive reports whether the account may transact.
func (s *Student) IsActive() bool {
	return s.isActive
}
