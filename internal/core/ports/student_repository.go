package ports

import (
	"context"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/student"
)

// StudentRepository defines the read contract for student identities.
// Registration and profile management live outside this core.
type StudentRepository interface {
	// GetByUserID resolves a raw user account identifier to a student.
	// Returns errs.ObjectNotFoundError when the user has no student identity.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*student.Student, error)
}
