package studentrepo

import (
	"context"
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/student"
	"campusmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStudentRepository implements ports.StudentRepository using GORM.
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GORM student repository.
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// GetByUserID retrieves the student profile backed by a user account.
func (r *GormStudentRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*student.Student, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto StudentDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("student", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
