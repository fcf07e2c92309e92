// Package studentrepo reads student profiles. Profiles are owned by the
// identity system, this repository never writes them.
package studentrepo

import (
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/student"

	"github.com/google/uuid"
)

// StudentDTO is the database row for a student profile.
type StudentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Email    string
	IsActive bool
}

// TableName overrides GORM's default naming to use "students".
func (StudentDTO) TableName() string {
	return "students"
}

func toDomain(dto StudentDTO) (*student.Student, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return student.RestoreStudent(id, userID, dto.Email, dto.IsActive)
}
