package helperAuth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveHODDepartmentID mencari department yang dikepalai caller.
// HOD tanpa department = Forbidden; penulisan subject selalu dibatasi
// ke department hasil resolve ini, tidak pernah diam-diam dialihkan.
func ResolveHODDepartmentID(db *gorm.DB, hodUserID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		DepartmentID uuid.UUID `gorm:"column:department_id"`
	}
	err := db.Table("departments").
		Select("department_id").
		Where("department_head_user_id = ? AND department_deleted_at IS NULL", hodUserID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak mengepalai department manapun")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal resolve department")
	}
	return row.DepartmentID, nil
}
