package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel adalah role-profile (one-to-one) untuk user dengan role teacher/hod.
// Dibuat satu transaksi dengan UserModel saat registrasi.
type TeacherModel struct {
	TeacherID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherUserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex;column:teacher_user_id" json:"teacher_user_id"`
	TeacherDepartmentID *uuid.UUID `gorm:"type:uuid;column:teacher_department_id" json:"teacher_department_id,omitempty"`
	TeacherEmployeeNo   *string    `gorm:"size:40;column:teacher_employee_no" json:"teacher_employee_no,omitempty"`
	TeacherHireDate     *time.Time `gorm:"type:date;column:teacher_hire_date" json:"teacher_hire_date,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
