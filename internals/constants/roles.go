package constants

import "fmt"

// Enam role pengguna di sistem informasi sekolah
const (
	RoleAdmin      = "admin"
	RoleHeadmaster = "headmaster"
	RoleHOD        = "hod"
	RoleTeacher    = "teacher"
	RoleParent     = "parent"
	RoleStudent    = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess    = "❌ Hanya admin, headmaster, atau HOD yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
// Satu allow-list statis per route group, dievaluasi oleh role middleware.
var (
	AllRoles = []string{
		RoleAdmin,
		RoleHeadmaster,
		RoleHOD,
		RoleTeacher,
		RoleParent,
		RoleStudent,
	}

	// /api/a — manajemen user & penugasan relasi
	AdminOnly = []string{
		RoleAdmin,
	}

	// /api/h — kurikulum (subject, level) & pengumuman
	StaffAndAbove = []string{
		RoleAdmin,
		RoleHeadmaster,
		RoleHOD,
	}

	// /api/t — absensi & nilai
	TeacherAndAbove = []string{
		RoleAdmin,
		RoleTeacher,
	}

	// Orang tua (lihat anak sendiri)
	ParentOnly = []string{
		RoleParent,
	}
)

// IsValidRole memastikan role termasuk salah satu dari enam role dikenal.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
