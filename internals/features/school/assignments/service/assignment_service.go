package service

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	asgDTO "schoolku_backend/internals/features/school/assignments/dto"
	asgModel "schoolku_backend/internals/features/school/assignments/model"
)

// Pola semua operasi di sini sama: cek eksistensi kedua ujung →
// cek duplikat → insert → balikan hasil ter-join. Cek duplikat hanya
// fast path untuk pesan 409 yang ramah; unique constraint DB tetap
// otoritas terakhir (error "duplicate"/"unique" dipetakan ke 409 juga).

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

/* =========================================================
   TEACHER × SUBJECT × CLASS
========================================================= */

// AssignTeacherToSubjectClass memasang guru ke (subject, class).
// NotFound kalau teacher bukan user aktif ber-role teacher, atau
// subject/class tidak ada; Conflict kalau triple persis sudah terdaftar.
func AssignTeacherToSubjectClass(ctx context.Context, db *gorm.DB, req asgDTO.AssignTeacherRequest) (*asgDTO.TeacherAssignmentResponse, error) {
	tx := db.WithContext(ctx)

	// Teacher harus user aktif dengan role teacher
	var teacherCnt int64
	if err := tx.Table("users").
		Where("id = ? AND role = ? AND is_active = TRUE AND deleted_at IS NULL", req.TeacherID, constants.RoleTeacher).
		Count(&teacherCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek teacher")
	}
	if teacherCnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Teacher tidak ditemukan atau tidak aktif")
	}

	var subjectCnt int64
	if err := tx.Table("subjects").
		Where("subject_id = ? AND subject_deleted_at IS NULL", req.SubjectID).
		Count(&subjectCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek subject")
	}
	if subjectCnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
	}

	var classCnt int64
	if err := tx.Table("classes").
		Where("class_id = ? AND class_deleted_at IS NULL", req.ClassID).
		Count(&classCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek class")
	}
	if classCnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Class tidak ditemukan")
	}

	// Cek duplikasi triple
	var dupCnt int64
	if err := tx.Model(&asgModel.ClassSubjectTeacherModel{}).
		Where("class_subject_teacher_class_id = ? AND class_subject_teacher_subject_id = ? AND class_subject_teacher_teacher_id = ?",
			req.ClassID, req.SubjectID, req.TeacherID).
		Count(&dupCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi penugasan")
	}
	if dupCnt > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Guru sudah ditugaskan untuk subject dan class ini")
	}

	m := asgModel.ClassSubjectTeacherModel{
		ClassSubjectTeacherClassID:   req.ClassID,
		ClassSubjectTeacherSubjectID: req.SubjectID,
		ClassSubjectTeacherTeacherID: req.TeacherID,
	}
	if err := tx.Create(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Guru sudah ditugaskan untuk subject dan class ini")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan penugasan")
	}

	// Balikan hasil ter-join (nama guru, kode subject, nama class)
	resp, err := fetchTeacherAssignment(tx, m.ClassSubjectTeacherID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penugasan")
	}
	return resp, nil
}

func fetchTeacherAssignment(tx *gorm.DB, id uuid.UUID) (*asgDTO.TeacherAssignmentResponse, error) {
	var resp asgDTO.TeacherAssignmentResponse
	err := tx.Table("class_subject_teachers AS cst").
		Select(`cst.class_subject_teacher_id,
			cst.class_subject_teacher_teacher_id AS teacher_id,
			u.first_name || ' ' || u.last_name    AS teacher_name,
			cst.class_subject_teacher_subject_id AS subject_id,
			s.subject_code, s.subject_name,
			cst.class_subject_teacher_class_id   AS class_id,
			cl.class_name,
			cst.class_subject_teacher_created_at AS created_at`).
		Joins("JOIN users u ON u.id = cst.class_subject_teacher_teacher_id").
		Joins("JOIN subjects s ON s.subject_id = cst.class_subject_teacher_subject_id").
		Joins("JOIN classes cl ON cl.class_id = cst.class_subject_teacher_class_id").
		Where("cst.class_subject_teacher_id = ?", id).
		Take(&resp).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveTeacherAssignment menghapus junction by id. Hard delete:
// tidak ada update-in-place untuk penugasan — ganti guru berarti hapus
// lalu buat ulang, dan baris lama tidak boleh menyandera unique
// constraint triple.
func RemoveTeacherAssignment(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&asgModel.ClassSubjectTeacherModel{}, "class_subject_teacher_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus penugasan")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return nil
}

// ListClassSubjects mengambil semua penugasan subject+teacher sebuah class.
func ListClassSubjects(ctx context.Context, db *gorm.DB, classID uuid.UUID) ([]asgDTO.TeacherAssignmentResponse, error) {
	var rows []asgDTO.TeacherAssignmentResponse
	err := db.WithContext(ctx).Table("class_subject_teachers AS cst").
		Select(`cst.class_subject_teacher_id,
			cst.class_subject_teacher_teacher_id AS teacher_id,
			u.first_name || ' ' || u.last_name    AS teacher_name,
			cst.class_subject_teacher_subject_id AS subject_id,
			s.subject_code, s.subject_name,
			cst.class_subject_teacher_class_id   AS class_id,
			cl.class_name,
			cst.class_subject_teacher_created_at AS created_at`).
		Joins("JOIN users u ON u.id = cst.class_subject_teacher_teacher_id").
		Joins("JOIN subjects s ON s.subject_id = cst.class_subject_teacher_subject_id").
		Joins("JOIN classes cl ON cl.class_id = cst.class_subject_teacher_class_id").
		Where("cst.class_subject_teacher_class_id = ?", classID).
		Order("s.subject_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil subject class")
	}
	return rows, nil
}

/* =========================================================
   PARENT × STUDENT
========================================================= */

// LinkParentToStudents menautkan satu parent ke banyak student sekaligus.
// Batch atomic: satu pasangan duplikat membatalkan seluruh insert.
func LinkParentToStudents(ctx context.Context, db *gorm.DB, req asgDTO.LinkParentRequest) ([]asgModel.StudentParentModel, error) {
	if len(req.StudentIDs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "student_ids tidak boleh kosong")
	}

	tx := db.WithContext(ctx)

	var parentCnt int64
	if err := tx.Table("users").
		Where("id = ? AND role = ? AND deleted_at IS NULL", req.ParentID, constants.RoleParent).
		Count(&parentCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek parent")
	}
	if parentCnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Parent tidak ditemukan")
	}

	var studentCnt int64
	if err := tx.Table("users").
		Where("id IN ? AND role = ? AND deleted_at IS NULL", req.StudentIDs, constants.RoleStudent).
		Count(&studentCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek student")
	}
	if studentCnt != int64(len(req.StudentIDs)) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Ada student yang tidak ditemukan")
	}

	links := make([]asgModel.StudentParentModel, 0, len(req.StudentIDs))
	for _, sid := range req.StudentIDs {
		links = append(links, asgModel.StudentParentModel{
			StudentParentStudentID: sid,
			StudentParentParentID:  req.ParentID,
		})
	}

	if err := tx.Transaction(func(ttx *gorm.DB) error {
		// Cek duplikat sekali untuk seluruh batch
		var dupCnt int64
		if err := ttx.Model(&asgModel.StudentParentModel{}).
			Where("student_parent_parent_id = ? AND student_parent_student_id IN ?", req.ParentID, req.StudentIDs).
			Count(&dupCnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi tautan")
		}
		if dupCnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Sebagian student sudah tertaut ke parent ini")
		}
		if err := ttx.Create(&links).Error; err != nil {
			if isDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Sebagian student sudah tertaut ke parent ini")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menautkan parent ke student")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return links, nil
}

// UnlinkParentFromStudent melepas tautan parent-student. IDEMPOTENT:
// tautan yang sudah tidak ada tetap sukses — asimetri dengan insert
// (yang menolak duplikat) memang disengaja dan harus dipertahankan.
func UnlinkParentFromStudent(ctx context.Context, db *gorm.DB, parentID, studentID uuid.UUID) error {
	res := db.WithContext(ctx).
		Where("student_parent_parent_id = ? AND student_parent_student_id = ?", parentID, studentID).
		Delete(&asgModel.StudentParentModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal melepas tautan")
	}
	// RowsAffected == 0 bukan error
	return nil
}

// ListChildren mengambil student yang tertaut ke parent.
func ListChildren(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := db.WithContext(ctx).Table("student_parents AS sp").
		Select(`sp.student_parent_id, sp.student_parent_student_id AS student_id,
			u.first_name, u.last_name, u.email, st.student_admission_no`).
		Joins("JOIN users u ON u.id = sp.student_parent_student_id").
		Joins("LEFT JOIN students st ON st.student_user_id = sp.student_parent_student_id").
		Where("sp.student_parent_parent_id = ?", parentID).
		Order("u.first_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return rows, nil
}

/* =========================================================
   SUBJECT × ACADEMIC LEVEL
========================================================= */

// AssignSubjectToAcademicLevel memasang subject ke level kurikulum.
func AssignSubjectToAcademicLevel(ctx context.Context, db *gorm.DB, req asgDTO.AssignSubjectLevelRequest) (*asgModel.SubjectAcademicLevelModel, error) {
	tx := db.WithContext(ctx)

	var subjectCnt int64
	if err := tx.Table("subjects").
		Where("subject_id = ? AND subject_deleted_at IS NULL", req.SubjectID).
		Count(&subjectCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek subject")
	}
	if subjectCnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
	}

	var levelCnt int64
	if err := tx.Table("academic_levels").
		Where("academic_level_id = ? AND academic_level_deleted_at IS NULL", req.LevelID).
		Count(&levelCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek academic level")
	}
	if levelCnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Academic level tidak ditemukan")
	}

	var dupCnt int64
	if err := tx.Model(&asgModel.SubjectAcademicLevelModel{}).
		Where("subject_academic_level_subject_id = ? AND subject_academic_level_level_id = ?", req.SubjectID, req.LevelID).
		Count(&dupCnt).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek duplikasi")
	}
	if dupCnt > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Subject sudah terpasang di level ini")
	}

	isRequired := true
	if req.IsRequired != nil {
		isRequired = *req.IsRequired
	}

	m := asgModel.SubjectAcademicLevelModel{
		SubjectAcademicLevelSubjectID:  req.SubjectID,
		SubjectAcademicLevelLevelID:    req.LevelID,
		SubjectAcademicLevelIsRequired: isRequired,
	}
	if err := tx.Create(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Subject sudah terpasang di level ini")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kurikulum level")
	}
	return &m, nil
}

// RemoveSubjectFromAcademicLevel menghapus pemasangan subject-level by id.
func RemoveSubjectFromAcademicLevel(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&asgModel.SubjectAcademicLevelModel{}, "subject_academic_level_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kurikulum level")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return nil
}
