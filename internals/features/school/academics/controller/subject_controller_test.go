package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/constants"
	acaModel "schoolku_backend/internals/features/school/academics/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

const sqliteUUID = `(lower(hex(randomblob(4)) || '-' || hex(randomblob(2)) || '-4' || substr(hex(randomblob(2)),2) || '-a' || substr(hex(randomblob(2)),2) || '-' || hex(randomblob(6))))`

func newAcademicsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE departments (
			department_id text PRIMARY KEY, department_name text NOT NULL,
			department_head_user_id text, department_desc text,
			department_created_at datetime, department_updated_at datetime,
			department_deleted_at datetime)`,
		`CREATE TABLE subjects (
			subject_id text PRIMARY KEY DEFAULT ` + sqliteUUID + `,
			subject_code text NOT NULL, subject_name text NOT NULL,
			subject_department_id text NOT NULL, subject_desc text,
			subject_created_at datetime, subject_updated_at datetime,
			subject_deleted_at datetime)`,
		// Index parsial: baris soft-deleted tidak menyandera kode
		`CREATE UNIQUE INDEX uq_subjects_code_department ON subjects
			(subject_code, subject_department_id) WHERE subject_deleted_at IS NULL`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedDepartment(t *testing.T, db *gorm.DB, name string, headUserID *uuid.UUID) acaModel.DepartmentModel {
	t.Helper()
	d := acaModel.DepartmentModel{
		DepartmentID:         uuid.New(),
		DepartmentName:       name,
		DepartmentHeadUserID: headUserID,
	}
	require.NoError(t, db.Create(&d).Error)
	return d
}

// newSubjectApp memasang controller di belakang stub yang meniru hasil
// resolver (identity sudah di Locals).
func newSubjectApp(db *gorm.DB, u *userModel.UserModel) *fiber.App {
	app := fiber.New()
	ctl := &SubjectController{DB: db}
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(midAuth.LocAuthUser, u)
		c.Locals(midAuth.LocUserRole, u.Role)
		c.Locals(midAuth.LocUserID, u.ID.String())
		return c.Next()
	})
	app.Post("/subjects", ctl.Create)
	app.Put("/subjects/:id", ctl.Update)
	app.Delete("/subjects/:id", ctl.Delete)
	return app
}

func postSubject(t *testing.T, app *fiber.App, body fiber.Map) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/subjects", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	rb, _ := io.ReadAll(resp.Body)
	var parsed map[string]interface{}
	_ = json.Unmarshal(rb, &parsed)
	return resp.StatusCode, parsed
}

func hodUser() *userModel.UserModel {
	return &userModel.UserModel{
		ID:        uuid.New(),
		Email:     "hod@sekolah.sch.id",
		Role:      constants.RoleHOD,
		FirstName: "Kepala",
		LastName:  "Jurusan",
		IsActive:  true,
	}
}

func TestSubjectCreate_HODOwnDepartment(t *testing.T) {
	db := newAcademicsDB(t)
	hod := hodUser()
	own := seedDepartment(t, db, "IPA", &hod.ID)

	app := newSubjectApp(db, hod)
	code, _ := postSubject(t, app, fiber.Map{
		"subject_code":          "FIS-01",
		"subject_name":          "Fisika",
		"subject_department_id": own.DepartmentID,
	})
	assert.Equal(t, fiber.StatusCreated, code)
}

func TestSubjectCreate_HODOtherDepartment(t *testing.T) {
	db := newAcademicsDB(t)
	hod := hodUser()
	seedDepartment(t, db, "IPA", &hod.ID)
	other := seedDepartment(t, db, "IPS", nil)

	// Tulisan lintas department ditolak eksplisit — bukan diam-diam
	// dialihkan ke department sendiri
	app := newSubjectApp(db, hod)
	code, body := postSubject(t, app, fiber.Map{
		"subject_code":          "EKO-01",
		"subject_name":          "Ekonomi",
		"subject_department_id": other.DepartmentID,
	})
	require.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Anda hanya boleh mengelola subject department sendiri", body["error"])

	var cnt int64
	require.NoError(t, db.Table("subjects").Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func TestSubjectCreate_HODWithoutDepartment(t *testing.T) {
	db := newAcademicsDB(t)
	hod := hodUser()
	dept := seedDepartment(t, db, "IPA", nil) // tidak dikepalai siapa pun

	app := newSubjectApp(db, hod)
	code, _ := postSubject(t, app, fiber.Map{
		"subject_code":          "KIM-01",
		"subject_name":          "Kimia",
		"subject_department_id": dept.DepartmentID,
	})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestSubjectUpdate_HODOtherDepartmentLooks404(t *testing.T) {
	db := newAcademicsDB(t)
	hod := hodUser()
	seedDepartment(t, db, "IPA", &hod.ID)
	other := seedDepartment(t, db, "IPS", nil)

	foreign := acaModel.SubjectModel{
		SubjectID:           uuid.New(),
		SubjectCode:         "SOS-01",
		SubjectName:         "Sosiologi",
		SubjectDepartmentID: other.DepartmentID,
	}
	require.NoError(t, db.Create(&foreign).Error)

	app := newSubjectApp(db, hod)
	raw, _ := json.Marshal(fiber.Map{"subject_name": "Sosiologi Revisi"})
	req := httptest.NewRequest("PUT", "/subjects/"+foreign.SubjectID.String(), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	// Subject department lain tampak seperti tidak ada
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubjectCreate_CodeReusableAfterDelete(t *testing.T) {
	db := newAcademicsDB(t)
	admin := &userModel.UserModel{
		ID: uuid.New(), Email: "admin@sekolah.sch.id",
		Role: constants.RoleAdmin, FirstName: "Ad", LastName: "Min", IsActive: true,
	}
	dept := seedDepartment(t, db, "IPA", nil)
	app := newSubjectApp(db, admin)

	body := fiber.Map{
		"subject_code":          "BIO-01",
		"subject_name":          "Biologi",
		"subject_department_id": dept.DepartmentID,
	}
	code, created := postSubject(t, app, body)
	require.Equal(t, fiber.StatusCreated, code)

	// Duplikat saat masih hidup: 409
	code, _ = postSubject(t, app, body)
	require.Equal(t, fiber.StatusConflict, code)

	// Soft delete, lalu kode yang sama harus bisa dipakai lagi
	data := created["data"].(map[string]interface{})
	id := data["subject_id"].(string)
	delReq := httptest.NewRequest("DELETE", "/subjects/"+id, nil)
	delResp, err := app.Test(delReq)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, delResp.StatusCode)

	code, _ = postSubject(t, app, body)
	assert.Equal(t, fiber.StatusCreated, code)
}
