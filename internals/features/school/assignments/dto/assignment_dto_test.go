package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestLinkParentRequest_EmptyStudentIDs(t *testing.T) {
	// student_ids kosong selalu gagal validasi, valid/tidaknya parent_id
	req := LinkParentRequest{
		ParentID:   uuid.New(),
		StudentIDs: []uuid.UUID{},
	}
	assert.Error(t, validate.Struct(req))

	req.StudentIDs = nil
	assert.Error(t, validate.Struct(req))
}

func TestLinkParentRequest_Valid(t *testing.T) {
	req := LinkParentRequest{
		ParentID:   uuid.New(),
		StudentIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}
	assert.NoError(t, validate.Struct(req))
}

func TestAssignTeacherRequest_MissingFields(t *testing.T) {
	assert.Error(t, validate.Struct(AssignTeacherRequest{}))
	assert.Error(t, validate.Struct(AssignTeacherRequest{TeacherID: uuid.New()}))
	assert.NoError(t, validate.Struct(AssignTeacherRequest{
		TeacherID: uuid.New(),
		SubjectID: uuid.New(),
		ClassID:   uuid.New(),
	}))
}

func TestAssignSubjectLevelRequest_DefaultRequired(t *testing.T) {
	req := AssignSubjectLevelRequest{
		SubjectID: uuid.New(),
		LevelID:   uuid.New(),
	}
	assert.NoError(t, validate.Struct(req))
	assert.Nil(t, req.IsRequired) // service yang menerjemahkan nil → true
}
