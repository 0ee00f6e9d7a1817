package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/companion-api/internal/errors"
)

func TestValidationBuilderEmpty(t *testing.T) {
	vb := errors.NewValidationBuilder()

	assert.NoError(t, vb.Build())
}

func TestValidationBuilderCollectsFields(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("title")
	vb.Fieldf("level", "must be at least %d", 1)

	err := vb.Build()
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	var classified *errors.Error
	assert.True(t, errors.As(err, &classified))
	assert.Contains(t, classified.Meta, "validation_errors")
}

func TestValidateRequired(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", "   ", vb)
	errors.ValidateRequired("description", "a quest", vb)

	err := vb.Build()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.NotContains(t, err.Error(), "description")
}

func TestValidateRange(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 0, 1, 100, vb)

	assert.Error(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("level", 42, 1, 100, vb)

	assert.NoError(t, vb.Build())
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"pending", "in_progress", "completed", "failed"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("status", "pending", allowed, vb)
	assert.NoError(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("status", "paused", allowed, vb)
	assert.Error(t, vb.Build())
}
