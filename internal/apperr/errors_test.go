package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/trec-sweep/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("base_dir is required")

	assert.Equal(t, "base_dir is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := apperr.NewValidationWrap("base directory is not writable", inner)

	assert.Equal(t, "base directory is not writable: permission denied", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestNewFieldValidation(t *testing.T) {
	inner := fmt.Errorf(`invalid model: "DFR"`)
	err := apperr.NewFieldValidation("dimensions.models", "unsupported value", inner)

	assert.Equal(t, `dimensions.models: unsupported value: invalid model: "DFR"`, err.Error())
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("base directory does not exist")

	wrapped := fmt.Errorf("load plan: %w", original)
	doubleWrapped := fmt.Errorf("startup: %w", wrapped)

	var ve *apperr.ValidationError
	require.True(t, errors.As(doubleWrapped, &ve))
	assert.Equal(t, "base directory does not exist", ve.Message)
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage error: %w", fmt.Errorf("database connection failed"))

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve))
}
