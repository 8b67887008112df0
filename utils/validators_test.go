package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clockPayload struct {
	Start *string `json:"start" binding:"omitempty,clock"`
	End   string  `json:"end" binding:"required,clock"`
}

func strPtr(s string) *string { return &s }

func TestClockValidation(t *testing.T) {
	require.NoError(t, RegisterValidators())

	assert.NoError(t, binding.Validator.ValidateStruct(&clockPayload{End: "08:40"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&clockPayload{Start: strPtr("00:00"), End: "23:59"}))

	err := binding.Validator.ValidateStruct(&clockPayload{End: "8:40"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end", verrs[0].Field())

	assert.Error(t, binding.Validator.ValidateStruct(&clockPayload{Start: strPtr("24:00"), End: "08:00"}))
}
