package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email_address" validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(sample{Name: "Ann", Email: "ann@example.com"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		errs := ValidateStruct(sample{Name: "Annabel", Email: "nope"})
		require.Len(t, errs, 2)
		assert.Equal(t, "Maximum length is 5", errs["name"])
		assert.Equal(t, "Invalid email format", errs["email_address"])
	})

	t.Run("missing", func(t *testing.T) {
		errs := ValidateStruct(sample{})
		assert.Equal(t, "This field is required", errs["name"])
		assert.Equal(t, "This field is required", errs["email_address"])
	})
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}

func TestMockClock(t *testing.T) {
	start := NewRealClock().Now()
	c := NewMockClock(start)
	c.Add(90)
	assert.Equal(t, start.Add(90), c.Now())
	c.Set(start)
	assert.Equal(t, start, c.Now())
}
