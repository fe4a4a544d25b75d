package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		verr := NewValidationError("capital")
		assert.False(t, verr.HasErrors())
	})

	t.Run("single violation message", func(t *testing.T) {
		verr := NewValidationError("capital")
		verr.AddError("empty district list")

		assert.True(t, verr.HasErrors())
		assert.Equal(t, "validation error for capital: empty district list", verr.Error())
	})

	t.Run("multiple violations listed together", func(t *testing.T) {
		verr := NewValidationError("other")
		verr.AddError("first")
		verr.AddError("second")

		assert.Contains(t, verr.Error(), "validation errors for other")
		assert.Contains(t, verr.Error(), "first")
		assert.Contains(t, verr.Error(), "second")
	})
}

func TestLookupError(t *testing.T) {
	lerr := &LookupError{Year: 2024, Bucket: BucketAbroad, Subject: "9"}
	assert.Equal(t, "subject 9 not in qualifying set for 2024 abroad", lerr.Error())
}
