package request

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Type  string `json:"type" validate:"required,oneof=journal conference"`
	Title string `json:"title,omitempty" validate:"required"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&sample{Type: "journal", Title: "T"}))

	err := Validate(&sample{Type: "poster"})
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve, 2)
	assert.Equal(t, "type", ve[0].Field())
	assert.Equal(t, "oneof", ve[0].Tag())
	assert.Equal(t, "title", ve[1].Field())
}
