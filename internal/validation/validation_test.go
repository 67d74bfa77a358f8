package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-api/internal/model"
)

func TestStruct_Valid(t *testing.T) {
	err := Struct(model.RegisterRequest{Email: "a@x.com", Password: "p1", Name: "A", Surname: "B"})
	assert.NoError(t, err)
}

func TestStruct_ReportsFields(t *testing.T) {
	err := Struct(model.RegisterRequest{Email: "not-an-email", Password: "p1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Email(email)")
	assert.Contains(t, err.Error(), "Name(required)")
	assert.Contains(t, err.Error(), "Surname(required)")
}

func TestStruct_OptionalURL(t *testing.T) {
	assert.NoError(t, Struct(model.PublishProductRequest{Title: "Lamp", Price: 100}))

	err := Struct(model.PublishProductRequest{Title: "Lamp", Price: 100, ImageURL: "::nope"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	err = Struct(model.PublishProductRequest{Title: "Lamp", Price: -1})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestStruct_NonStruct(t *testing.T) {
	err := Struct("plain")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
