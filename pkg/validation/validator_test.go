package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
	Title    string `json:"title" validate:"omitempty,headline"`
	Limit    int    `json:"limit" validate:"gte=0,lte=100"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	err := newValidator().Struct(signup{Email: "nope", Password: "short", Title: "ab", Limit: 101})

	details := ToDetails(err)

	assert.Equal(t, map[string]string{
		"email":    "must be a valid email",
		"password": "must be between 8 and 72 characters long",
		"title":    "must be between 3 and 255 characters long",
		"limit":    "must be less than or equal to 100",
	}, details)
}

func TestToDetailsRequired(t *testing.T) {
	details := ToDetails(newValidator().Struct(signup{}))

	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	var dst map[string]any
	err := json.Unmarshal([]byte("{"), &dst)

	// json.Unmarshal on truncated input yields a SyntaxError
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
