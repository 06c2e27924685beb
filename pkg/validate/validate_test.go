package validate_test

import (
	"testing"

	"miniblog/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userForm struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Age      *int64 `json:"age" validate:"required,gte=0"`
	Gender   string `json:"gender" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

func age(n int64) *int64 { return &n }

func validForm() userForm {
	return userForm{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "secret",
		Age:      age(30),
		Gender:   "female",
		Phone:    "555-0101",
	}
}

func TestStructValid(t *testing.T) {
	require.NoError(t, validate.Struct(validForm()))

	// zero is a present, valid age
	f := validForm()
	f.Age = age(0)
	require.NoError(t, validate.Struct(f))
}

func TestStructFirstFailureOnly(t *testing.T) {
	// everything is wrong; only the first constraint in field order reports
	err := validate.Struct(userForm{})
	require.Error(t, err)
	assert.Equal(t, "userName is required", err.Error())
}

func TestStructMessages(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"
	err := validate.Struct(f)
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())

	f = validForm()
	f.Age = age(-1)
	err = validate.Struct(f)
	require.Error(t, err)
	assert.Equal(t, "age must be at least 0", err.Error())

	f = validForm()
	f.Age = nil
	err = validate.Struct(f)
	require.Error(t, err)
	assert.Equal(t, "age is required", err.Error())

	f = validForm()
	f.Phone = ""
	err = validate.Struct(f)
	require.Error(t, err)
	assert.Equal(t, "phone is required", err.Error())
}
