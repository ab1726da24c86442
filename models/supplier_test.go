package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupplierApplyReplacesPresentFieldsOnly(t *testing.T) {
	s := Supplier{
		Name:        "Acme",
		CompanyName: "Acme Ltd",
		Email:       "a@x.com",
		PhoneNumber: "555",
	}

	s.Apply(SupplierInput{Email: strPtr("b@x.com")})

	assert.Equal(t, "Acme", s.Name)
	assert.Equal(t, "Acme Ltd", s.CompanyName)
	assert.Equal(t, "b@x.com", s.Email)
	assert.Equal(t, "555", s.PhoneNumber)
}

func TestSupplierCreateValidation(t *testing.T) {
	in := SupplierInput{
		Name:  strPtr("Acme"),
		Email: strPtr("a@x.com"),
	}
	assert.Error(t, in.ValidateCreate())

	in.CompanyName = strPtr("Acme Ltd")
	in.PhoneNumber = strPtr("555")
	assert.NoError(t, in.ValidateCreate())
}
