package models

import "errors"

// Supplier is a vendor owning zero or more products. Deleting a supplier
// cascades to its products at the database level.
type Supplier struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(100);not null"`
	CompanyName string `json:"company_name" gorm:"type:varchar(100);not null"`
	Email       string `json:"email" gorm:"type:varchar(100);not null"`
	PhoneNumber string `json:"phone_number" gorm:"type:varchar(20);not null"`

	Products []Product `json:"-" gorm:"foreignKey:SuppliedByID;constraint:OnDelete:CASCADE"`
}

// SupplierInput carries the fields a caller may set. Pointer fields
// distinguish a field that is absent from one set to its zero value.
type SupplierInput struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// ValidateCreate enforces the create contract: every field must be present.
func (in SupplierInput) ValidateCreate() error {
	if in.Name == nil || in.CompanyName == nil || in.Email == nil || in.PhoneNumber == nil {
		return errors.New("name, company_name, email and phone_number are required")
	}
	return nil
}

// Apply overwrites each field present in the input and leaves absent
// fields untouched.
func (s *Supplier) Apply(in SupplierInput) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.CompanyName != nil {
		s.CompanyName = *in.CompanyName
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		s.PhoneNumber = *in.PhoneNumber
	}
}
