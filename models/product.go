package models

import "errors"

// Product is a sellable item tracked with stock, cumulative sales, the
// current unit price and cumulative revenue.
type Product struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"type:varchar(100);not null"`
	QuantityInStock int     `json:"quantity_in_stock" gorm:"not null"`
	QuantitySold    int     `json:"quantity_sold" gorm:"not null"`
	UnitPrice       float64 `json:"unit_price" gorm:"not null"`
	// Revenue is stored and accumulated on write, never recomputed on read.
	Revenue      float64 `json:"revenue" gorm:"not null"`
	SuppliedByID uint    `json:"supplied_by" gorm:"not null;index"`
}

// ProductInput carries the fields a caller may set. Pointer fields
// distinguish a field that is absent from one set to its zero value.
type ProductInput struct {
	Name            *string  `json:"name"`
	QuantityInStock *int     `json:"quantity_in_stock"`
	QuantitySold    *int     `json:"quantity_sold"`
	UnitPrice       *float64 `json:"unit_price"`
}

// ValidateCreate enforces the create contract: every field must be present.
func (in ProductInput) ValidateCreate() error {
	if in.Name == nil || in.QuantityInStock == nil || in.QuantitySold == nil || in.UnitPrice == nil {
		return errors.New("name, quantity_in_stock, quantity_sold and unit_price are required")
	}
	return nil
}

// NewProduct builds a product for a supplier. The initial revenue is the
// quantity already sold times the unit price. The input must have passed
// ValidateCreate.
func NewProduct(in ProductInput, supplierID uint) Product {
	return Product{
		Name:            *in.Name,
		QuantityInStock: *in.QuantityInStock,
		QuantitySold:    *in.QuantitySold,
		UnitPrice:       *in.UnitPrice,
		Revenue:         float64(*in.QuantitySold) * *in.UnitPrice,
		SuppliedByID:    supplierID,
	}
}

// ApplyUpdate applies the asymmetric update rule:
//
//   - name and quantity_in_stock, when present, replace the stored values
//   - quantity_sold and unit_price apply only as a pair: the input
//     quantity is a delta added to the stored count, the input price
//     replaces the stored price, and revenue grows by delta times the new
//     price. A request carrying only one half of the pair changes neither.
func (p *Product) ApplyUpdate(in ProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.QuantityInStock != nil {
		p.QuantityInStock = *in.QuantityInStock
	}
	if in.QuantitySold != nil && in.UnitPrice != nil {
		p.QuantitySold += *in.QuantitySold
		p.UnitPrice = *in.UnitPrice
		p.Revenue += float64(*in.QuantitySold) * *in.UnitPrice
	}
}
