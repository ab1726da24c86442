package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestNewProductComputesRevenue(t *testing.T) {
	in := ProductInput{
		Name:            strPtr("Widget"),
		QuantityInStock: intPtr(100),
		QuantitySold:    intPtr(4),
		UnitPrice:       floatPtr(2.5),
	}
	require.NoError(t, in.ValidateCreate())

	p := NewProduct(in, 7)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 100, p.QuantityInStock)
	assert.Equal(t, 4, p.QuantitySold)
	assert.Equal(t, 2.5, p.UnitPrice)
	assert.Equal(t, 10.0, p.Revenue)
	assert.Equal(t, uint(7), p.SuppliedByID)
}

func TestProductCreateValidation(t *testing.T) {
	in := ProductInput{
		Name:         strPtr("Widget"),
		QuantitySold: intPtr(0),
		UnitPrice:    floatPtr(10),
	}
	assert.Error(t, in.ValidateCreate())
}

func TestApplyUpdateReplacesNameAndStock(t *testing.T) {
	p := Product{Name: "Widget", QuantityInStock: 100, QuantitySold: 5, UnitPrice: 10, Revenue: 50}

	p.ApplyUpdate(ProductInput{Name: strPtr("Gadget"), QuantityInStock: intPtr(42)})

	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, 42, p.QuantityInStock)
	// the sales trio is untouched
	assert.Equal(t, 5, p.QuantitySold)
	assert.Equal(t, 10.0, p.UnitPrice)
	assert.Equal(t, 50.0, p.Revenue)
}

func TestApplyUpdatePairedAccumulation(t *testing.T) {
	p := Product{Name: "Widget", QuantityInStock: 100, QuantitySold: 0, UnitPrice: 10, Revenue: 0}

	p.ApplyUpdate(ProductInput{QuantitySold: intPtr(5), UnitPrice: floatPtr(12)})
	assert.Equal(t, 5, p.QuantitySold)
	assert.Equal(t, 12.0, p.UnitPrice)
	assert.Equal(t, 60.0, p.Revenue)

	p.ApplyUpdate(ProductInput{QuantitySold: intPtr(3), UnitPrice: floatPtr(15)})
	assert.Equal(t, 8, p.QuantitySold)
	assert.Equal(t, 15.0, p.UnitPrice)
	assert.Equal(t, 105.0, p.Revenue)
}

func TestApplyUpdateDropsLoneHalfOfPair(t *testing.T) {
	p := Product{Name: "Widget", QuantityInStock: 100, QuantitySold: 5, UnitPrice: 12, Revenue: 60}

	p.ApplyUpdate(ProductInput{QuantitySold: intPtr(5)})
	assert.Equal(t, 5, p.QuantitySold)
	assert.Equal(t, 12.0, p.UnitPrice)
	assert.Equal(t, 60.0, p.Revenue)

	p.ApplyUpdate(ProductInput{UnitPrice: floatPtr(99)})
	assert.Equal(t, 5, p.QuantitySold)
	assert.Equal(t, 12.0, p.UnitPrice)
	assert.Equal(t, 60.0, p.Revenue)
}
