package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Product is a named unit within a portfolio, identified by its code.
type Product struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Portfolio is the top-level tenant grouping. Code is the primary identifier
// and is immutable once created.
type Portfolio struct {
	Code             string                       `gorm:"primaryKey" json:"code"`
	OrganizationName string                       `gorm:"not null" json:"organizationName"`
	Name             string                       `gorm:"not null" json:"name"`
	Owners           datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"owners"`
	Products         datatypes.JSON               `gorm:"type:jsonb" json:"products"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`
}

// ParseProducts deserializes the products column. The column may hold the
// array directly or a JSON string wrapping it (older records); anything
// unreadable yields an empty list, never an error.
func (p *Portfolio) ParseProducts() []Product {
	if len(p.Products) == 0 {
		return nil
	}
	var products []Product
	if err := json.Unmarshal(p.Products, &products); err == nil {
		return products
	}
	var s string
	if err := json.Unmarshal(p.Products, &s); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(s), &products); err != nil {
		return nil
	}
	return products
}

// SetProducts serializes the product list back into the column.
func (p *Portfolio) SetProducts(products []Product) error {
	b, err := json.Marshal(products)
	if err != nil {
		return err
	}
	p.Products = b
	return nil
}

// HasProduct reports whether the portfolio contains a product with the code.
func (p *Portfolio) HasProduct(code string) bool {
	for _, prod := range p.ParseProducts() {
		if prod.Code == code {
			return true
		}
	}
	return false
}
