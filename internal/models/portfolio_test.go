package models

import (
	"testing"

	"gorm.io/datatypes"
)

func TestParseProducts(t *testing.T) {
	p := Portfolio{Products: datatypes.JSON(`[{"code":"product-flow","name":"Product Flow"}]`)}
	products := p.ParseProducts()
	if len(products) != 1 || products[0].Code != "product-flow" {
		t.Fatalf("unexpected products: %v", products)
	}
	if !p.HasProduct("product-flow") || p.HasProduct("other") {
		t.Fatal("HasProduct mismatch")
	}
}

func TestParseProductsLegacyString(t *testing.T) {
	// Older records stored the array as a JSON string.
	p := Portfolio{Products: datatypes.JSON(`"[{\"code\":\"web\",\"name\":\"Web App\"}]"`)}
	products := p.ParseProducts()
	if len(products) != 1 || products[0].Name != "Web App" {
		t.Fatalf("unexpected products from legacy form: %v", products)
	}
}

func TestParseProductsUnreadable(t *testing.T) {
	p := Portfolio{Products: datatypes.JSON(`{broken`)}
	if got := p.ParseProducts(); got != nil {
		t.Fatalf("expected nil for unreadable column, got %v", got)
	}
}

func TestSetProductsRoundTrip(t *testing.T) {
	var p Portfolio
	if err := p.SetProducts([]Product{{Code: "a", Name: "A"}, {Code: "b", Name: "B"}}); err != nil {
		t.Fatalf("set products: %v", err)
	}
	if got := p.ParseProducts(); len(got) != 2 || got[1].Code != "b" {
		t.Fatalf("unexpected round trip: %v", got)
	}
}
