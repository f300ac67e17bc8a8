//go:build unit || e2e

package builder

import (
	"storefront/internal/domain/product"
	"storefront/internal/pkg/money"
	"storefront/internal/usecase/queries"
)

type ProductBuilder struct {
	ID         int64
	Title      string
	PriceCents int64
	Thumbnail  string
	Category   string
	Stock      int32
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:         1,
		Title:      "Essence Mascara Lash Princess",
		PriceCents: 9_99,
		Thumbnail:  "https://cdn.example.com/1/thumbnail.png",
		Category:   "beauty",
		Stock:      5,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildSnapshot() product.Snapshot {
	return product.Snapshot{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: money.Cents(p.PriceCents),
		Thumbnail:  p.Thumbnail,
		Category:   p.Category,
		Stock:      p.Stock,
	}
}

func (p *ProductBuilder) BuildView() queries.ProductView {
	return queries.ProductView{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: p.PriceCents,
		Price:      money.Cents(p.PriceCents).Float(),
		Thumbnail:  p.Thumbnail,
		Category:   p.Category,
		Stock:      p.Stock,
	}
}

// BuildDTO returns the JSON shape the add-item endpoints accept.
func (p *ProductBuilder) BuildDTO() map[string]any {
	return map[string]any{
		"id":        p.ID,
		"title":     p.Title,
		"price":     money.Cents(p.PriceCents).Float(),
		"thumbnail": p.Thumbnail,
		"category":  p.Category,
		"stock":     p.Stock,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithID(id int64) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithTitle(title string) *ProductBuilder {
	p.Title = title
	return p
}

func (p *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	p.PriceCents = cents
	return p
}

func (p *ProductBuilder) WithCategory(category string) *ProductBuilder {
	p.Category = category
	return p
}

func (p *ProductBuilder) WithStock(stock int32) *ProductBuilder {
	p.Stock = stock
	return p
}
