package models

// ProductType is an informational veg / non-veg tag.
type ProductType string

const (
	TypeVeg    ProductType = "veg"
	TypeNonVeg ProductType = "non-veg"
)

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Image       string      `json:"image,omitempty"`
	Category    string      `json:"category"`
	Type        ProductType `json:"type,omitempty"`
	Available   bool        `json:"available"`
}

// ProductPatch carries the fields of a partial product update. Nil means
// "leave unchanged".
type ProductPatch struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"`
	Image       *string      `json:"image"`
	Category    *string      `json:"category"`
	Type        *ProductType `json:"type"`
	Available   *bool        `json:"available"`
}

// Apply shallow-merges the patch into p.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Available != nil {
		p.Available = *patch.Available
	}
}
