package catalog

import "time"

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	OriginalPrice   *float64  `json:"originalPrice,omitempty"`
	CategoryID      string    `json:"categoryId"`
	CategoryName    string    `json:"categoryName,omitempty"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Image           string    `json:"image"`
	Images          []string  `json:"images"`
	EcoTag          string    `json:"ecoTag,omitempty"`
	InStock         bool      `json:"inStock"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviews"`
	Features        []string  `json:"features"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateParams carries a partial product update. A nil field means "leave the
// stored value alone"; a non-nil field overwrites, including zero values like
// false or 0.
type UpdateParams struct {
	Name            *string   `json:"name"`
	Price           *float64  `json:"price"`
	OriginalPrice   *float64  `json:"originalPrice"`
	CategoryID      *string   `json:"categoryId"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	Image           *string   `json:"image"`
	Images          *[]string `json:"images"`
	EcoTag          *string   `json:"ecoTag"`
	InStock         *bool     `json:"inStock"`
	Rating          *float64  `json:"rating"`
	ReviewCount     *int      `json:"reviews"`
	Features        *[]string `json:"features"`
}

func (p *UpdateParams) hasAnyField() bool {
	return p.Name != nil || p.Price != nil || p.OriginalPrice != nil ||
		p.CategoryID != nil || p.Description != nil || p.FullDescription != nil ||
		p.Image != nil || p.Images != nil || p.EcoTag != nil || p.InStock != nil ||
		p.Rating != nil || p.ReviewCount != nil || p.Features != nil
}
