package domain

type Product struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Stock       int     `json:"stock" bson:"stock"`
	CreatedAt   string  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ProductPatch describes a partial product update; nil fields stay
// untouched. A full PUT replace is just a patch with every field set.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

func (p ProductPatch) ApplyTo(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
}
