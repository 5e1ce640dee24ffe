package models

// ProductType narrows the catalog to its two top-level kinds.
type ProductType string

const (
	ProductBook    ProductType = "book"
	ProductClothes ProductType = "clothes"
	ProductAll     ProductType = "all"
)

type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Image       string      `json:"image"`
	Type        ProductType `json:"type"`
	Price       float64     `json:"price"`
	Rating      float64     `json:"rating"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Condition   string      `json:"condition,omitempty"`
	Approved    bool        `json:"approved,omitempty"`
	SellerID    int         `json:"seller_id,omitempty"`
}

// UpdateProductPayload is the body of PUT /products/{id}.
type UpdateProductPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
}

// NewProduct collects the fields a seller submits when listing an item.
// Images travel alongside as multipart file parts.
type NewProduct struct {
	Name        string
	Description string
	Category    string
	Condition   string
	Price       float64
	Type        ProductType
}

type Comment struct {
	ID      int    `json:"id"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
	User    string `json:"user"`
	Date    string `json:"date"`
}
