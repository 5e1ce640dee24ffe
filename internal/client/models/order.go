package models

type CartItem struct {
	ID        int     `json:"id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Type      string  `json:"type"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Type     string  `json:"type"`
}

type OrderUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order mirrors the backend's order record. CreatedAt is kept as the raw
// string the API sends; the client only displays it.
type Order struct {
	ID        int         `json:"id"`
	User      OrderUser   `json:"user"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt"`
}

// DeliveryCharge is the flat delivery fee added to every order, in EGP.
const DeliveryCharge = 25

// OrderProduct is one purchased cart line in the order payload.
type OrderProduct struct {
	ID    int     `json:"id"`
	Price float64 `json:"price"`
}

// PaymentDetails is the body of POST /orders. Contact carries the buyer's
// email or phone, whichever was given. InstaPayNumber is excluded from the
// JSON body: it travels only as its own field of the multipart variant.
type PaymentDetails struct {
	PaymentMethod  string         `json:"payment_method"`
	Contact        string         `json:"contact"`
	DeliveryCharge float64        `json:"delivery_charge"`
	TotalAmount    float64        `json:"total_amount"`
	Products       []OrderProduct `json:"products"`
	InstaPayNumber string         `json:"-"`
}
