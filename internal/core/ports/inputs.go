package ports

// CreateUserInput carries the data needed to register a user out-of-band.
type CreateUserInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

// CreateProductInput carries the data needed to add a product to the catalogue.
type CreateProductInput struct {
	Name          string  `json:"name"           validate:"required"`
	Category      string  `json:"category"       validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"gt=0"`
	SellingPrice  float64 `json:"selling_price"  validate:"gt=0"`
	Stock         int     `json:"stock"          validate:"gte=0"`
}

// Fixture is a batch of users and products to seed into an empty store.
type Fixture struct {
	Users    []CreateUserInput    `json:"users"    validate:"dive"`
	Products []CreateProductInput `json:"products" validate:"dive"`
}
