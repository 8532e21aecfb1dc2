package storeapi

// Wire types for the DummyJSON-style demo store API. Field names follow the
// upstream JSON payloads; these records are read-only once fetched.

type Product struct {
	ID                   int        `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage"`
	Rating               float64    `json:"rating"`
	Stock                int        `json:"stock"`
	Brand                string     `json:"brand"`
	SKU                  string     `json:"sku"`
	Weight               float64    `json:"weight"`
	Dimensions           Dimensions `json:"dimensions"`
	WarrantyInformation  string     `json:"warrantyInformation"`
	ShippingInformation  string     `json:"shippingInformation"`
	AvailabilityStatus   string     `json:"availabilityStatus"`
	ReturnPolicy         string     `json:"returnPolicy"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity"`
	Thumbnail            string     `json:"thumbnail"`
	Images               []string   `json:"images"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type User struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Username  string  `json:"username"`
	Image     string  `json:"image"`
	Role      string  `json:"role"`
	Address   Address `json:"address"`
	Company   Company `json:"company"`
	Bank      Bank    `json:"bank"`
	UserAgent string  `json:"userAgent"`
}

type Address struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	PostalCode  string      `json:"postalCode"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Company struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

type Bank struct {
	CardType   string `json:"cardType"`
	CardNumber string `json:"cardNumber"`
	Currency   string `json:"currency"`
}

type Cart struct {
	ID              int           `json:"id"`
	Products        []CartProduct `json:"products"`
	Total           float64       `json:"total"`
	DiscountedTotal float64       `json:"discountedTotal"`
	UserID          int           `json:"userId"`
	TotalProducts   int           `json:"totalProducts"`
	TotalQuantity   int           `json:"totalQuantity"`
}

type CartProduct struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Total              float64 `json:"total"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	Thumbnail          string  `json:"thumbnail"`
}

type CartsResponse struct {
	Carts []Cart `json:"carts"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

type UsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
