package catalog

// Product is a poster or sticker in the storefront catalog. ID is the stable
// identity used by the cart and by reviews; ASIN is the public catalog key
// used in product URLs and search, never for cart or review identity.
type Product struct {
	ID          int     `json:"id" yaml:"id" db:"id"`
	Name        string  `json:"name" yaml:"name" db:"name"`
	Description string  `json:"description" yaml:"description" db:"description"`
	Price       float64 `json:"price" yaml:"price" db:"price"`
	SKU         string  `json:"sku" yaml:"sku" db:"sku"`
	ASIN        string  `json:"asin" yaml:"asin" db:"asin"`
	Quantity    int     `json:"quantity" yaml:"quantity" db:"quantity"`
	Image       string  `json:"image" yaml:"image" db:"image"`
	AmazonImage string  `json:"amazon_image" yaml:"amazon_image" db:"amazon_image"`
}

// ProductCard is a product decorated with its rating for catalog listings.
type ProductCard struct {
	Product
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}
