package models

// CartItem is the parsed view of a single checkout item. Price arrives as the
// human-formatted string the storefront displays ("$12.50"), not a number.
type CartItem struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	ProductImg  string `json:"productImg"`
	Quantity    int64  `json:"quantity"`
	Description string `json:"description"`
}
