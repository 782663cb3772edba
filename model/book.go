package model

// Book carries the narrow slice of the book collaborator this subsystem
// reads: identity, price and visibility.
type Book struct {
	DTO
	Title         string   `json:"title"`
	PriceAmount   string   `json:"priceAmount"`
	PriceCurrency Currency `json:"priceCurrency"`
	IsHidden      bool     `json:"isHidden"`
	CreatedByID   uint     `json:"createdById"`
}

// BookPurchase records one granted book entitlement with the amount and
// currency actually paid. The composite index blocks double grants.
type BookPurchase struct {
	DTO
	BookID   uint     `gorm:"uniqueIndex:idx_book_purchase" json:"bookId"`
	UserID   uint     `gorm:"uniqueIndex:idx_book_purchase" json:"userId"`
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}
