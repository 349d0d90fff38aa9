package models

import "time"

// Product represents a row of the produtos table.
// Column and JSON names keep the Portuguese API contract of the service.
type Product struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome"`
	Price     float64   `json:"preco" gorm:"column:preco"`
	Stock     int       `json:"estoque" gorm:"column:estoque"`
	CreatedAt time.Time `json:"data_criacao" gorm:"column:data_criacao"`
}

// TableName maps Product onto the produtos table.
func (Product) TableName() string {
	return "produtos"
}

// ProductPage is the resource-named page envelope for product listings.
type ProductPage struct {
	Products   []Product  `json:"produtos"`
	Pagination Pagination `json:"pagination"`
}
