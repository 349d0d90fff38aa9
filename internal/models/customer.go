package models

import "time"

// Customer represents a row of the clientes table. Email carries a unique
// constraint at the storage level; see CustomerService for the enforcement
// contract.
type Customer struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome"`
	Email     string    `json:"email" gorm:"column:email"`
	CreatedAt time.Time `json:"data_criacao" gorm:"column:data_criacao"`
}

// TableName maps Customer onto the clientes table.
func (Customer) TableName() string {
	return "clientes"
}

// CustomerPage is the resource-named page envelope for customer listings.
type CustomerPage struct {
	Customers  []Customer `json:"clientes"`
	Pagination Pagination `json:"pagination"`
}
