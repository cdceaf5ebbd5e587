package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the persistence model for credit trades
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	CreditID        uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount          string    `gorm:"type:decimal(12,2);not null"`
	PricePerUnit    string    `gorm:"type:decimal(10,2);not null"`
	TotalPrice      string    `gorm:"type:decimal(12,2);not null"`
	TransactionDate time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);default:'pending'"`

	Credit *CreditLot `gorm:"foreignKey:CreditID;constraint:OnDelete:CASCADE"`
	Buyer  *User      `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	Seller *User      `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (Transaction) TableName() string {
	return "transactions"
}
