package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents settlement state of a trade
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction records a credit purchase. Immutable once completed.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	CreditID        uuid.UUID         `json:"creditId"`
	BuyerID         uuid.UUID         `json:"buyerId"`
	SellerID        uuid.UUID         `json:"sellerId"`
	Amount          decimal.Decimal   `json:"amount"`
	PricePerUnit    decimal.Decimal   `json:"pricePerUnit"`
	TotalPrice      decimal.Decimal   `json:"totalPrice"`
	TransactionDate time.Time         `json:"transactionDate"`
	Status          TransactionStatus `json:"status"`
}
