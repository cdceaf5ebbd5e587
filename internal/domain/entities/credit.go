package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// CreditStatus represents a credit lot's trading state
type CreditStatus string

const (
	CreditStatusAvailable CreditStatus = "available"
	CreditStatusReserved  CreditStatus = "reserved"
	CreditStatusSold      CreditStatus = "sold"
	CreditStatusExpired   CreditStatus = "expired"
)

// CreditLot represents a quantity of issued carbon credits sharing one
// certificate identifier. Splitting a lot during a partial purchase conserves
// total quantity across the resulting lots.
type CreditLot struct {
	ID                      uuid.UUID       `json:"id"`
	ProjectID               uuid.UUID       `json:"projectId"`
	AssessmentID            uuid.UUID       `json:"assessmentId"`
	CreditAmount            decimal.Decimal `json:"creditAmount"`
	IssuanceDate            time.Time       `json:"issuanceDate"`
	ExpiryDate              time.Time       `json:"expiryDate"`
	CertificateID           string          `json:"certificateId"`
	Status                  CreditStatus    `json:"status"`
	PricePerCredit          decimal.Decimal `json:"pricePerCredit"`
	VerificationDocumentURL null.String     `json:"verificationDocumentUrl,omitempty"`
}

// CreditListing is a marketplace view of an available credit lot.
type CreditListing struct {
	CreditLot
	ProjectName string      `json:"projectName"`
	ProjectType ProjectType `json:"projectType"`
	SellerID    uuid.UUID   `json:"sellerId"`
	SellerName  string      `json:"sellerName"`
}

// PurchaseInput represents input for a credit purchase
type PurchaseInput struct {
	Amount string `json:"amount" binding:"required"`
}
