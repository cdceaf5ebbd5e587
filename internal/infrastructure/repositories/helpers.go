package repositories

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a uniqueness constraint failure.
// Covers the gorm translated error plus the raw driver messages from postgres
// and sqlite, which tests run against.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// decimalOrZero parses a stored decimal column. Ledger columns are always
// written via decimal.Decimal.String, so a parse failure means corruption;
// zero keeps readers total rather than panicking mid-query.
func decimalOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
