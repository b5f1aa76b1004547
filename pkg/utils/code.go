package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSKU generates a unique product SKU
func GenerateSKU() string {
	return "SKU-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateInvoiceNo generates a unique invoice number carrying the sale date
func GenerateInvoiceNo(t time.Time) string {
	return "INV-" + t.Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateStaffCardID generates a unique staff ID-card number
func GenerateStaffCardID() string {
	return "EMP-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateLoyaltyCardNumber generates a unique loyalty card number
func GenerateLoyaltyCardNumber() string {
	return "MBR-" + strings.ToUpper(uuid.New().String()[:8])
}
