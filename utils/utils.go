package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBookingReference returns a short human-friendly booking reference
func GenerateBookingReference() string {
	id := strings.ToUpper(uuid.NewString())
	return "APT-" + strings.ReplaceAll(id, "-", "")[:10]
}

// GenerateReceiptID returns a unique receipt identifier for a payment order
func GenerateReceiptID() string {
	return "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:18]
}
