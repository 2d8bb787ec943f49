package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingReference(t *testing.T) {
	ref := GenerateBookingReference()

	assert.True(t, strings.HasPrefix(ref, "APT-"))
	assert.Len(t, ref, len("APT-")+10)

	// References are unique enough for human-facing lookups
	assert.NotEqual(t, ref, GenerateBookingReference())
}

func TestGenerateReceiptID(t *testing.T) {
	receipt := GenerateReceiptID()

	assert.True(t, strings.HasPrefix(receipt, "rcpt_"))
	assert.NotEqual(t, receipt, GenerateReceiptID())
}
