package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateConfirmToken returns the opaque string mailed out in
// confirmation links. uuid v4 is backed by crypto/rand.
func GenerateConfirmToken() string {
	return uuid.NewString()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BILL CODE ====================

// GenerateBillCode creates a human-readable order code.
// Format: BILL-YYYYMMDD-HHMMSS-RANDOM
func GenerateBillCode() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("BILL-%s-%s-%s", datePart, timePart, randomPart)
}
