package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewOrderNumber generates a human-readable order number of the form
// EVT-YYYYMMDD-NNNNNN. The random suffix keeps collisions unlikely; the
// unique index on the orders table is what actually enforces uniqueness.
func NewOrderNumber(now time.Time) (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to generate order number suffix: %w", err)
	}

	return fmt.Sprintf("EVT-%s-%06d", now.Format("20060102"), suffix.Int64()), nil
}
