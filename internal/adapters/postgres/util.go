package postgres

import (
	"strings"
)

// isUniqueViolation detects a duplicate-key insert, which the
// idempotency repository treats as an already-reserved key.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
