package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation detects a unique-index conflict from either backend
// without importing driver-specific error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if strings.Contains(err.Error(), "duplicate key") { // postgres
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") // sqlite
}

// toLowerPattern lowercases user input for LOWER(...) LIKE matching.
func toLowerPattern(s string) string {
	return strings.ToLower(s)
}

// notFound maps gorm's record-not-found onto a repository sentinel.
func notFound(err, sentinel error) error {
	if err == gorm.ErrRecordNotFound {
		return sentinel
	}
	return err
}
