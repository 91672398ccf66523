package service

import "github.com/google/uuid"

// IsID reports whether s has the canonical 8-4-4-4-12 hexadecimal shape
// Linear uses for entity identifiers. Case is ignored.
func IsID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
