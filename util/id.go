// Package util provides utility functions for the house factory.
package util

import "github.com/google/uuid"

// NewHouseID returns a RFC4122 v4 UUID string identifying one built house.
func NewHouseID() string {
	return uuid.NewString()
}
