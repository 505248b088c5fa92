package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ulid.Make reads crypto/rand, so
// ids generated within the same millisecond stay distinct, including
// across concurrent requests.
func NewULID() string {
	return ulid.Make().String()
}
