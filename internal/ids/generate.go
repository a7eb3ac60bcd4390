// Package ids generates and matches the identifiers used for projects and tasks.
package ids

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// Length is the length of identifiers returned by New.
const Length = 26

// base32hex keeps the lexical order of the encoded bytes.
var encoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// New returns a collision-resistant identifier that sorts by creation time.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Encode(id)
}

// Encode renders a UUID as a lowercase base32hex identifier.
func Encode(id uuid.UUID) string {
	return strings.ToLower(encoding.EncodeToString(id[:]))
}
