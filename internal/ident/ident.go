package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Namespace prefixes keep product and order ids visually distinct.
const (
	ProductPrefix = "PROD"
	OrderPrefix   = "ORD"
)

// New returns a prefixed, human-legible unique identifier such as
// "ORD-9F86D081".
func New(prefix string) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", prefix, raw[:8])
}
