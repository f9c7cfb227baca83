package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewReferenceNo builds a short customer-facing reference like "ORD-3F2A9C1D".
func NewReferenceNo(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", prefix, id[:8])
}
