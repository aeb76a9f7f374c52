package material

import (
	"fmt"
	"time"
)

type Category struct {
	ID           string
	Code         string
	Name         string
	Description  *string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NextCategoryCode formats the sequential category code, "CAT001" style.
func NextCategoryCode(seq int) string {
	return fmt.Sprintf("CAT%03d", seq)
}
