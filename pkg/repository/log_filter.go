package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultLogLimit = 100

// LogFilter narrows activity log listings. Nil fields are ignored.
type LogFilter struct {
	BabyID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
}

// where renders the filter as SQL starting after the family_id clause.
// timeCol is the column the From/To range applies to ($1 is family_id).
func (f LogFilter) where(timeCol string) (string, []any) {
	var b strings.Builder
	args := []any{}
	idx := 2

	if f.BabyID != nil {
		fmt.Fprintf(&b, " AND baby_id = $%d", idx)
		args = append(args, *f.BabyID)
		idx++
	}
	if f.From != nil {
		fmt.Fprintf(&b, " AND %s >= $%d", timeCol, idx)
		args = append(args, *f.From)
		idx++
	}
	if f.To != nil {
		fmt.Fprintf(&b, " AND %s <= $%d", timeCol, idx)
		args = append(args, *f.To)
		idx++
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	fmt.Fprintf(&b, " ORDER BY %s DESC LIMIT $%d", timeCol, idx)
	args = append(args, limit)

	return b.String(), args
}
