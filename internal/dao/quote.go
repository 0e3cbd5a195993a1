package dao

import (
	"context"
	"fmt"

	"github.com/b3/b3t/internal/model1"
)

func init() {
	RegisterAccessor(&QuoteRID, &Quotes{})
}

// Quotes is the DAO for quotes.
type Quotes struct {
	StoreResource
}

// Lines returns the lines of a quote.
func (q *Quotes) Lines(ctx context.Context, id string) ([]model1.Record, error) {
	rec, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	raw, ok := rec["lines"].([]any)
	if !ok {
		return nil, fmt.Errorf("quote %q has no lines", id)
	}

	out := make([]model1.Record, 0, len(raw))
	for _, l := range raw {
		out = append(out, model1.Unwrap(l))
	}
	return out, nil
}
