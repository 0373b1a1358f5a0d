package core

import "strings"

// CategorySlice is one named, summed group of transaction amounts,
// feeding a proportional chart. Ephemeral: recomputed on every input
// change, never persisted.
type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AggregateByCategory reduces transactions into per-category sums for
// one transaction type. A transaction contributes iff its type matches
// kind and its amount parses to a finite number > 0; everything else is
// silently skipped. Category names are trimmed, and an absent or blank
// category folds into the Uncategorized group.
//
// Output order is first-seen category order; callers wanting a
// descending top-N re-sort themselves. Trimming is the only
// normalization applied here, so "rent" and "Rent " stay distinct
// groups even though quick-create lower-cases custom labels. That
// mismatch is inherited product behavior; changing it would regroup
// existing charts.
func AggregateByCategory(txs []Transaction, kind TxType) []CategorySlice {
	index := make(map[string]int)
	var slices []CategorySlice

	for _, tx := range txs {
		if tx.Type != kind {
			continue
		}
		v, ok := ParseAmount(tx.Amount)
		if !ok {
			continue
		}

		name := Uncategorized
		if tx.Category != nil {
			if trimmed := strings.TrimSpace(*tx.Category); trimmed != "" {
				name = trimmed
			}
		}

		if i, seen := index[name]; seen {
			slices[i].Value += v
		} else {
			index[name] = len(slices)
			slices = append(slices, CategorySlice{Name: name, Value: v})
		}
	}

	return slices
}
