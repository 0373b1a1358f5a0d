package core

import "time"

// DateRange is an inclusive calendar-date window with YYYY-MM-DD
// bounds. From > To is not an error: such a range simply contains
// nothing.
type DateRange struct {
	From string
	To   string
}

// Contains reports whether date falls inside the range, bounds
// included. Plain string comparison is correct because the date format
// is fixed-width and zero-padded; anything else must be rejected before
// it gets here.
func (r DateRange) Contains(date string) bool {
	return date >= r.From && date <= r.To
}

// FilterByRange returns the transactions whose occurred_on date lies
// inside r. Total: never errors, and an inverted or empty range yields
// an empty result.
func FilterByRange(txs []Transaction, r DateRange) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if r.Contains(tx.OccurredOn) {
			out = append(out, tx)
		}
	}
	return out
}

// LastNDays builds the default dashboard range: the n days up to and
// including now's date.
func LastNDays(now time.Time, n int) DateRange {
	return DateRange{
		From: now.AddDate(0, 0, -n).Format(time.DateOnly),
		To:   now.Format(time.DateOnly),
	}
}
