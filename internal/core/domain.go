package core

import (
	"errors"
	"regexp"
	"strings"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

const (
	Necessary    Bucket = "necessary"
	Controllable Bucket = "controllable"
	Unnecessary  Bucket = "unnecessary"
)

// Uncategorized is the sentinel group name used during aggregation for
// transactions whose category is absent or blank. It is never stored.
const Uncategorized = "uncategorized"

// CategoryOther is the category selection that requires a custom label.
const CategoryOther = "other"

type (
	TxType string

	Bucket string

	// Transaction mirrors the API wire representation. Amount stays a
	// decimal string; it is parsed to a number only for display and
	// aggregation, never rewritten.
	Transaction struct {
		ID         int64   `json:"id"`
		Type       TxType  `json:"tx_type"`
		Amount     string  `json:"amount"`
		Currency   string  `json:"currency"`
		Category   *string `json:"category"`
		Bucket     *Bucket `json:"bucket"`
		OccurredOn string  `json:"occurred_on"` // YYYY-MM-DD
		Note       *string `json:"note"`
	}

	// Draft is a transaction about to be submitted via quick-create.
	// Category holds the selected category; CustomCategory is only
	// consulted when Category is CategoryOther.
	Draft struct {
		Type           TxType
		Amount         string
		Currency       string
		Category       string
		CustomCategory string
		Bucket         Bucket
		OccurredOn     string
		Note           string
	}
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive finite number")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidBucket = errors.New("invalid bucket")
	ErrInvalidDate   = errors.New("date must be formatted YYYY-MM-DD")
	ErrEmptyCategory = errors.New("custom category required for 'other'")
	ErrEmptyCurrency = errors.New("empty currency code")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

func (b Bucket) Valid() bool {
	switch b {
	case Necessary, Controllable, Unnecessary:
		return true
	}
	return false
}

// ValidDate reports whether s is a fixed-width YYYY-MM-DD date string.
// Only strings in this form may be compared lexicographically for
// chronological ordering and range filtering.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// FinalCategory resolves the category that would be submitted: the
// selection as-is, or the normalized custom label when the selection is
// CategoryOther. The second return is false when "other" is selected
// but normalization yields nothing.
func (d Draft) FinalCategory() (string, bool) {
	if d.Category != CategoryOther {
		return d.Category, true
	}
	c := NormalizeCategory(d.CustomCategory)
	return c, c != ""
}

// Validate checks a draft before any network call is made. It returns
// the first problem found; a nil error means the draft may be submitted.
func (d Draft) Validate() error {
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if _, ok := ParseAmount(d.Amount); !ok {
		return ErrInvalidAmount
	}
	if _, ok := d.FinalCategory(); !ok {
		return ErrEmptyCategory
	}
	if d.Type == Expense && d.Bucket != "" && !d.Bucket.Valid() {
		return ErrInvalidBucket
	}
	if !ValidDate(d.OccurredOn) {
		return ErrInvalidDate
	}
	if strings.TrimSpace(d.Currency) == "" {
		return ErrEmptyCurrency
	}
	return nil
}
