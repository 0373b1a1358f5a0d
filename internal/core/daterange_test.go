package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{From: "2025-01-10", To: "2025-01-20"}

	tests := []struct {
		date string
		want bool
	}{
		{"2025-01-09", false},
		{"2025-01-10", true}, // lower bound inclusive
		{"2025-01-15", true},
		{"2025-01-20", true}, // upper bound inclusive
		{"2025-01-21", false},
		{"2024-12-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.date))
		})
	}
}

func TestFilterByRange(t *testing.T) {
	txs := []Transaction{
		tx(Expense, strptr("a"), "1", "2025-01-05"),
		tx(Expense, strptr("b"), "2", "2025-01-10"),
		tx(Income, strptr("c"), "3", "2025-01-15"),
		tx(Expense, strptr("d"), "4", "2025-02-01"),
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		got := FilterByRange(txs, DateRange{From: "2025-01-10", To: "2025-01-15"})
		assert.Len(t, got, 2)
		assert.Equal(t, "2025-01-10", got[0].OccurredOn)
		assert.Equal(t, "2025-01-15", got[1].OccurredOn)
	})

	t.Run("inverted range yields empty", func(t *testing.T) {
		got := FilterByRange(txs, DateRange{From: "2025-02-01", To: "2025-01-01"})
		assert.Empty(t, got)
	})

	t.Run("empty range yields empty", func(t *testing.T) {
		got := FilterByRange(txs, DateRange{})
		assert.Empty(t, got)
	})

	t.Run("no transactions", func(t *testing.T) {
		got := FilterByRange(nil, DateRange{From: "2025-01-01", To: "2025-12-31"})
		assert.Empty(t, got)
	})
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	r := LastNDays(now, 30)

	assert.Equal(t, "2025-02-13", r.From)
	assert.Equal(t, "2025-03-15", r.To)
	assert.True(t, r.Contains(r.From))
	assert.True(t, r.Contains(r.To))
}
