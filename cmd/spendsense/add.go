package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spendsense/internal/core"
)

var (
	addType     string
	addAmount   string
	addCategory string
	addCustom   string
	addBucket   string
	addDate     string
	addNote     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a transaction",
	Long: `Create a transaction. The draft is validated locally before anything is
sent: the amount must be a positive finite number, and picking the category
"other" requires --custom-category, which is normalized (lower-cased,
underscored) before submission.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, dash := bootstrap()

		date := addDate
		if date == "" {
			date = time.Now().Format(time.DateOnly)
		}

		draft := core.Draft{
			Type:           core.TxType(addType),
			Amount:         addAmount,
			Category:       addCategory,
			CustomCategory: addCustom,
			Bucket:         core.Bucket(addBucket),
			OccurredOn:     date,
			Note:           addNote,
		}

		tx, err := dash.Create(context.Background(), draft)
		if err != nil {
			return err
		}

		fmt.Printf("Saved transaction %d: %s %s %s on %s\n",
			tx.ID, tx.Type, tx.Currency, tx.Amount, tx.OccurredOn)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addType, "type", string(core.Expense), "transaction type: income or expense")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "amount, e.g. 12.50")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category name, or 'other' with --custom-category")
	addCmd.Flags().StringVar(&addCustom, "custom-category", "", "custom category label when --category=other")
	addCmd.Flags().StringVar(&addBucket, "bucket", "", "expense bucket: necessary, controllable or unnecessary")
	addCmd.Flags().StringVar(&addDate, "date", "", "occurrence date (YYYY-MM-DD), defaults to today")
	addCmd.Flags().StringVar(&addNote, "note", "", "optional note")
	_ = addCmd.MarkFlagRequired("amount")
}
