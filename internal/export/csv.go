// Package export writes generated datasets to CSV for inspection or use
// as fixtures elsewhere. Amounts are rendered as SEK with two decimals.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mockbok-dev/mockbok/internal/model"
)

const dateFormat = "2006-01-02"

// AccountHeader is the header row of accounts.csv.
var AccountHeader = []string{"id", "number", "name_sv", "name_en", "bas_class", "class_description", "parent_id", "active", "created_at"}

// TransactionHeader is the header row of transactions.csv.
var TransactionHeader = []string{"id", "date", "description", "amount_sek", "currency", "account_number", "bas_class", "debit_credit", "vat_amount_sek", "vat_rate", "reference"}

// WriteAccounts writes accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(AccountHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range accounts {
		row := []string{
			a.ID,
			strconv.Itoa(a.Number),
			a.NameSV,
			a.NameEN,
			strconv.Itoa(int(a.Class)),
			a.ClassDescription,
			a.ParentID,
			strconv.FormatBool(a.Active),
			a.CreatedAt.Format(dateFormat),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteTransactions writes transactions.csv.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(TransactionHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		vatAmount := ""
		vatRate := ""
		if tx.VATAmount != nil {
			vatAmount = sek(*tx.VATAmount)
		}
		if tx.VATRate != nil {
			vatRate = strconv.Itoa(*tx.VATRate)
		}
		row := []string{
			tx.ID,
			tx.Date.Format(dateFormat),
			tx.Description,
			sek(tx.Amount),
			tx.Currency,
			strconv.Itoa(tx.AccountNumber),
			strconv.Itoa(int(tx.Class)),
			string(tx.DebitCredit),
			vatAmount,
			vatRate,
			tx.Reference,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// sek renders öre as a SEK string with two decimals, e.g. 12345 -> "123.45".
func sek(ore int64) string {
	return decimal.New(ore, -2).StringFixed(2)
}
