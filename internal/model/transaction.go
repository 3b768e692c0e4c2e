package model

import (
	"time"

	"github.com/mockbok-dev/mockbok/internal/bas"
)

// DebitCredit is the polarity of a transaction. Amounts are stored as
// unsigned magnitudes; the side lives here, never in the sign.
type DebitCredit string

const (
	Debit  DebitCredit = "DEBIT"
	Credit DebitCredit = "CREDIT"
)

// Valid reports whether d is one of the two defined polarities.
func (d DebitCredit) Valid() bool {
	return d == Debit || d == Credit
}

// Transaction is a single generated bookkeeping transaction. Amounts are in
// öre (1/100 SEK). Class and AccountNumber are denormalized from the owning
// account at generation time. Transactions are immutable after creation;
// reconfiguration replaces the whole collection.
type Transaction struct {
	ID            string
	Date          time.Time // calendar date, no time-of-day
	Description   string    // at most 200 chars
	Amount        int64     // öre, non-negative magnitude
	Currency      string    // always "SEK"
	AccountID     string
	Account       *Account // resolved account, optional embed
	Class         bas.Class
	AccountNumber int
	DebitCredit   DebitCredit
	VATAmount     *int64 // öre; set iff VATRate is set
	VATRate       *int   // percent, one of the legal rates
	Reference     string // synthetic reference/invoice code
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
