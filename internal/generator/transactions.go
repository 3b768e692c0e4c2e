package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mockbok-dev/mockbok/internal/bas"
	"github.com/mockbok-dev/mockbok/internal/model"
	"github.com/mockbok-dev/mockbok/internal/prng"
)

// ErrNoAccounts reports that transactions were requested against an empty
// chart of accounts. Returning an empty dataset instead would silently
// violate the generation invariant, so this always fails loudly.
var ErrNoAccounts = errors.New("cannot generate transactions without accounts")

// Generator produces the synthetic transaction dataset for one
// configuration. Not safe for concurrent use.
type Generator struct {
	rng *prng.Source
	cfg model.GenerationConfig
}

// New creates a Generator seeded from the configuration.
func New(cfg model.GenerationConfig) *Generator {
	return &Generator{rng: prng.New(cfg.Seed), cfg: cfg}
}

// GenerateTransactions produces cfg.DatasetSize transactions attached to
// the given accounts, sorted newest first. The sort is stable, so equal
// dates keep generation order.
func (g *Generator) GenerateTransactions(accounts []model.Account) ([]model.Transaction, error) {
	if g.cfg.DatasetSize > 0 && len(accounts) == 0 {
		return nil, fmt.Errorf("dataset size %d: %w", g.cfg.DatasetSize, ErrNoAccounts)
	}

	spanMillis := g.cfg.DateRangeEnd.Sub(g.cfg.DateRangeStart).Milliseconds()
	txs := make([]model.Transaction, 0, g.cfg.DatasetSize)
	for i := 0; i < g.cfg.DatasetSize; i++ {
		tx, err := g.generateOne(accounts, spanMillis)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs, nil
}

func (g *Generator) generateOne(accounts []model.Account, spanMillis int64) (model.Transaction, error) {
	account := &accounts[g.rng.IntN(len(accounts))]

	date := g.pickDate(spanMillis)

	lo, hi, err := bas.AmountBand(account.Class)
	if err != nil {
		return model.Transaction{}, err
	}
	amount := g.rng.Int64Range(lo, hi)

	phrases, err := bas.Phrases(account.Class)
	if err != nil {
		return model.Transaction{}, err
	}
	phrase := phrases[g.rng.IntN(len(phrases))]
	company := bas.CompanyNames[g.rng.IntN(len(bas.CompanyNames))]
	description := phrase + " - " + company

	side, err := g.pickSide(account.Class)
	if err != nil {
		return model.Transaction{}, err
	}

	vatAmount, vatRate := g.pickVAT(account.Class, amount)

	reference := g.pickReference(date)

	id, err := uuid.NewRandomFromReader(g.rng.Reader())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("generating transaction ID: %w", err)
	}

	return model.Transaction{
		ID:            id.String(),
		Date:          date,
		Description:   description,
		Amount:        amount,
		Currency:      "SEK",
		AccountID:     account.ID,
		Account:       account,
		Class:         account.Class,
		AccountNumber: account.Number,
		DebitCredit:   side,
		VATAmount:     vatAmount,
		VATRate:       vatRate,
		Reference:     reference,
		CreatedAt:     date,
		UpdatedAt:     date,
	}, nil
}

// pickDate interpolates a uniform instant over the range's millisecond span
// and truncates it to a calendar date.
func (g *Generator) pickDate(spanMillis int64) time.Time {
	offset := int64(g.rng.Float64() * float64(spanMillis+1))
	instant := g.cfg.DateRangeStart.Add(time.Duration(offset) * time.Millisecond).UTC()
	return time.Date(instant.Year(), instant.Month(), instant.Day(), 0, 0, 0, 0, time.UTC)
}

func (g *Generator) pickSide(class bas.Class) (model.DebitCredit, error) {
	balance, err := bas.Balance(class)
	if err != nil {
		return "", err
	}
	switch balance {
	case bas.NormalDebit:
		return model.Debit, nil
	case bas.NormalCredit:
		return model.Credit, nil
	default:
		// Financial and extraordinary items: random tie-break.
		if g.rng.Bool(0.5) {
			return model.Debit, nil
		}
		return model.Credit, nil
	}
}

// pickVAT decides VAT applicability by class probability and computes
// vatAmount = round(amount * rate / 100) with half-up rounding on öre.
// Classes whose probability is zero consume no draws.
func (g *Generator) pickVAT(class bas.Class, amount int64) (*int64, *int) {
	if !g.cfg.IncludeVAT {
		return nil, nil
	}
	p := bas.VATProbability(class)
	if p == 0 || !g.rng.Bool(p) {
		return nil, nil
	}
	rate := bas.NonZeroVATRates[g.rng.IntN(len(bas.NonZeroVATRates))]
	vat := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(int64(rate))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	return &vat, &rate
}

// pickReference synthesizes a reference code like "FAK-482913-2024". The
// year comes from the transaction's own date so the dataset stays
// reproducible regardless of when it is generated.
func (g *Generator) pickReference(date time.Time) string {
	prefix := bas.ReferencePrefixes[g.rng.IntN(len(bas.ReferencePrefixes))]
	number := 100000 + g.rng.IntN(900000)
	return fmt.Sprintf("%s-%06d-%d", prefix, number, date.Year())
}
