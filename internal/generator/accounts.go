// Package generator produces the synthetic chart of accounts and the
// transaction dataset. All randomness flows through the owned seeded
// source; the same configuration always yields a byte-identical dataset.
package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mockbok-dev/mockbok/internal/bas"
	"github.com/mockbok-dev/mockbok/internal/model"
)

// accountNamespace is the fixed UUID namespace for account identifiers.
// SHA1-derived IDs keep account generation free of randomness.
var accountNamespace = uuid.MustParse("7b8a24a6-1f6e-4e8e-9c3d-52a0b1f4d9e1")

// chartCreatedAt is the fixed creation timestamp stamped on every account.
var chartCreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// AccountID returns the deterministic identifier for a BAS account number.
func AccountID(number int) string {
	return uuid.NewSHA1(accountNamespace, []byte(fmt.Sprintf("account:%d", number))).String()
}

// GenerateAccounts maps the seed chart into fully-populated Account
// records. It is deterministic and consumes no randomness. A chart entry
// whose number falls outside its class range is a reference-data bug and
// fails the whole generation.
func GenerateAccounts() ([]model.Account, error) {
	chart := bas.SeedChart()
	accounts := make([]model.Account, 0, len(chart))
	for _, entry := range chart {
		info, err := bas.Info(entry.Class)
		if err != nil {
			return nil, fmt.Errorf("chart entry %d: %w", entry.Number, err)
		}
		min, max := entry.Class.NumberRange()
		if entry.Number < min || entry.Number > max {
			return nil, fmt.Errorf("chart entry %d outside class %d range [%d,%d]", entry.Number, entry.Class, min, max)
		}

		parentID := ""
		if entry.ParentNumber != 0 {
			parentID = AccountID(entry.ParentNumber)
		}

		accounts = append(accounts, model.Account{
			ID:               AccountID(entry.Number),
			Number:           entry.Number,
			NameSV:           entry.NameSV,
			NameEN:           entry.NameEN,
			Class:            entry.Class,
			ClassDescription: info.NameSV,
			ParentID:         parentID,
			Active:           true,
			CreatedAt:        chartCreatedAt,
		})
	}
	return accounts, nil
}
