// Package query implements the in-memory query engine: filter parsing and
// validation, deterministic pagination, and summary aggregation over the
// cached dataset. The engine only reads; it never mutates the cache and
// never re-sorts, trusting generation-time ordering (date descending).
package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mockbok-dev/mockbok/internal/bas"
	"github.com/mockbok-dev/mockbok/internal/model"
)

// MaxSearchLength caps free-text search input.
const MaxSearchLength = 200

const dateLayout = "2006-01-02"

// TransactionFilter is the raw, string-typed filter record as the caller
// supplies it. Every field is optional; empty means "no constraint".
// Values are exhaustively validated before any filtering work happens.
type TransactionFilter struct {
	DateFrom    string // inclusive lower bound, "YYYY-MM-DD"
	DateTo      string // inclusive upper bound, treated as end-of-day
	Class       string // BAS class 1-8
	AccountID   string // account UUID
	Search      string // case-insensitive substring
	DebitCredit string // "DEBIT" or "CREDIT"
	MinAmount   string // öre, inclusive
	MaxAmount   string // öre, inclusive
}

// resolvedFilter is the validated, typed form of a TransactionFilter.
type resolvedFilter struct {
	dateFrom  *time.Time
	dateTo    *time.Time
	class     *bas.Class
	accountID string
	search    string // lowercased
	side      *model.DebitCredit
	minAmount *int64
	maxAmount *int64
}

// resolve parses and validates the filter, returning every violated field.
func (f TransactionFilter) resolve() (resolvedFilter, []model.FieldError) {
	var (
		rf   resolvedFilter
		errs []model.FieldError
	)

	if f.DateFrom != "" {
		d, err := time.ParseInLocation(dateLayout, f.DateFrom, time.UTC)
		if err != nil {
			errs = append(errs, model.FieldError{Field: "dateFrom", Message: fmt.Sprintf("%q is not a valid date (want YYYY-MM-DD)", f.DateFrom)})
		} else {
			rf.dateFrom = &d
		}
	}
	if f.DateTo != "" {
		d, err := time.ParseInLocation(dateLayout, f.DateTo, time.UTC)
		if err != nil {
			errs = append(errs, model.FieldError{Field: "dateTo", Message: fmt.Sprintf("%q is not a valid date (want YYYY-MM-DD)", f.DateTo)})
		} else {
			rf.dateTo = &d
		}
	}

	if f.Class != "" {
		n, err := strconv.Atoi(f.Class)
		if err != nil || !bas.Class(n).Valid() {
			errs = append(errs, model.FieldError{Field: "basClass", Message: fmt.Sprintf("%q is not a BAS class between 1 and 8", f.Class)})
		} else {
			c := bas.Class(n)
			rf.class = &c
		}
	}

	if f.AccountID != "" {
		id, err := uuid.Parse(f.AccountID)
		if err != nil {
			errs = append(errs, model.FieldError{Field: "accountId", Message: fmt.Sprintf("%q is not a valid UUID", f.AccountID)})
		} else {
			rf.accountID = id.String()
		}
	}

	if len(f.Search) > MaxSearchLength {
		errs = append(errs, model.FieldError{Field: "search", Message: fmt.Sprintf("must not exceed %d characters", MaxSearchLength)})
	} else {
		rf.search = strings.ToLower(f.Search)
	}

	if f.DebitCredit != "" {
		side := model.DebitCredit(f.DebitCredit)
		if !side.Valid() {
			errs = append(errs, model.FieldError{Field: "debitCredit", Message: fmt.Sprintf("%q must be DEBIT or CREDIT", f.DebitCredit)})
		} else {
			rf.side = &side
		}
	}

	if f.MinAmount != "" {
		n, err := strconv.ParseInt(f.MinAmount, 10, 64)
		if err != nil {
			errs = append(errs, model.FieldError{Field: "minAmount", Message: fmt.Sprintf("%q is not an integer öre amount", f.MinAmount)})
		} else {
			rf.minAmount = &n
		}
	}
	if f.MaxAmount != "" {
		n, err := strconv.ParseInt(f.MaxAmount, 10, 64)
		if err != nil {
			errs = append(errs, model.FieldError{Field: "maxAmount", Message: fmt.Sprintf("%q is not an integer öre amount", f.MaxAmount)})
		} else {
			rf.maxAmount = &n
		}
	}
	if rf.minAmount != nil && rf.maxAmount != nil && *rf.minAmount > *rf.maxAmount {
		errs = append(errs, model.FieldError{Field: "minAmount", Message: "must not exceed maxAmount"})
	}

	return rf, errs
}

// matches applies all predicates, AND-ed.
func (rf resolvedFilter) matches(tx model.Transaction) bool {
	if rf.dateFrom != nil && tx.Date.Before(*rf.dateFrom) {
		return false
	}
	if rf.dateTo != nil {
		endOfDay := rf.dateTo.Add(24*time.Hour - time.Nanosecond)
		if tx.Date.After(endOfDay) {
			return false
		}
	}
	if rf.class != nil && tx.Class != *rf.class {
		return false
	}
	if rf.accountID != "" && tx.AccountID != rf.accountID {
		return false
	}
	if rf.side != nil && tx.DebitCredit != *rf.side {
		return false
	}
	if rf.minAmount != nil && tx.Amount < *rf.minAmount {
		return false
	}
	if rf.maxAmount != nil && tx.Amount > *rf.maxAmount {
		return false
	}
	if rf.search != "" && !rf.matchesSearch(tx) {
		return false
	}
	return true
}

// matchesSearch is an any-of match over description, reference, and the
// owning account's name.
func (rf resolvedFilter) matchesSearch(tx model.Transaction) bool {
	if strings.Contains(strings.ToLower(tx.Description), rf.search) {
		return true
	}
	if strings.Contains(strings.ToLower(tx.Reference), rf.search) {
		return true
	}
	if tx.Account != nil && strings.Contains(strings.ToLower(tx.Account.NameSV), rf.search) {
		return true
	}
	return false
}
