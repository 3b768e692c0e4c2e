package query

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mockbok-dev/mockbok/internal/apierr"
	"github.com/mockbok-dev/mockbok/internal/model"
)

// Page size bounds; a zero PageSize falls back to the default.
const (
	MinPageSize     = 10
	MaxPageSize     = 100
	DefaultPageSize = 50
)

// Pagination is a zero-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

// PageInfo describes the position of a returned page within the full
// filtered set.
type PageInfo struct {
	Page        int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// Summary aggregates the whole filtered set, not just the returned page.
// All monetary fields are öre.
type Summary struct {
	DebitTotal  int64
	CreditTotal int64
	Net         int64 // DebitTotal - CreditTotal
	Count       int
	Average     int64 // mean magnitude, rounded to the nearest öre
}

// TransactionPage is one page of filtered transactions plus aggregates.
type TransactionPage struct {
	Items    []model.Transaction
	PageInfo PageInfo
	Summary  Summary
}

// Transactions filters, paginates, and summarizes the cached set. The
// cache is read-only to the engine and its order is trusted (generation
// sorts date-descending); slicing is deterministic. All filter and
// pagination violations are rejected together before any filtering work.
func Transactions(cache []model.Transaction, filter TransactionFilter, page Pagination) (*TransactionPage, error) {
	rf, errs := filter.resolve()
	errs = append(errs, page.validate()...)
	if len(errs) > 0 {
		return nil, apierr.Validation("invalid transaction query", detailMap(errs))
	}

	size := page.effectiveSize()

	var filtered []model.Transaction
	for _, tx := range cache {
		if rf.matches(tx) {
			filtered = append(filtered, tx)
		}
	}

	summary := summarize(filtered)

	total := len(filtered)
	totalPages := (total + size - 1) / size
	start := page.Page * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &TransactionPage{
		Items: filtered[start:end],
		PageInfo: PageInfo{
			Page:        page.Page,
			PageSize:    size,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNext:     page.Page < totalPages-1,
			HasPrevious: page.Page > 0 && total > 0,
		},
		Summary: summary,
	}, nil
}

func (p Pagination) validate() []model.FieldError {
	var errs []model.FieldError
	if p.Page < 0 {
		errs = append(errs, model.FieldError{Field: "page", Message: "must not be negative"})
	}
	if p.PageSize < 0 {
		errs = append(errs, model.FieldError{Field: "pageSize", Message: "must not be negative"})
	}
	return errs
}

// effectiveSize applies the default and clamps to [MinPageSize, MaxPageSize].
func (p Pagination) effectiveSize() int {
	size := p.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return size
}

func summarize(filtered []model.Transaction) Summary {
	s := Summary{Count: len(filtered)}
	var amountSum int64
	for _, tx := range filtered {
		amountSum += tx.Amount
		switch tx.DebitCredit {
		case model.Debit:
			s.DebitTotal += tx.Amount
		case model.Credit:
			s.CreditTotal += tx.Amount
		}
	}
	s.Net = s.DebitTotal - s.CreditTotal
	if s.Count > 0 {
		s.Average = decimal.NewFromInt(amountSum).
			Div(decimal.NewFromInt(int64(s.Count))).
			Round(0).
			IntPart()
	}
	return s
}

func detailMap(errs []model.FieldError) map[string]string {
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		if existing, ok := details[e.Field]; ok {
			details[e.Field] = fmt.Sprintf("%s; %s", existing, e.Message)
			continue
		}
		details[e.Field] = e.Message
	}
	return details
}
