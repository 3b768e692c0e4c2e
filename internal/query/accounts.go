package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mockbok-dev/mockbok/internal/apierr"
	"github.com/mockbok-dev/mockbok/internal/bas"
	"github.com/mockbok-dev/mockbok/internal/model"
)

// AccountFilter narrows the account list. Inactive accounts are hidden
// unless IncludeInactive is set.
type AccountFilter struct {
	Class           string
	Search          string
	IncludeInactive bool
}

// AccountList is the filtered account set with its total count.
type AccountList struct {
	Items      []model.Account
	TotalCount int
}

// Accounts filters the cached chart of accounts. An empty result is
// success, never an error.
func Accounts(cache []model.Account, filter AccountFilter) (*AccountList, error) {
	var (
		class *bas.Class
		errs  []model.FieldError
	)
	if filter.Class != "" {
		n, err := strconv.Atoi(filter.Class)
		if err != nil || !bas.Class(n).Valid() {
			errs = append(errs, model.FieldError{Field: "basClass", Message: fmt.Sprintf("%q is not a BAS class between 1 and 8", filter.Class)})
		} else {
			c := bas.Class(n)
			class = &c
		}
	}
	if len(filter.Search) > MaxSearchLength {
		errs = append(errs, model.FieldError{Field: "search", Message: fmt.Sprintf("must not exceed %d characters", MaxSearchLength)})
	}
	if len(errs) > 0 {
		return nil, apierr.Validation("invalid account query", detailMap(errs))
	}

	search := strings.ToLower(filter.Search)
	var items []model.Account
	for _, a := range cache {
		if !a.Active && !filter.IncludeInactive {
			continue
		}
		if class != nil && a.Class != *class {
			continue
		}
		if search != "" && !accountMatches(a, search) {
			continue
		}
		items = append(items, a)
	}
	return &AccountList{Items: items, TotalCount: len(items)}, nil
}

func accountMatches(a model.Account, search string) bool {
	return strings.Contains(strings.ToLower(a.NameSV), search) ||
		strings.Contains(strings.ToLower(a.NameEN), search) ||
		strings.Contains(strconv.Itoa(a.Number), search)
}
