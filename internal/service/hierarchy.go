package service

import (
	"sort"

	"github.com/mockbok-dev/mockbok/internal/model"
)

// AccountNode is an account with its direct children.
type AccountNode struct {
	Account  model.Account
	Children []AccountNode
}

// GetAccountHierarchy groups the chart of accounts into parent/children
// trees. An account whose parent cannot be resolved is treated as a root.
// Siblings are ordered by account number.
func (s *Service) GetAccountHierarchy() ([]AccountNode, error) {
	if err := s.simulate("getAccountHierarchy"); err != nil {
		return nil, err
	}
	ds := s.cache.Load()

	childrenOf := make(map[string][]model.Account)
	var roots []model.Account
	for _, a := range ds.accounts {
		if a.ParentID == "" {
			roots = append(roots, a)
			continue
		}
		if _, ok := ds.accountByID[a.ParentID]; !ok {
			roots = append(roots, a)
			continue
		}
		childrenOf[a.ParentID] = append(childrenOf[a.ParentID], a)
	}

	var build func(accounts []model.Account) []AccountNode
	build = func(accounts []model.Account) []AccountNode {
		sort.Slice(accounts, func(i, j int) bool {
			return accounts[i].Number < accounts[j].Number
		})
		nodes := make([]AccountNode, 0, len(accounts))
		for _, a := range accounts {
			nodes = append(nodes, AccountNode{
				Account:  a,
				Children: build(childrenOf[a.ID]),
			})
		}
		return nodes
	}
	return build(roots), nil
}
