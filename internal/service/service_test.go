package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockbok-dev/mockbok/internal/apierr"
	"github.com/mockbok-dev/mockbok/internal/bas"
	"github.com/mockbok-dev/mockbok/internal/model"
	"github.com/mockbok-dev/mockbok/internal/query"
)

func referenceConfig() model.GenerationConfig {
	return model.GenerationConfig{
		Seed:           42,
		DatasetSize:    100,
		DateRangeStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateRangeEnd:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		IncludeVAT:     true,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(referenceConfig(), Simulation{}, nil)
	require.NoError(t, err)
	return svc
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(model.GenerationConfig{DatasetSize: -1}, Simulation{}, nil)
	assert.Error(t, err)
}

func TestGetTransactions_RevenueScenario(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.GetTransactions(query.TransactionFilter{Class: "4"}, query.Pagination{Page: 0, PageSize: 10})
	require.NoError(t, err)

	for _, tx := range page.Items {
		assert.Equal(t, bas.ClassRevenue, tx.Class)
		assert.Equal(t, model.Credit, tx.DebitCredit, "revenue is always credit")
	}

	// The summary counts the whole filtered set, not the returned page.
	full, err := svc.GetTransactions(query.TransactionFilter{Class: "4"}, query.Pagination{PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, full.PageInfo.TotalItems, page.Summary.Count)
	assert.Equal(t, page.Summary, full.Summary)
	assert.Zero(t, page.Summary.DebitTotal)
}

func TestGetTransactions_Deterministic(t *testing.T) {
	a := newTestService(t)
	b := newTestService(t)

	pa, err := a.GetTransactions(query.TransactionFilter{}, query.Pagination{PageSize: 100})
	require.NoError(t, err)
	pb, err := b.GetTransactions(query.TransactionFilter{}, query.Pagination{PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, pa, pb, "independent services with equal seeds agree")
}

func TestGetTransactionByID_Found(t *testing.T) {
	svc := newTestService(t)
	page, err := svc.GetTransactions(query.TransactionFilter{}, query.Pagination{PageSize: 10})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)

	got, err := svc.GetTransactionByID(page.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, page.Items[0].ID, got.ID)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GetTransactionByID("00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.True(t, apierr.IsKind(err, apierr.KindNotFound))
}

func TestGetTransactionByID_MalformedUUID(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GetTransactionByID("not-a-uuid")
	require.Error(t, err)
	apiErr, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
	assert.Contains(t, apiErr.Details, "id")
}

func TestGetAccounts(t *testing.T) {
	svc := newTestService(t)
	list, err := svc.GetAccounts(query.AccountFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, list.Items)
	assert.Equal(t, len(list.Items), list.TotalCount)

	revenue, err := svc.GetAccounts(query.AccountFilter{Class: "4"})
	require.NoError(t, err)
	for _, a := range revenue.Items {
		assert.Equal(t, bas.ClassRevenue, a.Class)
	}
}

func TestGetAccountHierarchy(t *testing.T) {
	svc := newTestService(t)
	roots, err := svc.GetAccountHierarchy()
	require.NoError(t, err)
	require.NotEmpty(t, roots)

	var cashAndBank *AccountNode
	total := 0
	var count func(nodes []AccountNode)
	count = func(nodes []AccountNode) {
		for i := range nodes {
			total++
			if nodes[i].Account.Number == 1900 {
				cashAndBank = &nodes[i]
			}
			count(nodes[i].Children)
		}
	}
	count(roots)

	list, err := svc.GetAccounts(query.AccountFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, list.TotalCount, total, "hierarchy covers every account exactly once")

	require.NotNil(t, cashAndBank, "1900 present")
	childNumbers := make([]int, 0, len(cashAndBank.Children))
	for _, c := range cashAndBank.Children {
		childNumbers = append(childNumbers, c.Account.Number)
	}
	assert.Equal(t, []int{1910, 1930}, childNumbers, "children sorted by number")
}

func TestSetGenerationConfig_Regenerates(t *testing.T) {
	svc := newTestService(t)

	cfg := referenceConfig()
	cfg.Seed = 7
	cfg.DatasetSize = 25

	echo, err := svc.SetGenerationConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 25, echo.TransactionCount)
	assert.Equal(t, cfg, svc.Config())

	page, err := svc.GetTransactions(query.TransactionFilter{}, query.Pagination{PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, 25, page.PageInfo.TotalItems, "cache replaced wholesale")
}

func TestSetGenerationConfig_ValidationLeavesCacheIntact(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SetGenerationConfig(model.GenerationConfig{DatasetSize: -5})
	require.Error(t, err)
	apiErr, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
	assert.Contains(t, apiErr.Details, "datasetSize")

	page, err := svc.GetTransactions(query.TransactionFilter{}, query.Pagination{PageSize: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PageInfo.TotalItems, "old cache still served")
}

func TestSimulatedError_AlwaysFires(t *testing.T) {
	svc, err := New(referenceConfig(), Simulation{ErrorRate: 1}, nil)
	require.NoError(t, err)

	_, err = svc.GetTransactions(query.TransactionFilter{}, query.Pagination{})
	assert.True(t, apierr.IsKind(err, apierr.KindServer))

	_, err = svc.GetTransactionByID("00000000-0000-0000-0000-000000000000")
	assert.True(t, apierr.IsKind(err, apierr.KindServer), "error fires before lookup")

	_, err = svc.GetAccounts(query.AccountFilter{})
	assert.True(t, apierr.IsKind(err, apierr.KindServer))

	_, err = svc.GetAccountHierarchy()
	assert.True(t, apierr.IsKind(err, apierr.KindServer))

	_, err = svc.SetGenerationConfig(referenceConfig())
	assert.True(t, apierr.IsKind(err, apierr.KindServer))
}

func TestSimulatedError_NeverFiresAtZeroRate(t *testing.T) {
	svc := newTestService(t)
	for i := 0; i < 50; i++ {
		_, err := svc.GetAccounts(query.AccountFilter{})
		require.NoError(t, err)
	}
}

func TestSimulatedDelay(t *testing.T) {
	svc, err := New(referenceConfig(), Simulation{BaseDelay: 20 * time.Millisecond, Jitter: 10 * time.Millisecond}, nil)
	require.NoError(t, err)

	start := time.Now()
	_, err = svc.GetAccounts(query.AccountFilter{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestConcurrentReadsDuringReconfiguration(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				page, err := svc.GetTransactions(query.TransactionFilter{}, query.Pagination{PageSize: 100})
				if !assert.NoError(t, err) {
					return
				}
				// Either the old or the new cache, never a partial one.
				n := page.PageInfo.TotalItems
				assert.True(t, n == 100 || n == 40, "got %d items", n)
			}
		}()
	}

	cfg := referenceConfig()
	cfg.DatasetSize = 40
	_, err := svc.SetGenerationConfig(cfg)
	require.NoError(t, err)
	wg.Wait()
}
