// Package service is the facade the UI layer talks to. It owns the
// in-memory dataset cache, regenerates it wholesale on reconfiguration,
// and layers simulated network latency and failures over the query engine
// so callers see backend-like semantics without a backend existing.
package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mockbok-dev/mockbok/internal/apierr"
	"github.com/mockbok-dev/mockbok/internal/generator"
	"github.com/mockbok-dev/mockbok/internal/logging"
	"github.com/mockbok-dev/mockbok/internal/model"
	"github.com/mockbok-dev/mockbok/internal/prng"
	"github.com/mockbok-dev/mockbok/internal/query"
)

// Simulation configures the fake-backend behavior: an artificial delay of
// BaseDelay plus up to Jitter, and a probability in [0,1] of answering any
// request with a generic server error before doing real work.
type Simulation struct {
	BaseDelay time.Duration
	Jitter    time.Duration
	ErrorRate float64
}

// dataset is one complete generated cache. It is immutable once built;
// reconfiguration swaps in a whole new instance.
type dataset struct {
	cfg          model.GenerationConfig
	accounts     []model.Account
	transactions []model.Transaction
	txByID       map[string]*model.Transaction
	accountByID  map[string]*model.Account
}

// Service exposes the generator and query engine behind a request/response
// API. Reads are lock-free against an atomically swapped cache pointer;
// reconfigurations are serialized among themselves.
type Service struct {
	cache atomic.Pointer[dataset]
	sim   Simulation
	log   *zap.Logger

	regenMu sync.Mutex // serializes SetGenerationConfig

	simMu  sync.Mutex
	simRNG *prng.Source
}

// ConfigEcho confirms an applied generation configuration.
type ConfigEcho struct {
	Config           model.GenerationConfig
	AccountCount     int
	TransactionCount int
}

// New builds a Service and synchronously generates the initial dataset.
// A nil logger is replaced with a no-op one. The simulation draws come
// from an owned seeded source so even the fake latency is reproducible.
func New(cfg model.GenerationConfig, sim Simulation, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = logging.Nop()
	}
	s := &Service{
		sim:    sim,
		log:    log,
		simRNG: prng.New(cfg.Seed + 1),
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid generation config: %v", errs)
	}
	ds, err := buildDataset(cfg)
	if err != nil {
		return nil, fmt.Errorf("generating initial dataset: %w", err)
	}
	s.cache.Store(ds)
	log.Info("dataset generated",
		zap.Int64("seed", cfg.Seed),
		zap.Int("accounts", len(ds.accounts)),
		zap.Int("transactions", len(ds.transactions)))
	return s, nil
}

// GetTransactions returns one filtered, paginated page plus aggregates
// over the whole filtered set.
func (s *Service) GetTransactions(filter query.TransactionFilter, page query.Pagination) (*query.TransactionPage, error) {
	if err := s.simulate("getTransactions"); err != nil {
		return nil, err
	}
	ds := s.cache.Load()
	return query.Transactions(ds.transactions, filter, page)
}

// GetTransactionByID looks a single transaction up by identifier.
func (s *Service) GetTransactionByID(id string) (*model.Transaction, error) {
	if err := s.simulate("getTransactionById"); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.Validation("invalid transaction lookup", map[string]string{
			"id": fmt.Sprintf("%q is not a valid UUID", id),
		})
	}
	ds := s.cache.Load()
	tx, ok := ds.txByID[id]
	if !ok {
		return nil, apierr.NotFound(fmt.Sprintf("transaction %s not found", id))
	}
	out := *tx
	return &out, nil
}

// GetAccounts returns the filtered chart of accounts.
func (s *Service) GetAccounts(filter query.AccountFilter) (*query.AccountList, error) {
	if err := s.simulate("getAccounts"); err != nil {
		return nil, err
	}
	ds := s.cache.Load()
	return query.Accounts(ds.accounts, filter)
}

// SetGenerationConfig validates the configuration, regenerates the whole
// dataset, and swaps the cache in one atomic step. The previous cache
// stays servable until the swap, so no request ever observes a partially
// built one; a failed regeneration leaves it untouched.
func (s *Service) SetGenerationConfig(cfg model.GenerationConfig) (*ConfigEcho, error) {
	if err := s.simulate("setGenerationConfig"); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		details := make(map[string]string, len(errs))
		for _, e := range errs {
			details[e.Field] = e.Message
		}
		return nil, apierr.Validation("invalid generation config", details)
	}

	s.regenMu.Lock()
	defer s.regenMu.Unlock()

	ds, err := buildDataset(cfg)
	if err != nil {
		s.log.Error("regeneration failed", zap.Error(err))
		return nil, apierr.Processing(fmt.Sprintf("regenerating dataset: %v", err))
	}
	s.cache.Store(ds)
	s.log.Info("dataset regenerated",
		zap.Int64("seed", cfg.Seed),
		zap.Int("transactions", len(ds.transactions)))

	return &ConfigEcho{
		Config:           cfg,
		AccountCount:     len(ds.accounts),
		TransactionCount: len(ds.transactions),
	}, nil
}

// Config returns the generation configuration of the current cache.
func (s *Service) Config() model.GenerationConfig {
	return s.cache.Load().cfg
}

// simulate sleeps the configured artificial delay, then draws for a
// simulated failure. It runs strictly before any real work so an injected
// error can never corrupt partial state. The delay, once started, always
// resolves; callers wanting cancellation race it externally.
func (s *Service) simulate(op string) error {
	s.simMu.Lock()
	var delay time.Duration
	if s.sim.BaseDelay > 0 || s.sim.Jitter > 0 {
		delay = s.sim.BaseDelay + time.Duration(s.simRNG.Float64()*float64(s.sim.Jitter))
	}
	failed := s.sim.ErrorRate > 0 && s.simRNG.Bool(s.sim.ErrorRate)
	s.simMu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if failed {
		s.log.Debug("simulated server error", zap.String("op", op))
		return apierr.Server("simulated backend failure")
	}
	return nil
}

func buildDataset(cfg model.GenerationConfig) (*dataset, error) {
	accounts, err := generator.GenerateAccounts()
	if err != nil {
		return nil, fmt.Errorf("generating accounts: %w", err)
	}
	txs, err := generator.New(cfg).GenerateTransactions(accounts)
	if err != nil {
		return nil, fmt.Errorf("generating transactions: %w", err)
	}

	ds := &dataset{
		cfg:          cfg,
		accounts:     accounts,
		transactions: txs,
		txByID:       make(map[string]*model.Transaction, len(txs)),
		accountByID:  make(map[string]*model.Account, len(accounts)),
	}
	for i := range txs {
		ds.txByID[txs[i].ID] = &txs[i]
	}
	for i := range accounts {
		ds.accountByID[accounts[i].ID] = &accounts[i]
	}
	return ds, nil
}
