package services_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
)

// memStore is an in-memory stand-in for Postgres used by the concurrency tests.
// Row locks are per-wallet mutexes held until the unit of work ends, writes are
// staged per transaction and applied on commit, and unique keys are enforced.
type memStore struct {
	mu        sync.Mutex
	wallets   map[string]domain.Wallet
	entries   []domain.LedgerEntry
	transfers []domain.PixTransfer
	events    []domain.PixWebhookEvent
	keys      []domain.PixKey
	rowLocks  sync.Map

	// fault, when set before the test starts, can fail a write by returning an error.
	fault func(op string, walletID string) error
}

func newMemStore() *memStore {
	return &memStore{wallets: make(map[string]domain.Wallet)}
}

// memTx is one unit of work. auto views apply each write immediately.
type memTx struct {
	s         *memStore
	auto      bool
	held      []string
	wallets   map[string]domain.Wallet
	entries   []domain.LedgerEntry
	transfers []domain.PixTransfer
	events    []domain.PixWebhookEvent
	keys      []domain.PixKey
}

func (s *memStore) newTx(auto bool) *memTx {
	return &memTx{s: s, auto: auto, wallets: make(map[string]domain.Wallet)}
}

func (s *memStore) repos(tx *memTx) portsrepo.TxRepositories {
	return portsrepo.TxRepositories{
		Wallets:   &memWallets{tx},
		Ledger:    &memLedger{tx},
		Transfers: &memTransfers{tx},
		Webhooks:  &memWebhooks{tx},
		PixKeys:   &memPixKeys{tx},
	}
}

// Repos returns autocommit repositories for use outside a transaction.
func (s *memStore) Repos() portsrepo.TxRepositories {
	return s.repos(s.newTx(true))
}

func (s *memStore) WithinTransaction(ctx context.Context, fn portsrepo.TxFunc) error {
	tx := s.newTx(false)
	defer tx.release()
	if err := fn(ctx, s.repos(tx)); err != nil {
		return err
	}
	return tx.commit()
}

func (tx *memTx) lock(walletID string) {
	if slices.Contains(tx.held, walletID) {
		return
	}
	m, _ := tx.s.rowLocks.LoadOrStore(walletID, &sync.Mutex{})
	m.(*sync.Mutex).Lock()
	tx.held = append(tx.held, walletID)
}

func (tx *memTx) release() {
	for i := len(tx.held) - 1; i >= 0; i-- {
		m, _ := tx.s.rowLocks.Load(tx.held[i])
		m.(*sync.Mutex).Unlock()
	}
	tx.held = nil
}

func (tx *memTx) commit() error {
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tx.transfers {
		if s.transferConflict(t) {
			return apperrors.ErrDuplicate
		}
	}
	for id, w := range tx.wallets {
		s.wallets[id] = w
	}
	s.entries = append(s.entries, tx.entries...)
	s.transfers = append(s.transfers, tx.transfers...)
	s.events = append(s.events, tx.events...)
	s.keys = append(s.keys, tx.keys...)
	return nil
}

// caller holds s.mu
func (s *memStore) transferConflict(t domain.PixTransfer) bool {
	return slices.ContainsFunc(s.transfers, func(o domain.PixTransfer) bool {
		return o.IdempotencyKey == t.IdempotencyKey || o.EndToEndID == t.EndToEndID
	})
}

func (s *memStore) Wallet(walletID string) domain.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallets[walletID]
}

func (s *memStore) Entries(walletID string) []domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if e.WalletID == walletID {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) TransferCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transfers)
}

type memWallets struct{ tx *memTx }

func (r *memWallets) FindByID(_ context.Context, walletID string) (*domain.Wallet, error) {
	if w, ok := r.tx.wallets[walletID]; ok {
		return &w, nil
	}
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	w, ok := r.tx.s.wallets[walletID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (r *memWallets) ExistsByOwner(_ context.Context, ownerID string) (bool, error) {
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	for _, w := range r.tx.s.wallets {
		if w.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWallets) FindByIDForUpdate(ctx context.Context, walletID string) (*domain.Wallet, error) {
	r.tx.lock(walletID)
	return r.FindByID(ctx, walletID)
}

func (s *memStore) inject(op, walletID string) error {
	if s.fault == nil {
		return nil
	}
	return s.fault(op, walletID)
}

func (r *memWallets) Save(_ context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	if err := r.tx.s.inject("wallet.save", wallet.WalletID); err != nil {
		return nil, err
	}
	saved := *wallet
	if r.tx.auto {
		r.tx.s.mu.Lock()
		r.tx.s.wallets[saved.WalletID] = saved
		r.tx.s.mu.Unlock()
	} else {
		r.tx.wallets[saved.WalletID] = saved
	}
	return &saved, nil
}

type memLedger struct{ tx *memTx }

func (r *memLedger) FindByWallet(ctx context.Context, walletID string) ([]domain.LedgerEntry, error) {
	return r.tx.s.Entries(walletID), nil
}

func (r *memLedger) FindByWalletBefore(_ context.Context, walletID string, at time.Time) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	for _, e := range r.tx.s.Entries(walletID) {
		if !e.OccurredAt.After(at) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedger) FindLastBefore(ctx context.Context, walletID string, at time.Time) (*domain.LedgerEntry, error) {
	entries, _ := r.FindByWalletBefore(ctx, walletID, at)
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[len(entries)-1], nil
}

func (r *memLedger) ListByWallet(_ context.Context, walletID string, limit int, _ *string) ([]domain.LedgerEntry, *string, error) {
	entries := r.tx.s.Entries(walletID)
	slices.Reverse(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil, nil
}

func (r *memLedger) Append(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if err := r.tx.s.inject("ledger.append."+string(entry.OperationType), entry.WalletID); err != nil {
		return nil, err
	}
	saved := *entry
	if r.tx.auto {
		r.tx.s.mu.Lock()
		r.tx.s.entries = append(r.tx.s.entries, saved)
		r.tx.s.mu.Unlock()
	} else {
		r.tx.entries = append(r.tx.entries, saved)
	}
	return &saved, nil
}

type memTransfers struct{ tx *memTx }

func (r *memTransfers) Save(_ context.Context, transfer *domain.PixTransfer) (*domain.PixTransfer, error) {
	saved := *transfer
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	if r.tx.s.transferConflict(saved) {
		return nil, apperrors.ErrDuplicate
	}
	if r.tx.auto {
		r.tx.s.transfers = append(r.tx.s.transfers, saved)
	} else {
		r.tx.transfers = append(r.tx.transfers, saved)
	}
	return &saved, nil
}

func (r *memTransfers) find(match func(domain.PixTransfer) bool) *domain.PixTransfer {
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	for _, t := range r.tx.s.transfers {
		if match(t) {
			return &t
		}
	}
	return nil
}

func (r *memTransfers) FindByCorrelationID(_ context.Context, endToEndID string) (*domain.PixTransfer, error) {
	return r.find(func(t domain.PixTransfer) bool { return t.EndToEndID == endToEndID }), nil
}

func (r *memTransfers) FindByIdempotencyKey(_ context.Context, idempotencyKey string) (*domain.PixTransfer, error) {
	t := r.find(func(t domain.PixTransfer) bool { return t.IdempotencyKey == idempotencyKey })
	if t == nil {
		return nil, apperrors.ErrNotFound
	}
	return t, nil
}

func (r *memTransfers) ExistsByIdempotencyKey(ctx context.Context, idempotencyKey string) (bool, error) {
	t, _ := r.FindByIdempotencyKey(ctx, idempotencyKey)
	return t != nil, nil
}

type memWebhooks struct{ tx *memTx }

func (r *memWebhooks) Save(_ context.Context, event *domain.PixWebhookEvent) (*domain.PixWebhookEvent, error) {
	saved := *event
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	for _, e := range r.tx.s.events {
		if e.EventID == saved.EventID {
			return nil, apperrors.ErrDuplicate
		}
	}
	r.tx.s.events = append(r.tx.s.events, saved)
	return &saved, nil
}

func (r *memWebhooks) FindByEventID(_ context.Context, eventID string) (*domain.PixWebhookEvent, error) {
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	for _, e := range r.tx.s.events {
		if e.EventID == eventID {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *memWebhooks) ExistsByEventID(ctx context.Context, eventID string) (bool, error) {
	e, err := r.FindByEventID(ctx, eventID)
	return e != nil, err
}

type memPixKeys struct{ tx *memTx }

func (r *memPixKeys) Save(_ context.Context, key *domain.PixKey) (*domain.PixKey, error) {
	saved := *key
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	for _, k := range r.tx.s.keys {
		if k.KeyValue == saved.KeyValue {
			return nil, apperrors.ErrDuplicate
		}
	}
	r.tx.s.keys = append(r.tx.s.keys, saved)
	return &saved, nil
}

func (r *memPixKeys) ExistsByKeyValue(_ context.Context, keyValue string) (bool, error) {
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	return slices.ContainsFunc(r.tx.s.keys, func(k domain.PixKey) bool { return k.KeyValue == keyValue }), nil
}

func (r *memPixKeys) ListByWallet(_ context.Context, walletID string) ([]domain.PixKey, error) {
	r.tx.s.mu.Lock()
	defer r.tx.s.mu.Unlock()
	var out []domain.PixKey
	for _, k := range r.tx.s.keys {
		if k.WalletID == walletID {
			out = append(out, k)
		}
	}
	return out, nil
}

// memBalanceCache mirrors the generation-checked fill of the Redis cache.
type memBalanceCache struct {
	mu          sync.Mutex
	balances    map[string]domain.Money
	generations map[string]int64
}

func newMemBalanceCache() *memBalanceCache {
	return &memBalanceCache{balances: make(map[string]domain.Money), generations: make(map[string]int64)}
}

func (c *memBalanceCache) Get(_ context.Context, walletID string) (domain.Money, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.balances[walletID]
	return b, ok, nil
}

func (c *memBalanceCache) Generation(_ context.Context, walletID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[walletID], nil
}

func (c *memBalanceCache) Fill(_ context.Context, walletID string, generation int64, balance domain.Money) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[walletID] == generation {
		c.balances[walletID] = balance
	}
	return nil
}

func (c *memBalanceCache) Invalidate(_ context.Context, walletIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range walletIDs {
		c.generations[id]++
		delete(c.balances, id)
	}
	return nil
}

// pausingWalletReader runs afterRead once, between reading a wallet row and
// handing it back, to interleave a write with a reader.
type pausingWalletReader struct {
	portsrepo.WalletReader
	afterRead func()
}

func (r *pausingWalletReader) FindByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	w, err := r.WalletReader.FindByID(ctx, walletID)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return w, err
}
