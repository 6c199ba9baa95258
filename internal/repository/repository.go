package repository

import (
	"fmt"
	"sync"

	"name-market/internal/markerrors"
	model "name-market/internal/models"
)

// MarketDB defines the keyed storage interface for the market state: locks
// by account, offers by name, auctions by name. Mutations are whole-row
// replacements; read-modify-write cycles happen in the service layer.
type MarketDB interface {
	GetLock(account string) (model.AccountLock, error)
	UpsertLock(lock model.AccountLock) error
	DeleteLock(account string) error

	GetOffer(name string) (model.Offer, error)
	UpsertOffer(offer model.Offer) error
	DeleteOffer(name string) error

	GetAuction(name string) (model.Auction, error)
	UpsertAuction(auction model.Auction) error
	DeleteAuction(name string) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu       sync.RWMutex
	locks    map[string]model.AccountLock // key: account
	offers   map[string]model.Offer      // key: name
	auctions map[string]model.Auction    // key: name
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		locks:    make(map[string]model.AccountLock),
		offers:   make(map[string]model.Offer),
		auctions: make(map[string]model.Auction),
	}
}

// GetLock returns the lock registered for an account
func (r *MemoryRepo) GetLock(account string) (model.AccountLock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lock, ok := r.locks[account]
	if !ok {
		return model.AccountLock{}, fmt.Errorf("get lock for account %s: %w", account, markerrors.ErrLockNotFound)
	}
	return lock, nil
}

// UpsertLock stores or replaces the lock row for lock.Account
func (r *MemoryRepo) UpsertLock(lock model.AccountLock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locks[lock.Account] = lock
	return nil
}

// DeleteLock removes the lock row for an account
func (r *MemoryRepo) DeleteLock(account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locks[account]; !ok {
		return fmt.Errorf("delete lock for account %s: %w", account, markerrors.ErrLockNotFound)
	}
	delete(r.locks, account)
	return nil
}

// GetOffer returns the offer published for a name
func (r *MemoryRepo) GetOffer(name string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[name]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer for name %s: %w", name, markerrors.ErrOfferNotFound)
	}
	return offer, nil
}

// UpsertOffer stores or replaces the offer row for offer.Name
func (r *MemoryRepo) UpsertOffer(offer model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.offers[offer.Name] = offer
	return nil
}

// DeleteOffer removes the offer row for a name
func (r *MemoryRepo) DeleteOffer(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.offers[name]; !ok {
		return fmt.Errorf("delete offer for name %s: %w", name, markerrors.ErrOfferNotFound)
	}
	delete(r.offers, name)
	return nil
}

// GetAuction returns the auction running for a name
func (r *MemoryRepo) GetAuction(name string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[name]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction for name %s: %w", name, markerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// UpsertAuction stores or replaces the auction row for auction.Name
func (r *MemoryRepo) UpsertAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions[auction.Name] = auction
	return nil
}

// DeleteAuction removes the auction row for a name
func (r *MemoryRepo) DeleteAuction(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[name]; !ok {
		return fmt.Errorf("delete auction for name %s: %w", name, markerrors.ErrAuctionNotFound)
	}
	delete(r.auctions, name)
	return nil
}

type repoSnapshot struct {
	locks    map[string]model.AccountLock
	offers   map[string]model.Offer
	auctions map[string]model.Auction
}

// Snapshot captures the full repository state for invocation rollback.
func (r *MemoryRepo) Snapshot() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := repoSnapshot{
		locks:    make(map[string]model.AccountLock, len(r.locks)),
		offers:   make(map[string]model.Offer, len(r.offers)),
		auctions: make(map[string]model.Auction, len(r.auctions)),
	}
	for k, v := range r.locks {
		snap.locks[k] = v
	}
	for k, v := range r.offers {
		snap.offers[k] = v
	}
	for k, v := range r.auctions {
		snap.auctions[k] = v
	}
	return snap
}

// Restore discards the current state in favor of a previous Snapshot.
func (r *MemoryRepo) Restore(snapshot any) {
	snap := snapshot.(repoSnapshot)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.locks = snap.locks
	r.offers = snap.offers
	r.auctions = snap.auctions
}
