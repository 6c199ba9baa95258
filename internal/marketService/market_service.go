package market

import (
	"errors"
	"fmt"
	"time"

	"name-market/internal/chain"
	"name-market/internal/markerrors"
	model "name-market/internal/models"
	"name-market/internal/names"
	"name-market/internal/repository"
	"name-market/utils"
)

const (
	// MaxBiddingTimeoutSec caps an offer's auction window at one week.
	MaxBiddingTimeoutSec = 7 * 24 * 60 * 60
	// DefaultBiddingTimeoutSec applies when an offer omits the window.
	DefaultBiddingTimeoutSec = 24 * 60 * 60

	// Resources provisioned for a freshly claimed name, funded by the claimer.
	NewAccountStorageBytes   = 4 * 1024
	NewAccountBandwidthUnits = 1000
)

// MarketService defines the business logic of the name market: account
// custody locks, sale offers, the bid/escrow protocol and claim processing.
// Every mutating operation runs as one atomic invocation of the execution
// environment, so a failure anywhere rolls back all of its effects,
// escrow transfers included.
type MarketService struct {
	repo      repository.MarketDB
	env       chain.Environment
	tokens    chain.TokenService
	accounts  chain.AccountService
	resources chain.ResourceService
	contract  string // the market's own account; owner of all escrowed funds
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB, env chain.Environment, tokens chain.TokenService,
	accounts chain.AccountService, resources chain.ResourceService, contract string) *MarketService {
	return &MarketService{
		repo:      repo,
		env:       env,
		tokens:    tokens,
		accounts:  accounts,
		resources: resources,
		contract:  contract,
	}
}

// requireAuth asserts that the authenticated principals of the invocation
// include actor@permission. Authorization is always checked against the
// explicit principal set, never against ambient state.
func requireAuth(auths []model.PermissionLevel, actor, permission string) error {
	for _, a := range auths {
		if a.Actor == actor && a.Permission == permission {
			return nil
		}
	}
	return fmt.Errorf("service: %w - required %s@%s", markerrors.ErrUnauthorized, actor, permission)
}

// validateAsset checks that an amount is a non-negative quantity of the
// system token.
func validateAsset(a model.Asset) error {
	if a.Symbol != model.SystemSymbol {
		return fmt.Errorf("service: %w - amount must be in the system token %s, got %q",
			markerrors.ErrInvalidArgument, model.SystemSymbol, a.Symbol)
	}
	if a.Amount < 0 {
		return fmt.Errorf("service: %w - negative amount", markerrors.ErrInvalidArgument)
	}
	return nil
}

// Lock places an existing account into the market's custody. It requires a
// joint authorization: the account's own owner permission plus the market
// contract itself, so neither party can forge a lock unilaterally. The
// account's owner authority is rewritten to the market's code permission;
// only Unlock reverses that.
func (s *MarketService) Lock(auths []model.PermissionLevel, account, owner string, reclaim model.Authority) error {
	return s.env.Execute(func() error {
		if account == "" || owner == "" {
			return fmt.Errorf("service: %w - missing account or owner", markerrors.ErrInvalidArgument)
		}
		if err := requireAuth(auths, account, chain.PermissionOwner); err != nil {
			return err
		}
		if err := requireAuth(auths, s.contract, chain.PermissionActive); err != nil {
			return err
		}

		if _, err := s.repo.GetLock(account); err == nil {
			return fmt.Errorf("service: lock account %s: %w", account, markerrors.ErrLockExists)
		} else if !errors.Is(err, markerrors.ErrLockNotFound) {
			return fmt.Errorf("service: failed to check lock for %s: %w", account, err)
		}

		lock := model.AccountLock{
			Account:          account,
			Owner:            owner,
			ReclaimAuthority: reclaim,
		}
		if err := s.repo.UpsertLock(lock); err != nil {
			return fmt.Errorf("service: failed to store lock for %s: %w", account, err)
		}

		custody := model.SingleAccountAuthority(s.contract, chain.PermissionCode)
		if err := s.accounts.UpdateAuthority(account, chain.PermissionOwner, custody); err != nil {
			return fmt.Errorf("service: rewrite owner authority of %s: %w: %v", account, markerrors.ErrExternalCall, err)
		}
		return nil
	})
}

// Unlock returns a locked account to its delegator by restoring the recorded
// reclaim authority. It is refused while any auction under the lock is still
// running, so bidders never lose the custody guarantee mid-auction.
func (s *MarketService) Unlock(auths []model.PermissionLevel, account string) error {
	return s.env.Execute(func() error {
		lock, err := s.repo.GetLock(account)
		if err != nil {
			return fmt.Errorf("service: unlock account %s: %w", account, err)
		}
		if err := requireAuth(auths, lock.Owner, chain.PermissionActive); err != nil {
			return err
		}
		if lock.ActiveAuctionCount != 0 {
			return fmt.Errorf("service: %w - %d auctions still running under lock on %s",
				markerrors.ErrPreconditionFailed, lock.ActiveAuctionCount, account)
		}

		if err := s.accounts.UpdateAuthority(account, chain.PermissionOwner, lock.ReclaimAuthority); err != nil {
			return fmt.Errorf("service: restore owner authority of %s: %w: %v", account, markerrors.ErrExternalCall, err)
		}
		if err := s.repo.DeleteLock(account); err != nil {
			return fmt.Errorf("service: failed to delete lock for %s: %w", account, err)
		}
		return nil
	})
}

// IsLocked reports whether an account is in the market's custody.
func (s *MarketService) IsLocked(account string) (bool, error) {
	_, err := s.repo.GetLock(account)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, markerrors.ErrLockNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("service: failed to check lock for %s: %w", account, err)
}

// IsLockedBy reports whether an account is in the market's custody on behalf
// of the given owner.
func (s *MarketService) IsLockedBy(owner, account string) (bool, error) {
	lock, err := s.repo.GetLock(account)
	if err == nil {
		return lock.Owner == owner, nil
	}
	if errors.Is(err, markerrors.ErrLockNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("service: failed to check lock for %s: %w", account, err)
}

// Offer publishes or updates a sale listing for a name. For a name that is
// itself a locked account, the caller must be the lock's recorded owner. For
// a not-yet-existing subname, the caller must be the name's suffix namespace
// and must itself be lock-registered, proving the namespace is managed by
// the market rather than an arbitrary account listing unrelated subnames.
func (s *MarketService) Offer(auths []model.PermissionLevel, owner, name string, startPrice model.Asset, timeoutSec uint32) (model.Offer, error) {
	var offer model.Offer
	err := s.env.Execute(func() error {
		if err := requireAuth(auths, owner, chain.PermissionActive); err != nil {
			return err
		}
		if !names.IsValid(name) {
			return fmt.Errorf("service: %w - malformed name %q", markerrors.ErrInvalidArgument, name)
		}
		if err := validateAsset(startPrice); err != nil {
			return err
		}
		if timeoutSec == 0 {
			timeoutSec = DefaultBiddingTimeoutSec
		}
		if timeoutSec > MaxBiddingTimeoutSec {
			return fmt.Errorf("service: %w - bidding timeout %ds exceeds one week", markerrors.ErrInvalidArgument, timeoutSec)
		}

		lock, err := s.repo.GetLock(name)
		switch {
		case err == nil:
			// The name is an existing locked account being sold whole.
			if lock.Owner != owner {
				return fmt.Errorf("service: %w - %s is not the lock owner of %s",
					markerrors.ErrPreconditionFailed, owner, name)
			}
		case errors.Is(err, markerrors.ErrLockNotFound):
			// A subname: only the managed suffix namespace may list it.
			if names.Suffix(name) != owner {
				return fmt.Errorf("service: %w - %s is not the namespace of %s",
					markerrors.ErrPreconditionFailed, owner, name)
			}
			locked, err := s.IsLocked(owner)
			if err != nil {
				return err
			}
			if !locked {
				return fmt.Errorf("service: %w - namespace %s is not lock-registered",
					markerrors.ErrPreconditionFailed, owner)
			}
		default:
			return fmt.Errorf("service: failed to check lock for %s: %w", name, err)
		}

		offer = model.Offer{
			Owner:             owner,
			Name:              name,
			StartPrice:        startPrice,
			BiddingTimeoutSec: timeoutSec,
		}
		if err := s.repo.UpsertOffer(offer); err != nil {
			return fmt.Errorf("service: failed to store offer for %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return model.Offer{}, err
	}
	return offer, nil
}

// CancelOffer withdraws a listing that has not yet received a bid.
func (s *MarketService) CancelOffer(auths []model.PermissionLevel, name string) error {
	return s.env.Execute(func() error {
		offer, err := s.repo.GetOffer(name)
		if err != nil {
			return fmt.Errorf("service: cancel offer for %s: %w", name, err)
		}
		if err := requireAuth(auths, offer.Owner, chain.PermissionActive); err != nil {
			return err
		}
		if err := s.repo.DeleteOffer(name); err != nil {
			return fmt.Errorf("service: failed to delete offer for %s: %w", name, err)
		}
		return nil
	})
}

// Bid escrows the bid amount with the market and either opens an auction
// against a standing offer or raises a running auction. The escrow transfer
// is issued before any auction-state validation: if a later check fails, the
// environment rolls the transfer back with the rest of the invocation, so a
// rejected bid never costs the bidder anything.
func (s *MarketService) Bid(auths []model.PermissionLevel, bidder, name string, amount model.Asset) (model.BidReceipt, error) {
	var receipt model.BidReceipt
	err := s.env.Execute(func() error {
		if err := requireAuth(auths, bidder, chain.PermissionActive); err != nil {
			return err
		}
		if !names.IsValid(name) {
			return fmt.Errorf("service: %w - malformed name %q", markerrors.ErrInvalidArgument, name)
		}
		if names.IsMaxLengthLeaf(name) {
			return fmt.Errorf("service: %w - maximal-length names are not biddable", markerrors.ErrInvalidArgument)
		}
		if err := validateAsset(amount); err != nil {
			return err
		}

		memo := "Bid on name " + name
		if err := s.tokens.Transfer(bidder, s.contract, amount, memo); err != nil {
			return fmt.Errorf("service: escrow bid on %s: %w: %v", name, markerrors.ErrExternalCall, err)
		}

		now := s.env.Now()

		auction, err := s.repo.GetAuction(name)
		switch {
		case err == nil:
			auction, err = s.raiseAuction(auction, bidder, amount, now)
			if err != nil {
				return err
			}
		case errors.Is(err, markerrors.ErrAuctionNotFound):
			auction, err = s.openAuction(bidder, name, amount, now)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("service: failed to check auction for %s: %w", name, err)
		}

		receipt = model.BidReceipt{
			BidID:     utils.GenerateID(),
			Name:      name,
			Bidder:    bidder,
			Amount:    amount,
			ClosesAt:  auction.ClosesAt,
			CreatedAt: now,
		}
		return nil
	})
	if err != nil {
		return model.BidReceipt{}, err
	}
	return receipt, nil
}

// openAuction converts a standing offer into a live auction on its first
// qualifying bid. The offer row is consumed in the same invocation and the
// covering lock's running-auction count goes up, blocking unlock until the
// auction resolves.
func (s *MarketService) openAuction(bidder, name string, amount model.Asset, now time.Time) (model.Auction, error) {
	offer, err := s.repo.GetOffer(name)
	if err != nil {
		if errors.Is(err, markerrors.ErrOfferNotFound) {
			return model.Auction{}, fmt.Errorf("service: bid on %s: %w", name, markerrors.ErrNotForSale)
		}
		return model.Auction{}, fmt.Errorf("service: failed to check offer for %s: %w", name, err)
	}
	if amount.Amount < offer.StartPrice.Amount {
		return model.Auction{}, fmt.Errorf("service: %w - starting price for %s is %d",
			markerrors.ErrBidTooLow, name, offer.StartPrice.Amount)
	}

	lock, err := s.coveringLock(name)
	if err != nil {
		return model.Auction{}, err
	}
	lock.ActiveAuctionCount++
	if err := s.repo.UpsertLock(lock); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update lock for %s: %w", lock.Account, err)
	}

	auction := model.Auction{
		Name:              name,
		HighestBid:        amount,
		HighestBidder:     bidder,
		BiddingTimeoutSec: offer.BiddingTimeoutSec,
		ClosesAt:          now.Add(time.Duration(offer.BiddingTimeoutSec) * time.Second),
	}
	if err := s.repo.UpsertAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to store auction for %s: %w", name, err)
	}
	if err := s.repo.DeleteOffer(name); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to consume offer for %s: %w", name, err)
	}
	return auction, nil
}

// raiseAuction applies a qualifying raise: the previous leader is refunded
// from escrow before the row is overwritten, and the deadline restarts so
// every new leader gets a full bidding window.
func (s *MarketService) raiseAuction(auction model.Auction, bidder string, amount model.Asset, now time.Time) (model.Auction, error) {
	if !now.Before(auction.ClosesAt) {
		return model.Auction{}, fmt.Errorf("service: bid on %s: %w", auction.Name, markerrors.ErrAuctionClosed)
	}
	if bidder == auction.HighestBidder {
		return model.Auction{}, fmt.Errorf("service: bid on %s: %w", auction.Name, markerrors.ErrAlreadyHighestBidder)
	}
	if amount.Amount-auction.HighestBid.Amount < auction.HighestBid.Amount/10 {
		return model.Auction{}, fmt.Errorf("service: %w - highest bid for %s is %d",
			markerrors.ErrInsufficientIncrement, auction.Name, auction.HighestBid.Amount)
	}

	memo := "Refund bid on name " + auction.Name
	if err := s.tokens.Transfer(s.contract, auction.HighestBidder, auction.HighestBid, memo); err != nil {
		return model.Auction{}, fmt.Errorf("service: refund bid on %s: %w: %v", auction.Name, markerrors.ErrExternalCall, err)
	}

	auction.HighestBid = amount
	auction.HighestBidder = bidder
	auction.ClosesAt = now.Add(time.Duration(auction.BiddingTimeoutSec) * time.Second)
	if err := s.repo.UpsertAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update auction for %s: %w", auction.Name, err)
	}
	return auction, nil
}

// coveringLock resolves the AccountLock a name is sold under: the lock on
// the name itself for a whole-account sale, otherwise the lock on its suffix
// namespace.
func (s *MarketService) coveringLock(name string) (model.AccountLock, error) {
	lock, err := s.repo.GetLock(name)
	if err == nil {
		return lock, nil
	}
	if !errors.Is(err, markerrors.ErrLockNotFound) {
		return model.AccountLock{}, fmt.Errorf("service: failed to check lock for %s: %w", name, err)
	}

	lock, err = s.repo.GetLock(names.Suffix(name))
	if err == nil {
		return lock, nil
	}
	if errors.Is(err, markerrors.ErrLockNotFound) {
		return model.AccountLock{}, fmt.Errorf("service: %w - custody for %s has been reclaimed",
			markerrors.ErrPreconditionFailed, name)
	}
	return model.AccountLock{}, fmt.Errorf("service: failed to check lock for %s: %w", names.Suffix(name), err)
}

// Claim finalizes a closed, won auction. Only the recorded highest bidder of
// an auction past its deadline may claim. A subname is materialized as a new
// account under the locked namespace, with storage and bandwidth funded by
// the claimer; a whole-account sale instead hands the existing account's
// authorities to the claimer and retires the lock.
func (s *MarketService) Claim(auths []model.PermissionLevel, claimer, name string) error {
	return s.env.Execute(func() error {
		if err := requireAuth(auths, claimer, chain.PermissionActive); err != nil {
			return err
		}

		auction, err := s.repo.GetAuction(name)
		if err != nil {
			return fmt.Errorf("service: claim name %s: %w", name, err)
		}
		if s.env.Now().Before(auction.ClosesAt) {
			return fmt.Errorf("service: %w - auction for %s is still open", markerrors.ErrPreconditionFailed, name)
		}
		if claimer != auction.HighestBidder {
			return fmt.Errorf("service: %w - %s is not the highest bidder for %s",
				markerrors.ErrUnauthorized, claimer, name)
		}

		lock, err := s.coveringLock(name)
		if err != nil {
			return err
		}

		if lock.Account == name {
			if err := s.transferAccount(lock, claimer); err != nil {
				return err
			}
		} else {
			if err := s.materializeSubname(lock, claimer, name); err != nil {
				return err
			}
		}

		if err := s.repo.DeleteAuction(name); err != nil {
			return fmt.Errorf("service: failed to delete auction for %s: %w", name, err)
		}
		return nil
	})
}

// materializeSubname creates the claimed name as a live account under the
// locked namespace and provisions its resources.
func (s *MarketService) materializeSubname(lock model.AccountLock, claimer, name string) error {
	auth := model.SingleAccountAuthority(claimer, chain.PermissionActive)
	if err := s.accounts.CreateAccount(lock.Account, name, auth, auth); err != nil {
		return fmt.Errorf("service: create account %s: %w: %v", name, markerrors.ErrExternalCall, err)
	}
	if err := s.resources.AllocateStorage(claimer, name, NewAccountStorageBytes); err != nil {
		return fmt.Errorf("service: allocate storage for %s: %w: %v", name, markerrors.ErrExternalCall, err)
	}
	bw := model.SystemAsset(NewAccountBandwidthUnits)
	if err := s.resources.DelegateBandwidth(claimer, name, bw, bw, true); err != nil {
		return fmt.Errorf("service: delegate bandwidth for %s: %w: %v", name, markerrors.ErrExternalCall, err)
	}

	lock.ActiveAuctionCount--
	if err := s.repo.UpsertLock(lock); err != nil {
		return fmt.Errorf("service: failed to update lock for %s: %w", lock.Account, err)
	}
	return nil
}

// transferAccount hands a whole locked account to the claimer. The seller's
// reclaim right ends with the sale, so the lock row is retired instead of
// decremented.
func (s *MarketService) transferAccount(lock model.AccountLock, claimer string) error {
	auth := model.SingleAccountAuthority(claimer, chain.PermissionActive)
	if err := s.accounts.UpdateAuthority(lock.Account, chain.PermissionOwner, auth); err != nil {
		return fmt.Errorf("service: hand over owner authority of %s: %w: %v", lock.Account, markerrors.ErrExternalCall, err)
	}
	if err := s.accounts.UpdateAuthority(lock.Account, chain.PermissionActive, auth); err != nil {
		return fmt.Errorf("service: hand over active authority of %s: %w: %v", lock.Account, markerrors.ErrExternalCall, err)
	}
	if err := s.repo.DeleteLock(lock.Account); err != nil {
		return fmt.Errorf("service: failed to delete lock for %s: %w", lock.Account, err)
	}
	return nil
}

// EarlyClose is a reserved entry point for terminating an auction before its
// deadline. Authorization is checked; the termination itself is not
// specified yet, so the call is rejected.
func (s *MarketService) EarlyClose(auths []model.PermissionLevel, owner, name string) error {
	return s.env.Execute(func() error {
		if err := requireAuth(auths, owner, chain.PermissionActive); err != nil {
			return err
		}
		return fmt.Errorf("service: early close of %s: %w", name, markerrors.ErrNotImplemented)
	})
}

// GetLock returns the lock registered for an account.
func (s *MarketService) GetLock(account string) (model.AccountLock, error) {
	if account == "" {
		return model.AccountLock{}, fmt.Errorf("service: %w - empty account", markerrors.ErrInvalidArgument)
	}
	lock, err := s.repo.GetLock(account)
	if err != nil {
		return model.AccountLock{}, fmt.Errorf("service: failed to get lock for %s: %w", account, err)
	}
	return lock, nil
}

// GetOffer returns the standing offer for a name.
func (s *MarketService) GetOffer(name string) (model.Offer, error) {
	if name == "" {
		return model.Offer{}, fmt.Errorf("service: %w - empty name", markerrors.ErrInvalidArgument)
	}
	offer, err := s.repo.GetOffer(name)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to get offer for %s: %w", name, err)
	}
	return offer, nil
}

// GetAuction returns the running auction for a name.
func (s *MarketService) GetAuction(name string) (model.Auction, error) {
	if name == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty name", markerrors.ErrInvalidArgument)
	}
	auction, err := s.repo.GetAuction(name)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction for %s: %w", name, err)
	}
	return auction, nil
}
