package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"name-market/internal/markerrors"
	model "name-market/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a lock row
func newLock(account, owner string, activeAuctions int) model.AccountLock {
	return model.AccountLock{
		Account:            account,
		Owner:              owner,
		ReclaimAuthority:   model.SingleAccountAuthority(owner, "owner"),
		ActiveAuctionCount: activeAuctions,
	}
}

// Helper to create an offer row
func newOffer(owner, name string, startPrice int64) model.Offer {
	return model.Offer{
		Owner:             owner,
		Name:              name,
		StartPrice:        model.SystemAsset(startPrice),
		BiddingTimeoutSec: 3600,
	}
}

// Helper to create an auction row
func newAuction(name, bidder string, highestBid int64, closesAt time.Time) model.Auction {
	return model.Auction{
		Name:              name,
		HighestBid:        model.SystemAsset(highestBid),
		HighestBidder:     bidder,
		BiddingTimeoutSec: 3600,
		ClosesAt:          closesAt,
	}
}

// Test lock table round trips
func TestMemoryRepo_Locks(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.GetLock("alice")
	require.ErrorIs(t, err, markerrors.ErrLockNotFound)

	lock := newLock("alice", "dave", 0)
	require.NoError(t, repo.UpsertLock(lock))

	got, err := repo.GetLock("alice")
	require.NoError(t, err)
	require.Equal(t, lock, got)

	// upsert replaces the whole row
	lock.ActiveAuctionCount = 2
	require.NoError(t, repo.UpsertLock(lock))
	got, err = repo.GetLock("alice")
	require.NoError(t, err)
	require.Equal(t, 2, got.ActiveAuctionCount)

	require.NoError(t, repo.DeleteLock("alice"))
	require.ErrorIs(t, repo.DeleteLock("alice"), markerrors.ErrLockNotFound)
}

// Test offer table round trips
func TestMemoryRepo_Offers(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.GetOffer("shop.alice")
	require.ErrorIs(t, err, markerrors.ErrOfferNotFound)

	offer := newOffer("alice", "shop.alice", 100)
	require.NoError(t, repo.UpsertOffer(offer))

	got, err := repo.GetOffer("shop.alice")
	require.NoError(t, err)
	require.Equal(t, offer, got)

	require.NoError(t, repo.DeleteOffer("shop.alice"))
	require.ErrorIs(t, repo.DeleteOffer("shop.alice"), markerrors.ErrOfferNotFound)
}

// Test auction table round trips
func TestMemoryRepo_Auctions(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	closesAt := time.Now().UTC().Add(time.Hour)

	_, err := repo.GetAuction("shop.alice")
	require.ErrorIs(t, err, markerrors.ErrAuctionNotFound)

	auction := newAuction("shop.alice", "bob", 100, closesAt)
	require.NoError(t, repo.UpsertAuction(auction))

	got, err := repo.GetAuction("shop.alice")
	require.NoError(t, err)
	require.Equal(t, auction, got)

	// a raise replaces the whole row
	auction.HighestBid = model.SystemAsset(110)
	auction.HighestBidder = "carol"
	require.NoError(t, repo.UpsertAuction(auction))
	got, err = repo.GetAuction("shop.alice")
	require.NoError(t, err)
	require.Equal(t, "carol", got.HighestBidder)

	require.NoError(t, repo.DeleteAuction("shop.alice"))
	require.ErrorIs(t, repo.DeleteAuction("shop.alice"), markerrors.ErrAuctionNotFound)
}

// Test Snapshot/Restore rolls back all three tables
func TestMemoryRepo_SnapshotRestore(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.UpsertLock(newLock("alice", "dave", 0)))
	require.NoError(t, repo.UpsertOffer(newOffer("alice", "shop.alice", 100)))

	snap := repo.Snapshot()

	require.NoError(t, repo.DeleteOffer("shop.alice"))
	require.NoError(t, repo.UpsertAuction(newAuction("shop.alice", "bob", 100, time.Now().Add(time.Hour))))
	require.NoError(t, repo.UpsertLock(newLock("alice", "dave", 1)))

	repo.Restore(snap)

	lock, err := repo.GetLock("alice")
	require.NoError(t, err)
	require.Equal(t, 0, lock.ActiveAuctionCount)

	_, err = repo.GetOffer("shop.alice")
	require.NoError(t, err)

	_, err = repo.GetAuction("shop.alice")
	require.ErrorIs(t, err, markerrors.ErrAuctionNotFound)
}

// Test concurrent access does not race
func TestMemoryRepo_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("sub%d.alice", i)
			_ = repo.UpsertOffer(newOffer("alice", name, int64(i)))
			_, _ = repo.GetOffer(name)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, err := repo.GetOffer(fmt.Sprintf("sub%d.alice", i))
		require.NoError(t, err)
	}
}
