package perftests

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"name-market/internal/chain"
	market "name-market/internal/marketService"
	model "name-market/internal/models"
	"name-market/internal/repository"
)

const benchContract = "market"

// seqName encodes i as a lowercase string, keeping generated names inside
// the market's name alphabet.
func seqName(i int) string {
	if i == 0 {
		return "a"
	}
	var buf [8]byte
	n := len(buf)
	for i > 0 {
		n--
		buf[n] = byte('a' + i%26)
		i /= 26
	}
	return string(buf[n:])
}

func bidderAuth(bidder string) []model.PermissionLevel {
	return []model.PermissionLevel{{Actor: bidder, Permission: chain.PermissionActive}}
}

// setupMarket seeds a locked "ns" namespace with numNames standing offers and
// numBidders funded accounts, wired over in-memory collaborators.
func setupMarket(numNames, numBidders int) (*repository.MemoryRepo, *market.MarketService) {
	repo := repository.NewMemoryRepo()

	balances := map[string]int64{benchContract: 0}
	for i := 0; i < numBidders; i++ {
		balances["user"+seqName(i)] = 1 << 40
	}

	ledger := chain.NewMemoryLedger(balances)
	directory := chain.NewMemoryDirectory(benchContract, "ns")
	resources := chain.NewMemoryResources()
	env := chain.NewMemoryEnv(chain.WallClock{}, repo, ledger, directory, resources)

	repo.UpsertLock(model.AccountLock{Account: "ns", Owner: "ns"})
	for i := 0; i < numNames; i++ {
		repo.UpsertOffer(model.Offer{
			Owner:             "ns",
			Name:              seqName(i) + ".ns",
			StartPrice:        model.SystemAsset(100),
			BiddingTimeoutSec: market.MaxBiddingTimeoutSec,
		})
	}

	return repo, market.NewMarketService(repo, env, ledger, directory, resources, benchContract)
}

// Benchmark 1: Bid - Isolated names (Low Contention - Micro Benchmark)
func Benchmark_Bid_IsolatedNames(b *testing.B) {
	_, svc := setupMarket(b.N, b.N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidder := "user" + seqName(i)
		name := seqName(i) + ".ns"
		amount := model.SystemAsset(int64(100 + rand.Intn(100)))
		if _, err := svc.Bid(bidderAuth(bidder), bidder, name, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: Bid - Shared name (High Contention - Concurrency Benchmark)
func Benchmark_Bid_ConcurrentSharedName(b *testing.B) {
	_, svc := setupMarket(1, 100)
	name := seqName(0) + ".ns"

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := "user" + seqName(rnd.Intn(100))

			// overshoot the ten percent increment rule; rejected raises
			// still exercise the full escrow/rollback path
			next := atomic.AddInt64(&lastBid, atomic.LoadInt64(&lastBid)/5+1)
			_, _ = svc.Bid(bidderAuth(bidder), bidder, name, model.SystemAsset(next))
		}
	})
}

// Benchmark 3: GetAuction - Single-Threaded (Low Contention)
func Benchmark_GetAuction_SingleThreaded(b *testing.B) {
	_, svc := setupMarket(b.N, b.N)

	for i := 0; i < b.N; i++ {
		bidder := "user" + seqName(i)
		name := seqName(i) + ".ns"
		if _, err := svc.Bid(bidderAuth(bidder), bidder, name, model.SystemAsset(100)); err != nil {
			b.Fatalf("failed to open auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetAuction(seqName(i) + ".ns"); err != nil {
			b.Fatalf("failed to get auction: %v", err)
		}
	}
}

// Benchmark 4: GetAuction - Concurrent (High Contention)
func Benchmark_GetAuction_ConcurrentSharedName(b *testing.B) {
	_, svc := setupMarket(1, 1)
	name := seqName(0) + ".ns"

	bidder := "user" + seqName(0)
	if _, err := svc.Bid(bidderAuth(bidder), bidder, name, model.SystemAsset(100)); err != nil {
		b.Fatalf("failed to open auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetAuction(name); err != nil {
				b.Fatalf("failed to get auction: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedName(b *testing.B) {
	_, svc := setupMarket(1, 100)
	name := seqName(0) + ".ns"

	bidder := "user" + seqName(0)
	if _, err := svc.Bid(bidderAuth(bidder), bidder, name, model.SystemAsset(100)); err != nil {
		b.Fatalf("failed to open auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: raise the auction
				raiser := "user" + seqName(rnd.Intn(100))
				next := atomic.AddInt64(&lastBid, atomic.LoadInt64(&lastBid)/5+1)
				_, _ = svc.Bid(bidderAuth(raiser), raiser, name, model.SystemAsset(next))
			default:
				// Reader: inspect the auction
				_, _ = svc.GetAuction(name)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
