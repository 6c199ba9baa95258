package chain

import (
	"errors"
	"testing"
	"time"

	model "name-market/internal/models"

	"github.com/stretchr/testify/require"
)

func TestMemoryLedger_Transfer(t *testing.T) {
	t.Parallel()

	ledger := NewMemoryLedger(map[string]int64{"alice": 100, "market": 0})

	tests := []struct {
		name    string
		from    string
		to      string
		amount  model.Asset
		wantErr error
	}{
		{name: "valid_transfer", from: "alice", to: "market", amount: model.SystemAsset(60)},
		{name: "insufficient_funds", from: "alice", to: "market", amount: model.SystemAsset(50), wantErr: ErrInsufficientFunds},
		{name: "unknown_sender_is_broke", from: "nobody", to: "market", amount: model.SystemAsset(1), wantErr: ErrInsufficientFunds},
		{name: "wrong_symbol", from: "alice", to: "market", amount: model.Asset{Amount: 1, Symbol: "BTC"}, wantErr: ErrBadAsset},
		{name: "zero_amount", from: "alice", to: "market", amount: model.SystemAsset(0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ledger.Transfer(tc.from, tc.to, tc.amount, "test")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	require.Equal(t, int64(40), ledger.Balance("alice"))
	require.Equal(t, int64(60), ledger.Balance("market"))
}

func TestMemoryDirectory(t *testing.T) {
	t.Parallel()

	dir := NewMemoryDirectory("alice", "market")

	auth := model.SingleAccountAuthority("bob", PermissionActive)

	require.NoError(t, dir.UpdateAuthority("alice", PermissionOwner, auth))
	got, ok := dir.AuthorityOf("alice", PermissionOwner)
	require.True(t, ok)
	require.Equal(t, auth, got)

	err := dir.UpdateAuthority("ghost", PermissionOwner, auth)
	require.ErrorIs(t, err, ErrUnknownAccount)

	require.NoError(t, dir.CreateAccount("alice", "shop.alice", auth, auth))
	require.True(t, dir.Exists("shop.alice"))

	err = dir.CreateAccount("alice", "shop.alice", auth, auth)
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestMemoryEnv_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	ledger := NewMemoryLedger(map[string]int64{"alice": 100, "market": 0})
	clock := NewManualClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	env := NewMemoryEnv(clock, ledger)

	boom := errors.New("downstream failure")
	err := env.Execute(func() error {
		require.NoError(t, ledger.Transfer("alice", "market", model.SystemAsset(100), "escrow"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	// the escrow transfer was undone with the invocation
	require.Equal(t, int64(100), ledger.Balance("alice"))
	require.Equal(t, int64(0), ledger.Balance("market"))
}

func TestMemoryEnv_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	ledger := NewMemoryLedger(map[string]int64{"alice": 100, "market": 0})
	env := NewMemoryEnv(NewManualClock(time.Now()), ledger)

	err := env.Execute(func() error {
		return ledger.Transfer("alice", "market", model.SystemAsset(70), "escrow")
	})
	require.NoError(t, err)
	require.Equal(t, int64(30), ledger.Balance("alice"))
	require.Equal(t, int64(70), ledger.Balance("market"))
}

func TestManualClock_Advance(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	require.Equal(t, start, clock.Now())

	clock.Advance(3601 * time.Second)
	require.Equal(t, start.Add(3601*time.Second), clock.Now())
}
