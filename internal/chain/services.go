package chain

import (
	"time"

	model "name-market/internal/models"
)

// Permission names recognized by the ledger's authority model.
const (
	PermissionOwner  = "owner"
	PermissionActive = "active"
	// PermissionCode is the permission under which a contract account acts
	// programmatically; the sentinel authority installed by a lock points at it.
	PermissionCode = "code"
)

// TokenService moves fungible tokens between accounts. The market uses it
// for escrow-in (bidder to market), refunds (market to outbid bidder) and
// resource funding (claimer to provisioning).
type TokenService interface {
	Transfer(from, to string, amount model.Asset, memo string) error
}

// AccountService mints accounts and rewrites their permission authorities.
type AccountService interface {
	UpdateAuthority(account, permission string, auth model.Authority) error
	CreateAccount(creator, name string, ownerAuth, activeAuth model.Authority) error
}

// ResourceService provisions storage and bandwidth for a newly created
// account, funded by the payer.
type ResourceService interface {
	AllocateStorage(payer, account string, bytes int64) error
	DelegateBandwidth(payer, account string, net, cpu model.Asset, transfer bool) error
}

// Clock is the ledger clock: monotonic and identical for every read within
// one invocation.
type Clock interface {
	Now() time.Time
}

// Snapshotter captures and restores the state of one collaborator so the
// environment can undo an invocation as a unit.
type Snapshotter interface {
	Snapshot() any
	Restore(snapshot any)
}

// Environment is the transaction-execution environment: it supplies the
// ledger clock and runs each entry point atomically. If fn returns an error,
// every state change fn made - store rows, escrow transfers, created
// accounts - is rolled back before Execute returns.
type Environment interface {
	Clock
	Execute(fn func() error) error
}
