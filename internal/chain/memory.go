package chain

import (
	"errors"
	"fmt"
	"sync"
	"time"

	model "name-market/internal/models"
)

// Collaborator-level errors surfaced through the service interfaces.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownAccount    = errors.New("unknown account")
	ErrNameTaken         = errors.New("account name already taken")
	ErrBadAsset          = errors.New("asset symbol mismatch")
)

// MemoryLedger is an in-memory TokenService keeping one balance per account.
type MemoryLedger struct {
	mu       sync.RWMutex
	balances map[string]int64
}

// NewMemoryLedger creates a ledger holding the given opening balances.
func NewMemoryLedger(balances map[string]int64) *MemoryLedger {
	l := &MemoryLedger{balances: make(map[string]int64, len(balances))}
	for account, amount := range balances {
		l.balances[account] = amount
	}
	return l
}

// Transfer moves amount from one account to another
func (l *MemoryLedger) Transfer(from, to string, amount model.Asset, memo string) error {
	if amount.Symbol != model.SystemSymbol {
		return fmt.Errorf("transfer %q: %w", memo, ErrBadAsset)
	}
	if amount.Amount < 0 {
		return fmt.Errorf("transfer %q: negative amount", memo)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount.Amount {
		return fmt.Errorf("transfer %q from %s: %w", memo, from, ErrInsufficientFunds)
	}
	l.balances[from] -= amount.Amount
	l.balances[to] += amount.Amount
	return nil
}

// Balance returns the current balance of an account
func (l *MemoryLedger) Balance(account string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[account]
}

// Snapshot captures all balances for invocation rollback.
func (l *MemoryLedger) Snapshot() any {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := make(map[string]int64, len(l.balances))
	for account, amount := range l.balances {
		snap[account] = amount
	}
	return snap
}

// Restore discards the current balances in favor of a previous Snapshot.
func (l *MemoryLedger) Restore(snapshot any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances = snapshot.(map[string]int64)
}

// MemoryDirectory is an in-memory AccountService: accounts and the
// authorities behind their permissions.
type MemoryDirectory struct {
	mu       sync.RWMutex
	accounts map[string]map[string]model.Authority // account -> permission -> authority
}

// NewMemoryDirectory creates a directory pre-registered with the given
// accounts, each carrying owner and active authorities over itself.
func NewMemoryDirectory(accounts ...string) *MemoryDirectory {
	d := &MemoryDirectory{accounts: make(map[string]map[string]model.Authority)}
	for _, account := range accounts {
		d.accounts[account] = map[string]model.Authority{
			PermissionOwner:  model.SingleAccountAuthority(account, PermissionOwner),
			PermissionActive: model.SingleAccountAuthority(account, PermissionActive),
		}
	}
	return d
}

// UpdateAuthority rewrites one permission's authority on an existing account
func (d *MemoryDirectory) UpdateAuthority(account, permission string, auth model.Authority) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	perms, ok := d.accounts[account]
	if !ok {
		return fmt.Errorf("update %s@%s: %w", account, permission, ErrUnknownAccount)
	}
	perms[permission] = auth
	return nil
}

// CreateAccount registers a new account under a creator namespace
func (d *MemoryDirectory) CreateAccount(creator, name string, ownerAuth, activeAuth model.Authority) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.accounts[name]; ok {
		return fmt.Errorf("create account %s under %s: %w", name, creator, ErrNameTaken)
	}
	d.accounts[name] = map[string]model.Authority{
		PermissionOwner:  ownerAuth,
		PermissionActive: activeAuth,
	}
	return nil
}

// Exists reports whether an account is registered
func (d *MemoryDirectory) Exists(account string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.accounts[account]
	return ok
}

// AuthorityOf returns the authority currently behind account@permission
func (d *MemoryDirectory) AuthorityOf(account, permission string) (model.Authority, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	auth, ok := d.accounts[account][permission]
	return auth, ok
}

// Snapshot captures all accounts and authorities for invocation rollback.
func (d *MemoryDirectory) Snapshot() any {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snap := make(map[string]map[string]model.Authority, len(d.accounts))
	for account, perms := range d.accounts {
		cp := make(map[string]model.Authority, len(perms))
		for permission, auth := range perms {
			cp[permission] = auth
		}
		snap[account] = cp
	}
	return snap
}

// Restore discards the current accounts in favor of a previous Snapshot.
func (d *MemoryDirectory) Restore(snapshot any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts = snapshot.(map[string]map[string]model.Authority)
}

type bandwidth struct {
	Net model.Asset
	CPU model.Asset
}

// MemoryResources is an in-memory ResourceService recording allocations.
type MemoryResources struct {
	mu        sync.RWMutex
	storage   map[string]int64 // account -> bytes
	bandwidth map[string]bandwidth
}

// NewMemoryResources creates an empty resource registry.
func NewMemoryResources() *MemoryResources {
	return &MemoryResources{
		storage:   make(map[string]int64),
		bandwidth: make(map[string]bandwidth),
	}
}

// AllocateStorage records a storage grant for an account
func (r *MemoryResources) AllocateStorage(payer, account string, bytes int64) error {
	if bytes <= 0 {
		return fmt.Errorf("allocate storage for %s: non-positive size", account)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[account] += bytes
	return nil
}

// DelegateBandwidth records a bandwidth grant for an account
func (r *MemoryResources) DelegateBandwidth(payer, account string, net, cpu model.Asset, transfer bool) error {
	if net.Symbol != model.SystemSymbol || cpu.Symbol != model.SystemSymbol {
		return fmt.Errorf("delegate bandwidth for %s: %w", account, ErrBadAsset)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.bandwidth[account]
	r.bandwidth[account] = bandwidth{
		Net: model.SystemAsset(prev.Net.Amount + net.Amount),
		CPU: model.SystemAsset(prev.CPU.Amount + cpu.Amount),
	}
	return nil
}

// StorageOf returns the storage bytes allocated to an account
func (r *MemoryResources) StorageOf(account string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.storage[account]
}

// Snapshot captures all allocations for invocation rollback.
func (r *MemoryResources) Snapshot() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := struct {
		storage   map[string]int64
		bandwidth map[string]bandwidth
	}{make(map[string]int64, len(r.storage)), make(map[string]bandwidth, len(r.bandwidth))}
	for account, bytes := range r.storage {
		snap.storage[account] = bytes
	}
	for account, bw := range r.bandwidth {
		snap.bandwidth[account] = bw
	}
	return snap
}

// Restore discards the current allocations in favor of a previous Snapshot.
func (r *MemoryResources) Restore(snapshot any) {
	snap := snapshot.(struct {
		storage   map[string]int64
		bandwidth map[string]bandwidth
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = snap.storage
	r.bandwidth = snap.bandwidth
}

// WallClock reads the host clock in UTC.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now().UTC() }

// ManualClock is a settable Clock for tests and deterministic runs.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at the given instant.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// MemoryEnv runs invocations atomically over a set of snapshotting
// collaborators: it snapshots each one, runs the invocation, and restores
// every snapshot if the invocation fails. Invocations are serialized, which
// is the ordering model of the ledger this mirrors.
type MemoryEnv struct {
	mu    sync.Mutex
	clock Clock
	state []Snapshotter
}

// NewMemoryEnv creates an environment over the given clock and the
// collaborators whose state one invocation may touch.
func NewMemoryEnv(clock Clock, state ...Snapshotter) *MemoryEnv {
	return &MemoryEnv{clock: clock, state: state}
}

// Now returns the ledger time for the current invocation
func (e *MemoryEnv) Now() time.Time { return e.clock.Now() }

// Execute runs fn as one atomic invocation
func (e *MemoryEnv) Execute(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snaps := make([]any, len(e.state))
	for i, s := range e.state {
		snaps[i] = s.Snapshot()
	}

	err := fn()
	if err != nil {
		for i := len(e.state) - 1; i >= 0; i-- {
			e.state[i].Restore(snaps[i])
		}
	}
	return err
}
