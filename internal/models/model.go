package models

import "time"

// SystemSymbol is the single asset type the market recognizes. Bids,
// starting prices and refunds are all denominated in it.
const SystemSymbol = "SYS"

// Asset is an integer amount of a named token.
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol string `json:"symbol"`
}

// SystemAsset returns an Asset of the system token.
func SystemAsset(amount int64) Asset {
	return Asset{Amount: amount, Symbol: SystemSymbol}
}

// PermissionLevel identifies one permission of one account, e.g. alice@active.
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// PermissionLevelWeight is a PermissionLevel with its voting weight inside
// an Authority.
type PermissionLevelWeight struct {
	Permission PermissionLevel `json:"permission"`
	Weight     uint16          `json:"weight"`
}

// KeyWeight is a public key with its voting weight inside an Authority.
type KeyWeight struct {
	Key    string `json:"key"`
	Weight uint16 `json:"weight"`
}

// WaitWeight adds weight after a mandatory delay.
type WaitWeight struct {
	WaitSec uint32 `json:"wait_sec"`
	Weight  uint16 `json:"weight"`
}

// Authority describes who may act for a permission: any combination of keys,
// other accounts' permissions and time delays whose weights reach Threshold.
type Authority struct {
	Threshold uint32                  `json:"threshold"`
	Keys      []KeyWeight             `json:"keys,omitempty"`
	Accounts  []PermissionLevelWeight `json:"accounts,omitempty"`
	Waits     []WaitWeight            `json:"waits,omitempty"`
}

// SingleAccountAuthority returns an authority satisfied by exactly one
// permission of one account.
func SingleAccountAuthority(actor, permission string) Authority {
	return Authority{
		Threshold: 1,
		Accounts: []PermissionLevelWeight{
			{Permission: PermissionLevel{Actor: actor, Permission: permission}, Weight: 1},
		},
	}
}

// AccountLock records delegated custody of an existing account: the market
// holds the account's owner permission until the recorded owner reclaims it.
type AccountLock struct {
	Account            string    `json:"account"`
	Owner              string    `json:"owner"`
	ReclaimAuthority   Authority `json:"reclaim_authority"`
	ActiveAuctionCount int       `json:"active_auction_count"`
}

// Offer is a published intent to sell a name at or above a reserve price.
type Offer struct {
	Owner             string `json:"owner"`
	Name              string `json:"name"`
	StartPrice        Asset  `json:"start_price"`
	BiddingTimeoutSec uint32 `json:"bidding_timeout_sec"`
}

// Auction is an active time-boxed bidding process for a name. The market's
// custodial balance holds exactly HighestBid in escrow while the row exists.
type Auction struct {
	Name              string    `json:"name"`
	HighestBid        Asset     `json:"highest_bid"`
	HighestBidder     string    `json:"highest_bidder"`
	BiddingTimeoutSec uint32    `json:"bidding_timeout_sec"`
	ClosesAt          time.Time `json:"closes_at"`
}

// BidReceipt reports the auction state resulting from one accepted bid.
type BidReceipt struct {
	BidID     string    `json:"bid_id"`
	Name      string    `json:"name"`
	Bidder    string    `json:"bidder"`
	Amount    Asset     `json:"amount"`
	ClosesAt  time.Time `json:"closes_at"`
	CreatedAt time.Time `json:"created_at"`
}
