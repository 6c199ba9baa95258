package helpers

import (
	model "name-market/internal/models"
)

// Request/Response DTOs
//
// Every mutating request carries the full set of authenticated principals;
// the service layer asserts required subset membership.

type LockRequest struct {
	Account          string                  `json:"account" binding:"required"`
	Owner            string                  `json:"owner" binding:"required"`
	ReclaimAuthority model.Authority         `json:"reclaim_authority" binding:"required"`
	Authorizations   []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type UnlockRequest struct {
	Authorizations []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type OfferRequest struct {
	Owner             string                  `json:"owner" binding:"required"`
	Name              string                  `json:"name" binding:"required"`
	StartPrice        model.Asset             `json:"start_price" binding:"required"`
	BiddingTimeoutSec uint32                  `json:"bidding_timeout_sec"`
	Authorizations    []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type CancelOfferRequest struct {
	Authorizations []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type BidRequest struct {
	Bidder         string                  `json:"bidder" binding:"required"`
	Name           string                  `json:"name" binding:"required"`
	Amount         model.Asset             `json:"amount" binding:"required"`
	Authorizations []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type ClaimRequest struct {
	Claimer        string                  `json:"claimer" binding:"required"`
	Name           string                  `json:"name" binding:"required"`
	Authorizations []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type EarlyCloseRequest struct {
	Owner          string                  `json:"owner" binding:"required"`
	Authorizations []model.PermissionLevel `json:"authorizations" binding:"required"`
}

type BidReceiptResponse struct {
	BidID     string      `json:"bid_id"`
	Name      string      `json:"name"`
	Bidder    string      `json:"bidder"`
	Amount    model.Asset `json:"amount"`
	ClosesAt  string      `json:"closes_at"`
	CreatedAt string      `json:"created_at"`
}

type LockStatusResponse struct {
	Account string `json:"account"`
	Locked  bool   `json:"locked"`
}
