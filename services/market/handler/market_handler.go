package handler

import (
	"fmt"
	"net/http"
	"time"

	model "name-market/internal/models"
	"name-market/services/market/helpers"
	"name-market/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	Lock(auths []model.PermissionLevel, account, owner string, reclaim model.Authority) error
	Unlock(auths []model.PermissionLevel, account string) error
	Offer(auths []model.PermissionLevel, owner, name string, startPrice model.Asset, timeoutSec uint32) (model.Offer, error)
	CancelOffer(auths []model.PermissionLevel, name string) error
	Bid(auths []model.PermissionLevel, bidder, name string, amount model.Asset) (model.BidReceipt, error)
	Claim(auths []model.PermissionLevel, claimer, name string) error
	EarlyClose(auths []model.PermissionLevel, owner, name string) error
	IsLocked(account string) (bool, error)
	IsLockedBy(owner, account string) (bool, error)
	GetLock(account string) (model.AccountLock, error)
	GetOffer(name string) (model.Offer, error)
	GetAuction(name string) (model.Auction, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// LockHandler handles POST /locks
func (h *MarketHandler) LockHandler(c *gin.Context) {
	var req helpers.LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LockHandler", err)
		return
	}

	if err := h.service.Lock(req.Authorizations, req.Account, req.Owner, req.ReclaimAuthority); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("LockHandler: failed to lock account", map[string]any{
			"account": req.Account,
			"owner":   req.Owner,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"account": req.Account}, "account locked successfully")
	helpers.LogSuccess("LockHandler", "account locked successfully", map[string]any{
		"account": req.Account,
		"owner":   req.Owner,
	})
}

// UnlockHandler handles POST /locks/:account/unlock
func (h *MarketHandler) UnlockHandler(c *gin.Context) {
	account := c.Param("account")

	var req helpers.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UnlockHandler", err)
		return
	}

	if err := h.service.Unlock(req.Authorizations, account); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UnlockHandler: failed to unlock account", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"account": account}, "account unlocked successfully")
	helpers.LogSuccess("UnlockHandler", "account unlocked successfully", map[string]any{
		"account": account,
	})
}

// GetLockHandler handles GET /locks/:account
func (h *MarketHandler) GetLockHandler(c *gin.Context) {
	account := c.Param("account")

	lock, err := h.service.GetLock(account)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetLockHandler: lock not retrieved", map[string]any{"account": account, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lock, "lock retrieved successfully")
	helpers.LogSuccess("GetLockHandler", "lock retrieved successfully", map[string]any{
		"account": account,
		"owner":   lock.Owner,
	})
}

// LockStatusHandler handles GET /locks/:account/status. With an owner query
// parameter it reports whether the account is locked on behalf of that owner.
func (h *MarketHandler) LockStatusHandler(c *gin.Context) {
	account := c.Param("account")

	var locked bool
	var err error
	if owner := c.Query("owner"); owner != "" {
		locked, err = h.service.IsLockedBy(owner, account)
	} else {
		locked, err = h.service.IsLocked(account)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("LockStatusHandler: failed to check lock", map[string]any{
			"account": account,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.LockStatusResponse{Account: account, Locked: locked}
	utils.JSONResponse(c, http.StatusOK, resp, "lock status retrieved successfully")
	helpers.LogSuccess("LockStatusHandler", "lock status retrieved successfully", map[string]any{
		"account": account,
		"locked":  locked,
	})
}

// OfferHandler handles POST /offers
func (h *MarketHandler) OfferHandler(c *gin.Context) {
	var req helpers.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OfferHandler", err)
		return
	}

	offer, err := h.service.Offer(req.Authorizations, req.Owner, req.Name, req.StartPrice, req.BiddingTimeoutSec)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("OfferHandler: failed to publish offer", map[string]any{
			"owner": req.Owner,
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, offer, "offer published successfully")
	helpers.LogSuccess("OfferHandler", "offer published successfully", map[string]any{
		"owner":       offer.Owner,
		"name":        offer.Name,
		"start_price": offer.StartPrice.Amount,
		"timeout_sec": offer.BiddingTimeoutSec,
	})
}

// CancelOfferHandler handles POST /offers/:name/cancel
func (h *MarketHandler) CancelOfferHandler(c *gin.Context) {
	name := c.Param("name")

	var req helpers.CancelOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelOfferHandler", err)
		return
	}

	if err := h.service.CancelOffer(req.Authorizations, name); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelOfferHandler: failed to cancel offer", map[string]any{
			"name":  name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"name": name}, "offer cancelled successfully")
	helpers.LogSuccess("CancelOfferHandler", "offer cancelled successfully", map[string]any{
		"name": name,
	})
}

// GetOfferHandler handles GET /offers/:name
func (h *MarketHandler) GetOfferHandler(c *gin.Context) {
	name := c.Param("name")

	offer, err := h.service.GetOffer(name)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetOfferHandler: offer not retrieved", map[string]any{"name": name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, offer, "offer retrieved successfully")
	helpers.LogSuccess("GetOfferHandler", "offer retrieved successfully", map[string]any{
		"name":  name,
		"owner": offer.Owner,
	})
}

// BidHandler handles POST /bids
func (h *MarketHandler) BidHandler(c *gin.Context) {
	var req helpers.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BidHandler", err)
		return
	}

	receipt, err := h.service.Bid(req.Authorizations, req.Bidder, req.Name, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("BidHandler: failed to place bid", map[string]any{
			"bidder": req.Bidder,
			"name":   req.Name,
			"amount": req.Amount.Amount,
			"error":  err.Error(),
		})
		return
	}

	resp := helpers.BidReceiptResponse{
		BidID:     receipt.BidID,
		Name:      receipt.Name,
		Bidder:    receipt.Bidder,
		Amount:    receipt.Amount,
		ClosesAt:  receipt.ClosesAt.UTC().Format(time.RFC3339),
		CreatedAt: receipt.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted successfully")
	helpers.LogSuccess("BidHandler", "bid accepted successfully", map[string]any{
		"bid_id": receipt.BidID,
		"name":   receipt.Name,
		"bidder": receipt.Bidder,
		"amount": receipt.Amount.Amount,
	})
}

// GetAuctionHandler handles GET /auctions/:name
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	name := c.Param("name")

	auction, err := h.service.GetAuction(name)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("GetAuctionHandler: auction not retrieved", map[string]any{"name": name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"name":           name,
		"highest_bid":    auction.HighestBid.Amount,
		"highest_bidder": auction.HighestBidder,
	})
}

// ClaimHandler handles POST /claims
func (h *MarketHandler) ClaimHandler(c *gin.Context) {
	var req helpers.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ClaimHandler", err)
		return
	}

	if err := h.service.Claim(req.Authorizations, req.Claimer, req.Name); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ClaimHandler: failed to claim name", map[string]any{
			"claimer": req.Claimer,
			"name":    req.Name,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"name": req.Name, "owner": req.Claimer}, "name claimed successfully")
	helpers.LogSuccess("ClaimHandler", "name claimed successfully", map[string]any{
		"claimer": req.Claimer,
		"name":    req.Name,
	})
}

// EarlyCloseHandler handles POST /auctions/:name/close
func (h *MarketHandler) EarlyCloseHandler(c *gin.Context) {
	name := c.Param("name")

	var req helpers.EarlyCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EarlyCloseHandler", err)
		return
	}

	if err := h.service.EarlyClose(req.Authorizations, req.Owner, name); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EarlyCloseHandler: early close rejected", map[string]any{
			"owner": req.Owner,
			"name":  name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"name": name}, "auction closed successfully")
	helpers.LogSuccess("EarlyCloseHandler", "auction closed successfully", map[string]any{
		"owner": req.Owner,
		"name":  name,
	})
}
