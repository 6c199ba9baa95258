package markerrors

import "errors"

// Repository-level errors
var (
	ErrLockNotFound    = errors.New("no lock registered for account")
	ErrOfferNotFound   = errors.New("no offer found for name")
	ErrAuctionNotFound = errors.New("no auction found for name")
	ErrLockExists      = errors.New("account is already locked")
)

// business logic errors
var (
	ErrUnauthorized       = errors.New("missing required authorization")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrNotImplemented     = errors.New("operation not implemented")
)

// auction-specific rejections
var (
	ErrBidTooLow             = errors.New("bid below the starting price")
	ErrInsufficientIncrement = errors.New("bid must exceed the highest bid by at least 10%")
	ErrAlreadyHighestBidder  = errors.New("account is already the highest bidder")
	ErrAuctionClosed         = errors.New("auction is already closed")
	ErrNotForSale            = errors.New("name is not currently for sale")
)

// ErrExternalCall wraps failures of the token, account and resource
// services; it always aborts the whole invocation.
var ErrExternalCall = errors.New("external service call failed")
