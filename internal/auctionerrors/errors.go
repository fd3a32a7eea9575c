package auctionerrors

import "errors"

// Lookup and authorization errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrForbidden       = errors.New("caller is not the auction poster")
)

// Validation errors
var (
	ErrValidation  = errors.New("invalid request")
	ErrBidNotFound = errors.New("bid not found in auction")
)

// Business-rule conflicts on otherwise well-formed requests
var (
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrAuctionExpired   = errors.New("bidding window has closed")
	ErrDuplicateBid     = errors.New("bidder has already bid on this auction")
	ErrSelfBid          = errors.New("cannot bid on own auction")
)

// IsConflict reports whether err belongs to the conflict family.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAuctionNotActive) ||
		errors.Is(err, ErrAuctionExpired) ||
		errors.Is(err, ErrDuplicateBid) ||
		errors.Is(err, ErrSelfBid)
}
