package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role of an authenticated caller, as asserted by the identity provider.
type Role string

const (
	RoleDriver Role = "driver"
	RoleGarage Role = "garage"
)

// ValidRole reports whether r is a role this service knows about.
func ValidRole(r Role) bool {
	switch r {
	case RoleDriver, RoleGarage:
		return true
	default:
		return false
	}
}

// Identity is the authenticated-caller fact attached to every request.
// It is issued by the external identity provider and trusted as-is.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Contact holds poster details resolved from the external user service.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AuctionStatus is the stored lifecycle state of an auction.
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "Active"
	StatusAccepted  AuctionStatus = "Accepted"
	StatusCompleted AuctionStatus = "Completed"
	StatusCancelled AuctionStatus = "Cancelled"
	StatusExpired   AuctionStatus = "Expired"
)

// ValidAuctionStatus reports whether s is one of the five stored statuses.
func ValidAuctionStatus(s AuctionStatus) bool {
	switch s {
	case StatusActive, StatusAccepted, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// Vehicle is a snapshot of the vehicle captured when the auction is created.
// It is a copy, not a reference; later profile edits never touch it.
type Vehicle struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Drivable bool   `json:"drivable"`
}

// Bid is a garage's sealed offer against one auction. Bids only exist inside
// their parent auction and have no storage path of their own.
type Bid struct {
	BidID         string          `json:"bid_id"`
	BidderID      string          `json:"bidder_id"`
	Amount        decimal.Decimal `json:"amount"`
	EstimatedTime string          `json:"estimated_time"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Auction is a driver's repair job open for bidding.
type Auction struct {
	AuctionID     string        `json:"auction_id"`
	PosterID      string        `json:"poster_id"`
	Vehicle       Vehicle       `json:"vehicle"`
	Description   string        `json:"description"`
	Photos        []string      `json:"photos,omitempty"`
	Status        AuctionStatus `json:"status"`
	Bids          []Bid         `json:"bids"`
	AcceptedBidID string        `json:"accepted_bid_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	EndsAt        time.Time     `json:"ends_at"`
}

// IsOpenForBids reports whether the auction still accepts bids at the given
// instant. Expiry is a derived fact: stored status stays Active after EndsAt,
// only this predicate flips.
func (a *Auction) IsOpenForBids(now time.Time) bool {
	return a.Status == StatusActive && now.Before(a.EndsAt)
}

// HasBidFrom reports whether bidderID already has a bid on this auction.
func (a *Auction) HasBidFrom(bidderID string) bool {
	for _, b := range a.Bids {
		if b.BidderID == bidderID {
			return true
		}
	}
	return false
}

// BidByID returns the bid with the given id, if present.
func (a *Auction) BidByID(bidID string) (Bid, bool) {
	for _, b := range a.Bids {
		if b.BidID == bidID {
			return b, true
		}
	}
	return Bid{}, false
}
