package aggregator

import (
	"fmt"
	"time"

	"repair-auctions/internal/auctionerrors"
	"repair-auctions/internal/models"
	"repair-auctions/internal/repository"

	"github.com/shopspring/decimal"
)

// UserDirectory resolves poster contact details from the external user
// service. Missing entries are tolerated; the projection just leaves the
// contact fields empty.
type UserDirectory interface {
	ContactByID(userID string) (models.Contact, bool)
}

// BidProjection is one row of a garage's dashboard: its bid joined with the
// parent auction it was placed on.
type BidProjection struct {
	AuctionID     string               `json:"auction_id"`
	BidID         string               `json:"bid_id"`
	Vehicle       models.Vehicle       `json:"vehicle"`
	Description   string               `json:"description"`
	Photos        []string             `json:"photos,omitempty"`
	AuctionStatus models.AuctionStatus `json:"auction_status"`
	BidAmount     decimal.Decimal      `json:"bid_amount"`
	EstimatedTime string               `json:"estimated_time"`
	Note          string               `json:"note,omitempty"`
	BidCreatedAt  time.Time            `json:"bid_created_at"`
	EndsAt        time.Time            `json:"ends_at"`
	IsAccepted    bool                 `json:"is_accepted"`
	PosterName    string               `json:"poster_name,omitempty"`
	PosterPhone   string               `json:"poster_phone,omitempty"`
}

// BidStats summarizes a garage's bidding across all auctions.
type BidStats struct {
	TotalBids    int `json:"total_bids"`
	AcceptedBids int `json:"accepted_bids"`
	ActiveBids   int `json:"active_bids"`
}

// AggregatorService builds per-bidder views by scanning auctions that contain
// the bidder's bid. Read-only; it never mutates an aggregate.
type AggregatorService struct {
	store     repository.AuctionStore
	directory UserDirectory
}

// NewAggregatorService creates a new AggregatorService instance. The
// directory may be nil, in which case poster contact fields stay empty.
func NewAggregatorService(store repository.AuctionStore, directory UserDirectory) *AggregatorService {
	return &AggregatorService{
		store:     store,
		directory: directory,
	}
}

// ListMyBids returns one projection per bid the garage has placed, ordered by
// the parent auction's creation time, newest auction first.
func (s *AggregatorService) ListMyBids(bidderID string) ([]BidProjection, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty bidder id", auctionerrors.ErrValidation)
	}

	auctions, err := s.store.ListAuctionsWithBidder(bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for bidder %s: %w", bidderID, err)
	}

	projections := make([]BidProjection, 0, len(auctions))
	for _, auction := range auctions {
		bid, ok := bidFrom(&auction, bidderID)
		if !ok {
			continue
		}

		p := BidProjection{
			AuctionID:     auction.AuctionID,
			BidID:         bid.BidID,
			Vehicle:       auction.Vehicle,
			Description:   auction.Description,
			Photos:        auction.Photos,
			AuctionStatus: auction.Status,
			BidAmount:     bid.Amount,
			EstimatedTime: bid.EstimatedTime,
			Note:          bid.Note,
			BidCreatedAt:  bid.CreatedAt,
			EndsAt:        auction.EndsAt,
			IsAccepted:    auction.AcceptedBidID == bid.BidID,
		}
		if s.directory != nil {
			if contact, ok := s.directory.ContactByID(auction.PosterID); ok {
				p.PosterName = contact.Name
				p.PosterPhone = contact.Phone
			}
		}
		projections = append(projections, p)
	}

	return projections, nil
}

// BidStats counts the garage's bids over the same scan. ActiveBids respects
// derived expiry: a bid on a stored-Active but past-EndsAt auction does not
// count as active.
func (s *AggregatorService) BidStats(bidderID string) (BidStats, error) {
	if bidderID == "" {
		return BidStats{}, fmt.Errorf("service: %w - empty bidder id", auctionerrors.ErrValidation)
	}

	auctions, err := s.store.ListAuctionsWithBidder(bidderID)
	if err != nil {
		return BidStats{}, fmt.Errorf("service: failed to compute bid stats for bidder %s: %w", bidderID, err)
	}

	now := time.Now().UTC()
	stats := BidStats{}
	for _, auction := range auctions {
		bid, ok := bidFrom(&auction, bidderID)
		if !ok {
			continue
		}
		stats.TotalBids++
		if auction.AcceptedBidID == bid.BidID {
			stats.AcceptedBids++
		}
		if auction.IsOpenForBids(now) {
			stats.ActiveBids++
		}
	}

	return stats, nil
}

// bidFrom finds the bidder's bid inside the aggregate. At most one exists per
// auction.
func bidFrom(auction *models.Auction, bidderID string) (models.Bid, bool) {
	for _, b := range auction.Bids {
		if b.BidderID == bidderID {
			return b, true
		}
	}
	return models.Bid{}, false
}
