package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"repair-auctions/internal/auctionerrors"
	model "repair-auctions/internal/models"
)

// AuctionStore defines the durable collection of auction aggregates. A bid is
// part of its parent aggregate and has no access path of its own. The
// race-sensitive guards (duplicate bidder, active status, expiry on placement,
// accept-once) are evaluated inside the store's mutating operations so that a
// check and its write form one atomic step.
type AuctionStore interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListActiveAuctions(now time.Time) ([]model.Auction, error)
	ListAuctionsByPoster(posterID string) ([]model.Auction, error)
	ListAuctionsWithBidder(bidderID string) ([]model.Auction, error)
	AppendBid(auctionID string, bid model.Bid, now time.Time) (model.Auction, error)
	AcceptBid(auctionID, callerID, bidID string) (model.Auction, error)
	SetStatus(auctionID, callerID string, status model.AuctionStatus) (model.Auction, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// Every mutation runs under one write-lock acquisition, which is what makes
// the conditional updates atomic.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]*model.Auction // key: auctionID -> aggregate
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]*model.Auction),
	}
}

// CreateAuction persists a new auction aggregate.
func (s *MemoryStore) CreateAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: id already exists", auction.AuctionID)
	}

	stored := cloneAuction(&auction)
	s.auctions[auction.AuctionID] = &stored
	return nil
}

// GetAuction returns a copy of the auction with its bids populated.
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

// ListActiveAuctions returns auctions that are still open for bids at the
// given instant, most recently created first.
func (s *MemoryStore) ListActiveAuctions(now time.Time) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.IsOpenForBids(now) {
			result = append(result, cloneAuction(a))
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// ListAuctionsByPoster returns all auctions created by the given poster,
// most recently created first.
func (s *MemoryStore) ListAuctionsByPoster(posterID string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.PosterID == posterID {
			result = append(result, cloneAuction(a))
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// ListAuctionsWithBidder returns all auctions containing a bid from the given
// bidder, most recently created first.
func (s *MemoryStore) ListAuctionsWithBidder(bidderID string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.HasBidFrom(bidderID) {
			result = append(result, cloneAuction(a))
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// AppendBid appends a bid to the auction iff the auction is still open for
// bids, the bidder is not the poster, and the bidder has not bid before. All
// guards and the append happen under one lock, so two concurrent calls from
// the same bidder cannot both succeed.
func (s *MemoryStore) AppendBid(auctionID string, bid model.Bid, now time.Time) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.StatusActive {
		return model.Auction{}, fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrAuctionNotActive)
	}
	if !now.Before(a.EndsAt) {
		return model.Auction{}, fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrAuctionExpired)
	}
	if bid.BidderID == a.PosterID {
		return model.Auction{}, fmt.Errorf("append bid to auction %s: %w", auctionID, auctionerrors.ErrSelfBid)
	}
	if a.HasBidFrom(bid.BidderID) {
		return model.Auction{}, fmt.Errorf("append bid to auction %s by %s: %w", auctionID, bid.BidderID, auctionerrors.ErrDuplicateBid)
	}

	a.Bids = append(a.Bids, bid)
	return cloneAuction(a), nil
}

// AcceptBid marks the given bid as accepted iff the caller is the poster, the
// auction is still Active and the bid exists. Setting AcceptedBidID and the
// Accepted status is one atomic update; a second concurrent accept fails the
// status guard.
func (s *MemoryStore) AcceptBid(auctionID, callerID, bidID string) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("accept bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.PosterID != callerID {
		return model.Auction{}, fmt.Errorf("accept bid on auction %s: %w", auctionID, auctionerrors.ErrForbidden)
	}
	if a.Status != model.StatusActive {
		return model.Auction{}, fmt.Errorf("accept bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotActive)
	}
	if _, ok := a.BidByID(bidID); !ok {
		return model.Auction{}, fmt.Errorf("accept bid %s on auction %s: %w", bidID, auctionID, auctionerrors.ErrBidNotFound)
	}

	a.AcceptedBidID = bidID
	a.Status = model.StatusAccepted
	return cloneAuction(a), nil
}

// SetStatus overwrites the auction status iff the caller is the poster. Any
// of the five statuses is reachable from any other; concurrent writers
// resolve last-write-wins.
func (s *MemoryStore) SetStatus(auctionID, callerID string, status model.AuctionStatus) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("set status on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.PosterID != callerID {
		return model.Auction{}, fmt.Errorf("set status on auction %s: %w", auctionID, auctionerrors.ErrForbidden)
	}

	a.Status = status
	return cloneAuction(a), nil
}

// cloneAuction copies the aggregate including its bid list so callers never
// alias store-owned memory.
func cloneAuction(a *model.Auction) model.Auction {
	c := *a
	c.Bids = append([]model.Bid(nil), a.Bids...)
	c.Photos = append([]string(nil), a.Photos...)
	return c
}

func sortNewestFirst(auctions []model.Auction) {
	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].CreatedAt.Equal(auctions[j].CreatedAt) {
			return auctions[i].AuctionID > auctions[j].AuctionID
		}
		return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
	})
}
