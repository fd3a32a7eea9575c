package bidding

import (
	"fmt"
	"time"

	"repair-auctions/internal/auctionerrors"
	"repair-auctions/internal/models"
	"repair-auctions/internal/repository"
	"repair-auctions/utils"

	"github.com/shopspring/decimal"
)

// BidService validates and appends bids under the auction's invariants.
type BidService struct {
	store repository.AuctionStore
}

// NewBidService creates a new BidService instance.
func NewBidService(store repository.AuctionStore) *BidService {
	return &BidService{
		store: store,
	}
}

// PlaceBid validates the input and appends a new bid to the auction. The
// store evaluates the active-status, expiry, self-bid and duplicate-bidder
// guards atomically with the append, so no validation happens against a
// stale snapshot.
func (s *BidService) PlaceBid(auctionID, bidderID string, amount decimal.Decimal, estimatedTime, note string) (models.Auction, error) {
	if auctionID == "" || bidderID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auction or bidder id", auctionerrors.ErrValidation)
	}
	if estimatedTime == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing time estimate", auctionerrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrValidation)
	}

	now := time.Now().UTC()
	bid := models.Bid{
		BidID:         utils.GenerateID(),
		BidderID:      bidderID,
		Amount:        amount,
		EstimatedTime: estimatedTime,
		Note:          note,
		CreatedAt:     now,
	}

	auction, err := s.store.AppendBid(auctionID, bid, now)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to place bid on auction %s by %s: %w", auctionID, bidderID, err)
	}

	return auction, nil
}
