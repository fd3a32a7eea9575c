package lifecycle

import (
	"fmt"
	"time"

	"repair-auctions/internal/auctionerrors"
	"repair-auctions/internal/models"
	"repair-auctions/internal/repository"
	"repair-auctions/utils"
)

// DefaultAuctionWindow is how long an auction stays open for bids.
const DefaultAuctionWindow = 7 * 24 * time.Hour

// LifecycleService creates auctions and executes the two state-changing
// operations: accepting a bid and setting the status.
type LifecycleService struct {
	store  repository.AuctionStore
	window time.Duration
}

// NewLifecycleService creates a new LifecycleService instance. A
// non-positive window falls back to the seven-day default.
func NewLifecycleService(store repository.AuctionStore, window time.Duration) *LifecycleService {
	if window <= 0 {
		window = DefaultAuctionWindow
	}
	return &LifecycleService{
		store:  store,
		window: window,
	}
}

// CreateAuction validates the request and persists a new Active auction with
// an empty bid list and EndsAt fixed at creation time.
func (s *LifecycleService) CreateAuction(posterID string, vehicle models.Vehicle, description string, photos []string) (models.Auction, error) {
	if posterID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing poster id", auctionerrors.ErrValidation)
	}
	if vehicle.Make == "" || vehicle.Year == 0 {
		return models.Auction{}, fmt.Errorf("service: %w - vehicle make and year are required", auctionerrors.ErrValidation)
	}
	if description == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing description", auctionerrors.ErrValidation)
	}

	now := time.Now().UTC()
	auction := models.Auction{
		AuctionID:   utils.GenerateID(),
		PosterID:    posterID,
		Vehicle:     vehicle,
		Description: description,
		Photos:      photos,
		Status:      models.StatusActive,
		Bids:        []models.Bid{},
		CreatedAt:   now,
		EndsAt:      now.Add(s.window),
	}

	if err := s.store.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for poster %s: %w", posterID, err)
	}

	return auction, nil
}

// AcceptBid sets the accepted bid and the Accepted status as one atomic store
// update. Only the poster may accept, and only while the stored status is
// Active. The bidding window is not re-checked; a bid on a past-EndsAt
// auction can still be accepted as long as the status allows it.
func (s *LifecycleService) AcceptBid(auctionID, callerID, bidID string) (models.Auction, error) {
	if auctionID == "" || callerID == "" || bidID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auction, caller or bid id", auctionerrors.ErrValidation)
	}

	auction, err := s.store.AcceptBid(auctionID, callerID, bidID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to accept bid %s on auction %s: %w", bidID, auctionID, err)
	}

	return auction, nil
}

// SetStatus moves the auction to any of the five statuses. Ownership is the
// only transition guard; concurrent writers resolve last-write-wins.
func (s *LifecycleService) SetStatus(auctionID, callerID string, status models.AuctionStatus) (models.Auction, error) {
	if auctionID == "" || callerID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auction or caller id", auctionerrors.ErrValidation)
	}
	if !models.ValidAuctionStatus(status) {
		return models.Auction{}, fmt.Errorf("service: %w - unrecognized status %q", auctionerrors.ErrValidation, status)
	}

	auction, err := s.store.SetStatus(auctionID, callerID, status)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to set status on auction %s: %w", auctionID, err)
	}

	return auction, nil
}

// GetAuction returns a single auction with its bids populated.
func (s *LifecycleService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction id", auctionerrors.ErrValidation)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	return auction, nil
}

// ListActiveAuctions returns auctions still open for bids, newest first.
func (s *LifecycleService) ListActiveAuctions() ([]models.Auction, error) {
	auctions, err := s.store.ListActiveAuctions(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active auctions: %w", err)
	}
	return auctions, nil
}

// ListOwnAuctions returns all auctions created by the caller, newest first.
func (s *LifecycleService) ListOwnAuctions(posterID string) ([]models.Auction, error) {
	if posterID == "" {
		return nil, fmt.Errorf("service: %w - empty poster id", auctionerrors.ErrValidation)
	}

	auctions, err := s.store.ListAuctionsByPoster(posterID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions for poster %s: %w", posterID, err)
	}
	return auctions, nil
}
