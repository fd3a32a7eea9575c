package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"repair-auctions/internal/auctionerrors"
	model "repair-auctions/internal/models"

	"github.com/lib/pq"
)

// PostgresStore is an AuctionStore backed by Postgres. The conditional guards
// the memory store evaluates under its mutex are expressed here as predicates
// of single conditional statements, plus a unique (auction_id, bidder_id)
// constraint as the backstop for the double-bid race.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(database *sql.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

const auctionColumns = `
	id, poster_id, vehicle_make, vehicle_model, vehicle_year, vehicle_drivable,
	description, photos, status, accepted_bid_id, created_at, ends_at`

// CreateAuction persists a new auction aggregate.
func (s *PostgresStore) CreateAuction(auction model.Auction) error {
	query := `
	INSERT INTO auctions (id, poster_id, vehicle_make, vehicle_model, vehicle_year, vehicle_drivable, description, photos, status, created_at, ends_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.Exec(query,
		auction.AuctionID, auction.PosterID,
		auction.Vehicle.Make, auction.Vehicle.Model, auction.Vehicle.Year, auction.Vehicle.Drivable,
		auction.Description, pq.Array(auction.Photos),
		string(auction.Status), auction.CreatedAt, auction.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("repository.PostgresStore.CreateAuction: %w", err)
	}
	return nil
}

// GetAuction returns the auction with its bids populated.
func (s *PostgresStore) GetAuction(auctionID string) (model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`

	auction, err := s.scanAuction(s.db.QueryRow(query, auctionID))
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.GetAuction: %w", err)
	}

	if err := s.loadBids(&auction); err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.GetAuction: %w", err)
	}
	return auction, nil
}

// ListActiveAuctions returns auctions still open for bids at the given
// instant, most recently created first.
func (s *PostgresStore) ListActiveAuctions(now time.Time) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE status = 'Active' AND ends_at > $1 ORDER BY created_at DESC`
	return s.listAuctions(query, now)
}

// ListAuctionsByPoster returns all auctions created by the given poster,
// most recently created first.
func (s *PostgresStore) ListAuctionsByPoster(posterID string) ([]model.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE poster_id = $1 ORDER BY created_at DESC`
	return s.listAuctions(query, posterID)
}

// ListAuctionsWithBidder returns all auctions containing a bid from the given
// bidder, most recently created first.
func (s *PostgresStore) ListAuctionsWithBidder(bidderID string) ([]model.Auction, error) {
	query := `
	SELECT ` + auctionColumns + `
	FROM auctions
	WHERE id IN (SELECT auction_id FROM auction_bids WHERE bidder_id = $1)
	ORDER BY created_at DESC`
	return s.listAuctions(query, bidderID)
}

// AppendBid inserts the bid iff the parent auction is still open for bids,
// the bidder is not the poster and has not bid before. The guards are
// predicates of the insert itself, so the check and the write are one
// statement; the unique constraint catches the remaining insert/insert race.
func (s *PostgresStore) AppendBid(auctionID string, bid model.Bid, now time.Time) (model.Auction, error) {
	query := `
	INSERT INTO auction_bids (auction_id, bid_id, bidder_id, amount, estimated_time, note, created_at)
	SELECT a.id, $2, $3, $4, $5, $6, $7
	FROM auctions a
	WHERE a.id = $1
	  AND a.status = 'Active'
	  AND a.ends_at > $8
	  AND a.poster_id <> $3
	  AND NOT EXISTS (SELECT 1 FROM auction_bids b WHERE b.auction_id = $1 AND b.bidder_id = $3)
	`
	res, err := s.db.Exec(query, auctionID, bid.BidID, bid.BidderID, bid.Amount, bid.EstimatedTime, bid.Note, bid.CreatedAt, now)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.Auction{}, fmt.Errorf("repository.PostgresStore.AppendBid: %w", auctionerrors.ErrDuplicateBid)
		}
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.AppendBid: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.AppendBid: %w", err)
	}
	if inserted == 0 {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.AppendBid: %w", s.diagnoseAppend(auctionID, bid.BidderID, now))
	}

	return s.GetAuction(auctionID)
}

// diagnoseAppend re-reads the auction to turn a rejected conditional insert
// into the matching sentinel. The write already failed, so this read only
// picks the error message.
func (s *PostgresStore) diagnoseAppend(auctionID, bidderID string, now time.Time) error {
	auction, err := s.GetAuction(auctionID)
	if err != nil {
		return auctionerrors.ErrAuctionNotFound
	}
	switch {
	case auction.Status != model.StatusActive:
		return auctionerrors.ErrAuctionNotActive
	case !now.Before(auction.EndsAt):
		return auctionerrors.ErrAuctionExpired
	case auction.PosterID == bidderID:
		return auctionerrors.ErrSelfBid
	case auction.HasBidFrom(bidderID):
		return auctionerrors.ErrDuplicateBid
	default:
		return auctionerrors.ErrAuctionNotActive
	}
}

// AcceptBid sets accepted_bid_id and the Accepted status in one conditional
// update keyed on status = 'Active', so a second concurrent accept cannot
// overwrite the first.
func (s *PostgresStore) AcceptBid(auctionID, callerID, bidID string) (model.Auction, error) {
	query := `
	UPDATE auctions
	SET status = 'Accepted', accepted_bid_id = $3
	WHERE id = $1
	  AND poster_id = $2
	  AND status = 'Active'
	  AND EXISTS (SELECT 1 FROM auction_bids b WHERE b.auction_id = $1 AND b.bid_id = $3)
	`
	res, err := s.db.Exec(query, auctionID, callerID, bidID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.AcceptBid: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.AcceptBid: %w", err)
	}
	if updated == 0 {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.AcceptBid: %w", s.diagnoseAccept(auctionID, callerID, bidID))
	}

	return s.GetAuction(auctionID)
}

func (s *PostgresStore) diagnoseAccept(auctionID, callerID, bidID string) error {
	auction, err := s.GetAuction(auctionID)
	if err != nil {
		return auctionerrors.ErrAuctionNotFound
	}
	switch {
	case auction.PosterID != callerID:
		return auctionerrors.ErrForbidden
	case auction.Status != model.StatusActive:
		return auctionerrors.ErrAuctionNotActive
	default:
		return auctionerrors.ErrBidNotFound
	}
}

// SetStatus overwrites the status iff the caller is the poster.
func (s *PostgresStore) SetStatus(auctionID, callerID string, status model.AuctionStatus) (model.Auction, error) {
	res, err := s.db.Exec(`UPDATE auctions SET status = $3 WHERE id = $1 AND poster_id = $2`, auctionID, callerID, string(status))
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.SetStatus: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.SetStatus: %w", err)
	}
	if updated == 0 {
		if _, err := s.GetAuction(auctionID); err != nil {
			return model.Auction{}, fmt.Errorf("repository.PostgresStore.SetStatus: %w", auctionerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("repository.PostgresStore.SetStatus: %w", auctionerrors.ErrForbidden)
	}

	return s.GetAuction(auctionID)
}

func (s *PostgresStore) listAuctions(query string, args ...interface{}) ([]model.Auction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.PostgresStore.listAuctions: %w", err)
	}
	defer rows.Close()

	result := make([]model.Auction, 0)
	for rows.Next() {
		auction, err := s.scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.PostgresStore.listAuctions: %w", err)
		}
		result = append(result, auction)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("repository.PostgresStore.listAuctions: %w", rows.Err())
	}

	for i := range result {
		if err := s.loadBids(&result[i]); err != nil {
			return nil, fmt.Errorf("repository.PostgresStore.listAuctions: %w", err)
		}
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *PostgresStore) scanAuction(row rowScanner) (model.Auction, error) {
	var auction model.Auction
	var status string
	var acceptedBidID sql.NullString

	err := row.Scan(
		&auction.AuctionID, &auction.PosterID,
		&auction.Vehicle.Make, &auction.Vehicle.Model, &auction.Vehicle.Year, &auction.Vehicle.Drivable,
		&auction.Description, pq.Array(&auction.Photos),
		&status, &acceptedBidID, &auction.CreatedAt, &auction.EndsAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, auctionerrors.ErrAuctionNotFound
	} else if err != nil {
		return model.Auction{}, err
	}

	auction.Status = model.AuctionStatus(status)
	auction.AcceptedBidID = acceptedBidID.String
	return auction, nil
}

func (s *PostgresStore) loadBids(auction *model.Auction) error {
	query := `
	SELECT bid_id, bidder_id, amount, estimated_time, note, created_at
	FROM auction_bids
	WHERE auction_id = $1
	ORDER BY seq
	`
	rows, err := s.db.Query(query, auction.AuctionID)
	if err != nil {
		return err
	}
	defer rows.Close()

	auction.Bids = make([]model.Bid, 0)
	for rows.Next() {
		var bid model.Bid
		if err := rows.Scan(&bid.BidID, &bid.BidderID, &bid.Amount, &bid.EstimatedTime, &bid.Note, &bid.CreatedAt); err != nil {
			return err
		}
		auction.Bids = append(auction.Bids, bid)
	}
	return rows.Err()
}
