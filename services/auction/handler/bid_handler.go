package handler

import (
	"fmt"
	"net/http"

	aggregator "repair-auctions/internal/aggregatorService"
	model "repair-auctions/internal/models"
	"repair-auctions/services/auction/helpers"
	"repair-auctions/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BidServiceInterface interface {
	PlaceBid(auctionID, bidderID string, amount decimal.Decimal, estimatedTime, note string) (model.Auction, error)
}

type AggregatorServiceInterface interface {
	ListMyBids(bidderID string) ([]aggregator.BidProjection, error)
	BidStats(bidderID string) (aggregator.BidStats, error)
}

type BidHandler struct {
	bids  BidServiceInterface
	stats AggregatorServiceInterface
}

func NewBidHandler(bids BidServiceInterface, stats AggregatorServiceInterface) *BidHandler {
	return &BidHandler{bids: bids, stats: stats}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "PlaceBidHandler", model.RoleGarage)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	amount := decimal.NewFromFloat(req.Amount)

	auction, err := h.bids.PlaceBid(auctionID, caller.ID, amount, req.EstimatedTime, req.Note)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  caller.ID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"bidder_id":  caller.ID,
		"amount":     amount.String(),
		"bid_count":  len(auction.Bids),
	})
}

// ListMyBidsHandler handles GET /my/bids
func (h *BidHandler) ListMyBidsHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "ListMyBidsHandler", model.RoleGarage)
	if !ok {
		return
	}

	projections, err := h.stats.ListMyBids(caller.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListMyBidsHandler: error listing bids", map[string]any{
			"bidder_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	if projections == nil {
		projections = []aggregator.BidProjection{}
	}

	utils.JSONResponse(c, http.StatusOK, projections, "bids retrieved successfully")
	helpers.LogSuccess("ListMyBidsHandler", "bids retrieved successfully", map[string]any{
		"bidder_id": caller.ID,
		"count":     len(projections),
	})
}

// BidStatsHandler handles GET /my/bids/stats
func (h *BidHandler) BidStatsHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "BidStatsHandler", model.RoleGarage)
	if !ok {
		return
	}

	stats, err := h.stats.BidStats(caller.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidStatsHandler: error computing bid stats", map[string]any{
			"bidder_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "bid stats retrieved successfully")
	helpers.LogSuccess("BidStatsHandler", "bid stats retrieved successfully", map[string]any{
		"bidder_id": caller.ID,
		"total":     stats.TotalBids,
		"accepted":  stats.AcceptedBids,
		"active":    stats.ActiveBids,
	})
}
