package handler

import (
	"fmt"
	"net/http"

	model "repair-auctions/internal/models"
	"repair-auctions/services/auction/helpers"
	"repair-auctions/utils"

	"github.com/gin-gonic/gin"
)

type LifecycleServiceInterface interface {
	CreateAuction(posterID string, vehicle model.Vehicle, description string, photos []string) (model.Auction, error)
	AcceptBid(auctionID, callerID, bidID string) (model.Auction, error)
	SetStatus(auctionID, callerID string, status model.AuctionStatus) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListActiveAuctions() ([]model.Auction, error)
	ListOwnAuctions(posterID string) ([]model.Auction, error)
}

type AuctionHandler struct {
	service LifecycleServiceInterface
}

func NewAuctionHandler(service LifecycleServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "CreateAuctionHandler", model.RoleDriver)
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	vehicle := model.Vehicle{
		Make:     req.Vehicle.Make,
		Model:    req.Vehicle.Model,
		Year:     req.Vehicle.Year,
		Drivable: req.Vehicle.Drivable,
	}

	auction, err := h.service.CreateAuction(caller.ID, vehicle, req.Description, req.Photos)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"poster_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"poster_id":  caller.ID,
		"ends_at":    auction.EndsAt,
	})
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListActiveAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListActiveAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListActiveAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "active auctions retrieved successfully")
	helpers.LogSuccess("ListActiveAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"bid_count":  len(auction.Bids),
	})
}

// AcceptBidHandler handles POST /auctions/:auction_id/accept
func (h *AuctionHandler) AcceptBidHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "AcceptBidHandler", model.RoleDriver)
	if !ok {
		return
	}

	var req helpers.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	auction, err := h.service.AcceptBid(auctionID, caller.ID, req.BidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcceptBidHandler: failed to accept bid", map[string]any{
			"auction_id": auctionID,
			"bid_id":     req.BidID,
			"caller_id":  caller.ID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"auction_id":      auction.AuctionID,
		"accepted_bid_id": auction.AcceptedBidID,
		"caller_id":       caller.ID,
	})
}

// SetStatusHandler handles PATCH /auctions/:auction_id/status
func (h *AuctionHandler) SetStatusHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "SetStatusHandler", model.RoleDriver)
	if !ok {
		return
	}

	var req helpers.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetStatusHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	auction, err := h.service.SetStatus(auctionID, caller.ID, model.AuctionStatus(req.Status))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SetStatusHandler: failed to set status", map[string]any{
			"auction_id": auctionID,
			"status":     req.Status,
			"caller_id":  caller.ID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "status updated successfully")
	helpers.LogSuccess("SetStatusHandler", "status updated successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"status":     string(auction.Status),
		"caller_id":  caller.ID,
	})
}

// ListOwnAuctionsHandler handles GET /my/auctions
func (h *AuctionHandler) ListOwnAuctionsHandler(c *gin.Context) {
	caller, ok := helpers.RequireRole(c, "ListOwnAuctionsHandler", model.RoleDriver)
	if !ok {
		return
	}

	auctions, err := h.service.ListOwnAuctions(caller.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOwnAuctionsHandler: error listing auctions", map[string]any{
			"caller_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "own auctions retrieved successfully")
	helpers.LogSuccess("ListOwnAuctionsHandler", "own auctions retrieved successfully", map[string]any{
		"caller_id": caller.ID,
		"count":     len(auctions),
	})
}
