package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	aggregator "repair-auctions/internal/aggregatorService"
	"repair-auctions/internal/auctionerrors"
	model "repair-auctions/internal/models"
	"repair-auctions/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := NewMockBidServiceInterface(ctrl)
	mockStats := NewMockAggregatorServiceInterface(ctrl)
	handler := NewBidHandler(mockBids, mockStats)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", asIdentity("garage1", model.RoleGarage), handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				Amount:        5000,
				EstimatedTime: "2 hours",
				Note:          "includes parts",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "2 hours", "includes parts").
					DoAndReturn(func(auctionID, bidderID string, amount decimal.Decimal, estimatedTime, note string) (model.Auction, error) {
						require.True(t, decimal.NewFromInt(5000).Equal(amount))
						return model.Auction{
							AuctionID: auctionID,
							PosterID:  "driver1",
							Status:    model.StatusActive,
							Bids: []model.Bid{{
								BidID:         uuid.NewString(),
								BidderID:      bidderID,
								Amount:        amount,
								EstimatedTime: estimatedTime,
								Note:          note,
								CreatedAt:     now,
							}},
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bids := data["bids"].([]any)
				require.Len(t, bids, 1)

				bid := bids[0].(map[string]any)
				bidID := bid["bid_id"].(string)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "garage1", bid["bidder_id"])
				// decimal amounts serialize as strings
				require.Equal(t, "5000", bid["amount"])
				require.Equal(t, "2 hours", bid["estimated_time"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_amount",
			requestBody: helpers.PlaceBidRequest{
				Amount:        0,
				EstimatedTime: "2 hours",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "negative_amount",
			requestBody: helpers.PlaceBidRequest{
				Amount:        -50,
				EstimatedTime: "2 hours",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_estimated_time",
			requestBody: helpers.PlaceBidRequest{
				Amount: 5000,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "duplicate_bid",
			requestBody: helpers.PlaceBidRequest{
				Amount:        4500,
				EstimatedTime: "3 hours",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "3 hours", "").
					Return(model.Auction{}, auctionerrors.ErrDuplicateBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "already bid on this auction",
		},
		{
			name: "own_auction",
			requestBody: helpers.PlaceBidRequest{
				Amount:        4500,
				EstimatedTime: "3 hours",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "3 hours", "").
					Return(model.Auction{}, auctionerrors.ErrSelfBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "cannot bid on own auction",
		},
		{
			name: "window_closed",
			requestBody: helpers.PlaceBidRequest{
				Amount:        4500,
				EstimatedTime: "3 hours",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "3 hours", "").
					Return(model.Auction{}, auctionerrors.ErrAuctionExpired)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bidding window has closed",
		},
		{
			name: "auction_not_active",
			requestBody: helpers.PlaceBidRequest{
				Amount:        4500,
				EstimatedTime: "3 hours",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "3 hours", "").
					Return(model.Auction{}, auctionerrors.ErrAuctionNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction not active",
		},
		{
			name: "auction_not_found",
			requestBody: helpers.PlaceBidRequest{
				Amount:        4500,
				EstimatedTime: "3 hours",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "3 hours", "").
					Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.PlaceBidRequest{
				Amount:        4500,
				EstimatedTime: "3 hours",
			},
			mockSetup: func() {
				mockBids.EXPECT().
					PlaceBid("auction1", "garage1", gomock.Any(), "3 hours", "").
					Return(model.Auction{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/auction1/bids", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Bidding is a garage operation; a driver caller is rejected before the
// service is touched.
func TestPlaceBidHandler_RoleEnforcement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewBidHandler(NewMockBidServiceInterface(ctrl), NewMockAggregatorServiceInterface(ctrl))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bids", asIdentity("driver1", model.RoleDriver), handler.PlaceBidHandler)
	router.POST("/anonymous/auctions/:auction_id/bids", handler.PlaceBidHandler)

	body := marshalBody(t, helpers.PlaceBidRequest{Amount: 5000, EstimatedTime: "2 hours"})

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction1/bids", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/anonymous/auctions/auction1/bids", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Test ListMyBidsHandler
func TestListMyBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := NewMockBidServiceInterface(ctrl)
	mockStats := NewMockAggregatorServiceInterface(ctrl)
	handler := NewBidHandler(mockBids, mockStats)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/my/bids", asIdentity("garage1", model.RoleGarage), handler.ListMyBidsHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []map[string]any)
	}{
		{
			name: "success_with_projections",
			mockSetup: func() {
				mockStats.EXPECT().ListMyBids("garage1").Return([]aggregator.BidProjection{
					{
						AuctionID:     "auction1",
						BidID:         "bid1",
						Vehicle:       model.Vehicle{Make: "Toyota", Model: "Camry", Year: 2016},
						Description:   "oil leak",
						AuctionStatus: model.StatusAccepted,
						BidAmount:     decimal.NewFromInt(5000),
						EstimatedTime: "2 hours",
						BidCreatedAt:  now,
						EndsAt:        now.Add(time.Hour),
						IsAccepted:    true,
						PosterName:    "Dana Driver",
						PosterPhone:   "+1-555-0101",
					},
					{
						AuctionID:     "auction2",
						BidID:         "bid2",
						Vehicle:       model.Vehicle{Make: "Honda", Model: "Fit", Year: 2014},
						Description:   "dead battery",
						AuctionStatus: model.StatusActive,
						BidAmount:     decimal.NewFromInt(3000),
						EstimatedTime: "1 day",
						BidCreatedAt:  now,
						EndsAt:        now.Add(time.Hour),
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 2)
				require.Equal(t, "auction1", data[0]["auction_id"])
				require.Equal(t, true, data[0]["is_accepted"])
				require.Equal(t, "Dana Driver", data[0]["poster_name"])
				require.Equal(t, "5000", data[0]["bid_amount"])
				require.Equal(t, false, data[1]["is_accepted"])
			},
		},
		{
			name: "success_nil_slice",
			mockSetup: func() {
				mockStats.EXPECT().ListMyBids("garage1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 0)
			},
		},
		{
			name: "service_generic_error",
			mockSetup: func() {
				mockStats.EXPECT().ListMyBids("garage1").Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/my/bids", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataRaw := resp["data"].([]any)
				data := make([]map[string]any, len(dataRaw))
				for i, v := range dataRaw {
					data[i] = v.(map[string]any)
				}
				tc.validateData(t, data)
			}
		})
	}
}

// Test BidStatsHandler
func TestBidStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBids := NewMockBidServiceInterface(ctrl)
	mockStats := NewMockAggregatorServiceInterface(ctrl)
	handler := NewBidHandler(mockBids, mockStats)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/my/bids/stats", asIdentity("garage1", model.RoleGarage), handler.BidStatsHandler)
	router.GET("/driver/my/bids/stats", asIdentity("driver1", model.RoleDriver), handler.BidStatsHandler)

	t.Run("success", func(t *testing.T) {
		mockStats.EXPECT().BidStats("garage1").
			Return(aggregator.BidStats{TotalBids: 3, AcceptedBids: 1, ActiveBids: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/my/bids/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "bid stats retrieved successfully")

		data := resp["data"].(map[string]any)
		require.Equal(t, 3.0, data["total_bids"])
		require.Equal(t, 1.0, data["accepted_bids"])
		require.Equal(t, 1.0, data["active_bids"])
	})

	t.Run("service_generic_error", func(t *testing.T) {
		mockStats.EXPECT().BidStats("garage1").
			Return(aggregator.BidStats{}, errors.New("database failure"))

		req := httptest.NewRequest(http.MethodGet, "/my/bids/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("driver_forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/driver/my/bids/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
