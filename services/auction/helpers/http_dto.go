package helpers

// Request DTOs
type VehicleDTO struct {
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model"`
	Year     int    `json:"year" binding:"required"`
	Drivable bool   `json:"drivable"`
}

type CreateAuctionRequest struct {
	Vehicle     VehicleDTO `json:"vehicle" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Photos      []string   `json:"photos"`
}

type PlaceBidRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	EstimatedTime string  `json:"estimated_time" binding:"required"`
	Note          string  `json:"note"`
}

type AcceptBidRequest struct {
	BidID string `json:"bid_id" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
