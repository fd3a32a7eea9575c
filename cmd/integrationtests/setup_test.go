package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	aggregator "repair-auctions/internal/aggregatorService"
	bidding "repair-auctions/internal/bidService"
	lifecycle "repair-auctions/internal/lifecycleService"
	model "repair-auctions/internal/models"
	"repair-auctions/internal/repository"
	"repair-auctions/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory store for
// integration testing. window controls how long created auctions accept bids;
// zero means the seven-day default.
func SetupTestRouter(window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	directory := repository.NewMemoryDirectory()
	directory.PutContact("driver1", model.Contact{Name: "Dana Driver", Phone: "+1-555-0101"})
	directory.PutContact("driver2", model.Contact{Name: "Devin Driver", Phone: "+1-555-0102"})

	lifecycleSvc := lifecycle.NewLifecycleService(store, window)
	bidSvc := bidding.NewBidService(store)
	aggregatorSvc := aggregator.NewAggregatorService(store, directory)

	return server.SetupRouter(lifecycleSvc, bidSvc, aggregatorSvc)
}

// ExecuteRequestAndParse executes an HTTP request as the given caller and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, userID string, role model.Role) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
		req.Header.Set("X-User-Role", string(role))
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataObject pulls the data field out of a success envelope as an object.
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// dataList pulls the data field out of a success envelope as a list.
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp)
	}
	return data
}
