package checkoutsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "eyewear_commerce/internal/api/checkout/models"
)

// Test luồng đầy đủ: resolve -> validate -> build -> submit,
// với catalog fake và order service httptest.
func TestCheckoutFlow_PartyDirectOrder(t *testing.T) {
	var received OrderSubmission
	orderService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(SubmissionResult{OrderID: "ORD-777"})
	}))
	defer orderService.Close()

	resolver := newTestResolver(partyCatalog(), nil)
	actor := models.Actor{Role: "party", Phone: "+911111111111"}

	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeDirect, models.Selections{})
	require.NoError(t, err, "Resolve phải thành công với party có trong catalog")

	require.NoError(t, ValidateOrderContext(orderCtx), "Context đã resolve phải qua được validation")

	items := []OrderItem{{ProductID: "SKU1", Quantity: 3, Price: 250000}}
	submission := BuildSubmission(orderCtx, items, "", time.Now())

	submitter := NewHTTPOrderSubmitter(orderService.URL)
	result, err := submitter.Submit(context.Background(), submission)
	require.NoError(t, err)
	assert.Equal(t, "ORD-777", result.OrderID)

	// Payload order service nhận được phải mang đúng context đã resolve
	assert.Equal(t, "direct", received.OrderType)
	assert.Equal(t, "P1", received.PartyID)
	assert.Equal(t, "D1", received.DistributorID)
	assert.Equal(t, "Z1", received.ZoneID)
	assert.Empty(t, received.SalesmanID, "Đơn của party không được có salesman_id")
	assert.Len(t, received.OrderItems, 1)
}

func TestCheckoutFlow_SalesmanVisitOrder(t *testing.T) {
	var received OrderSubmission
	orderService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(SubmissionResult{OrderID: "ORD-778"})
	}))
	defer orderService.Close()

	location := &fakeLocation{point: &models.GeoPoint{Latitude: 21.028511, Longitude: 105.804817}}
	resolver := newTestResolver(&fakeCatalog{partyById: map[string]*models.PartyRecord{}}, location)

	actor := models.Actor{ID: "U1", Role: "salesman", SalesmanID: "S1", ZoneID: "Z2"}
	sel := models.Selections{SelectedPartyID: "P9"}

	orderCtx, err := resolver.Resolve(context.Background(), actor, models.OrderTypeVisit, sel)
	require.NoError(t, err)
	require.NoError(t, ValidateOrderContext(orderCtx))

	submission := BuildSubmission(orderCtx, []OrderItem{{ProductID: "SKU2", Quantity: 1, Price: 99000}}, "ghé thăm", time.Now())
	submitter := NewHTTPOrderSubmitter(orderService.URL)
	_, err = submitter.Submit(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, "visit", received.OrderType)
	assert.Equal(t, "P9", received.PartyID)
	assert.Equal(t, "S1", received.SalesmanID)
	require.NotNil(t, received.Latitude, "Visit order phải mang latitude")
	require.NotNil(t, received.Longitude, "Visit order phải mang longitude")
	assert.InDelta(t, 21.028511, *received.Latitude, 1e-9)
	assert.InDelta(t, 105.804817, *received.Longitude, 1e-9)
}
