package servers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shipmate/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_EveryRouteIsDocumented(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	paths := []string{
		"/senders", "/travellers", "/orders", "/orders/available", "/orders/{id}",
		"/orders/{id}/accept", "/orders/{id}/deliver", "/orders/{id}/complaints", "/calculate-price",
	}
	for _, p := range paths {
		assert.NotNil(t, swagger.Paths.Find(p), p)
	}

	quote := swagger.Paths.Find("/calculate-price").Get
	require.NotNil(t, quote.Security)
	assert.Empty(t, *quote.Security, "price quotes are public")
}

type recordingServer struct {
	servers.ServerInterface

	orderID servers.OrderID
	quote   servers.CalculatePriceParams
	filter  servers.ListAvailableOrdersParams
}

func (s *recordingServer) AcceptOrder(ctx echo.Context, id servers.OrderID) error {
	s.orderID = id
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) CalculatePrice(ctx echo.Context, params servers.CalculatePriceParams) error {
	s.quote = params
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) ListAvailableOrders(ctx echo.Context, params servers.ListAvailableOrdersParams) error {
	s.filter = params
	return ctx.NoContent(http.StatusOK)
}

func serve(t *testing.T, si servers.ServerInterface, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	servers.RegisterHandlers(e, si)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestWrapper_BindsPathUUID(t *testing.T) {
	si := &recordingServer{}

	rec := serve(t, si, http.MethodPost, "/orders/0b6f6d4e-4c8e-4b55-9d2c-59c8e0d1f3aa/accept")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0b6f6d4e-4c8e-4b55-9d2c-59c8e0d1f3aa", si.orderID.String())
}

func TestWrapper_MalformedPathUUID_BadRequest(t *testing.T) {
	rec := serve(t, &recordingServer{}, http.MethodPost, "/orders/not-a-uuid/accept")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrapper_BindsQuoteParameters(t *testing.T) {
	si := &recordingServer{}

	rec := serve(t, si, http.MethodGet,
		"/calculate-price?lat1=19.076&lon1=72.8777&lat2=28.7041&lon2=77.1025&weight_kg=5&item_type=documents")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 19.076, si.quote.Lat1, 1e-9)
	assert.InDelta(t, 77.1025, si.quote.Lon2, 1e-9)
	assert.InDelta(t, 5.0, si.quote.WeightKg, 1e-9)
	assert.Equal(t, servers.Documents, si.quote.ItemType)
}

func TestWrapper_MissingRequiredQueryParameter_BadRequest(t *testing.T) {
	rec := serve(t, &recordingServer{}, http.MethodGet, "/calculate-price?lat1=1&lon1=1&lat2=2&lon2=2&item_type=food")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrapper_OptionalFilters(t *testing.T) {
	si := &recordingServer{}

	rec := serve(t, si, http.MethodGet, "/orders/available?source_city=Mumbai")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, si.filter.SourceCity)
	assert.Equal(t, "Mumbai", *si.filter.SourceCity)
	assert.Nil(t, si.filter.DestCity)
}
