package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "campusmarket/internal/adapters/in/http"
	"campusmarket/internal/core/application/usecases/commands"
	"campusmarket/internal/core/application/usecases/queries"
	"campusmarket/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newTestEcho wires the server with zero-value handlers. These tests only
// exercise paths rejected before any use case runs.
func newTestEcho() *echo.Echo {
	e := echo.New()
	server := apphttp.NewServer(
		commands.CreateSellOrderCommandHandler{},
		commands.UpdateOrderStatusCommandHandler{},
		commands.CancelOrderCommandHandler{},
		queries.GetBuyerOrdersQueryHandler{},
		queries.GetSellerOrdersQueryHandler{},
	)
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, userID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set(apphttp.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_MissingUserHeader_Unauthorized(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/v1/orders", "", `{"listingId":"`+kernel.NewUUID().String()+`"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_MalformedUserHeader_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/v1/orders", "not-a-uuid",
		`{"listingId":"`+kernel.NewUUID().String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_MissingListingID_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/v1/orders", kernel.NewUUID().String(), `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_MalformedBody_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/v1/orders", kernel.NewUUID().String(), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_MalformedOrderID_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPatch, "/api/v1/orders/not-a-uuid/status",
		kernel.NewUUID().String(), `{"status":"APPROVED"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_UnknownStatusName_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
		kernel.NewUUID().String(), `{"status":"SHIPPED"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder_MalformedOrderID_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/v1/orders/42/cancel", kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPurchases_MissingUserHeader_Unauthorized(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodGet, "/api/v1/orders/purchases", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSales_MalformedUserHeader_BadRequest(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodGet, "/api/v1/orders/sales", "nope", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
