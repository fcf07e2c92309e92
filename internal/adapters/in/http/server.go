// Package http exposes the order workflow over REST. The acting student is
// identified by the X-User-ID header, which upstream auth middleware is
// expected to have verified.
package http

import (
	"net/http"

	"campusmarket/internal/core/application/usecases/commands"
	"campusmarket/internal/core/application/usecases/queries"
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the authenticated user account of the caller.
const UserIDHeader = "X-User-ID"

// Server wires HTTP endpoints to the order command and query handlers.
type Server struct {
	createSellOrderHandler   commands.CreateSellOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	getBuyerOrdersHandler  queries.GetBuyerOrdersQueryHandler
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createSellOrderHandler commands.CreateSellOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
) *Server {
	return &Server{
		createSellOrderHandler:   createSellOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getBuyerOrdersHandler:    getBuyerOrdersHandler,
		getSellerOrdersHandler:   getSellerOrdersHandler,
	}
}

// RegisterRoutes mounts all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/purchases", s.GetPurchases)
	api.GET("/orders/sales", s.GetSales)
}

// CreateOrder handles POST /api/v1/orders - places a buy order on a listing.
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string				true	"acting user account"
//	@Param		request		body		CreateOrderRequest	true	"listing to buy"
//	@Success	201			{object}	OrderResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	listingID, err := kernel.UUIDFromBytes(req.ListingID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateSellOrderCommand(listingID, actingUserID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createSellOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
//
//	@Summary	Move an order to a new status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string						true	"acting user account"
//	@Param		orderId		path		string						true	"order id"
//	@Param		request		body		UpdateOrderStatusRequest	true	"target status"
//	@Success	200			{object}	OrderResponse
//	@Router		/orders/{orderId}/status [patch]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, actingUserID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"acting user account"
//	@Param		orderId		path		string	true	"order id"
//	@Success	200			{object}	OrderResponse
//	@Router		/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actingUserID)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetPurchases handles GET /api/v1/orders/purchases - the caller's buying history.
//
//	@Summary	List the caller's purchases
//	@Tags		orders
//	@Produce	json
//	@Param		X-User-ID	header	string	true	"acting user account"
//	@Success	200			{array}	OrderSummaryResponse
//	@Router		/orders/purchases [get]
func (s *Server) GetPurchases(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetBuyerOrdersQuery(actingUserID)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetSales handles GET /api/v1/orders/sales - the caller's selling history.
//
//	@Summary	List the caller's sales
//	@Tags		orders
//	@Produce	json
//	@Param		X-User-ID	header	string	true	"acting user account"
//	@Success	200			{array}	OrderSummaryResponse
//	@Router		/orders/sales [get]
func (s *Server) GetSales(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetSellerOrdersQuery(actingUserID)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.getSellerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// actingUser extracts the caller's user account from the X-User-ID header.
// A missing header is an authentication failure, a malformed one a bad request.
func actingUser(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+UserIDHeader+" header")
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+UserIDHeader+" header")
	}

	return userID, nil
}

func respondError(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, errorResponse(code, err))
}
