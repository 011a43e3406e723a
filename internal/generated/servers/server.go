package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Quote the price of a shipment
	// (GET /calculate-price)
	CalculatePrice(ctx echo.Context, params CalculatePriceParams) error
	// Orders of the caller as sender and as traveller, newest first
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// Post a new shipment
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Pending orders nobody accepted yet, newest first
	// (GET /orders/available)
	ListAvailableOrders(ctx echo.Context, params ListAvailableOrdersParams) error

	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id OrderID) error
	// Claim a pending order for the calling traveller
	// (POST /orders/{id}/accept)
	AcceptOrder(ctx echo.Context, id OrderID) error

	// (GET /orders/{id}/complaints)
	ListComplaints(ctx echo.Context, id OrderID) error

	// (POST /orders/{id}/complaints)
	FileComplaint(ctx echo.Context, id OrderID) error
	// Mark an accepted order delivered
	// (POST /orders/{id}/deliver)
	DeliverOrder(ctx echo.Context, id OrderID) error
	// Sender profile of the caller
	// (GET /senders)
	GetSender(ctx echo.Context) error
	// Create the sender profile of the caller
	// (POST /senders)
	CreateSender(ctx echo.Context) error
	// Traveller profile of the caller
	// (GET /travellers)
	GetTraveller(ctx echo.Context) error
	// Create the traveller profile of the caller
	// (POST /travellers)
	CreateTraveller(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CalculatePrice converts echo context to params.
func (w *ServerInterfaceWrapper) CalculatePrice(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params CalculatePriceParams

	err = runtime.BindQueryParameter("form", true, true, "lat1", ctx.QueryParams(), &params.Lat1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat1: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "lon1", ctx.QueryParams(), &params.Lon1)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lon1: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "lat2", ctx.QueryParams(), &params.Lat2)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lat2: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "lon2", ctx.QueryParams(), &params.Lon2)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter lon2: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "weight_kg", ctx.QueryParams(), &params.WeightKg)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter weight_kg: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "item_type", ctx.QueryParams(), &params.ItemType)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter item_type: %s", err))
	}

	err = w.Handler.CalculatePrice(ctx, params)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateOrder(ctx)
}

// ListAvailableOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListAvailableOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "source_city", ctx.QueryParams(), &params.SourceCity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter source_city: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "dest_city", ctx.QueryParams(), &params.DestCity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter dest_city: %s", err))
	}

	err = w.Handler.ListAvailableOrders(ctx, params)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOrder(ctx, id)
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AcceptOrder(ctx, id)
}

// ListComplaints converts echo context to params.
func (w *ServerInterfaceWrapper) ListComplaints(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ListComplaints(ctx, id)
}

// FileComplaint converts echo context to params.
func (w *ServerInterfaceWrapper) FileComplaint(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.FileComplaint(ctx, id)
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeliverOrder(ctx, id)
}

// GetSender converts echo context to params.
func (w *ServerInterfaceWrapper) GetSender(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetSender(ctx)
}

// CreateSender converts echo context to params.
func (w *ServerInterfaceWrapper) CreateSender(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateSender(ctx)
}

// GetTraveller converts echo context to params.
func (w *ServerInterfaceWrapper) GetTraveller(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetTraveller(ctx)
}

// CreateTraveller converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTraveller(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateTraveller(ctx)
}

func bindOrderID(ctx echo.Context) (OrderID, error) {
	var id OrderID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so
// that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/calculate-price", wrapper.CalculatePrice)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/available", wrapper.ListAvailableOrders)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:id/accept", wrapper.AcceptOrder)
	router.GET(baseURL+"/orders/:id/complaints", wrapper.ListComplaints)
	router.POST(baseURL+"/orders/:id/complaints", wrapper.FileComplaint)
	router.POST(baseURL+"/orders/:id/deliver", wrapper.DeliverOrder)
	router.GET(baseURL+"/senders", wrapper.GetSender)
	router.POST(baseURL+"/senders", wrapper.CreateSender)
	router.GET(baseURL+"/travellers", wrapper.GetTraveller)
	router.POST(baseURL+"/travellers", wrapper.CreateTraveller)
}
