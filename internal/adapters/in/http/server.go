package http

import (
	"context"
	"errors"
	"net/http"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/application/usecases/queries"
	"shipmate/internal/core/domain/model/complaint"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/core/domain/services"
	"shipmate/internal/generated/servers"
	"shipmate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler is the shape shared by command and query handlers.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type PriceQuoter interface {
	Handle(query queries.QuotePriceQuery) (services.Quote, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateSender    Handler[commands.CreateSenderProfileCommand, *sender.Sender]
	CreateTraveller Handler[commands.CreateTravellerProfileCommand, *traveller.Traveller]
	CreateOrder     Handler[commands.CreateOrderCommand, *order.Order]
	AcceptOrder     Handler[commands.AcceptOrderCommand, *order.Order]
	DeliverOrder    Handler[commands.DeliverOrderCommand, *order.Order]
	FileComplaint   Handler[commands.FileComplaintCommand, *complaint.Complaint]

	// Query handlers
	GetSender           Handler[queries.GetProfileQuery, queries.SenderProfileResponse]
	GetTraveller        Handler[queries.GetProfileQuery, queries.TravellerProfileResponse]
	GetOrder            Handler[queries.GetOrderQuery, queries.OrderResponse]
	ListOrders          Handler[queries.ListOrdersQuery, []queries.OrderResponse]
	ListAvailableOrders Handler[queries.ListAvailableOrdersQuery, []queries.OrderResponse]
	ListComplaints      Handler[queries.ListComplaintsQuery, []queries.ComplaintResponse]
	QuotePrice          PriceQuoter
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers        Handlers
	acceptConflicts prometheus.Counter
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, acceptConflicts prometheus.Counter) *Server {
	return &Server{
		handlers:        handlers,
		acceptConflicts: acceptConflicts,
	}
}

// GetSender handles GET /senders.
func (s *Server) GetSender(ctx echo.Context) error {
	query, err := queries.NewGetProfileQuery(UserID(ctx))
	if err != nil {
		return err
	}

	profile, err := s.handlers.GetSender.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Detail: "the caller has no sender profile",
			Reason: sender.ReasonProfileRequired,
		})
	}
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Sender{
		Id:        profile.ID.Bytes(),
		Name:      profile.Name,
		Phone:     optional(profile.Phone),
		Email:     optional(profile.Email),
		CreatedAt: profile.CreatedAt,
	})
}

// CreateSender handles POST /senders.
func (s *Server) CreateSender(ctx echo.Context) error {
	var body servers.CreateSenderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateSenderProfileCommand(
		kernel.NewUUID(), UserID(ctx), body.Name, deref(body.Phone), deref(body.Email),
	)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateSender.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, senderFromDomain(created))
}

// GetTraveller handles GET /travellers.
func (s *Server) GetTraveller(ctx echo.Context) error {
	query, err := queries.NewGetProfileQuery(UserID(ctx))
	if err != nil {
		return err
	}

	profile, err := s.handlers.GetTraveller.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Detail: "the caller has no traveller profile",
			Reason: traveller.ReasonProfileRequired,
		})
	}
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Traveller{
		Id:         profile.ID.Bytes(),
		Name:       profile.Name,
		Phone:      optional(profile.Phone),
		Email:      optional(profile.Email),
		SourceCity: profile.SourceCity,
		DestCity:   profile.DestCity,
		CreatedAt:  profile.CreatedAt,
	})
}

// CreateTraveller handles POST /travellers.
func (s *Server) CreateTraveller(ctx echo.Context) error {
	var body servers.CreateTravellerJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTravellerProfileCommand(
		kernel.NewUUID(), UserID(ctx), body.Name, deref(body.Phone), deref(body.Email),
		body.SourceCity, body.DestCity,
	)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateTraveller.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, travellerFromDomain(created))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersForUserQuery(UserID(ctx))
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ordersFromReadModel(orders))
}

// ListAvailableOrders handles GET /orders/available.
func (s *Server) ListAvailableOrders(ctx echo.Context, params servers.ListAvailableOrdersParams) error {
	query, err := queries.NewListAvailableOrdersQuery(deref(params.SourceCity), deref(params.DestCity))
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ordersFromReadModel(orders))
}

// CreateOrder handles POST /orders. Price and distance are computed server-side.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), UserID(ctx), commands.RouteInput{
		SourceCity: body.SourceCity,
		DestCity:   body.DestCity,
		SourceLat:  body.SourceLat,
		SourceLon:  body.SourceLon,
		DestLat:    body.DestLat,
		DestLon:    body.DestLon,
	}, body.WeightKg, string(body.ItemType))
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created, servers.OrderRoleSender))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, UserID(ctx))
	if err != nil {
		return err
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(found))
}

// AcceptOrder handles POST /orders/{id}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, UserID(ctx))
	if err != nil {
		return err
	}

	accepted, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) && s.acceptConflicts != nil {
			s.acceptConflicts.Inc()
		}
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(accepted, servers.OrderRoleTraveller))
}

// DeliverOrder handles POST /orders/{id}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, UserID(ctx))
	if err != nil {
		return err
	}

	delivered, err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(delivered, servers.OrderRoleTraveller))
}

// FileComplaint handles POST /orders/{id}/complaints.
func (s *Server) FileComplaint(ctx echo.Context, id servers.OrderID) error {
	var body servers.FileComplaintJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewFileComplaintCommand(kernel.NewUUID(), orderID, UserID(ctx), body.Issue)
	if err != nil {
		return err
	}

	filed, err := s.handlers.FileComplaint.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Complaint{
		Id:        filed.ID().Bytes(),
		OrderId:   filed.OrderID().Bytes(),
		Issue:     filed.Issue(),
		CreatedAt: filed.CreatedAt(),
	})
}

// ListComplaints handles GET /orders/{id}/complaints.
func (s *Server) ListComplaints(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	query, err := queries.NewListComplaintsQuery(orderID, UserID(ctx))
	if err != nil {
		return err
	}

	complaints, err := s.handlers.ListComplaints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Complaint, len(complaints))
	for i, c := range complaints {
		response[i] = servers.Complaint{
			Id:        c.ID.Bytes(),
			OrderId:   c.OrderID.Bytes(),
			Issue:     c.Issue,
			CreatedAt: c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CalculatePrice handles GET /calculate-price. It does not require authentication.
func (s *Server) CalculatePrice(ctx echo.Context, params servers.CalculatePriceParams) error {
	query, err := queries.NewQuotePriceQuery(
		params.Lat1, params.Lon1, params.Lat2, params.Lon2, params.WeightKg, string(params.ItemType),
	)
	if err != nil {
		return err
	}

	quote, err := s.handlers.QuotePrice.Handle(query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.PriceQuote{
		Price:      quote.Price,
		DistanceKm: quote.DistanceKm,
	})
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}
