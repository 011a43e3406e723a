package commands

import (
	"errors"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// RouteInput is the raw route of a new order as posted by the client.
type RouteInput struct {
	SourceCity string
	DestCity   string
	SourceLat  float64
	SourceLon  float64
	DestLat    float64
	DestLon    float64
}

// CreateOrderCommand represents a sender posting a new shipment.
// The route and parcel are validated here; price is computed by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, RouteInput{
//	    SourceCity: "Mumbai", DestCity: "Delhi",
//	    SourceLat: 19.0760, SourceLon: 72.8777,
//	    DestLat: 28.7041, DestLon: 77.1025,
//	}, 5, "documents")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  string
	route   order.Route
	parcel  order.Parcel

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID string,
	route RouteInput,
	weightKg float64,
	itemType string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRoute(route),
		cmd.setParcel(weightKg, itemType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) UserID() string {
	return c.userID
}

func (c CreateOrderCommand) Route() order.Route {
	return c.route
}

func (c CreateOrderCommand) Parcel() order.Parcel {
	return c.parcel
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRoute(in RouteInput) error {
	source, sourceErr := kernel.NewLocation(in.SourceLat, in.SourceLon)
	dest, destErr := kernel.NewLocation(in.DestLat, in.DestLon)
	if err := errors.Join(sourceErr, destErr); err != nil {
		return err
	}

	route, err := order.NewRoute(in.SourceCity, in.DestCity, source, dest)
	if err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *CreateOrderCommand) setParcel(weightKg float64, itemType string) error {
	it, err := order.ParseItemType(itemType)
	if err != nil {
		return err
	}

	parcel, err := order.NewParcel(weightKg, it)
	if err != nil {
		return err
	}
	c.parcel = parcel
	return nil
}
