package commands_test

import (
	"testing"
	"time"

	"shipmate/internal/core/application/usecases/commands"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/model/traveller"

	"github.com/stretchr/testify/require"
)

var mumbaiToDelhi = commands.RouteInput{
	SourceCity: "Mumbai",
	DestCity:   "Delhi",
	SourceLat:  19.0760,
	SourceLon:  72.8777,
	DestLat:    28.7041,
	DestLon:    77.1025,
}

func newSender(t *testing.T, userID string) *sender.Sender {
	t.Helper()
	contact, err := kernel.NewContact("+919876543210", "")
	require.NoError(t, err)
	s, err := sender.NewSender(kernel.NewUUID(), userID, "Asha", contact, time.Now())
	require.NoError(t, err)
	return s
}

func newTraveller(t *testing.T, userID string) *traveller.Traveller {
	t.Helper()
	tr, err := traveller.NewTraveller(kernel.NewUUID(), userID, "Ravi", kernel.Contact{}, "Mumbai", "Delhi", time.Now())
	require.NoError(t, err)
	return tr
}

func newPendingOrder(t *testing.T, senderID kernel.UUID) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "user", mumbaiToDelhi, 5, "documents")
	require.NoError(t, err)
	o, err := order.NewOrder(cmd.OrderID(), senderID, cmd.Route(), cmd.Parcel(), 324, time.Now())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
