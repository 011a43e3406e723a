// Package order provides the Order aggregate of the parcel matching workflow.
//
// The package includes:
//   - Order: aggregate root owning route, parcel, price, traveller assignment and lifecycle
//   - Status: the state machine Pending -> Accepted -> Delivered, Pending -> Expired
//   - Route and Parcel: value objects validated at construction
//   - ItemType: the closed set of parcel categories
//   - Event: domain events recorded on every transition
//
// Key business rules:
//   - an order is accepted by at most one traveller and never reassigned
//   - only the assigned traveller can deliver
//   - only unassigned Pending orders can expire
package order
