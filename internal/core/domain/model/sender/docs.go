// Package sender provides the Sender profile: the role of a user who posts orders.
// A user owns at most one Sender, and a Sender must be reachable by phone or email.
package sender
