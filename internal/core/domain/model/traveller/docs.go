// Package traveller provides the Traveller profile: the role of a user who carries
// parcels along a preferred route. A user owns at most one Traveller.
package traveller
