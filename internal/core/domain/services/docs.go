// Package services provides domain services that work on values of several model
// packages without belonging to any single aggregate.
//
// The package includes:
//   - PriceCalculator: quotes a shipment from its route, weight and item type
//   - Tariff: the tiered fee configuration the calculator applies
package services
