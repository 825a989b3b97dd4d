// Package services provides domain services that coordinate work spanning more than
// one order list.
//
// The package includes:
//   - Fulfiller: moves a selected pending order into the fulfilled archive
package services
