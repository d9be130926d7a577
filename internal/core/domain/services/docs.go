// Package services contains stateless domain services of the parcel
// delivery workflow.
//
// The package includes:
//   - Pricer: computes the chargeable weight and the delivery price from a
//     parcel's declared weight and optional dimensions
//
// Services here are pure: no I/O, no shared state, identical output for
// identical input.
package services
