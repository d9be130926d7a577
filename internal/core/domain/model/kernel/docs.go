// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - Weight: the declared mass of a parcel in kilograms
//   - Dimensions: the optional length/width/height of a parcel in centimeters
//
// All value objects are immutable, constructor-guarded, and validate their
// invariants on construction. Zero values are invalid and fail Validate,
// which prevents unvalidated data from reaching the pricing and order
// workflows.
package kernel
