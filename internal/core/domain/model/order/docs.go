// Package order provides the Order aggregate and its supporting types for
// the parcel delivery workflow.
//
// The package includes:
//   - Order: the aggregate root carrying recipient, parcel, pricing and
//     lifecycle state
//   - Status: the site-configurable order status key
//   - DeliveryType: home delivery or pickup-point delivery
//   - NumberFor: the generator deriving the human-facing order number from
//     the store-assigned id
//
// Key business rules:
//   - Orders require a recipient name, a recipient phone and a positive
//     declared weight
//   - Pickup delivery requires a delivery point reference
//   - The price is fixed at creation and never recomputed
//   - The numeric id is assigned by the store exactly once, and the order
//     number is derived from it exactly once
//   - Status transitions are unconstrained, but every transition stamps the
//     last-modified time
package order
