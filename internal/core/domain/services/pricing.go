package services

import "parcelhub/internal/core/domain/model/kernel"

// DefaultVolumeFactor is the divisor of the standard volumetric-weight
// formula: cm³ / 5000 yields kilograms.
const DefaultVolumeFactor = 5000.0

const (
	// rateThresholdKg is the chargeable weight at which the per-kilogram
	// rate drops.
	rateThresholdKg = 10.0

	// rateBelowThreshold applies to chargeable weights under the threshold.
	rateBelowThreshold = 120.0

	// rateAtOrAboveThreshold applies from the threshold upward.
	rateAtOrAboveThreshold = 100.0
)

// Pricer is a domain service computing the delivery price of a parcel.
//
// Pricing rules:
//   - When dimensions are supplied, the volumetric weight is
//     length × width × height / volume factor, and the chargeable weight is
//     the greater of the declared and the volumetric weight. Without
//     dimensions the declared weight is chargeable as is.
//   - Chargeable weight under 10 kg is priced at 120 per kg, 10 kg and above
//     at 100 per kg. The rate switch applies to the whole weight, so the
//     total price drops at the threshold (9.99 kg costs more than 10 kg).
//     That discontinuity matches the published tariff; do not smooth it.
//
// Pricer is pure and deterministic, which makes order-creation retries with
// the same validated payload idempotent with respect to price.
type Pricer struct {
	volumeFactor float64
}

// NewPricer creates a Pricer using the standard volume factor.
func NewPricer() Pricer {
	return Pricer{volumeFactor: DefaultVolumeFactor}
}

// ChargeableWeight returns the weight the price is computed from: the
// declared weight, or the volumetric weight when dimensions are present and
// yield a larger value. A nil dims means no dimensions were supplied.
func (p Pricer) ChargeableWeight(weight kernel.Weight, dims *kernel.Dimensions) float64 {
	chargeable := weight.Kg()

	if dims != nil {
		if volumetric := dims.Volume() / p.volumeFactor; volumetric > chargeable {
			chargeable = volumetric
		}
	}

	return chargeable
}

// Price computes the delivery price from the declared weight and optional
// dimensions.
func (p Pricer) Price(weight kernel.Weight, dims *kernel.Dimensions) float64 {
	chargeable := p.ChargeableWeight(weight, dims)

	if chargeable < rateThresholdKg {
		return chargeable * rateBelowThreshold
	}
	return chargeable * rateAtOrAboveThreshold
}
