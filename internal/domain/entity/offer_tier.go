package entity

// OfferTier represents the pricing tier class of an offer or one of its details.
type OfferTier string

const (
	// OfferTierBasic is the entry-level tier.
	OfferTierBasic OfferTier = "basic"
	// OfferTierStandard is the mid-level tier.
	OfferTierStandard OfferTier = "standard"
	// OfferTierPremium is the top tier.
	OfferTierPremium OfferTier = "premium"
)

// String returns the string representation of the OfferTier.
func (t OfferTier) String() string {
	return string(t)
}

// IsValid checks if the OfferTier is a valid value.
func (t OfferTier) IsValid() bool {
	switch t {
	case OfferTierBasic, OfferTierStandard, OfferTierPremium:
		return true
	default:
		return false
	}
}
