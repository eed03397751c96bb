package models

// Member is a frequent flyer programme member as held by a directory.
type Member struct {
	Number string
	Active bool
	Tier   Tier
}

// Tier is the member's programme level.
type Tier string

const (
	TierBlue   Tier = "blue"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// ParseTier returns the tier for s, defaulting to blue for unknown values.
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierSilver, TierGold:
		return Tier(s)
	default:
		return TierBlue
	}
}
