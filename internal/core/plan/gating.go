package plan

// Unlimited is returned by the Remaining helpers when a plan has no cap
const Unlimited = -1

// Limits holds the allowances of the free plan. Paid plans are not capped
// client-side; the backend remains the final authority.
type Limits struct {
	FreeOutfitUses   int
	FreeTravelUses   int
	FreeHistoryLimit int
}

// DefaultLimits mirrors the allowances enforced by the backend
func DefaultLimits() Limits {
	return Limits{
		FreeOutfitUses:   3,
		FreeTravelUses:   1,
		FreeHistoryLimit: 5,
	}
}

// CanUseOutfit reports whether an outfit advice request may be sent
func (l Limits) CanUseOutfit(p Plan, uses int) bool {
	return p.IsPaid() || uses < l.FreeOutfitUses
}

// CanUseTravel reports whether a travel advice request may be sent
func (l Limits) CanUseTravel(p Plan, uses int) bool {
	return p.IsPaid() || uses < l.FreeTravelUses
}

// RemainingOutfitUses returns the uses left or Unlimited
func (l Limits) RemainingOutfitUses(p Plan, uses int) int {
	if p.IsPaid() {
		return Unlimited
	}
	return remaining(l.FreeOutfitUses, uses)
}

// RemainingTravelUses returns the uses left or Unlimited
func (l Limits) RemainingTravelUses(p Plan, uses int) int {
	if p.IsPaid() {
		return Unlimited
	}
	return remaining(l.FreeTravelUses, uses)
}

// VisibleHistory returns how many of n history entries a plan may see.
// Truncation happens at render time only.
func (l Limits) VisibleHistory(p Plan, n int) int {
	if p.IsPaid() || n <= l.FreeHistoryLimit {
		return n
	}
	return l.FreeHistoryLimit
}

func remaining(limit, uses int) int {
	if uses >= limit {
		return 0
	}
	return limit - uses
}
