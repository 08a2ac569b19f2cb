package session

// RouteInput is everything the router looks at. An empty Requested means no
// explicit navigation happened since the last credential change.
type RouteInput struct {
	User      *User
	Requested ViewName
}

// Route picks the screen to show. It is total over its input.
//
// Without a user only landing, auth and pricing are reachable. A user who has
// not saved preferences is held on personalization except for pricing. Any
// other user lands on main by default and is never sent back to auth.
func Route(in RouteInput) ViewName {
	if in.User == nil {
		switch in.Requested {
		case ViewAuth, ViewPricing:
			return in.Requested
		default:
			return ViewLanding
		}
	}

	if !in.User.PrefsSaved {
		if in.Requested == ViewPricing {
			return ViewPricing
		}
		return ViewPersonalization
	}

	switch in.Requested {
	case "", ViewAuth:
		return ViewMain
	case ViewLanding, ViewPersonalization, ViewMain, ViewPricing:
		return in.Requested
	default:
		return ViewMain
	}
}
