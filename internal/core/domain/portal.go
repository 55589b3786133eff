package domain

import "errors"

// Portal identifies one of the application areas a user may be authorized to enter.
type Portal string

const (
	PortalInternal    Portal = "internal"
	PortalPatient     Portal = "patient"
	PortalSedationist Portal = "sedationist"
	PortalClinic      Portal = "clinic"
)

// PortalOrder is the canonical iteration order for the closed portal set.
// Listing operations must preserve this order regardless of how permissions
// are stored.
var PortalOrder = [...]Portal{PortalInternal, PortalPatient, PortalSedationist, PortalClinic}

// portalRoutes maps each portal to its landing route. Static configuration;
// portals cannot be registered at runtime.
var portalRoutes = map[Portal]string{
	PortalInternal:    "/internal/dashboard",
	PortalPatient:     "/patient/home",
	PortalSedationist: "/sedationist/schedule",
	PortalClinic:      "/clinic/overview",
}

// RouteAccessDenied is where a user with no reachable portal is sent.
const RouteAccessDenied = "/access-denied"

var ErrInconsistentDefault = errors.New("default portal is not permitted")
var ErrAccessDenied = errors.New("portal access denied")
var ErrInvalidPortal = errors.New("unknown portal")

// Valid reports whether p is a member of the closed portal set.
func (p Portal) Valid() bool {
	_, ok := portalRoutes[p]
	return ok
}

// RouteFor returns the landing route for p, or RouteAccessDenied for an
// unknown portal.
func RouteFor(p Portal) string {
	if route, ok := portalRoutes[p]; ok {
		return route
	}
	return RouteAccessDenied
}

// PortalPermissions holds one authorization flag per portal. A fixed struct
// rather than a map, so an absent key cannot exist and access checks fail
// closed by construction.
type PortalPermissions struct {
	Internal    bool `json:"internal" bson:"internal"`
	Patient     bool `json:"patient" bson:"patient"`
	Sedationist bool `json:"sedationist" bson:"sedationist"`
	Clinic      bool `json:"clinic" bson:"clinic"`
}

// Allows returns the flag for p. Unknown portals are never allowed.
func (pp PortalPermissions) Allows(p Portal) bool {
	switch p {
	case PortalInternal:
		return pp.Internal
	case PortalPatient:
		return pp.Patient
	case PortalSedationist:
		return pp.Sedationist
	case PortalClinic:
		return pp.Clinic
	default:
		return false
	}
}

// AvailablePortals returns the portals u may enter, in canonical order.
// An empty slice is a valid result (user with no portal access).
func AvailablePortals(u *User) []Portal {
	portals := make([]Portal, 0, len(PortalOrder))
	for _, p := range PortalOrder {
		if u.HasPortalAccess(p) {
			portals = append(portals, p)
		}
	}
	return portals
}

// CanAccessPortal reports whether u is authorized to enter p. Same semantics
// as User.HasPortalAccess; named separately because routing guards use it as
// an authorization check rather than a listing predicate.
func CanAccessPortal(u *User, p Portal) bool {
	return u.HasPortalAccess(p)
}

// ResolveDefaultPortal returns u's default portal, enforcing the invariant
// that a user's default must be a portal they can access. This is the single
// place the invariant is checked; a violation means a malformed user record
// and surfaces as ErrInconsistentDefault rather than corrupting reads.
func ResolveDefaultPortal(u *User) (Portal, error) {
	if !CanAccessPortal(u, u.DefaultPortal) {
		return "", ErrInconsistentDefault
	}
	return u.DefaultPortal, nil
}

// LandingPortal resolves where u lands after authentication: the default
// portal when consistent, otherwise the first available portal. The second
// return is false when u can reach no portal at all.
func LandingPortal(u *User) (Portal, bool) {
	if p, err := ResolveDefaultPortal(u); err == nil {
		return p, true
	}
	available := AvailablePortals(u)
	if len(available) == 0 {
		return "", false
	}
	return available[0], true
}
