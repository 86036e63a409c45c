package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
	SecurityAdmin                       // Access token of an ADMIN user required
)

// Route names, shared by the router and EndpointSecurityConfig.
const (
	RouteLogin           = "auth.login"
	RouteCustomerHistory = "customers.history"
	RouteBills           = "bills.generate"
	RouteUpload          = "upload.create"
	RouteUploadGet       = "upload.get"
	RouteInit            = "system.init"
	RouteSeed            = "system.seed"
	RouteMetrics         = "system.metrics"
	RouteHealth          = "system.health"
)

// EndpointSecurityConfig maps named routes to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	RouteLogin:           SecurityPublic,
	RouteCustomerHistory: SecurityAccess,
	RouteBills:           SecurityAccess,
	RouteUpload:          SecurityAdmin,
	RouteUploadGet:       SecurityPublic,
	RouteInit:            SecurityPublic,
	RouteSeed:            SecurityAdmin,
	RouteMetrics:         SecurityPublic,
	RouteHealth:          SecurityPublic,
}

// GetSecurityLevel returns the level for a route. Unknown routes require
// an access token.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAccess
}
