package ratelimit

import (
	"net/http"
	"strings"
)

// Route groups requests that share a bucket for one client.
type Route string

// Rate limited routes. RouteExempt requests never consume tokens.
const (
	RouteExempt  Route = ""
	RouteScan    Route = "scan"
	RouteCompare Route = "compare"
	RouteRead    Route = "read"
)

// MatchRoute maps a request method and path to its route. The health check and
// CORS preflight requests are exempt; any other read shares one bucket.
func MatchRoute(method, path string) Route {
	if method == http.MethodOptions || path == "/health" {
		return RouteExempt
	}
	if method != http.MethodPost {
		return RouteRead
	}

	// POST /v1/{domain}/{operation}[/...]
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 3 && parts[0] == "v1" {
		switch parts[2] {
		case "scan":
			return RouteScan
		case "compare":
			return RouteCompare
		}
	}
	return RouteRead
}
