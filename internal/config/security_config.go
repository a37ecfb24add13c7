// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityUser                        // Access token with User (or Admin) role
	SecurityAdmin                       // Access token with Admin role
)

// EndpointSecurityConfig maps "METHOD route-template" to the required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth
	"POST /api/auth/login": SecurityPublic,
	"POST /api/auth/users": SecurityAdmin,

	// Tool JSON API
	"GET /api/tool":      SecurityPublic,
	"GET /api/tool/{id}": SecurityPublic,
	"POST /api/tool":     SecurityAdmin,

	// Tools
	"GET /tool":         SecurityAdmin,
	"GET /tool/{id}":    SecurityAdmin,
	"POST /tool":        SecurityAdmin,
	"PUT /tool/{id}":    SecurityAdmin,
	"DELETE /tool/{id}": SecurityAdmin,

	// Clients
	"GET /client":         SecurityUser,
	"GET /client/{id}":    SecurityUser,
	"POST /client":        SecurityAdmin,
	"PUT /client/{id}":    SecurityAdmin,
	"DELETE /client/{id}": SecurityAdmin,

	// Orders
	"GET /order":             SecurityUser,
	"GET /order/new":         SecurityUser,
	"GET /order/{id}":        SecurityUser,
	"POST /order":            SecurityUser,
	"PUT /order/{id}":        SecurityAdmin,
	"DELETE /order/{id}":     SecurityAdmin,
	"GET /order/{id}/delete": SecurityAdmin,
	"GET /order/{id}/close":  SecurityAdmin,
	"POST /order/{id}/close": SecurityAdmin,

	// Operations
	"GET /healthz": SecurityPublic,
	"GET /metrics": SecurityPublic,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method+" "+pathTemplate]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}
