package port

import "net/http"

// Authorizer checks whether the requester holds a capability.
type Authorizer interface {
	Can(r *http.Request, capability string) bool
}
