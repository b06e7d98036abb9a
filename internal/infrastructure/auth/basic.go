// Package auth checks admin capabilities against the configured credentials.
package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/webfonts/internal/application/port"
	"github.com/bnema/webfonts/internal/domain/entity"
)

// Realm is sent in the WWW-Authenticate challenge.
const Realm = "webfonts admin"

// BasicAuthorizer grants every capability to the single configured admin
// authenticated with HTTP basic auth.
type BasicAuthorizer struct {
	username     string
	passwordHash []byte
}

var _ port.Authorizer = (*BasicAuthorizer)(nil)

// NewBasicAuthorizer creates an authorizer. An empty hash denies everyone.
func NewBasicAuthorizer(username, passwordHash string) *BasicAuthorizer {
	return &BasicAuthorizer{username: username, passwordHash: []byte(passwordHash)}
}

// Can reports whether r carries valid admin credentials for capability.
func (a *BasicAuthorizer) Can(r *http.Request, capability string) bool {
	if capability != entity.CapabilityManageOptions || len(a.passwordHash) == 0 {
		return false
	}
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(pass)) == nil
	return userOK && passOK
}

// Challenge writes the basic auth challenge header.
func Challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q, charset=\"UTF-8\"", Realm))
}

// HashPassword returns a bcrypt hash suitable for the admin.password_hash setting.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
