package session

import (
	"net/http"

	"fieldbook/internal/domain/user"
)

type Access string

const (
	AccessPublic        Access = "public"
	AccessAuthenticated Access = "authenticated"
	AccessOwner         Access = "owner"
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// HTTPStatus is the status an API answers with instead of a redirect.
func (d Decision) HTTPStatus() int {
	switch d {
	case RedirectLogin:
		return http.StatusUnauthorized
	case RedirectHome:
		return http.StatusForbidden
	default:
		return http.StatusOK
	}
}

// Authorize decides whether identity may reach a route with the given access
// level. A nil identity means nobody is signed in.
func Authorize(identity *user.User, access Access) Decision {
	switch access {
	case AccessPublic:
		return Allow
	case AccessOwner:
		if identity == nil {
			return RedirectLogin
		}
		if !identity.IsOwner() {
			return RedirectHome
		}
		return Allow
	default:
		if identity == nil {
			return RedirectLogin
		}
		return Allow
	}
}
