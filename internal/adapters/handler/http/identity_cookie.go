package http

import (
	"net/http"
	"time"
)

// CookieOptions controls how the voter identity token is stored client-side.
type CookieOptions struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

func (o CookieOptions) token(r *http.Request) string {
	cookie, err := r.Cookie(o.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (o CookieOptions) setToken(w http.ResponseWriter, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     o.Name,
		Value:    token,
		Path:     "/",
		Domain:   o.Domain,
		Expires:  expiresAt.UTC(),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	})
}
