package nav

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/nethippo/developer-website/internal/content"
)

// SessionName is the cookie session shared by the UI features.
const SessionName = "devsite_session"

// Session value keys.
const (
	visitorIDKey = "visitor_id"
	mobileNavKey = "mobile_nav_open"
	lastPathKey  = "last_path"
	consentKey   = "cookie_consent"
)

// EnsureVisitor returns the visitor ID pinned in the session, minting
// and saving one on the first request.
func EnsureVisitor(store sessions.Store, w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie decodes to an error plus a fresh
		// session; keep going with the fresh one.
		session, _ = store.New(r, SessionName)
	}

	if id, ok := session.Values[visitorIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Values[visitorIDKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// MobileNavOpen reads the session's mobile nav flag, forcing it closed
// when the route changed since the last read. The previous path is
// observed before being updated, so the close fires only on actual
// transitions. Paths compare trailing-slash-insensitive.
func MobileNavOpen(store sessions.Store, w http.ResponseWriter, r *http.Request, path string) bool {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}

	path = content.NormalizePath(path)
	open, _ := session.Values[mobileNavKey].(bool)
	last, _ := session.Values[lastPathKey].(string)

	if last != path {
		open = false
		session.Values[mobileNavKey] = false
		session.Values[lastPathKey] = path
		_ = session.Save(r, w)
	}
	return open
}

// ToggleMobileNav flips the mobile nav flag and returns the new value.
func ToggleMobileNav(store sessions.Store, w http.ResponseWriter, r *http.Request) bool {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}

	open, _ := session.Values[mobileNavKey].(bool)
	open = !open
	session.Values[mobileNavKey] = open
	_ = session.Save(r, w)
	return open
}

// HasConsent reports whether the visitor already dismissed the cookie
// dialog.
func HasConsent(store sessions.Store, r *http.Request) bool {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}
	consent, _ := session.Values[consentKey].(bool)
	return consent
}

// RecordConsent marks the cookie dialog as dismissed.
func RecordConsent(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		session, _ = store.New(r, SessionName)
	}
	session.Values[consentKey] = true
	return session.Save(r, w)
}
