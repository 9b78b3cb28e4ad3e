package common

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/docnav-labs/docnav/internal/nav"
)

func init() {
	// Session values travel through gob.
	gob.Register([]string{})
}

// SessionName is the cookie holding per-visitor UI state.
const SessionName = "docnav"

// expandedKey stores the expanded folder fullPaths as a string slice.
const expandedKey = "expanded"

// LoadTreeState rebuilds the visitor's sidebar expand state from their
// session. A missing, expired, or undecodable session simply yields the
// default all-collapsed state.
func LoadTreeState(store sessions.Store, r *http.Request) *nav.TreeState {
	session, err := store.Get(r, SessionName)
	if err != nil || session == nil {
		return nav.NewTreeState()
	}
	paths, _ := session.Values[expandedKey].([]string)
	return nav.NewTreeState(paths...)
}

// SaveTreeState writes the expand state back into the visitor's session.
func SaveTreeState(store sessions.Store, r *http.Request, w http.ResponseWriter, state *nav.TreeState) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		// A stale cookie decodes to an error but still returns a fresh
		// session we can write to.
		session, _ = store.New(r, SessionName)
	}
	if session == nil {
		return err
	}
	session.Values[expandedKey] = state.Paths()
	return session.Save(r, w)
}
