package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnav-labs/docnav/internal/nav"
)

func TestTreeState_SessionRoundTrip(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))

	state := nav.NewTreeState("core", "init/initial")
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, SaveTreeState(store, r, w, state))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}
	loaded := LoadTreeState(store, r2)

	assert.True(t, loaded.IsExpanded("core"))
	assert.True(t, loaded.IsExpanded("init/initial"))
	assert.False(t, loaded.IsExpanded("init"))
}

func TestLoadTreeState_NoCookieIsCollapsed(t *testing.T) {
	store := sessions.NewCookieStore([]byte("k"))

	state := LoadTreeState(store, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, state.Paths())
}

func TestLoadTreeState_GarbageCookieIsCollapsed(t *testing.T) {
	store := sessions.NewCookieStore([]byte("k"))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-session"})

	state := LoadTreeState(store, r)

	assert.Empty(t, state.Paths())
}

func TestTreeSource_Replace(t *testing.T) {
	src := NewTreeSource(&nav.DocTree{Title: "Old"})
	assert.Equal(t, "Old", src.Tree().Title)

	src.Replace(&nav.DocTree{Title: "New"})
	assert.Equal(t, "New", src.Tree().Title)
}
