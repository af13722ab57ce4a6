package handlers

import (
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full walkthrough: bootstrap coach logs in, creates a player, and the
// minted code gets that player onto their own dashboard.
func TestInstructorCreatesPlayerWhoCanLogIn(t *testing.T) {
	r, _, _ := setupApp(t)

	// Seed happens on the login form, exactly as a first deploy would.
	doGet(r, "/instructor")
	w := doPostForm(r, "/instructor", url.Values{"code": {"999999"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	coach := sessionCookie(t, w)

	w = createPlayerMultipart(t, r, map[string]string{
		"first_name": "Jane", "last_name": "Doe", "age_group": "10-12",
	}, "", coach)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/instructor/clients", w.Header().Get("Location"))
	coach = sessionCookie(t, w)

	w = doGet(r, "/instructor/clients", coach)
	require.Equal(t, http.StatusOK, w.Code)
	m := regexp.MustCompile(`Login code: (\d{6})`).FindStringSubmatch(w.Body.String())
	require.NotNil(t, m)

	w = doPostForm(r, "/player", url.Values{"code": {m[1]}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/player/dashboard", w.Header().Get("Location"))

	player := sessionCookie(t, w)
	w = doGet(r, "/player/dashboard", player)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}
