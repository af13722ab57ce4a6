package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/config"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/db"
)

const testInstructorCode = "999999"

// setupApp builds a router over a fresh in-memory database, wired the
// same way main.go wires the real one.
func setupApp(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		DatabaseURL:           fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		SessionSecret:         "test-secret",
		InstructorDefaultCode: testInstructorCode,
		UploadDir:             t.TempDir(),
	}

	conn, err := db.Open(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	r.Use(sessions.Sessions("h4p_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	logger := zap.NewNop()
	r.GET("/", Landing())
	r.GET("/instructor", InstructorLoginForm(conn, cfg.InstructorDefaultCode))
	r.POST("/instructor", InstructorLogin(conn))
	r.GET("/player", PlayerLoginForm())
	r.POST("/player", PlayerLogin(conn))
	r.GET("/logout", Logout())
	r.GET("/instructor/clients", ClientsPage(conn))
	r.POST("/instructor/favorite/:player_id", ToggleFavorite(conn))
	r.POST("/instructor/create-player", CreatePlayer(conn, cfg, logger))
	r.GET("/player/dashboard", PlayerDashboard(conn))

	return r, conn, cfg
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "h4p_session" {
			return ck
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// loginInstructor seeds the default instructor (via the login form
// GET, same as a browser would) and signs in.
func loginInstructor(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	doGet(r, "/instructor")

	w := doPostForm(r, "/instructor", url.Values{"code": {testInstructorCode}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/instructor/clients", w.Header().Get("Location"))
	return sessionCookie(t, w)
}
