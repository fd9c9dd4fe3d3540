package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func TestAdminAuth_Authorized(t *testing.T) {
	auth := NewAdminAuth("admin", testAdminPassword)

	tests := []struct {
		name   string
		header string
		user   string
		pass   string
		want   bool
	}{
		{name: "valid", user: "admin", pass: testAdminPassword, want: true},
		{name: "wrong password", user: "admin", pass: "nope", want: false},
		{name: "wrong user", user: "root", pass: testAdminPassword, want: false},
		{name: "missing header", want: false},
		{name: "not basic", header: "Bearer abc", want: false},
		{name: "bad base64", header: "Basic !!!", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.user != "" {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, auth.Authorized(req))
		})
	}
}

func TestAdminAuth_EmptyPasswordRejects(t *testing.T) {
	auth := NewAdminAuth("admin", "")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.SetBasicAuth("admin", "")
	assert.Equal(t, false, auth.Authorized(req))
}

func newTestAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := NewAdminAuth("admin", testAdminPassword)
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/page", auth.RequirePage(), ok)
	r.POST("/api", auth.RequireAPI(), ok)
	return r
}

func TestRequirePage_Challenge(t *testing.T) {
	r := newTestAuthRouter()

	w := serve(r, httptest.NewRequest("GET", "/page", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="Admin"`, w.Header().Get("WWW-Authenticate"))
}

func TestRequireAPI_JSONError(t *testing.T) {
	r := newTestAuthRouter()

	w := serve(r, httptest.NewRequest("POST", "/api", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Unauthorized", res.Error)
}

func TestRequireAPI_Authorized(t *testing.T) {
	r := newTestAuthRouter()

	req := httptest.NewRequest("POST", "/api", nil)
	req.SetBasicAuth("admin", testAdminPassword)
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
