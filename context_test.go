package strada

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_JSON(t *testing.T) {
	e := New()
	e.Get("/", func(c *Context) {
		c.JSON(http.StatusCreated, map[string]int{"count": 3})
	})

	rec := doRequest(e, http.MethodGet, "/")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestContext_BindJSON(t *testing.T) {
	type payload struct {
		Question string `json:"question"`
	}

	e := New()
	var got payload
	e.Post("/polls/", func(c *Context) {
		require.NoError(t, c.BindJSON(&got))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/polls/", strings.NewReader(`{"question":"why?"}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "why?", got.Question)
}

func TestContext_PostForm(t *testing.T) {
	e := New()
	e.Post("/vote", func(c *Context) {
		c.String(http.StatusOK, "choice=%s", c.PostForm("choice"))
	})

	form := url.Values{"choice": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "choice=2", rec.Body.String())
}

func TestContext_Redirect(t *testing.T) {
	e := New()
	e.Get("/old", func(c *Context) {
		c.Redirect("/new", http.StatusMovedPermanently)
	})

	rec := doRequest(e, http.MethodGet, "/old")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/new", rec.Header().Get("Location"))
}

func TestContext_Items(t *testing.T) {
	e := New()
	e.UseMiddleware(func(c *Context) { c.SetItem("user", "ada") })
	e.Get("/", func(c *Context) {
		c.String(http.StatusOK, "%v", c.GetItem("user"))
	})

	rec := doRequest(e, http.MethodGet, "/")
	assert.Equal(t, "ada", rec.Body.String())
}

func TestContext_StatusCodeDefaultsTo200(t *testing.T) {
	e := New()
	var observed int
	e.UseMiddleware(func(c *Context) {
		c.Next()
		observed = c.StatusCode()
	})
	e.Get("/", func(c *Context) { c.String(http.StatusOK, "ok") })

	doRequest(e, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, observed)
}

func TestContext_RouteAccessor(t *testing.T) {
	e := New()
	var pattern string
	e.Get("/polls/:id/", func(c *Context) {
		pattern = c.Route().Pattern()
		c.Status(http.StatusNoContent)
	})

	doRequest(e, http.MethodGet, "/polls/9/")
	assert.Equal(t, "/polls/:id/", pattern)
}
