package strada

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	e := New()
	e.Get("/", noopHandler).Named("home")
	e.Get("/polls/:id/results/", noopHandler).Named("polls.results")
	e.Get("/static/*filepath", noopHandler).Named("static")

	tests := []struct {
		name   string
		route  string
		params Params
		want   string
	}{
		{"literal", "home", nil, "/"},
		{"with param", "polls.results", Params{"id": "5"}, "/polls/5/results/"},
		{"wildcard", "static", Params{"filepath": "css/site.css"}, "/static/css/site.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Reverse(tt.route, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReverse_UnknownName(t *testing.T) {
	e := New()
	e.Get("/", noopHandler).Named("home")

	_, err := e.Reverse("nope", nil)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestReverse_MissingParam(t *testing.T) {
	e := New()
	e.Get("/polls/:id/", noopHandler).Named("polls.detail")

	_, err := e.Reverse("polls.detail", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing param")
}

func TestReverse_EarliestNameWins(t *testing.T) {
	e := New()
	e.Get("/first/", noopHandler).Named("dup")
	e.Get("/second/", noopHandler).Named("dup")

	got, err := e.Reverse("dup", nil)
	require.NoError(t, err)
	assert.Equal(t, "/first/", got)
}
