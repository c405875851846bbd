package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stradaweb/strada"
	"github.com/stradaweb/strada/config"
)

// buildEngine assembles the demo server from a config: middleware stack,
// poll routes, and the optional template/static/metrics mounts.
func buildEngine(cfg *config.Config, logger *slog.Logger) (*strada.Engine, error) {
	e := strada.New()
	e.SetLogger(logger)
	e.SetDebug(cfg.Debug())

	e.UseMiddleware(strada.Recovery())
	e.UseMiddleware(strada.RequestID())
	e.UseMiddleware(strada.Logger())

	if len(cfg.CORS.AllowedOrigins) > 0 {
		cors := strada.CORS(strada.CorsConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: cfg.CORS.AllowedMethods,
			AllowedHeaders: cfg.CORS.AllowedHeaders,
		})
		e.UseMiddleware(cors)
		// Preflight requests can target any path.
		e.Options("/*path", func(c *strada.Context) {})
	}

	if cfg.Metrics.Enabled {
		metrics := strada.NewMetrics()
		e.UseMiddleware(metrics.Middleware())
		e.Get(cfg.Metrics.Path, strada.WrapHandler(metrics.Handler()))
	}

	if cfg.Templates.Dir != "" {
		if err := e.LoadTemplates(cfg.Templates.Dir); err != nil {
			return nil, err
		}
	}
	if cfg.Static.Dir != "" {
		e.Static(cfg.Static.Prefix, cfg.Static.Dir)
	}

	store := NewPollStore()
	app := &pollApp{store: store, engine: e}

	e.Get("/", app.home).Named("home")

	polls := e.Group("/polls")
	polls.Get("/", app.index).Named("polls.index")
	polls.Get("/:id/", app.detail).Named("polls.detail")
	polls.Get("/:id/results/", app.results).Named("polls.results")
	polls.Post("/:id/vote/", app.vote).Named("polls.vote")

	return e, nil
}

type pollApp struct {
	store  *PollStore
	engine *strada.Engine
}

func (a *pollApp) home(c *strada.Context) {
	index, err := a.engine.Reverse("polls.index", nil)
	if err != nil {
		c.String(http.StatusInternalServerError, "reverse failed: %v", err)
		return
	}
	c.Redirect(index, http.StatusFound)
}

func (a *pollApp) index(c *strada.Context) {
	c.JSON(http.StatusOK, a.store.List())
}

func (a *pollApp) detail(c *strada.Context) {
	poll, ok := a.lookupPoll(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, poll)
}

func (a *pollApp) results(c *strada.Context) {
	poll, ok := a.lookupPoll(c)
	if !ok {
		return
	}

	total := 0
	for _, choice := range poll.Choices {
		total += choice.Votes
	}
	c.JSON(http.StatusOK, map[string]any{
		"poll":        poll,
		"total_votes": total,
	})
}

func (a *pollApp) vote(c *strada.Context) {
	poll, ok := a.lookupPoll(c)
	if !ok {
		return
	}

	choiceID, err := strconv.Atoi(c.PostForm("choice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string]string{"error": "choice must be an integer"})
		return
	}

	if err := a.store.Vote(poll.ID, choiceID); err != nil {
		c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	results, err := a.engine.Reverse("polls.results", strada.Params{"id": c.Param("id")})
	if err != nil {
		c.String(http.StatusInternalServerError, "reverse failed: %v", err)
		return
	}
	c.Redirect(results, http.StatusSeeOther)
}

// lookupPoll resolves the :id path parameter; on failure it writes the error
// response and returns ok=false.
func (a *pollApp) lookupPoll(c *strada.Context) (*Poll, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string]string{"error": "poll id must be an integer"})
		return nil, false
	}

	poll, err := a.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		return nil, false
	}
	return poll, true
}
