// Package server serves generated dungeons over HTTP: whole maps as text or
// JSON, and a websocket stream that replays a generation step by step.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"dungeondigger/pkg/game/generator"
)

// ErrBadRequest is wrapped by every request parameter error
var ErrBadRequest = errors.New("bad request")

// Server generates one dungeon per request. Requests never share a grid.
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	base     generator.Config
	log      log.FieldLogger
}

// New creates a server whose requests start from base
func New(base generator.Config, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &Server{
		upgrader: &websocket.Upgrader{},
		base:     base,
		log:      logger,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until the listener fails
func (s *Server) ListenAndServe(addr string) error {
	s.log.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, s)
}

// request resolves the seed path parameter and the query overrides
func (s *Server) request(r *http.Request) (generator.Config, generator.GridGenerator, error) {
	cfg := s.base
	cfg.Logger = s.log

	seed, err := strconv.ParseInt(way.Param(r.Context(), "seed"), 10, 64)
	if err != nil {
		return cfg, nil, fmt.Errorf("%w: seed: %w", ErrBadRequest, err)
	}
	cfg.Seed = seed

	q := r.URL.Query()
	for _, o := range []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
	} {
		v := q.Get(o.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, nil, fmt.Errorf("%w: %s: %w", ErrBadRequest, o.name, err)
		}
		*o.dst = n
	}

	if v := q.Get("dug"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, nil, fmt.Errorf("%w: dug: %w", ErrBadRequest, err)
		}
		cfg.DugPercentage = f
	}

	gen := generator.DefaultGenerator
	if name := q.Get("generator"); name != "" {
		if gen, err = generator.Lookup(name); err != nil {
			return cfg, nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return cfg, gen, nil
}

// fail writes err with the status matching its kind
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrBadRequest) {
		status = http.StatusBadRequest
	}
	s.log.WithError(err).WithField("status", status).Warn("request failed")
	http.Error(w, err.Error(), status)
}
