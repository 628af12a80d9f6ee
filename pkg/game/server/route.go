package server

import (
	"github.com/matryer/way"
)

const (
	URIDungeon = "/dungeon/:seed"
	URIStream  = "/stream/:seed"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIDungeon, s.handleDungeon())
	s.router.HandleFunc("GET", URIStream, s.handleStream())
}
