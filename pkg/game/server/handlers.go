package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"dungeondigger/pkg/game/devtools"
	"dungeondigger/pkg/game/generator"
)

// handleDungeon answers with the whole map, as text or as JSON
func (s *Server) handleDungeon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, gen, err := s.request(r)
		if err != nil {
			s.fail(w, err)
			return
		}

		d, err := gen.Generate(cfg)
		if err != nil {
			s.fail(w, err)
			return
		}

		if r.URL.Query().Get("format") == "json" {
			doc, err := NewDocument(d)
			if err != nil {
				s.fail(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(doc); err != nil {
				s.log.WithError(err).Warn("write failed")
			}
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := devtools.WriteMap(w, d.Grid); err != nil {
			s.log.WithError(err).Warn("write failed")
		}
	}
}

// handleStream upgrades to a websocket and sends one message per committed
// feature, then a done message with the stats
func (s *Server) handleStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, gen, err := s.request(r)
		if err != nil {
			s.fail(w, err)
			return
		}

		con, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			s.log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer con.Close()

		// Generation cannot be interrupted; once a write fails the rest is dropped
		var writeErr error
		send := func(m Message) {
			if writeErr != nil {
				return
			}
			writeErr = con.WriteJSON(m)
		}

		cfg.OnFeature = func(e generator.Event) {
			send(featureMessage(e))
		}

		d, err := gen.Generate(cfg)
		if err != nil {
			send(Message{Type: MsgError, Error: err.Error()})
		} else {
			stats := toStats(d)
			send(Message{Type: MsgDone, Stats: &stats})
		}

		if writeErr != nil {
			s.log.WithError(writeErr).Warn("stream aborted")
			return
		}
		s.closeStream(con)
	}
}

// messageWriter is the part of a websocket connection used to close a stream
type messageWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// closeStream sends a normal close frame. The client may already be gone.
func (s *Server) closeStream(con messageWriter) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := con.WriteMessage(websocket.CloseMessage, msg); err != nil {
		s.log.WithError(err).Debug("stream close failed")
	}
}
