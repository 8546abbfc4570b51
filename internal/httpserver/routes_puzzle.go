// internal/httpserver/routes_puzzle.go
//
// Read-only puzzle config delivery, parameterized by a fixed UTC offset of
// the form ±HH:MM. The offset identifies the caller's calendar day; the
// provider regenerates at most once per day per offset.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lettergrid/beehive/internal/daily"
)

// handlePuzzleConfig serves GET /api/puzzle/daily/config?tz=±HH:MM.
// A missing tz defaults to UTC.
func (s *Server) handlePuzzleConfig(w http.ResponseWriter, r *http.Request) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = "+00:00"
	}
	offset, err := daily.ParseOffset(tz)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cfg, err := s.puzzles.Config(r.Context(), offset)
	if err != nil {
		log.Error().Err(err).Str("tz", tz).Msg("daily puzzle config")
		writeError(w, http.StatusInternalServerError, "failed to build the daily puzzle")
		return
	}
	_ = json.NewEncoder(w).Encode(cfg)
}
