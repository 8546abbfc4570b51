// internal/httpserver/routes_words.go
//
// Word corpus management endpoints (admin only):
//   - POST /api/words         → bulk add
//   - POST /api/words/remove  → bulk delete
//   - GET  /api/words         → cursor-paginated listing
//   - GET  /api/words/search  → fuzzy search, closest 15 matches

package httpserver

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lettergrid/beehive/internal/corpus"
)

type wordsReq struct {
	Words []string `json:"words"`
}

// handleAddWords validates and lowercases the submitted words, then inserts
// them idempotently. A single malformed word rejects the whole batch.
func (s *Server) handleAddWords(w http.ResponseWriter, r *http.Request) {
	var body wordsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(body.Words) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no words supplied")
		return
	}
	normalized := make([]string, 0, len(body.Words))
	for _, raw := range body.Words {
		word, ok := corpus.Normalize(raw)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity,
				"invalid words detected: words must be at least 4 ascii letters")
			return
		}
		normalized = append(normalized, word)
	}
	if err := s.words.AddWords(r.Context(), normalized); err != nil {
		log.Error().Err(err).Int("count", len(normalized)).Msg("add words")
		writeError(w, http.StatusInternalServerError, "failed to add words")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRemoveWords deletes the submitted words by text.
func (s *Server) handleRemoveWords(w http.ResponseWriter, r *http.Request) {
	var body wordsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := s.words.RemoveWords(r.Context(), body.Words); err != nil {
		log.Error().Err(err).Int("count", len(body.Words)).Msg("remove words")
		writeError(w, http.StatusInternalServerError, "failed to remove words")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listedWord pairs a word with the cursor that resumes listing after it.
type listedWord struct {
	Text   string `json:"text"`
	Cursor string `json:"cursor"`
}

type listRes struct {
	Words      []listedWord `json:"words"`
	Pagination struct {
		NextPage *string `json:"next_page"`
		PrevPage *string `json:"prev_page"`
	} `json:"pagination"`
}

// handleListWords pages through the corpus in text order. Cursors are
// URL-safe base64 of the last word seen.
func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	after := ""
	if c := r.URL.Query().Get("cursor"); c != "" {
		b, err := base64.URLEncoding.DecodeString(c)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid cursor")
			return
		}
		after = string(b)
	}

	page, err := s.words.List(r.Context(), after, 0)
	if err != nil {
		log.Error().Err(err).Msg("list words")
		writeError(w, http.StatusInternalServerError, "failed to list words")
		return
	}

	res := listRes{Words: make([]listedWord, len(page.Words))}
	for i, word := range page.Words {
		res.Words[i] = listedWord{Text: word, Cursor: encodeCursor(word)}
	}
	if page.Next != "" {
		next := encodeCursor(page.Next)
		res.Pagination.NextPage = &next
	}
	_ = json.NewEncoder(w).Encode(res)
}

type searchRes struct {
	Words []string `json:"words"`
}

// handleSearchWords serves GET /api/words/search?q=... .
func (s *Server) handleSearchWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusUnprocessableEntity, "missing query parameter q")
		return
	}
	matches, err := s.words.Search(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Str("q", q).Msg("search words")
		writeError(w, http.StatusInternalServerError, "failed to search words")
		return
	}
	if matches == nil {
		matches = []string{}
	}
	_ = json.NewEncoder(w).Encode(searchRes{Words: matches})
}

// handleWordCount reports corpus size (debug).
func (s *Server) handleWordCount(w http.ResponseWriter, r *http.Request) {
	n, err := s.words.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count words")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int{"words": n})
}

func encodeCursor(word string) string {
	return base64.URLEncoding.EncodeToString([]byte(word))
}
