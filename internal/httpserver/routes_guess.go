// internal/httpserver/routes_guess.go
//
// HTTP routes for checking guesses.
//   - POST /guess        → check one word for a session, consume one attempt
//   - GET  /session/{id} → attempts left and whether the session is over
//
// Session IDs are opaque and chosen by the client; the first guess for an
// unknown ID starts its ledger.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/cheez/internal/verdict"
	"github.com/robalobadob/cheez/internal/words"
)

// mountGuess registers the guess routes.
func (s *Server) mountGuess(r chi.Router) {
	r.Post("/guess", s.handleGuess)
	r.Get("/session/{id}", s.handleSession)
}

// guessReq is the request payload for POST /guess.
type guessReq struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

// guessRes is the response payload for POST /guess.
type guessRes struct {
	AttemptsLeft   int                `json:"attemptsLeft"`
	LettersCorrect [words.Length]bool `json:"lettersCorrect"`
}

// handleGuess validates the payload and asks the verdict service.
// - 400 bad_json / invalid_word / invalid_session
// - 409 game_over once the session is won or out of attempts
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	res, err := s.verdicts.Check(r.Context(), req.SessionID, req.Word)
	switch {
	case errors.Is(err, verdict.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	case errors.Is(err, verdict.ErrInvalidSession):
		writeError(w, http.StatusBadRequest, "invalid_session")
		return
	case errors.Is(err, verdict.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("session", req.SessionID).Msg("check guess")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}

	_ = json.NewEncoder(w).Encode(guessRes{AttemptsLeft: res.AttemptsLeft, LettersCorrect: res.LettersCorrect})
}

// sessionRes is returned by GET /session/{id}.
type sessionRes struct {
	SessionID    string `json:"sessionId"`
	AttemptsLeft int    `json:"attemptsLeft"`
	Won          bool   `json:"won"`
	Finished     bool   `json:"finished"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, err := s.verdicts.Status(r.Context(), id)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("session", id).Msg("session status")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}
	_ = json.NewEncoder(w).Encode(sessionRes{
		SessionID:    id,
		AttemptsLeft: st.AttemptsLeft,
		Won:          st.Won,
		Finished:     st.Finished,
	})
}
