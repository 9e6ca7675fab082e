package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/robalobadob/cheez/internal/game"
	"github.com/robalobadob/cheez/internal/words"
)

// ErrMalformed is returned when the service answers with a body that is not
// a verdict.
var ErrMalformed = errors.New("checker: malformed verdict")

// maxBody bounds how much of a response is read.
const maxBody = 64 << 10

// guessReq is the POST /guess payload.
type guessReq struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("checker: verdict service returned %d: %s", e.Code, e.Body)
}

// Remote asks a verdict service to check guesses for one session.
type Remote struct {
	endpoint  string
	sessionID string
	client    *http.Client
}

var _ game.Checker = (*Remote)(nil)

// RemoteOption customizes a Remote.
type RemoteOption func(*Remote)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *Remote) { r.client = c }
}

// NewRemote returns a checker posting to endpoint (the full /guess URL).
func NewRemote(endpoint, sessionID string, opts ...RemoteOption) *Remote {
	r := &Remote{
		endpoint:  endpoint,
		sessionID: sessionID,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SessionID returns the session this checker reports for.
func (r *Remote) SessionID() string { return r.sessionID }

// Check posts one guess. Any failure to obtain a well-formed verdict is
// returned as an error; no attempt is assumed consumed.
func (r *Remote) Check(ctx context.Context, guess string) (game.Verdict, error) {
	body, err := json.Marshal(guessReq{SessionID: r.sessionID, Word: guess})
	if err != nil {
		return game.Verdict{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return game.Verdict{}, fmt.Errorf("checker: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return game.Verdict{}, fmt.Errorf("checker: post guess: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return game.Verdict{}, fmt.Errorf("checker: read verdict: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return game.Verdict{}, &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(data))}
	}
	return ParseVerdict(data)
}

// ParseVerdict strictly decodes {"attemptsLeft": n, "lettersCorrect": [5 bools]}.
func ParseVerdict(data []byte) (game.Verdict, error) {
	if !gjson.ValidBytes(data) {
		return game.Verdict{}, fmt.Errorf("%w: not JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return game.Verdict{}, fmt.Errorf("%w: not an object", ErrMalformed)
	}

	left := doc.Get("attemptsLeft")
	if left.Type != gjson.Number {
		return game.Verdict{}, fmt.Errorf("%w: attemptsLeft missing or not a number", ErrMalformed)
	}
	n := left.Int()
	if float64(n) != left.Float() || n < 0 {
		return game.Verdict{}, fmt.Errorf("%w: attemptsLeft %s", ErrMalformed, left.Raw)
	}

	letters := doc.Get("lettersCorrect")
	if !letters.IsArray() {
		return game.Verdict{}, fmt.Errorf("%w: lettersCorrect missing or not an array", ErrMalformed)
	}
	items := letters.Array()
	if len(items) != words.Length {
		return game.Verdict{}, fmt.Errorf("%w: lettersCorrect has %d entries", ErrMalformed, len(items))
	}

	v := game.Verdict{AttemptsLeft: int(n)}
	for i, it := range items {
		switch it.Type {
		case gjson.True:
			v.LettersCorrect[i] = true
		case gjson.False:
		default:
			return game.Verdict{}, fmt.Errorf("%w: lettersCorrect[%d] = %s", ErrMalformed, i, it.Raw)
		}
	}
	return v, nil
}
