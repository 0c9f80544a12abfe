package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
)

var beautifyClient = &http.Client{Timeout: 10 * time.Second}

type BeautifyRequest struct {
	Text string `json:"text"`
}

type BeautifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text,omitempty"`
}

// BeautifyText proxies the note text to the configured rewrite API and
// returns the polished version. Upstream failures surface as a generic
// upstream error; the raw upstream message is never forwarded.
func BeautifyText(w http.ResponseWriter, r *http.Request) {
	if beautifyURL == "" {
		fail(w, fmt.Errorf("%w: beautify service not configured", apperr.ErrUpstream))
		return
	}

	var req BeautifyRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.Text == "" {
		fail(w, fmt.Errorf("%w: text is required", apperr.ErrValidation))
		return
	}

	payload, err := json.Marshal(map[string]string{"text": req.Text})
	if err != nil {
		fail(w, err)
		return
	}

	upstreamReq, err := http.NewRequestWithContext(r.Context(), http.MethodPost, beautifyURL, bytes.NewReader(payload))
	if err != nil {
		fail(w, err)
		return
	}
	upstreamReq.Header.Set("Content-Type", "application/json")
	if beautifyKey != "" {
		upstreamReq.Header.Set("Authorization", "Bearer "+beautifyKey)
	}

	resp, err := beautifyClient.Do(upstreamReq)
	if err != nil {
		fail(w, fmt.Errorf("%w: beautify request failed", apperr.ErrUpstream))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fail(w, fmt.Errorf("%w: beautify service returned %d", apperr.ErrUpstream, resp.StatusCode))
		return
	}

	var upstream struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		fail(w, fmt.Errorf("%w: malformed beautify response", apperr.ErrUpstream))
		return
	}

	writeJSON(w, http.StatusOK, BeautifyResponse{Success: true, Text: upstream.Text})
}
