package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/snql"
)

// TranslateRequest is the body of POST /api/translate.
type TranslateRequest struct {
	Query string `json:"query"`
}

// TranslateResponse is the outcome of one query.
//
// Rows carry raw values: numbers stay numbers and NULL is null.
type TranslateResponse struct {
	RequestID   string   `json:"request_id"`
	SQL         string   `json:"sql,omitempty"`
	SyntaxError bool     `json:"syntax_error"`
	Error       string   `json:"error,omitempty"`
	Columns     []string `json:"columns,omitempty"`
	Rows        [][]any  `json:"rows,omitempty"`
	Truncated   bool     `json:"truncated,omitempty"`
	Tables      []string `json:"tables,omitempty"`
}

// ErrorResponse is returned for requests that could not be handled.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req TranslateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, r, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "query is required"})
		return
	}

	out, err := s.run(r.Context(), req.Query)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("session unavailable")
		writeJSON(w, r, http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable"})
		return
	}
	writeJSON(w, r, http.StatusOK, newTranslateResponse(out))
}

func newTranslateResponse(out *engine.Outcome) TranslateResponse {
	resp := TranslateResponse{
		RequestID:   out.RequestID,
		SQL:         out.SQL,
		SyntaxError: out.SyntaxError,
	}
	if out.Err != nil {
		resp.Error = out.Err.Error()
	}
	if out.Result != nil {
		resp.Columns = out.Result.Columns
		resp.Rows = out.Result.Rows
		resp.Truncated = out.Result.Truncated
	}
	if out.Summary != nil {
		resp.Tables = out.Summary.Tables
	}
	return resp
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, snql.Examples())
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("write response")
	}
}
