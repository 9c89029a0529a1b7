package web

import (
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/engine"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/querysql"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/snql"
)

// pageData is everything the form page renders.
type pageData struct {
	Query       string
	Submitted   bool
	RequestID   string
	SQL         string
	SyntaxError bool
	Error       string
	Columns     []string
	Rows        [][]string
	Truncated   bool
	Summary     *querysql.Summary
	Examples    []snql.Example
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Examples: snql.Examples()}

	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		data.Query = r.PostFormValue("snql")
		data.Submitted = true

		out, err := s.run(r.Context(), data.Query)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("session unavailable")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		fillPage(&data, out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render page")
	}
}

func fillPage(data *pageData, out *engine.Outcome) {
	data.RequestID = out.RequestID
	data.SQL = out.DisplaySQL()
	data.SyntaxError = out.SyntaxError
	data.Error = out.ErrorMessage()
	data.Summary = out.Summary
	if out.Result != nil {
		data.Columns = out.Result.Columns
		data.Rows = out.Result.DisplayRows()
		data.Truncated = out.Result.Truncated
	}
}
