// Package web serves the SNQL converter over HTTP.
//
// Routes:
//
//	GET  /               form page with the example queries
//	POST /               form field "snql": translate, execute, show results
//	POST /api/translate  JSON {"query": "..."} → JSON outcome
//	GET  /api/examples   JSON list of example queries
//
// Handlers are pure consumers of engine.Outcome. A syntax error or an
// execution error is a normal response (HTTP 200) describing the failure;
// only malformed requests and an unavailable store produce error statuses.
package web
