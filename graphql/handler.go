package graphql

import (
	"encoding/json"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/boynton/step"
	"github.com/boynton/step/internal/ctxlog"
)

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type response struct {
	Data   interface{} `json:"data,omitempty"`
	Errors []string    `json:"errors,omitempty"`
}

// Handler serves queries against f. It accepts GET with a query parameter
// and POST with a JSON body of the form {"query": ..., "variables": ...}.
func Handler(f *step.File) (http.Handler, error) {
	schema, err := NewSchema(f)
	if err != nil {
		return nil, err
	}
	return &handler{schema: schema}, nil
}

type handler struct {
	schema gql.Schema
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Errors: []string{"bad request body: " + err.Error()}})
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, response{Errors: []string{"missing query"}})
		return
	}
	ctx := r.Context()
	data, err := execute(ctx, h.schema, req.Query, req.Variables)
	if err != nil {
		ctxlog.FromContext(ctx).Info("query error", "error", err)
		writeJSON(w, http.StatusOK, response{Data: data, Errors: []string{err.Error()}})
		return
	}
	writeJSON(w, http.StatusOK, response{Data: data})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
