package main

import (
	"net/http"
	"time"

	"github.com/boynton/step/graphql"
	"github.com/boynton/step/internal/ctxlog"
)

func (e *env) serve(location, addr string) error {
	file, _, err := e.load(location)
	if err != nil {
		return err
	}
	handler, err := graphql.Handler(file)
	if err != nil {
		return err
	}
	logger := ctxlog.FromContext(e.ctx)
	logger.Info("serving GraphQL", "file", location, "addr", addr, "items", len(file.Items))
	server := &http.Server{
		Addr: addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r.WithContext(ctxlog.WithLogger(r.Context(), logger)))
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
