package main

import (
	"log/slog"
	"net/http"

	"github.com/intelliclaim/apiconfig/internal/endpoints"
	"github.com/intelliclaim/apiconfig/internal/handler"
)

func setupRouter(log *slog.Logger, e *endpoints.Endpoints) (*http.ServeMux, error) {
	configHandler, err := handler.NewConfigHandler(log, e)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/config", configHandler)

	return mux, nil
}
