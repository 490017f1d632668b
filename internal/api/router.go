package api

import (
	"net/http"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/store"
)

// NewRouter wires the record endpoints onto a ServeMux.
func NewRouter(st *store.Store, cfg config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	h := &Handler{
		Store: st,
		Cfg:   cfg,
		Now:   time.Now,
	}

	mux.HandleFunc("GET /api/{domain}", h.HandleList)
	mux.HandleFunc("POST /api/{domain}", h.HandleCreate)
	mux.HandleFunc("PUT /api/{domain}/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/{domain}/{id}", h.HandleDelete)
	mux.HandleFunc("GET /api/{domain}/summary", h.HandleSummary)

	return mux
}
