package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/types"
)

func categoryParam(r *http.Request) (types.Category, bool) {
	c := types.Category(r.URL.Query().Get("category"))
	if c == "" {
		c = types.CategoryDomestic
	}
	return c, c.Valid()
}

func (s *Server) handleListTariffs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, ok := categoryParam(r)
	if !ok {
		writeJSONError(w, "unknown category", http.StatusBadRequest)
		return
	}

	rows, err := s.catalog.GetTariffTable(ctx, category)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to get tariff table", slog.Any("error", err))
		writeJSONError(w, "failed to get tariff table", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// the schedule changes rarely, let clients cache it for a day
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, ok := categoryParam(r)
	if !ok {
		writeJSONError(w, "unknown category", http.StatusBadRequest)
		return
	}

	pkgs, err := s.catalog.GetPackages(ctx, category)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to get packages", slog.Any("error", err))
		writeJSONError(w, "failed to get packages", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(pkgs); err != nil {
		panic(http.ErrAbortHandler)
	}
}
