package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/types"
)

// handleSimulate runs one simulation for a validated config. Range errors are
// rejected up front; lookup and catalog misses inside the engine are not
// errors and always produce a result.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Limit body size to 1MB to prevent DoS
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	var cfg types.SimulationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode simulation config", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, types.ErrMissingUsage) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSONError(w, "invalid simulation config: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.engine.Simulate(ctx, cfg)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "simulation failed", slog.Any("error", err))
		writeJSONError(w, "simulation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		panic(http.ErrAbortHandler)
	}
}
