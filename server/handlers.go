package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/kennylevinsen/gophotograph/photograph"
)

func (s *Server) handlePhotograph(w http.ResponseWriter, r *http.Request) {
	settings, err := s.cfg.Settings()
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if v := q.Get("procedure"); v != "" {
		if settings.Procedure, err = photograph.ParseProcedure(v); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("trigger"); v != "" {
		if err := photograph.ValidTrigger(v); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		settings.Trigger = v
	}
	if v := q.Get("stamp"); v != "" {
		if settings.Stamp, err = strconv.ParseBool(v); err != nil {
			jsonError(w, "invalid stamp: "+v, http.StatusBadRequest)
			return
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("program exceeds max size (%d bytes)", s.cfg.MaxBodyBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read program", http.StatusBadRequest)
		return
	}

	out, stats := photograph.CraftText(string(data), settings, s.log)
	s.log.Info("photographed",
		"procedure", stats.Procedure.String(),
		"layers", stats.Layers,
		"photographs", stats.Photographs,
		"skipped", stats.Skipped,
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Photograph-Procedure", stats.Procedure.String())
	w.Header().Set("X-Photograph-Layers", strconv.Itoa(stats.Layers))
	w.Header().Set("X-Photograph-Triggers", strconv.Itoa(stats.Photographs))
	if stats.Skipped != "" {
		w.Header().Set("X-Photograph-Skipped", stats.Skipped)
	}
	io.WriteString(w, out)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
