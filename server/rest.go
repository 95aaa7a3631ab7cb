package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/studyclock/pkg/clock"
	"github.com/umputun/studyclock/pkg/domain"
)

// themeResponse is the JSON form of the applied theme
type themeResponse struct {
	Theme domain.Theme `json:"theme"`
	Dark  bool         `json:"dark"`
	Glyph string       `json:"glyph"`
}

func newThemeResponse(a domain.Appearance) themeResponse {
	return themeResponse{Theme: a.Theme(), Dark: a.Dark, Glyph: a.Glyph}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// themeHandler returns the applied theme
func (s *Server) themeHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, newThemeResponse(s.themes.Current()))
}

// toggleThemeHandler switches the theme. htmx requests get the toggle button back
// and a themeChanged client event, others get JSON.
func (s *Server) toggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	app, err := s.themes.Toggle(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		renderError(w, r, errors.New("failed to toggle theme"), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		renderJSON(w, r, http.StatusOK, newThemeResponse(app))
		return
	}

	trigger, err := json.Marshal(map[string]themeResponse{"themeChanged": newThemeResponse(app)})
	if err != nil {
		log.Printf("[WARN] can't encode theme trigger: %v", err)
	} else {
		w.Header().Set("HX-Trigger", string(trigger))
	}
	s.renderThemeToggle(w, app)
}

// minutesHandler converts H:M:S text to a minute count
func (s *Server) minutesHandler(w http.ResponseWriter, r *http.Request) {
	res := clock.Parse(r.URL.Query().Get("text"))
	warnings := res.Warnings
	if warnings == nil {
		warnings = []clock.ParseWarning{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"minutes":  res.Total,
		"duration": res.Duration().String(),
		"warnings": warnings,
	})
}

// clockHandler converts a second count to HH:MM:SS
func (s *Server) clockHandler(w http.ResponseWriter, r *http.Request) {
	seconds, err := parseSeconds(r.URL.Query().Get("seconds"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	text, err := clock.FormatSeconds(seconds)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"clock": text})
}

func parseSeconds(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("seconds parameter is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds value %q", s)
	}
	return v, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
