package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/umputun/studyclock/pkg/clock"
	"github.com/umputun/studyclock/pkg/domain"
)

// template names
const (
	templateIndex          = "index.html"
	templateThemeToggle    = "theme-toggle.html"
	templateDurationResult = "duration-result.html"
)

// durationResult is the view model of the converter partial
type durationResult struct {
	Text     string
	Minutes  float64
	Warnings []clock.ParseWarning
	Seconds  string
	Clock    string
	Error    string
}

// indexHandler renders the main page with the applied theme
func (s *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	data := struct {
		Title      string
		Version    string
		Appearance domain.Appearance
	}{
		Title:      s.config.GetTitle(),
		Version:    s.version,
		Appearance: s.themes.Current(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templateIndex, data); err != nil {
		log.Printf("[ERROR] failed to render index: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// durationPartialHandler renders converter results for the page form
func (s *Server) durationPartialHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := clock.Parse(q.Get("text"))
	data := durationResult{
		Text:     q.Get("text"),
		Minutes:  res.Total,
		Warnings: res.Warnings,
		Seconds:  q.Get("seconds"),
	}

	if data.Seconds != "" {
		seconds, err := parseSeconds(data.Seconds)
		if err == nil {
			data.Clock, err = clock.FormatSeconds(seconds)
		}
		if err != nil {
			if !errors.Is(err, clock.ErrInvalidDuration) {
				log.Printf("[DEBUG] bad seconds input: %v", err)
			}
			data.Error = err.Error()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templateDurationResult, data); err != nil {
		log.Printf("[ERROR] failed to render duration result: %v", err)
		http.Error(w, "Failed to render result", http.StatusInternalServerError)
	}
}

// renderThemeToggle renders the toggle button for the given appearance
func (s *Server) renderThemeToggle(w http.ResponseWriter, app domain.Appearance) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templateThemeToggle, app); err != nil {
		log.Printf("[ERROR] failed to render theme toggle: %v", err)
		http.Error(w, "Failed to render theme toggle", http.StatusInternalServerError)
	}
}
