package server

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/blake2b"

	uxsettings "github.com/goliatone/go-ux-settings"
)

const maxInputBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type themeRequest struct {
	Theme *string `json:"theme"`
}

type systemDarkRequest struct {
	Dark *bool `json:"dark"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(s.root.Settings())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	etag := contentTag(body)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// handleResolve resolves a JSON Input under the root scope. The result shares
// the root theme store.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputBytes))
	if err != nil {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, err)
		return
	}

	in, err := uxsettings.DecodeInput("request.json", data)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	settings := uxsettings.NewScope(s.root).Publish(in)
	s.metrics.resolutionsTotal.Inc()

	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.String("uxsettings.locale", settings.Formats.Dates.Locales),
		attribute.String("uxsettings.variant", string(settings.Formats.Dates.Variant)),
	)

	s.writeJSON(w, r, http.StatusOK, settings)
}

func (s *Server) handleOrdinal(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	dates := s.root.Settings().FormatDate(&uxsettings.DateInput{
		Locales: r.URL.Query().Get("locale"),
	})
	writeText(w, dates.Ordinal(n))
}

func (s *Server) handleNumber(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(chi.URLParam(r, "value"), 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	style := uxsettings.NumberStyle(r.URL.Query().Get("style"))
	if style == "" {
		style = uxsettings.StyleDecimal
	}
	format := s.root.Settings().FormatNumber(style)
	writeText(w, format.Format(value, style))
}

func (s *Server) handleThemeState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.settings.CurrentTheme.Snapshot())
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeBody(w, r, &req); err != nil || req.Theme == nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New("body must be {\"theme\": name}"))
		return
	}

	store := s.settings.CurrentTheme
	if err := store.SetTheme(*req.Theme); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, uxsettings.ErrUnknownTheme) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, r, status, err)
		return
	}
	s.metrics.themeChanges.WithLabelValues("theme").Inc()
	s.logger.Info("theme selected", "theme", *req.Theme)

	s.writeJSON(w, r, http.StatusOK, store.Snapshot())
}

func (s *Server) handleSystemDark(w http.ResponseWriter, r *http.Request) {
	var req systemDarkRequest
	if err := decodeBody(w, r, &req); err != nil || req.Dark == nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New("body must be {\"dark\": bool}"))
		return
	}

	store := s.settings.CurrentTheme
	store.SetSystemDark(*req.Dark)
	s.metrics.themeChanges.WithLabelValues("system").Inc()

	s.writeJSON(w, r, http.StatusOK, store.Snapshot())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

// contentTag returns a strong ETag for body.
func contentTag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
