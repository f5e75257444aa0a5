package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/dictionary"
	"github.com/jonathan/ats-checker/internal/engine"
)

// AnalyzeRequest represents the request body for /analyze. Both texts are
// already-extracted plain text; file parsing belongs to the upload client.
type AnalyzeRequest struct {
	ResumeText         string         `json:"resumeText" validate:"required"`
	JobDescriptionText string         `json:"jobDescriptionText" validate:"required"`
	Config             *config.Config `json:"config,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DictionaryResponse represents the response for /dictionary.
type DictionaryResponse struct {
	Version    string                      `json:"version"`
	Keywords   int                         `json:"keywords"`
	Categories map[dictionary.Category]int `json:"categories"`
}

// ErrorResponse is the structured error body returned on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze runs one analysis and returns the full result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result, err := s.engine.Analyze(r.Context(), engine.Request{
		ResumeText:         req.ResumeText,
		JobDescriptionText: req.JobDescriptionText,
		Config:             req.Config,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleDictionary reports the loaded dictionary version and entry counts,
// so clients can pin results to a dictionary version.
func (s *Server) handleDictionary(w http.ResponseWriter, _ *http.Request) {
	dict := s.engine.Dictionary()
	s.jsonResponse(w, http.StatusOK, DictionaryResponse{
		Version:    dict.Version(),
		Keywords:   dict.Len(),
		Categories: dict.CountByCategory(),
	})
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"dictionary": s.engine.Dictionary().Version(),
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
