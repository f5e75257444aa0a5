// Package engine orchestrates the resume-compatibility analysis pipeline:
// tokenization, keyword extraction, matching, section and format analysis,
// density scoring, weighted aggregation, and suggestion generation.
//
// The engine is a pure function of its inputs and the dictionary loaded at
// startup: identical inputs under the same dictionary version yield
// byte-identical results. It holds no mutable state and is safe for
// concurrent use.
package engine

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/dictionary"
	"github.com/jonathan/ats-checker/internal/extraction"
	"github.com/jonathan/ats-checker/internal/format"
	"github.com/jonathan/ats-checker/internal/matching"
	"github.com/jonathan/ats-checker/internal/scoring"
	"github.com/jonathan/ats-checker/internal/sections"
	"github.com/jonathan/ats-checker/internal/suggestions"
	"github.com/jonathan/ats-checker/internal/types"
)

// Request carries one analysis invocation. Both texts are plain text,
// already extracted from their source documents; binary parsing is the
// caller's concern. Config, when set, overrides individual engine defaults
// for this request only.
type Request struct {
	ResumeText         string
	JobDescriptionText string
	Config             *config.Config
}

// Engine analyzes resumes against job descriptions using a fixed keyword
// dictionary.
type Engine struct {
	dict *dictionary.Dictionary
	cfg  config.Config
}

// New creates an Engine. The dictionary is required; a missing dictionary
// is a startup failure, not a per-request condition.
func New(dict *dictionary.Dictionary, cfg config.Config) (*Engine, error) {
	if dict == nil {
		return nil, &ErrDictionaryUnavailable{Cause: errors.New("no dictionary loaded")}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ErrInvalidConfig{Cause: err}
	}
	return &Engine{dict: dict, cfg: cfg}, nil
}

// Dictionary returns the dictionary the engine was built with.
func (e *Engine) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// Config returns the engine's base configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Analyze runs the full pipeline. It returns a complete result or an
// error, never a partial result.
func (e *Engine) Analyze(ctx context.Context, req Request) (*types.AnalysisResult, error) {
	cfg := e.cfg
	if req.Config != nil {
		cfg = req.Config.MergeWithDefaults(e.cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &ErrInvalidConfig{Cause: err}
		}
	}

	resumeText := strings.TrimSpace(req.ResumeText)
	jdText := strings.TrimSpace(req.JobDescriptionText)
	if resumeText == "" {
		return nil, &ErrInvalidInput{Field: "resumeText"}
	}
	if jdText == "" {
		return nil, &ErrInvalidInput{Field: "jobDescriptionText"}
	}
	if n := len(req.ResumeText); n > cfg.MaxDocumentChars {
		return nil, &ErrDocumentTooLarge{Field: "resumeText", Size: n, Limit: cfg.MaxDocumentChars}
	}
	if n := len(req.JobDescriptionText); n > cfg.MaxDocumentChars {
		return nil, &ErrDocumentTooLarge{Field: "jobDescriptionText", Size: n, Limit: cfg.MaxDocumentChars}
	}

	tok := e.dict.Tokenizer()
	resumeTokens := tok.Tokenize(resumeText)

	// The keyword path and the structure path are independent; run them
	// concurrently.
	var (
		matches  []types.KeywordMatch
		required []int
		presence sections.Presence
		warnings []types.Warning
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		jdTokens := tok.Tokenize(jdText)
		required = extraction.Required(e.dict, jdTokens)
		matches = matching.Match(e.dict, resumeTokens, required)
		return nil
	})
	g.Go(func() error {
		presence = sections.Analyze(resumeText)
		wordCount := len(strings.Fields(resumeText))
		warnings = format.Check(resumeText, wordCount, presence, &cfg)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matchedKeywords := []string{}
	missingKeywords := []string{}
	matchedCount := 0
	for _, m := range matches {
		if m.Matched {
			matchedKeywords = append(matchedKeywords, m.Keyword)
			matchedCount++
		} else {
			missingKeywords = append(missingKeywords, m.Keyword)
		}
	}

	totalOccurrences := matching.TotalOccurrences(matches)
	density := scoring.Density(totalOccurrences, len(resumeTokens), len(required), &cfg)
	ratio := scoring.Ratio(totalOccurrences, len(resumeTokens))

	score, breakdown, err := scoring.Aggregate(matchedCount, len(required), presence.Completeness(), len(warnings), density, &cfg)
	if err != nil {
		return nil, &ErrInvalidConfig{Cause: err}
	}

	tips := suggestions.Generate(matches, presence, warnings, ratio, len(required), &cfg)

	return &types.AnalysisResult{
		ATSScore:        score,
		MatchedKeywords: matchedKeywords,
		MissingKeywords: missingKeywords,
		Warnings:        types.Messages(warnings),
		Suggestions:     types.SuggestionMessages(tips),
		Breakdown:       &breakdown,
		Matches:         matches,
	}, nil
}
