package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/kmatsuda/resume-extractor/internal/extract"
	"github.com/kmatsuda/resume-extractor/internal/types"
)

var requestValidator = validator.New()

// handleHealth returns server health status plus parser capabilities.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"service":          "resume-extractor",
		"supportedFormats": s.cfg.AllowedExtensions,
		"vocabularySize":   s.parser.VocabularySize(),
	})
}

// handleParseResume accepts a multipart upload under the "file" field and
// runs the full extraction and parsing pipeline.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, r, &ErrFileTooLarge{Limit: s.cfg.MaxUploadBytes})
			return
		}
		s.errorResponse(w, r, &ErrValidation{Field: "file", Message: "malformed multipart body"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: "file", Message: "missing file field"})
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if !s.cfg.ExtensionAllowed(ext) {
		s.errorResponse(w, r, extract.ErrUnsupportedFormat)
		return
	}
	format, err := extract.ParseFormat(ext)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: "file", Message: "unreadable upload"})
		return
	}

	resume, err := s.parser.ParseDocument(data, format)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// parseTextRequest is the body for text-only parsing.
type parseTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// handleParseResumeText parses pre-extracted plain text, skipping the
// document extraction stage. Hyperlinks and metadata are empty.
func (s *Server) handleParseResumeText(w http.ResponseWriter, r *http.Request) {
	var req parseTextRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: "body", Message: "invalid JSON body"})
		return
	}
	if err := requestValidator.Struct(&req); err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: "text", Message: "text is required"})
		return
	}

	resume := s.parser.Parse(req.Text, nil, types.DocMetadata{})
	s.jsonResponse(w, http.StatusOK, resume)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
