// Package api implements the HTTP boundary: upload validation, the scan
// endpoint, and the reporting surfaces.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	// Image formats accepted by upload validation.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nutricheck/labelscan/pkg/labelscan"
	"github.com/nutricheck/labelscan/pkg/labelscan/internalerr"
	"github.com/nutricheck/labelscan/pkg/labelscan/report"
)

const defaultScanLimit = 10

// multipartOverhead leaves room for part headers and the boundary on top of
// the image cap when bounding the request body.
const multipartOverhead = 1 << 20

// Handler implements all HTTP endpoints.
type Handler struct {
	scanner        *labelscan.Scanner
	maxUploadBytes int64
}

// New creates a Handler around a scanner.
func New(scanner *labelscan.Scanner, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{
		scanner:        scanner,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register mounts routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /api/scan", h.scan)
	mux.HandleFunc("GET /api/ingredients", h.listIngredients)
	mux.HandleFunc("GET /api/scans", h.listScans)
	mux.HandleFunc("OPTIONS /", h.preflight)
}

// ---------- endpoints ----------

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) preflight(w http.ResponseWriter, _ *http.Request) {
	setCORS(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	// Bound the body before FormFile spools it, so an oversize request
	// never fills a temp file on disk.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeErr(w, http.StatusRequestEntityTooLarge, "file size exceeds upload limit")
			return
		}
		writeErr(w, http.StatusBadRequest, "missing file upload field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	data, err := h.readImage(file, contentType)
	switch {
	case errors.Is(err, internalerr.ErrImageTooLarge):
		writeErr(w, http.StatusRequestEntityTooLarge, "file size exceeds upload limit")
		return
	case errors.Is(err, internalerr.ErrInvalidImage):
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	rep, err := h.scanner.Scan(r.Context(), labelscan.Image{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		slog.Error("scan failed", "filename", header.Filename, "err", err)
		writeErr(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	entries, err := h.scanner.Ingredients(r.Context(), 0)
	if err != nil {
		slog.Error("ingredient listing failed", "err", err)
		writeErr(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ingredients": entries})
}

func (h *Handler) listScans(w http.ResponseWriter, r *http.Request) {
	setCORS(w)

	limit := defaultScanLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeErr(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	scans, err := h.scanner.History(r.Context(), limit)
	if err != nil {
		slog.Error("scan history listing failed", "err", err)
		writeErr(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if scans == nil {
		scans = []report.ScanReport{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"scans": scans})
}

// ---------- helpers ----------

// readImage validates an upload before the pipeline sees it: the declared
// content type must be an image, the body must fit the cap, and the bytes
// must decode as a known image format. It reads one byte past the cap so
// oversize payloads are rejected without buffering the full body.
func (h *Handler) readImage(file io.Reader, contentType string) ([]byte, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: only image files are allowed", internalerr.ErrInvalidImage)
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxUploadBytes {
		return nil, internalerr.ErrImageTooLarge
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: unrecognized image data", internalerr.ErrInvalidImage)
	}
	return data, nil
}

func setCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
