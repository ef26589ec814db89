package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"findoc-analyzer/internal/model"
	"findoc-analyzer/internal/store"
	"findoc-analyzer/pkg/utils"

	"github.com/google/uuid"
)

// DefaultQuery is used when the caller sends no query with the upload.
const DefaultQuery = "Analyze this financial document"

// Runner drives one analysis pipeline run.
type Runner interface {
	Run(ctx context.Context, pc model.Context) (string, error)
}

// AnalyzeHandler bridges HTTP requests to the analysis pipeline and the
// result store.
type AnalyzeHandler struct {
	runner    Runner
	uploads   *utils.UploadManager
	modelUsed string
}

// NewAnalyzeHandler creates the handler with its injected dependencies.
// modelUsed is the label stored with each analysis record.
func NewAnalyzeHandler(runner Runner, uploads *utils.UploadManager, modelUsed string) *AnalyzeHandler {
	return &AnalyzeHandler{
		runner:    runner,
		uploads:   uploads,
		modelUsed: modelUsed,
	}
}

// Root is the health check endpoint
// @Summary Health check
// @Description Confirms the API is running
// @Tags analyzer
// @Produce json
// @Success 200 {object} map[string]interface{} "API status message"
// @Router / [get]
func (h *AnalyzeHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Financial Document Analyzer API is running",
	})
}

// Analyze runs the analysis pipeline on an uploaded financial document
// @Summary Analyze a financial document
// @Description Upload a financial PDF and run the multi-stage analysis pipeline over it
// @Tags analyzer
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Financial PDF document"
// @Param query formData string false "Analysis query"
// @Success 200 {object} model.AnalyzeResponse "Analysis result"
// @Failure 400 {object} map[string]interface{} "Missing file upload"
// @Failure 500 {object} model.ErrorResponse "Processing failure"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A file upload is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		query = DefaultQuery
	}

	// Materialize the upload under a unique transient path. Whatever happens
	// from here on, the file must be gone when the request completes.
	fileID := uuid.New().String()
	filePath := h.uploads.UploadPath(fileID)
	defer h.uploads.Remove(filePath)

	if err := h.saveUpload(file, filePath); err != nil {
		h.fail(w, err)
		return
	}

	summary, err := h.runner.Run(r.Context(), model.Context{
		Query:    query,
		FilePath: filePath,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := store.SaveAnalysis(header.Filename, query, summary, h.modelUsed); err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AnalyzeResponse{
		Status:        "success",
		Query:         query,
		Analysis:      summary,
		FileProcessed: header.Filename,
	})
}

// History lists all stored analysis results
// @Summary Analysis history
// @Description Get every stored analysis result, newest first
// @Tags analyzer
// @Produce json
// @Success 200 {array} model.AnalysisRecord "Stored analysis records"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /history [get]
func (h *AnalyzeHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := store.ListHistory()
	if err != nil {
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// saveUpload writes the upload bytes to the transient path.
func (h *AnalyzeHandler) saveUpload(src io.Reader, path string) error {
	if err := h.uploads.EnsureDir(); err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}
	return nil
}

// fail collapses every processing error to the uniform 500 payload. No error
// classification is exposed to the caller.
func (h *AnalyzeHandler) fail(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Detail: fmt.Sprintf("Error processing financial document: %v", err),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
