package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"findoc-analyzer/internal/model"
	"findoc-analyzer/internal/store"
	"findoc-analyzer/pkg/utils"
)

// fakeRunner implements Runner without touching any LLM.
type fakeRunner struct {
	summary string
	err     error
	lastCtx model.Context
	// set while the run is in flight, to observe the transient file
	observedPath  string
	fileExistedAt bool
}

func (f *fakeRunner) Run(ctx context.Context, pc model.Context) (string, error) {
	f.lastCtx = pc
	f.observedPath = pc.FilePath
	_, statErr := os.Stat(pc.FilePath)
	f.fileExistedAt = statErr == nil
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func setup(t *testing.T, runner Runner) (*AnalyzeHandler, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := store.InitDB(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { store.CloseDB() })

	uploadDir := t.TempDir()
	h := NewAnalyzeHandler(runner, utils.NewUploadManager(uploadDir), "gpt-4o-mini")
	return h, uploadDir
}

func multipartUpload(t *testing.T, filename, query string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if query != "" {
		if err := mw.WriteField("query", query); err != nil {
			t.Fatal(err)
		}
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func uploadsLeft(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

func TestAnalyze_Success(t *testing.T) {
	runner := &fakeRunner{summary: "Verified financial summary"}
	h, uploadDir := setup(t, runner)

	w := httptest.NewRecorder()
	h.Analyze(w, multipartUpload(t, "TSLA-Q2.pdf", "summarize", []byte("%PDF-fake")))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Query != "summarize" {
		t.Errorf("query = %q", resp.Query)
	}
	if resp.Analysis != "Verified financial summary" {
		t.Errorf("analysis = %q", resp.Analysis)
	}
	if resp.FileProcessed != "TSLA-Q2.pdf" {
		t.Errorf("file_processed = %q", resp.FileProcessed)
	}

	if !runner.fileExistedAt {
		t.Error("transient file should exist while the pipeline runs")
	}
	if uploadsLeft(t, uploadDir) != 0 {
		t.Error("transient file must be deleted after the request")
	}

	records, err := store.ListHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(records))
	}
	if records[0].FileName != "TSLA-Q2.pdf" || records[0].Query != "summarize" {
		t.Errorf("persisted record mismatch: %+v", records[0])
	}
	if records[0].Summary != "Verified financial summary" {
		t.Errorf("persisted summary mismatch: %q", records[0].Summary)
	}
	if records[0].ModelUsed != "gpt-4o-mini" {
		t.Errorf("persisted model label mismatch: %q", records[0].ModelUsed)
	}
}

func TestAnalyze_DefaultsBlankQuery(t *testing.T) {
	runner := &fakeRunner{summary: "ok"}
	h, _ := setup(t, runner)

	w := httptest.NewRecorder()
	h.Analyze(w, multipartUpload(t, "doc.pdf", "", []byte("x")))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if runner.lastCtx.Query != DefaultQuery {
		t.Errorf("blank query should default, got %q", runner.lastCtx.Query)
	}
}

func TestAnalyze_MissingFileIsBadRequest(t *testing.T) {
	h, _ := setup(t, &fakeRunner{summary: "ok"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("query", "summarize")
	mw.Close()

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.Analyze(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnalyze_PipelineFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("stage \"investment_analysis\": provider unavailable")}
	h, uploadDir := setup(t, runner)

	w := httptest.NewRecorder()
	h.Analyze(w, multipartUpload(t, "doc.pdf", "q", []byte("x")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.Detail, "Error processing financial document: ") {
		t.Errorf("detail = %q", resp.Detail)
	}
	if !strings.Contains(resp.Detail, "provider unavailable") {
		t.Errorf("detail should carry the underlying message: %q", resp.Detail)
	}

	if uploadsLeft(t, uploadDir) != 0 {
		t.Error("transient file must be deleted even when the pipeline fails")
	}

	records, err := store.ListHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("failed runs must not persist records, got %d", len(records))
	}
}

func TestAnalyze_StoreFailure(t *testing.T) {
	runner := &fakeRunner{summary: "computed summary"}
	h, uploadDir := setup(t, runner)

	// Take the store down after setup; the run succeeds, persistence fails.
	store.CloseDB()

	w := httptest.NewRecorder()
	h.Analyze(w, multipartUpload(t, "doc.pdf", "q", []byte("x")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Detail, "database is closed") {
		t.Errorf("detail should carry the storage failure: %q", resp.Detail)
	}

	if uploadsLeft(t, uploadDir) != 0 {
		t.Error("transient file must be deleted even when persistence fails")
	}
}

func TestRoot(t *testing.T) {
	h, _ := setup(t, &fakeRunner{})

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] == "" {
		t.Error("expected a message field")
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	runner := &fakeRunner{summary: "s"}
	h, _ := setup(t, runner)

	for _, name := range []string{"first.pdf", "second.pdf"} {
		w := httptest.NewRecorder()
		h.Analyze(w, multipartUpload(t, name, "q", []byte("x")))
		if w.Code != http.StatusOK {
			t.Fatalf("analyze %s: %d", name, w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.History(w, httptest.NewRequest("GET", "/history", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var records []model.AnalysisRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].FileName != "second.pdf" || records[1].FileName != "first.pdf" {
		t.Errorf("records not newest-first: %q, %q", records[0].FileName, records[1].FileName)
	}
}
