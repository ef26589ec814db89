package model

import "time"

// Context carries the per-request inputs threaded through every pipeline stage.
// It is owned by exactly one pipeline run; the file it points at is created and
// deleted by the request boundary, not by the pipeline.
type Context struct {
	Query    string `json:"query"`
	FilePath string `json:"filePath"`
}

// StageResult is the text produced by one pipeline stage. Intermediate results
// only live for the duration of a single run; the final stage's text is what
// gets persisted and returned.
type StageResult struct {
	StageName string `json:"stageName"`
	Text      string `json:"text"`
}

// AnalysisRecord is one persisted outcome of a completed pipeline run.
// Records are append-only: there is no update or delete path.
type AnalysisRecord struct {
	ID        int64     `json:"id"`
	FileName  string    `json:"file_name"`
	Query     string    `json:"query"`
	Summary   string    `json:"summary"`
	ModelUsed string    `json:"model_used"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalyzeResponse is the success payload for POST /analyze.
type AnalyzeResponse struct {
	Status        string `json:"status"`
	Query         string `json:"query"`
	Analysis      string `json:"analysis"`
	FileProcessed string `json:"file_processed"`
}

// ErrorResponse is the uniform failure payload for POST /analyze.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
