package store

import (
	"database/sql"
	"time"

	"findoc-analyzer/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the database connection and creates the results table.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	resultTable := `
	CREATE TABLE IF NOT EXISTS analysis_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_name TEXT,
		query TEXT,
		summary TEXT,
		model_used TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(resultTable); err != nil {
		return err
	}

	return nil
}

// CloseDB closes the database connection.
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveAnalysis appends one analysis result. Records are never updated or
// deleted; the timestamp is assigned here, at insert time.
func SaveAnalysis(fileName, query, summary, modelUsed string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO analysis_results (file_name, query, summary, model_used, created_at) VALUES (?, ?, ?, ?, ?)`,
		fileName, query, summary, modelUsed, now)
	return err
}

// ListHistory returns every stored analysis, newest first. There is no
// pagination; the full table comes back on each call.
func ListHistory() ([]model.AnalysisRecord, error) {
	rows, err := db.Query(`SELECT id, file_name, query, summary, model_used, created_at FROM analysis_results ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AnalysisRecord{}
	for rows.Next() {
		var rec model.AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.Query, &rec.Summary, &rec.ModelUsed, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
