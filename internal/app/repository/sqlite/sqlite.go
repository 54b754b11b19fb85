package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"audio2text/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id        TEXT NOT NULL,
    engine        TEXT NOT NULL,
    model         TEXT NOT NULL,
    input_dir     TEXT NOT NULL,
    file_name     TEXT NOT NULL,
    output_file   TEXT NOT NULL DEFAULT '',
    transcription TEXT NOT NULL DEFAULT '',
    has_error     INTEGER NOT NULL DEFAULT 0,
    error_kind    TEXT NOT NULL DEFAULT '',
    error_message TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_file_name ON transcriptions (file_name);
`

// SQLiteDB implements repository.TranscriptionDAO on a local sqlite
// database file.
type SQLiteDB struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbFilePath.
func Open(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// NewWithConnection wraps an existing connection; the schema is assumed
// present. Used by tests.
func NewWithConnection(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(rec model.TranscriptionRecord) error {
	insertSQL := `INSERT INTO transcriptions
		(run_id, engine, model, input_dir, file_name, output_file, transcription, has_error, error_kind, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL,
		rec.RunID, rec.Engine, rec.Model, rec.InputDir, rec.FileName, rec.OutputFile,
		rec.Transcription, boolToInt(rec.HasError), rec.ErrorKind, rec.ErrorMessage, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transcription record: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int64, error) {
	query := `SELECT id FROM transcriptions WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int64
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) GetAll() ([]model.TranscriptionRecord, error) {
	query := `
		SELECT id, run_id, engine, model, input_dir, file_name, output_file, transcription, has_error, error_kind, error_message, created_at
		FROM transcriptions
		ORDER BY created_at DESC, id DESC;`
	rows, err := sdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.TranscriptionRecord, 0)
	for rows.Next() {
		var rec model.TranscriptionRecord
		var hasError int
		err = rows.Scan(&rec.ID, &rec.RunID, &rec.Engine, &rec.Model, &rec.InputDir, &rec.FileName,
			&rec.OutputFile, &rec.Transcription, &hasError, &rec.ErrorKind, &rec.ErrorMessage, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		rec.HasError = hasError != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
