package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pdftext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pdftext.ExtractionService = (*ExtractionService)(nil)

const extractionColumns = "id, source, success, method, methods_attempted, page_count, character_count, word_count, content, content_hash, error, extracted_at"

// ExtractionService implements pdftext.ExtractionService using SQLite.
type ExtractionService struct {
	db  *DB
	now func() time.Time
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateExtraction records a new extraction. ID and content hash are always
// assigned; ExtractedAt is set when zero.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *pdftext.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	attempted := e.MethodsAttempted
	if attempted == nil {
		attempted = []string{}
	}
	methods, err := json.Marshal(attempted)
	if err != nil {
		return fmt.Errorf("failed to encode methods attempted: %w", err)
	}

	e.ID = uuid.New().String()
	e.ContentHash = hashContent(e.Content)
	if e.ExtractedAt.IsZero() {
		e.ExtractedAt = s.now()
	}
	e.ExtractedAt = e.ExtractedAt.UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Source, e.Success, e.Method, string(methods), e.PageCount, e.CharacterCount,
		e.WordCount, e.Content, e.ContentHash, e.Error, e.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*pdftext.Extraction, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+extractionColumns+" FROM extractions WHERE id = ?", id)

	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pdftext.Errorf(pdftext.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter pdftext.ExtractionFilter) ([]*pdftext.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + extractionColumns + " FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Method != nil {
		query.WriteString(" AND method = ?")
		args = append(args, *filter.Method)
	}
	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}

	// rowid breaks ties between extractions recorded in the same second.
	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*pdftext.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pdftext.Errorf(pdftext.ENOTFOUND, "extraction not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*pdftext.Extraction, error) {
	var e pdftext.Extraction
	var methods, extractedAt string

	if err := row.Scan(&e.ID, &e.Source, &e.Success, &e.Method, &methods, &e.PageCount,
		&e.CharacterCount, &e.WordCount, &e.Content, &e.ContentHash, &e.Error, &extractedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(methods), &e.MethodsAttempted); err != nil {
		return nil, fmt.Errorf("failed to parse methods_attempted: %w", err)
	}

	var err error
	e.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &e, nil
}
