package storage

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Kupenya/landPage/internal/entity"
)

// Positional column schema of the lead sheet. Order is load-bearing: the store
// is positional, not keyed, so this mapping is the only place that knows it.
const (
	colEmail = iota
	colCreatedAt
	colEmailSent
	colDownloadCount
	colLastDownloadAt
	colReserved
	colSource
	colToken

	columnCount
)

const (
	sheetName = "Sheet1"
	readRange = sheetName + "!A:H"
)

// columnLetter maps a zero-based column index to its A1 letter. The schema
// stops well before Z.
func columnLetter(col int) string {
	return string(rune('A' + col))
}

// cellRange builds an A1 single-cell address from zero-based row/column.
func cellRange(row, col int) string {
	return fmt.Sprintf("%s!%s%d", sheetName, columnLetter(col), row+1)
}

// RowStore is the minimal surface the repository needs from the spreadsheet
// client.
type RowStore interface {
	Append(ctx context.Context, rng string, row []string) error
	Get(ctx context.Context, rng string) ([][]string, error)
	Update(ctx context.Context, rng string, value string) error
}

type LeadRepository struct {
	Store RowStore

	// mu serializes the read-modify-write of the download counter across
	// requests in this process. The remote store offers no transactions or
	// compare-and-swap, so cross-process writers can still race; this
	// closes the in-process lost-update window only.
	mu sync.Mutex
}

func NewLeadRepository(store RowStore) *LeadRepository {
	return &LeadRepository{Store: store}
}

func (r *LeadRepository) Append(ctx context.Context, record *entity.LeadRecord) error {
	return r.Store.Append(ctx, readRange, rowFromRecord(record))
}

// FindByToken does a linear scan over the full range: the values API has no
// keyed read, so lookup is O(n) in the number of leads. First match wins.
func (r *LeadRepository) FindByToken(ctx context.Context, token string) (*entity.LeadRecord, error) {
	record, _, err := r.findByToken(ctx, token)
	return record, err
}

func (r *LeadRepository) IncrementDownloadCount(ctx context.Context, token string, at time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, rowIndex, err := r.findByToken(ctx, token)
	if err != nil {
		return 0, err
	}

	newCount := record.DownloadCount + 1

	if err := r.Store.Update(ctx, cellRange(rowIndex, colDownloadCount), strconv.Itoa(newCount)); err != nil {
		return 0, fmt.Errorf("update download count: %w", err)
	}
	if err := r.Store.Update(ctx, cellRange(rowIndex, colLastDownloadAt), at.UTC().Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("update last download time: %w", err)
	}

	return newCount, nil
}

func (r *LeadRepository) MarkEmailSent(ctx context.Context, token string) error {
	_, rowIndex, err := r.findByToken(ctx, token)
	if err != nil {
		return err
	}
	return r.Store.Update(ctx, cellRange(rowIndex, colEmailSent), "Yes")
}

func (r *LeadRepository) findByToken(ctx context.Context, token string) (*entity.LeadRecord, int, error) {
	rows, err := r.Store.Get(ctx, readRange)
	if err != nil {
		return nil, 0, fmt.Errorf("read lead range: %w", err)
	}

	for i, row := range rows {
		if cell(row, colToken) == token {
			return recordFromRow(row), i, nil
		}
	}
	return nil, 0, entity.ErrRecordNotFound
}

func rowFromRecord(record *entity.LeadRecord) []string {
	row := make([]string, columnCount)
	row[colEmail] = record.Email
	row[colCreatedAt] = record.CreatedAt.UTC().Format(time.RFC3339)
	row[colEmailSent] = yesNo(record.EmailSent)
	row[colDownloadCount] = strconv.Itoa(record.DownloadCount)
	if record.LastDownloadAt != nil {
		row[colLastDownloadAt] = record.LastDownloadAt.UTC().Format(time.RFC3339)
	}
	row[colSource] = record.Source
	row[colToken] = record.Token
	return row
}

func recordFromRow(row []string) *entity.LeadRecord {
	record := &entity.LeadRecord{
		Email:     cell(row, colEmail),
		EmailSent: cell(row, colEmailSent) == "Yes",
		Source:    cell(row, colSource),
		Token:     cell(row, colToken),
	}

	if t, err := time.Parse(time.RFC3339, cell(row, colCreatedAt)); err == nil {
		record.CreatedAt = t
	}

	// Legacy rows may hold a "No" sentinel here; anything unparseable
	// counts as zero.
	if n, err := strconv.Atoi(cell(row, colDownloadCount)); err == nil {
		record.DownloadCount = n
	}

	if t, err := time.Parse(time.RFC3339, cell(row, colLastDownloadAt)); err == nil {
		record.LastDownloadAt = &t
	}

	return record
}

// cell tolerates short rows: the API omits trailing empty cells.
func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
