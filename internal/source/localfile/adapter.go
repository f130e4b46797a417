package localfile

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

const SourceName = "localfile"

// Adapter implements the Source interface for a local JSON Lines file of
// business records. It exists for offline development and for replaying
// exported datasets through the ingestion pipeline without provider calls.
type Adapter struct {
	path    string
	records []domain.RawBusinessRecord
	loaded  bool
}

// NewAdapter creates a new local file adapter.
// Parameters:
//   - path: path to a JSON Lines file, one business record per line.
// Returns:
//   - *Adapter: initialized local file adapter.
func NewAdapter(path string) *Adapter {
	return &Adapter{
		path: path,
	}
}

// Name returns the stable identifier for this source.
// Parameters: none.
// Returns:
//   - string: source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Fetch returns business records from the file in file order.
// The query and location arguments are accepted for interface parity and
// ignored; the file content is the dataset.
// Parameters:
//   - ctx: context for cancellation and deadlines (unused for local reads).
//   - query: ignored.
//   - location: ignored.
//   - maxResults: maximum number of records to return.
// Returns:
//   - []domain.RawBusinessRecord: at most maxResults records in file order.
//   - error: non-nil if loading or parsing fails.
func (a *Adapter) Fetch(ctx context.Context, query, location string, maxResults int) ([]domain.RawBusinessRecord, error) {
	// Load all records on first call
	if !a.loaded {
		if err := a.loadRecords(); err != nil {
			return nil, fmt.Errorf("failed to load local records: %w", err)
		}
		a.loaded = true
	}

	if maxResults > len(a.records) {
		maxResults = len(a.records)
	}

	return a.records[:maxResults], nil
}

// loadRecords loads all records from the JSON Lines file
func (a *Adapter) loadRecords() error {
	if _, err := os.Stat(a.path); os.IsNotExist(err) {
		return fmt.Errorf("records file not found: %s", a.path)
	}

	file, err := os.Open(a.path)
	if err != nil {
		return fmt.Errorf("failed to open records file: %w", err)
	}
	defer file.Close()

	a.records = []domain.RawBusinessRecord{}

	// Read line by line (JSON Lines format)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record domain.RawBusinessRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			// Skip malformed lines
			continue
		}

		a.records = append(a.records, record)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading records file: %w", err)
	}

	return nil
}

// Count returns the total number of records in the file.
// Parameters: none.
// Returns:
//   - int: total record count.
//   - error: non-nil if loading fails.
func (a *Adapter) Count() (int, error) {
	if !a.loaded {
		if err := a.loadRecords(); err != nil {
			return 0, err
		}
		a.loaded = true
	}
	return len(a.records), nil
}
