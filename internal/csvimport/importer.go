package csvimport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Result is the aggregate accounting of one import run. Rejected counts rows
// dropped before submission; Failed counts candidates the server refused.
type Result struct {
	Imported int
	Failed   int
	Rejected int
}

// Importer submits CSV-derived candidates to the schedule API, one POST per
// row, sequentially. Partial failure is tolerated and there is no rollback.
type Importer struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewImporter(baseURL string, logger *zap.Logger) *Importer {
	return &Importer{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		logger:  logger.Named("importer"),
	}
}

// Run parses the CSV stream and submits every importable row.
func (imp *Importer) Run(ctx context.Context, r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read csv input: %w", err)
	}
	rows := Parse(string(data))
	requests, rejected := MapRows(rows)
	result := Result{Rejected: rejected}

	imp.logger.Info("parsed csv input",
		zap.Int("rows", len(rows)),
		zap.Int("importable", len(requests)),
		zap.Int("rejected", rejected))

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := imp.post(ctx, req); err != nil {
			imp.logger.Warn("row submission failed",
				zap.String("name", req.Name),
				zap.Int("day", req.Day),
				zap.Error(err))
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

func (imp *Importer) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		imp.baseURL+"/api/events", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := imp.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
