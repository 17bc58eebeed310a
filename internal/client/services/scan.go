// Package services contains application services for the Kontax client:
// ingesting scanned payloads, saving annotated cards, device auth, session
// state and publishing.
package services

import (
	"context"
	"fmt"

	"github.com/harshpatel958/kontax/internal/client/repositories/scans"
	"github.com/harshpatel958/kontax/internal/payload"
)

// ScanService turns a raw scanned payload into a staged contact record and
// keeps the append-only scan log.
type ScanService interface {
	Ingest(ctx context.Context, raw string) (ScanResult, error)
	History(ctx context.Context) ([]scans.Entry, error)
	Discard(ctx context.Context, id int64) error
}

// ScanResult is one decoded payload together with its scan-log id.
type ScanResult struct {
	ID     int64
	Record payload.Record
}

type scanService struct {
	scanRepo scans.Repository
}

func NewScanService(scanRepo scans.Repository) ScanService {
	return &scanService{scanRepo: scanRepo}
}

// Ingest decodes raw and appends the result to the scan log. Decode errors
// (empty payload, unrecognized format) pass through unwrapped so callers
// can match them with errors.Is.
func (s *scanService) Ingest(ctx context.Context, raw string) (ScanResult, error) {
	rec, err := payload.Decode(raw)
	if err != nil {
		return ScanResult{}, err
	}

	id, err := s.scanRepo.Append(ctx, rec)
	if err != nil {
		return ScanResult{}, fmt.Errorf("logging scan: %w", err)
	}

	return ScanResult{ID: id, Record: rec}, nil
}

func (s *scanService) History(ctx context.Context) ([]scans.Entry, error) {
	rows, err := s.scanRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading scan log: %w", err)
	}
	return rows, nil
}

func (s *scanService) Discard(ctx context.Context, id int64) error {
	if err := s.scanRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("discarding scan: %w", err)
	}
	return nil
}
