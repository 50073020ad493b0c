// Package submissions orchestrates one scan submission: aggregate the
// flattened form, render the report, persist the artifact, best-effort mail
// it, and summarize the result. All state is per-request; nothing is shared
// across submissions.
package submissions

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Veerenstael/QuickScan/internal/aggregate"
	"github.com/Veerenstael/QuickScan/internal/notify"
	"github.com/Veerenstael/QuickScan/internal/report"
	"github.com/Veerenstael/QuickScan/internal/shared/metrics"
	"github.com/Veerenstael/QuickScan/internal/shared/storage/object"
)

const attachmentName = "quickscan.pdf"

// Dispatcher delivers a rendered report. Satisfied by notify.Mailer.
type Dispatcher interface {
	Send(to, name string, attachment []byte, filename string) notify.Result
}

// Service contains the submission pipeline.
type Service struct {
	Renderer report.Renderer
	Mailer   Dispatcher
	Store    object.ObjectStore

	// Now overrides the report timestamp in tests.
	Now func() time.Time
}

// Outcome is the result of one processed submission.
type Outcome struct {
	Sections    []aggregate.Section
	Meta        aggregate.Metadata
	ArtifactKey string
	Email       notify.Result
	// Total is the formatted overall average, empty when no valid score
	// exists anywhere in the submission.
	Total string
}

// Process runs the pipeline. Render and store failures are fatal; a failed
// dispatch is recorded in the Outcome and the submission still succeeds.
// Dispatch reads the artifact back from the store, so it can only start once
// the document is fully flushed.
func (s *Service) Process(ctx context.Context, fields []aggregate.Field) (Outcome, error) {
	sections, meta := aggregate.Aggregate(fields)

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}

	renderStart := time.Now()
	pdfBytes, err := s.Renderer.Render(meta, sections, now)
	metrics.ObserveRenderDurationMs(float64(time.Since(renderStart)) / float64(time.Millisecond))
	if err != nil {
		return Outcome{}, fmt.Errorf("render report: %w", err)
	}

	// Per-request key: concurrent submissions never clobber each other.
	key := fmt.Sprintf("reports/%s.pdf", uuid.NewString())
	if _, err := s.Store.SaveWithKey(ctx, key, "application/pdf", bytes.NewReader(pdfBytes)); err != nil {
		return Outcome{}, fmt.Errorf("store report: %w", err)
	}

	attachment, err := s.readArtifact(ctx, key)
	if err != nil {
		return Outcome{}, fmt.Errorf("read report artifact: %w", err)
	}

	out := Outcome{
		Sections:    sections,
		Meta:        meta,
		ArtifactKey: key,
		Email:       s.Mailer.Send(meta.Email, meta.Name, attachment, attachmentName),
	}
	if avg, ok := aggregate.OverallAverage(sections); ok {
		out.Total = report.FormatScore(avg)
	}
	return out, nil
}

func (s *Service) readArtifact(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
