package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockAdapter implements driven.ToolAdapter for testing.
type mockAdapter struct {
	name string
	// result returned for every call, unless fn is set.
	result domain.ToolResult
	// fn, when set, computes the result from the request.
	fn func(req domain.ToolRequest) domain.ToolResult
	// delay simulates a slow backend.
	delay time.Duration
	// calls records every request received.
	calls []domain.ToolRequest
}

func (m *mockAdapter) Name() string { return m.name }

func (m *mockAdapter) Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult {
	m.calls = append(m.calls, req)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return domain.ErrorResult(ctx.Err().Error())
		}
	}
	if m.fn != nil {
		return m.fn(req)
	}
	return m.result
}

// mockReporter implements driven.ReportComposer for testing.
type mockReporter struct {
	report string
	err    error
	called int
}

func (m *mockReporter) Compose(_ context.Context, _ domain.Candidate) (string, error) {
	m.called++
	if m.err != nil {
		return "", m.err
	}
	if m.report != "" {
		return m.report, nil
	}
	return "# report", nil
}

func newTestResolver(reporter *mockReporter, adapters ...*mockAdapter) *Resolver {
	list := make([]driven.ToolAdapter, len(adapters))
	for i, a := range adapters {
		list[i] = a
	}
	return NewResolver(ResolverConfig{}, NewConsolidator(), reporter, list...)
}

// --- Scenario tests ---

// Scenario A: text query geocodes, the parcel lookup matches, the
// archive is empty - the parcel record wins.
func TestResolve_TextPropertyWins(t *testing.T) {
	geocode := &mockAdapter{
		name: domain.SourceGeocode,
		result: domain.OKResult([]domain.Candidate{{
			Title:  domain.Ptr("123 Main St, Cleveland"),
			Lat:    domain.Ptr(41.4993),
			Lon:    domain.Ptr(-81.6944),
			Source: domain.SourceGeocode,
		}}, nil),
	}
	property := &mockAdapter{
		name: domain.SourceProperty,
		result: domain.OKResult([]domain.Candidate{{
			ID:      domain.Ptr("104-23-001"),
			Address: domain.Ptr("123 Main St"),
			Source:  domain.SourceProperty,
		}}, nil),
	}
	archive := &mockAdapter{name: domain.SourceArchive, result: domain.EmptyResult(nil)}
	reporter := &mockReporter{}

	r := newTestResolver(reporter, geocode, property, archive)
	res, err := r.Resolve(context.Background(), domain.TextQuery("123 Main St"))
	require.NoError(t, err)

	require.True(t, res.Matched())
	assert.Equal(t, domain.SourceProperty, res.Candidate.Source)
	assert.Equal(t, "123 Main St", *res.Candidate.Address)

	// The parcel lookup received the geocoded point.
	require.Len(t, property.calls, 1)
	assert.Equal(t, 41.4993, *property.calls[0].Lat)

	// Report composed exactly once, after the winner was selected.
	assert.Equal(t, 1, reporter.called)
	assert.Equal(t, "# report", res.Report)
}

// Scenario B: image recognition hits id "42", the archive has a record
// for it - the archive record wins over the raw index match.
func TestResolve_ImageArchiveWins(t *testing.T) {
	ocr := &mockAdapter{
		name:   domain.SourceOCR,
		result: domain.ToolResult{Status: domain.ToolStatusOK, Meta: map[string]string{"text": "EST 1890"}},
	}
	vision := &mockAdapter{
		name: domain.SourceImageIndex,
		result: domain.OKResult([]domain.Candidate{{
			ID:     domain.Ptr("42"),
			Source: domain.SourceImageIndex,
			Score:  domain.Ptr(0.99),
		}}, map[string]string{"distance": "0.01"}),
	}
	archive := &mockAdapter{
		name: domain.SourceArchive,
		fn: func(req domain.ToolRequest) domain.ToolResult {
			if req.Query != "42" {
				return domain.EmptyResult(nil)
			}
			return domain.OKResult([]domain.Candidate{{
				ID:     domain.Ptr("42"),
				Title:  domain.Ptr("Society for Savings Building"),
				Source: domain.SourceArchive,
			}}, nil)
		},
	}
	reporter := &mockReporter{report: "# Society for Savings Building"}

	r := newTestResolver(reporter, ocr, vision, archive)
	res, err := r.Resolve(context.Background(), domain.ImageQuery("/tmp/facade.jpg"))
	require.NoError(t, err)

	require.True(t, res.Matched())
	assert.Equal(t, domain.SourceArchive, res.Candidate.Source)
	assert.Equal(t, "Society for Savings Building", *res.Candidate.Title)
	assert.Equal(t, "# Society for Savings Building", res.Report)
}

// Scenario B variant: archive has nothing for the recognised id - the
// recognition result itself is the fallback winner.
func TestResolve_ImageIndexFallback(t *testing.T) {
	ocr := &mockAdapter{name: domain.SourceOCR, result: domain.EmptyResult(nil)}
	vision := &mockAdapter{
		name: domain.SourceImageIndex,
		result: domain.OKResult([]domain.Candidate{{
			ID:     domain.Ptr("42"),
			Title:  domain.Ptr("ref photo 42"),
			Source: domain.SourceImageIndex,
		}}, nil),
	}
	archive := &mockAdapter{name: domain.SourceArchive, result: domain.EmptyResult(nil)}

	r := newTestResolver(&mockReporter{}, ocr, vision, archive)
	res, err := r.Resolve(context.Background(), domain.ImageQuery("/tmp/facade.jpg"))
	require.NoError(t, err)

	require.True(t, res.Matched())
	assert.Equal(t, domain.SourceImageIndex, res.Candidate.Source)
	require.Len(t, archive.calls, 1)
	assert.Equal(t, "42", archive.calls[0].Query)
}

// Scenario C: location query matching a parcel exactly.
func TestResolve_Location(t *testing.T) {
	property := &mockAdapter{
		name: domain.SourceProperty,
		fn: func(req domain.ToolRequest) domain.ToolResult {
			return domain.OKResult([]domain.Candidate{{
				ID:      domain.Ptr("101-30-055"),
				Address: domain.Ptr("2000 Ontario St"),
				Lat:     req.Lat,
				Lon:     req.Lon,
				Source:  domain.SourceProperty,
			}}, map[string]string{"distance_m": "0"})
		},
	}

	r := newTestResolver(&mockReporter{}, property)
	res, err := r.Resolve(context.Background(), domain.LocationQuery(41.5089, -81.6954))
	require.NoError(t, err)

	require.True(t, res.Matched())
	assert.Equal(t, domain.SourceProperty, res.Candidate.Source)
	assert.Equal(t, "0", res.Meta["property.distance_m"])
}

// Scenario D: geocode and archive both come back empty.
func TestResolve_TextNoMatch(t *testing.T) {
	geocode := &mockAdapter{name: domain.SourceGeocode, result: domain.EmptyResult(nil)}
	archive := &mockAdapter{name: domain.SourceArchive, result: domain.EmptyResult(nil)}
	property := &mockAdapter{name: domain.SourceProperty, result: domain.EmptyResult(nil)}
	reporter := &mockReporter{}

	r := newTestResolver(reporter, geocode, archive, property)
	res, err := r.Resolve(context.Background(), domain.TextQuery("nowhere at all"))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNoMatch, res.Status)
	assert.Nil(t, res.Candidate)

	// Geocode never produced a point, so the parcel lookup was skipped.
	assert.Empty(t, property.calls)
	assert.Equal(t, "no geocode result", res.Meta["property.reason"])

	// No winner, no report.
	assert.Zero(t, reporter.called)
}

// Scenario E: recognition empty, OCR extracted text - no match, but the
// OCR text is surfaced in diagnostic metadata.
func TestResolve_ImageNoMatchKeepsOCRText(t *testing.T) {
	ocr := &mockAdapter{
		name:   domain.SourceOCR,
		result: domain.ToolResult{Status: domain.ToolStatusOK, Meta: map[string]string{"text": "CUYAHOGA BUILDING"}},
	}
	vision := &mockAdapter{name: domain.SourceImageIndex, result: domain.EmptyResult(nil)}
	archive := &mockAdapter{name: domain.SourceArchive, result: domain.EmptyResult(nil)}

	r := newTestResolver(&mockReporter{}, ocr, vision, archive)
	res, err := r.Resolve(context.Background(), domain.ImageQuery("/tmp/sign.jpg"))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNoMatch, res.Status)
	assert.Equal(t, "CUYAHOGA BUILDING", res.Meta["ocr.text"])

	// Archive was never queried without a recognition hit.
	assert.Empty(t, archive.calls)
}

// --- Error handling ---

func TestResolve_InvalidModality(t *testing.T) {
	geocode := &mockAdapter{name: domain.SourceGeocode}

	r := newTestResolver(&mockReporter{}, geocode)
	_, err := r.Resolve(context.Background(), domain.Query{Modality: "audio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// No adapters invoked for an invalid query.
	assert.Empty(t, geocode.calls)
}

func TestResolve_AdapterTimeoutDegrades(t *testing.T) {
	// Archive hangs past the timeout; the property chain still wins.
	geocode := &mockAdapter{
		name: domain.SourceGeocode,
		result: domain.OKResult([]domain.Candidate{{
			Lat: domain.Ptr(41.5), Lon: domain.Ptr(-81.7), Source: domain.SourceGeocode,
		}}, nil),
	}
	property := &mockAdapter{
		name: domain.SourceProperty,
		result: domain.OKResult([]domain.Candidate{{
			Address: domain.Ptr("55 Public Square"), Source: domain.SourceProperty,
		}}, nil),
	}
	archive := &mockAdapter{
		name:   domain.SourceArchive,
		delay:  time.Second,
		result: domain.OKResult([]domain.Candidate{{Source: domain.SourceArchive}}, nil),
	}

	r := NewResolver(
		ResolverConfig{AdapterTimeout: 50 * time.Millisecond},
		NewConsolidator(), &mockReporter{},
		geocode, property, archive,
	)

	res, err := r.Resolve(context.Background(), domain.TextQuery("55 Public Square"))
	require.NoError(t, err)

	require.True(t, res.Matched())
	assert.Equal(t, domain.SourceProperty, res.Candidate.Source)
	assert.Equal(t, "error", res.Meta["archive.status"])
}

func TestResolve_UnregisteredAdapterIsErrorResult(t *testing.T) {
	// Only the property adapter is registered for a location query
	// against a resolver missing it entirely.
	r := newTestResolver(&mockReporter{})
	res, err := r.Resolve(context.Background(), domain.LocationQuery(41.5, -81.7))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNoMatch, res.Status)
	assert.Equal(t, "error", res.Meta["property.status"])
}

func TestResolve_ReporterFailureKeepsMatch(t *testing.T) {
	property := &mockAdapter{
		name: domain.SourceProperty,
		result: domain.OKResult([]domain.Candidate{{
			Address: domain.Ptr("1 Key Plaza"), Source: domain.SourceProperty,
		}}, nil),
	}
	reporter := &mockReporter{err: context.DeadlineExceeded}

	r := newTestResolver(reporter, property)
	res, err := r.Resolve(context.Background(), domain.LocationQuery(41.5, -81.7))
	require.NoError(t, err)

	require.True(t, res.Matched())
	assert.Empty(t, res.Report)
	assert.NotEmpty(t, res.Meta["report.error"])
}

func TestResolve_MetaCarriesRequestID(t *testing.T) {
	property := &mockAdapter{name: domain.SourceProperty, result: domain.EmptyResult(nil)}

	r := newTestResolver(&mockReporter{}, property)
	res, err := r.Resolve(context.Background(), domain.LocationQuery(41.5, -81.7))
	require.NoError(t, err)

	assert.NotEmpty(t, res.Meta["request_id"])
	assert.Equal(t, "location", res.Meta["modality"])
}
