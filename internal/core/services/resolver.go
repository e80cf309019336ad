package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
	"github.com/mpfoley73/landmarks/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driving.Resolver = (*Resolver)(nil)

// defaultAdapterTimeout bounds one adapter call when none is configured.
const defaultAdapterTimeout = 5 * time.Second

// ResolverConfig holds dispatcher configuration, fixed at composition time.
type ResolverConfig struct {
	// AdapterTimeout bounds each individual adapter call.
	AdapterTimeout time.Duration

	// TextPolicy, ImagePolicy and LocationPolicy are the consolidation
	// orders per modality. Zero values fall back to the defaults.
	TextPolicy     domain.ConsolidationPolicy
	ImagePolicy    domain.ConsolidationPolicy
	LocationPolicy domain.ConsolidationPolicy
}

// Resolver dispatches a query to the adapters its modality requires,
// joins their results, and consolidates them into one winner.
//
// Each modality is a small fixed pipeline. Adapter calls with no data
// dependency run concurrently; the consolidation step is the join
// barrier. The resolver never retries - retry policy, if any, belongs
// to individual adapters.
type Resolver struct {
	adapters     map[string]driven.ToolAdapter
	consolidator *Consolidator
	reporter     driven.ReportComposer
	config       ResolverConfig
}

// NewResolver creates a resolver over the given adapters. Adapters are
// looked up by Name; an adapter missing from the set yields an error
// result for that source, not a construction failure.
func NewResolver(
	config ResolverConfig,
	consolidator *Consolidator,
	reporter driven.ReportComposer,
	adapters ...driven.ToolAdapter,
) *Resolver {
	if config.AdapterTimeout <= 0 {
		config.AdapterTimeout = defaultAdapterTimeout
	}
	if len(config.TextPolicy) == 0 {
		config.TextPolicy = domain.DefaultTextPolicy()
	}
	if len(config.ImagePolicy) == 0 {
		config.ImagePolicy = domain.DefaultImagePolicy()
	}
	if len(config.LocationPolicy) == 0 {
		config.LocationPolicy = domain.DefaultLocationPolicy()
	}

	byName := make(map[string]driven.ToolAdapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}

	return &Resolver{
		adapters:     byName,
		consolidator: consolidator,
		reporter:     reporter,
		config:       config,
	}
}

// Resolve dispatches the query's modality pipeline and returns the
// consolidated outcome.
func (r *Resolver) Resolve(ctx context.Context, q domain.Query) (*domain.Resolution, error) {
	logger.Section("Resolution")
	requestID := uuid.NewString()
	logger.Debug("Request %s: modality=%s", requestID, q.Modality)

	if err := q.Validate(); err != nil {
		logger.Warn("Request %s: rejected: %v", requestID, err)
		return nil, fmt.Errorf("validate query: %w", err)
	}

	var results map[string]domain.ToolResult
	var policy domain.ConsolidationPolicy

	switch q.Modality {
	case domain.ModalityText:
		results = r.resolveText(ctx, q)
		policy = r.config.TextPolicy
	case domain.ModalityImage:
		results = r.resolveImage(ctx, q)
		policy = r.config.ImagePolicy
	case domain.ModalityLocation:
		results = r.resolveLocation(ctx, q)
		policy = r.config.LocationPolicy
	default:
		// Validate already rejects this; kept for the exhaustive switch.
		return nil, fmt.Errorf("validate query: %w", domain.ErrInvalidInput)
	}

	winner, meta := r.consolidator.Consolidate(policy, results)
	meta["request_id"] = requestID
	meta["modality"] = q.Modality.String()

	if winner == nil {
		logger.Info("Request %s: no match", requestID)
		return &domain.Resolution{Status: domain.StatusNoMatch, Meta: meta}, nil
	}

	// Report composition runs only after a winner is selected.
	report := r.composeReport(ctx, *winner, meta)

	logger.Info("Request %s: matched %q from %s", requestID, winner.DisplayTitle(), winner.Source)
	return &domain.Resolution{
		Status:    domain.StatusSuccess,
		Candidate: winner,
		Report:    report,
		Meta:      meta,
	}, nil
}

// resolveText runs the text pipeline: geocode feeds the parcel lookup
// (sequential dependency), while the archive search runs concurrently
// with that chain.
func (r *Resolver) resolveText(ctx context.Context, q domain.Query) map[string]domain.ToolResult {
	var geocodeRes, propertyRes, archiveRes domain.ToolResult

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		archiveRes = r.callAdapter(ctx, domain.SourceArchive, domain.ToolRequest{Query: q.Text})
	}()

	go func() {
		defer wg.Done()
		geocodeRes = r.callAdapter(ctx, domain.SourceGeocode, domain.ToolRequest{Query: q.Text})
		if !geocodeRes.HasCandidates() || !geocodeRes.Candidates[0].HasCoordinates() {
			logger.Debug("Text pipeline: no geocode result, skipping parcel lookup")
			propertyRes = domain.EmptyResult(map[string]string{"reason": "no geocode result"})
			return
		}
		top := geocodeRes.Candidates[0]
		logger.Debug("Text pipeline: geocoded to (%.5f, %.5f)", *top.Lat, *top.Lon)
		propertyRes = r.callAdapter(ctx, domain.SourceProperty, domain.ToolRequest{
			Lat: top.Lat,
			Lon: top.Lon,
		})
	}()

	wg.Wait()

	return map[string]domain.ToolResult{
		domain.SourceGeocode:  geocodeRes,
		domain.SourceProperty: propertyRes,
		domain.SourceArchive:  archiveRes,
	}
}

// resolveImage runs the image pipeline: OCR and image recognition are
// independent and run concurrently. A recognition hit chains into an
// archive lookup by the recognised ID; the recognition result itself is
// the fallback. OCR output lands in meta only and never participates
// in candidate selection.
func (r *Resolver) resolveImage(ctx context.Context, q domain.Query) map[string]domain.ToolResult {
	var ocrRes, visionRes, archiveRes domain.ToolResult

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ocrRes = r.callAdapter(ctx, domain.SourceOCR, domain.ToolRequest{ImagePath: q.ImagePath})
	}()

	go func() {
		defer wg.Done()
		visionRes = r.callAdapter(ctx, domain.SourceImageIndex, domain.ToolRequest{ImagePath: q.ImagePath})
		if !visionRes.HasCandidates() || visionRes.Candidates[0].ID == nil {
			logger.Debug("Image pipeline: no recognition hit, skipping archive")
			archiveRes = domain.EmptyResult(map[string]string{"reason": "no recognition result"})
			return
		}
		recognisedID := *visionRes.Candidates[0].ID
		logger.Debug("Image pipeline: recognised %q, checking archive", recognisedID)
		archiveRes = r.callAdapter(ctx, domain.SourceArchive, domain.ToolRequest{Query: recognisedID})
	}()

	wg.Wait()

	return map[string]domain.ToolResult{
		domain.SourceOCR:        ocrRes,
		domain.SourceImageIndex: visionRes,
		domain.SourceArchive:    archiveRes,
	}
}

// resolveLocation runs the location pipeline: a single parcel lookup,
// no dependency chain.
func (r *Resolver) resolveLocation(ctx context.Context, q domain.Query) map[string]domain.ToolResult {
	propertyRes := r.callAdapter(ctx, domain.SourceProperty, domain.ToolRequest{
		Lat: q.Lat,
		Lon: q.Lon,
	})
	return map[string]domain.ToolResult{domain.SourceProperty: propertyRes}
}

// callAdapter runs one adapter call bounded by the per-adapter timeout.
// A stuck or slow adapter is abandoned and mapped to an error result
// for that source only; other in-flight calls are unaffected.
func (r *Resolver) callAdapter(ctx context.Context, name string, req domain.ToolRequest) domain.ToolResult {
	adapter, ok := r.adapters[name]
	if !ok {
		logger.Warn("Adapter %q not registered", name)
		return domain.ErrorResult("adapter not registered: " + name)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.config.AdapterTimeout)
	defer cancel()

	start := time.Now()

	// Buffered so an abandoned call can still deliver and exit.
	ch := make(chan domain.ToolResult, 1)
	go func() {
		ch <- adapter.Call(callCtx, req)
	}()

	select {
	case res := <-ch:
		logger.Debug("Adapter %q: status=%s candidates=%d in %s",
			name, res.Status, len(res.Candidates), time.Since(start).Round(time.Millisecond))
		return res
	case <-callCtx.Done():
		logger.Warn("Adapter %q: abandoned after %s: %v",
			name, time.Since(start).Round(time.Millisecond), callCtx.Err())
		return domain.ErrorResult("adapter timed out: " + name)
	}
}

// composeReport renders the winner's report. A composer failure is
// recorded in meta and leaves the report empty; the match itself stands.
func (r *Resolver) composeReport(ctx context.Context, winner domain.Candidate, meta map[string]string) string {
	if r.reporter == nil {
		return ""
	}
	report, err := r.reporter.Compose(ctx, winner)
	if err != nil {
		logger.Warn("Report composition failed: %v", err)
		meta["report.error"] = err.Error()
		return ""
	}
	return report
}
