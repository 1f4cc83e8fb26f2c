// Package pipeline turns a batch of raw addresses into scored row
// results: normalize, geocode (cached per run), distance from the
// reference point, score.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/campus-ops/distance-cli/internal/geo"
	"github.com/campus-ops/distance-cli/internal/model"
	"github.com/campus-ops/distance-cli/pkg/geocode"
)

// ErrMissingCredential aborts a run before any row is processed.
var ErrMissingCredential = eris.New("pipeline: geocoding credential missing")

// errMsgNoAddress is recorded on rows whose address normalizes to empty.
const errMsgNoAddress = "no address information"

// Pipeline drives the per-row scoring sequence over a batch. Rows are
// processed one at a time, in input order; row failures are recorded on
// the row and never abort the batch.
type Pipeline struct {
	geocoder  geocode.Client
	reference geo.Point
	progress  ProgressSink
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress sets the sink receiving per-row progress events.
func WithProgress(sink ProgressSink) Option {
	return func(p *Pipeline) {
		p.progress = sink
	}
}

// New creates a Pipeline measuring distance from the given reference point.
func New(client geocode.Client, reference geo.Point, opts ...Option) *Pipeline {
	p := &Pipeline{
		geocoder:  client,
		reference: reference,
		progress:  NopSink{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every address in order and returns one RowResult per
// input row. It fails fast with ErrMissingCredential before emitting any
// progress event if the geocoder has no credential. The geocode cache
// lives and dies with this call. Cancellation is honored at row
// boundaries; an aborted run returns no partial results.
func (p *Pipeline) Run(ctx context.Context, addresses []string) (results []model.RowResult, err error) {
	if !p.geocoder.Credentialed() {
		return nil, ErrMissingCredential
	}

	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = eris.Errorf("pipeline: run aborted: %v", r)
		}
	}()

	log := zap.L().With(
		zap.String("run_id", uuid.NewString()),
		zap.Int("rows", len(addresses)),
	)
	log.Info("scoring run started")
	start := time.Now()

	cache := geocode.NewCache()
	results = make([]model.RowResult, 0, len(addresses))
	var errored int

	for i, raw := range addresses {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, eris.Wrap(ctxErr, "pipeline: run aborted")
		}

		res := p.processRow(ctx, i, raw, cache)
		if res.Failed() {
			errored++
		}
		results = append(results, res)
		p.progress.Progress(i+1, len(addresses))
	}

	// Presentation rounding happens after every score is fixed.
	for i := range results {
		results[i].Round()
	}

	log.Info("scoring run complete",
		zap.Int("errored", errored),
		zap.Int("distinct_addresses", cache.Len()),
		zap.Int("cache_hits", cache.Hits()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}

// processRow runs one row through normalize → geocode → distance →
// score, short-circuiting on the first failure with the row scored zero.
func (p *Pipeline) processRow(ctx context.Context, index int, raw string, cache *geocode.Cache) model.RowResult {
	res := model.RowResult{Index: index, RawAddress: raw}

	address := NormalizeAddress(raw)
	if address == "" {
		res.ErrorMessage = errMsgNoAddress
		return res
	}

	out := p.geocoder.Geocode(ctx, address, cache)
	if !out.Resolved {
		res.ErrorMessage = out.Detail
		return res
	}

	lat, lon := out.Latitude, out.Longitude
	res.Latitude = &lat
	res.Longitude = &lon

	distance := geo.HaversineKM(p.reference, geo.Point{Lat: lat, Lon: lon})
	res.DistanceKM = &distance
	res.Score = ScoreForDistance(distance)
	return res
}
