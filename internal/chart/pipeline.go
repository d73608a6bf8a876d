package chart

import (
	"context"
	"errors"
	"log"
)

// ChartModel is the assembled chart state for one load generation. Signals
// are already in their final angular order; Positions holds the provisional
// pass until the rendering surface reports measurements and finalizes.
type ChartModel struct {
	Generation uint64                `json:"generation"`
	Signals    []Signal              `json:"signals"`
	Labels     []string              `json:"labels"`
	Positions  map[int]LabelPosition `json:"positions"`
	Wedges     []Wedge               `json:"wedges"`
}

// Pipeline orchestrates fetching, normalization, ordering, and layout.
type Pipeline struct {
	Sources *SourceRegistry
	Engine  *Engine
}

// NewPipeline constructs a new Pipeline.
func NewPipeline(sources *SourceRegistry, engine *Engine) (*Pipeline, error) {
	if sources == nil {
		return nil, errors.New("pipeline requires sources")
	}
	if engine == nil {
		return nil, errors.New("pipeline requires a layout engine")
	}
	return &Pipeline{Sources: sources, Engine: engine}, nil
}

// Run executes the end-to-end flow: fetch raw records, normalize them into
// signals, fix the angular order, compute the provisional layout, and derive
// the domain wedges. A fetch failure surfaces as an error and leaves the
// engine's previous generation untouched.
func (p *Pipeline) Run(ctx context.Context) (*ChartModel, error) {
	records, err := p.Sources.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	signals := SortSignals(NormalizeRecords(records))
	log.Printf("chart: laid out %d signals from %d records", len(signals), len(records))

	generation, positions := p.Engine.RequestLayout(signals)

	return &ChartModel{
		Generation: generation,
		Signals:    signals,
		Labels:     p.Engine.Labels(),
		Positions:  positions,
		Wedges:     BuildWedges(p.Engine.CenterX, p.Engine.CenterY, signals),
	}, nil
}
