// Command tablegen precomputes reaction data tables for the fusionrate
// library.
//
// It reads a YAML job file naming the tables to build:
//
//	out: tables
//	workers: 4
//	tables:
//	  - reaction: T+T
//	    kind: cross-section
//	    frame: com
//	    x: [0.5, 1.0, 2.0]    # energies in keV
//	    y: [1.1e-3, 0.4, 9.2] # sigma in millibarns
//	  - reaction: T+T
//	    kind: rate-maxwellian
//	    grid: {lo: 0.2, hi: 100, points: 200}
//
// Cross-section tables are ingested from the job file as given. Rate
// tables are computed by numerical integration over the reaction's
// cross section, so a reaction without a parametric fit needs its
// cross-section table in the same job or already in the output
// directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/PrincetonUniversity/fusionrate"
	"github.com/PrincetonUniversity/fusionrate/internal/reactions"
	"github.com/PrincetonUniversity/fusionrate/internal/tablestore"
	"github.com/PrincetonUniversity/fusionrate/internal/xs"
)

type job struct {
	Out     string      `yaml:"out"`
	Workers int         `yaml:"workers"`
	Tables  []tableSpec `yaml:"tables"`
}

type tableSpec struct {
	Reaction string    `yaml:"reaction"`
	Kind     string    `yaml:"kind"`
	Frame    string    `yaml:"frame"`
	Grid     *gridSpec `yaml:"grid"`
	X        []float64 `yaml:"x"`
	Y        []float64 `yaml:"y"`
}

type gridSpec struct {
	Lo     float64 `yaml:"lo"`
	Hi     float64 `yaml:"hi"`
	Points int     `yaml:"points"`
}

func main() {
	jobPath := flag.String("job", "", "YAML job file naming the tables to build (required)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := zap.NewProductionConfig()
	if *verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*jobPath, logger); err != nil {
		logger.Fatal("tablegen failed", zap.Error(err))
	}
}

func run(jobPath string, logger *zap.Logger) error {
	j, err := loadJob(jobPath)
	if err != nil {
		return err
	}
	store := tablestore.NewFileStore(j.Out)

	// Ingest cross sections first so rate jobs for table-backed
	// reactions can integrate over them.
	var rates []tableSpec
	for _, spec := range j.Tables {
		switch tablestore.Kind(spec.Kind) {
		case tablestore.KindCrossSection:
			if err := ingestCrossSection(store, spec, logger); err != nil {
				return err
			}
		case tablestore.KindRateMaxwellian:
			rates = append(rates, spec)
		default:
			return fmt.Errorf("table %q: unknown kind %q", spec.Reaction, spec.Kind)
		}
	}

	for _, spec := range rates {
		if err := buildRateTable(store, spec, j.Workers, logger); err != nil {
			return err
		}
	}
	return nil
}

func loadJob(path string) (job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return job{}, err
	}

	var j job
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return job{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if j.Out == "" {
		return job{}, fmt.Errorf("%s: no output directory", path)
	}
	if len(j.Tables) == 0 {
		return job{}, fmt.Errorf("%s: no tables to build", path)
	}
	if j.Workers < 1 {
		j.Workers = runtime.GOMAXPROCS(0)
	}
	return j, nil
}

// ingestCrossSection stores a cross-section table supplied in the job
// file, after checking the library would accept it back.
func ingestCrossSection(store *tablestore.FileStore, spec tableSpec, logger *zap.Logger) error {
	core, err := reactions.New(spec.Reaction)
	if err != nil {
		return err
	}
	if spec.Grid != nil {
		return fmt.Errorf("table %q: cross sections are ingested from x/y, not computed on a grid", spec.Reaction)
	}

	frame := tablestore.FrameCOM
	switch spec.Frame {
	case "", string(tablestore.FrameCOM):
	case string(tablestore.FrameBeam):
		frame = tablestore.FrameBeam
	default:
		return fmt.Errorf("table %q: unknown frame %q", spec.Reaction, spec.Frame)
	}

	if _, err := xs.NewTable(spec.X, spec.Y); err != nil {
		return fmt.Errorf("table %q: %w", spec.Reaction, err)
	}

	if err := store.Save(tablestore.Table{
		Reaction: string(core.Name()),
		Kind:     tablestore.KindCrossSection,
		Frame:    frame,
		X:        spec.X,
		Y:        spec.Y,
	}); err != nil {
		return err
	}
	logger.Info("cross-section table stored",
		zap.String("reaction", string(core.Name())),
		zap.Int("points", len(spec.X)),
		zap.String("frame", string(frame)))
	return nil
}

// buildRateTable integrates the Maxwellian rate coefficient over a
// log-spaced temperature grid, splitting the grid across workers, and
// stores the result.
func buildRateTable(store *tablestore.FileStore, spec tableSpec, workers int, logger *zap.Logger) error {
	if spec.Grid == nil {
		return fmt.Errorf("table %q: rate tables need a grid", spec.Reaction)
	}
	if spec.Grid.Lo <= 0 || spec.Grid.Hi <= spec.Grid.Lo {
		return fmt.Errorf("table %q: grid wants 0 < lo < hi", spec.Reaction)
	}
	if spec.Grid.Points < 2 {
		return fmt.Errorf("table %q: grid wants at least 2 points", spec.Reaction)
	}

	r, err := fusionrate.NewWithConfig(spec.Reaction, fusionrate.Config{
		TableDir: store.Dir(),
		Scheme:   fusionrate.SchemeIntegration,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	grid := floats.LogSpan(make([]float64, spec.Grid.Points), spec.Grid.Lo, spec.Grid.Hi)
	chunk := (len(grid) + workers - 1) / workers
	logger.Debug("integrating rate coefficients",
		zap.String("reaction", r.Name()),
		zap.Int("points", len(grid)),
		zap.Int("chunk", chunk))

	// Each chunk fills a disjoint segment; Reaction is concurrency-safe.
	values := make([]float64, len(grid))
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(grid); lo += chunk {
		lo := lo // per-iteration copy; go.mod pins go 1.21 semantics
		hi := min(lo+chunk, len(grid))
		g.Go(func() error {
			copy(values[lo:hi], r.RateCoefficients(grid[lo:hi]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := store.Save(tablestore.Table{
		Reaction: r.Name(),
		Kind:     tablestore.KindRateMaxwellian,
		X:        grid,
		Y:        values,
	}); err != nil {
		return err
	}
	logger.Info("rate table stored",
		zap.String("reaction", r.Name()),
		zap.Int("points", len(grid)),
		zap.Float64("lo_kev", spec.Grid.Lo),
		zap.Float64("hi_kev", spec.Grid.Hi))
	return nil
}
