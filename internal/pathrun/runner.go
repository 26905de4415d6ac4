// Package pathrun drives one scenario file end to end: it caches loaded
// meshes by path, runs the search engine once per scenario line, and writes
// one output file per scenario, per spec.md §6 / SPEC_FULL.md §6.2.
package pathrun

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/benedrone/sphmesh/internal/mesh"
	"github.com/benedrone/sphmesh/internal/meshfile"
	"github.com/benedrone/sphmesh/internal/search"
)

// Options controls output naming and the band index, per SPEC_FULL.md §6.2.
type Options struct {
	OutDir    string
	Indexed   bool
	BandIndex bool
}

// Runner loads and caches meshes across scenarios within one process run. It
// is not safe for concurrent use; spec.md §5 only ever drives it from a
// single goroutine.
type Runner struct {
	opts   Options
	log    *zap.Logger
	meshes map[string]*mesh.Mesh
}

// New returns a Runner ready to process scenarios.
func New(opts Options, log *zap.Logger) *Runner {
	return &Runner{opts: opts, log: log, meshes: make(map[string]*mesh.Mesh)}
}

// RunScenario loads (or reuses) the scenario's mesh, searches it, and writes
// the output file. idx is this scenario's 0-based position in its file, used
// only for the --indexed naming scheme.
func (r *Runner) RunScenario(s meshfile.Scenario, idx int) error {
	m, err := r.loadMesh(s.MapPath)
	if err != nil {
		return err
	}

	result := search.Run(m, s.Start, s.End, r.log)
	r.log.Info("scenario complete",
		zap.String("map", s.MapPath),
		zap.String("label", s.Label),
		zap.Bool("found", result.Found),
		zap.Float64("length", result.Length),
	)

	return r.writeOutput(s, idx, result)
}

func (r *Runner) loadMesh(path string) (*mesh.Mesh, error) {
	if m, ok := r.meshes[path]; ok {
		return m, nil
	}
	m, err := meshfile.LoadMesh(path)
	if err != nil {
		return nil, err
	}
	if r.opts.BandIndex {
		m.EnableBandIndex()
	}
	r.meshes[path] = m
	return m, nil
}

func (r *Runner) writeOutput(s meshfile.Scenario, idx int, result search.Result) error {
	if err := os.MkdirAll(r.opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("pathrun: create output dir %s: %w", r.opts.OutDir, err)
	}

	name := r.outputName(s, idx)
	f, err := os.Create(filepath.Join(r.opts.OutDir, name))
	if err != nil {
		return fmt.Errorf("pathrun: create output file %s: %w", name, err)
	}
	defer f.Close()

	if !result.Found {
		return nil
	}

	var b strings.Builder
	for _, p := range result.Path {
		fmt.Fprintf(&b, "%g %g\n", p.Lat, p.Lon)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("pathrun: write output file %s: %w", name, err)
	}
	return nil
}

func (r *Runner) outputName(s meshfile.Scenario, idx int) string {
	if r.opts.Indexed {
		return fmt.Sprintf("%d.txt", idx)
	}
	mapName := strings.TrimSuffix(filepath.Base(s.MapPath), filepath.Ext(s.MapPath))
	return fmt.Sprintf("%s_%s.txt", mapName, s.Label)
}
