package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/config"
	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/gridgraph"
	"github.com/katalvlaran/spanviz/mst"
	"github.com/katalvlaran/spanviz/progress"
)

// ErrBusy is returned when a run is started under a name that is already
// running on this Orchestrator.
var ErrBusy = errors.New("orchestrator: algorithm already running")

// Report is the outcome of Run.
type Report struct {
	// Graph is the generated input, shared read-only by every run.
	Graph *core.Graph

	// Regions counts the contiguous areas of the shape mask. More than one
	// orthogonal region means the graph cannot be connected.
	Regions gridgraph.Regions

	// Results holds one entry per planned algorithm, in plan order.
	Results []mst.Result
}

// Orchestrator owns the set of active runs. It is safe for concurrent use.
type Orchestrator struct {
	log       *zap.Logger
	sinks     []SinkFactory
	scheduler SchedulerFactory
	generate  []builder.BuilderOption

	mu     sync.Mutex
	active map[string]*control.Controller
}

// New returns an Orchestrator logging to log (zap.NewNop when nil).
func New(log *zap.Logger, opts ...Option) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	o := &Orchestrator{
		log:    log,
		active: make(map[string]*control.Controller),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Plan expands algorithm into the catalog names to run: "both" becomes
// prim and kruskal, anything else must be a catalog key.
func Plan(algorithm string) ([]string, error) {
	if algorithm == mst.Both {
		return []string{"prim", "kruskal"}, nil
	}
	if _, err := mst.Lookup(algorithm); err != nil {
		return nil, fmt.Errorf("Plan: %w", err)
	}

	return []string{algorithm}, nil
}

// Generate builds the graph described by cfg. A zero seed means a
// time-seeded generator; an empty weight profile keeps the default draw.
func (o *Orchestrator) Generate(cfg config.Config) (*core.Graph, error) {
	g, _, err := o.build(cfg)

	return g, err
}

// Layout is Generate plus the region count of the shape mask.
func (o *Orchestrator) Layout(cfg config.Config) (*core.Graph, gridgraph.Regions, error) {
	return o.build(cfg)
}

func (o *Orchestrator) build(cfg config.Config) (*core.Graph, gridgraph.Regions, error) {
	const method = "Generate"
	shape, err := core.ParseShape(cfg.Shape)
	if err != nil {
		return nil, gridgraph.Regions{}, fmt.Errorf("%s: %w", method, err)
	}

	opts := []builder.BuilderOption{builder.WithConnectionChance(cfg.ConnectionChance)}
	if cfg.Seed != 0 {
		opts = append(opts, builder.WithSeed(cfg.Seed))
	}
	if cfg.Weights != "" {
		weights, err := builder.WeightProfile(cfg.Weights)
		if err != nil {
			return nil, gridgraph.Regions{}, fmt.Errorf("%s: %w", method, err)
		}
		opts = append(opts, weights)
	}
	opts = append(opts, o.generate...)

	g, err := builder.Generate(cfg.Size, shape, opts...)
	if err != nil {
		return nil, gridgraph.Regions{}, fmt.Errorf("%s: %w", method, err)
	}
	regions, err := gridgraph.CountRegions(cfg.Size, shape)
	if err != nil {
		return nil, gridgraph.Regions{}, fmt.Errorf("%s: %w", method, err)
	}
	o.log.Info("graph generated",
		zap.String("shape", shape.String()),
		zap.Int("size", cfg.Size),
		zap.String("weights", cfg.Weights),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("components", g.Components()),
		zap.Int("regions", regions.Orthogonal),
	)
	if regions.Split() {
		o.log.Warn("shape mask is split; the result is a spanning forest",
			zap.Int("regions", regions.Orthogonal),
			zap.Int("diagonal_regions", regions.Diagonal),
		)
	}

	return g, regions, nil
}

// Run generates a graph from cfg and runs the planned algorithms over it.
func (o *Orchestrator) Run(ctx context.Context, cfg config.Config) (Report, error) {
	g, regions, err := o.build(cfg)
	if err != nil {
		return Report{}, err
	}
	results, err := o.RunGraph(ctx, g, cfg.Algorithm, cfg.Speed)

	return Report{Graph: g, Regions: regions, Results: results}, err
}

// RunGraph runs the planned algorithms over g concurrently and waits for
// all of them. Stopped runs are results, not errors; the first real error
// cancels the remaining runs.
func (o *Orchestrator) RunGraph(ctx context.Context, g *core.Graph, algorithm string, speed float64) ([]mst.Result, error) {
	names, err := Plan(algorithm)
	if err != nil {
		return nil, err
	}

	// 1. Register one controller per run before any starts, so control
	//    calls issued right after RunGraph begins reach every run.
	ctls, err := o.register(names, speed)
	if err != nil {
		return nil, err
	}
	defer o.unregister(names)

	// 2. One goroutine per run.
	results := make([]mst.Result, len(names))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			res, err := o.runOne(egCtx, g, name, ctls[i])
			results[i] = res

			return err
		})
	}
	err = eg.Wait()

	return results, err
}

// runOne executes a single catalog entry with its sinks and logs the
// outcome.
func (o *Orchestrator) runOne(ctx context.Context, g *core.Graph, name string, ctl *control.Controller) (mst.Result, error) {
	algo, err := mst.Lookup(name)
	if err != nil {
		return mst.Result{}, err
	}
	info, _ := mst.Describe(name)

	sinks := make([]progress.Sink, 0, len(o.sinks))
	for _, f := range o.sinks {
		sinks = append(sinks, f(name))
	}

	log := o.log.With(zap.String("algorithm", name), zap.String("engine", info.Engine))
	log.Debug("run starting", zap.Bool("approximate", info.Approximate), zap.Bool("alias", info.Alias))
	started := time.Now()

	res, err := algo(ctx, g, progress.Multi(sinks...), ctl)
	if err != nil {
		log.Error("run failed", zap.Error(err))

		return res, err
	}
	log.Info("run finished",
		zap.Stringer("state", res.State),
		zap.Int("edges_added", res.EdgesAdded),
		zap.Float64("total_weight", res.TotalWeight),
		zap.Bool("spanning", res.Spanning(g.NodeCount())),
		zap.Duration("elapsed", time.Since(started)),
	)

	if info.Verify && res.State == control.Completed {
		comps, verr := mst.Verify(g, res.Edges)
		if verr != nil {
			log.Warn("verification failed", zap.Error(verr))
		} else {
			log.Info("verification passed", zap.Int("components", comps))
		}
	}

	return res, nil
}

func (o *Orchestrator) register(names []string, speed float64) ([]*control.Controller, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, name := range names {
		if _, busy := o.active[name]; busy {
			return nil, fmt.Errorf("RunGraph %q: %w", name, ErrBusy)
		}
	}

	ctls := make([]*control.Controller, len(names))
	for i, name := range names {
		opts := make([]control.Option, 0, 2)
		if speed > 0 && speed <= 1 {
			opts = append(opts, control.WithSpeed(speed))
		}
		if o.scheduler != nil {
			opts = append(opts, control.WithScheduler(o.scheduler()))
		}
		ctls[i] = control.New(opts...)
		o.active[name] = ctls[i]
	}

	return ctls, nil
}

func (o *Orchestrator) unregister(names []string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, name := range names {
		delete(o.active, name)
	}
}

// each calls fn on every active controller.
func (o *Orchestrator) each(fn func(*control.Controller)) {
	o.mu.Lock()
	ctls := make([]*control.Controller, 0, len(o.active))
	for _, c := range o.active {
		ctls = append(ctls, c)
	}
	o.mu.Unlock()

	for _, c := range ctls {
		fn(c)
	}
}

// Pause pauses every active run.
func (o *Orchestrator) Pause() { o.each((*control.Controller).Pause) }

// Resume resumes every paused run.
func (o *Orchestrator) Resume() { o.each((*control.Controller).Resume) }

// Stop stops every active run.
func (o *Orchestrator) Stop() { o.each((*control.Controller).Stop) }

// SetSpeed changes the pacing of every active run; invalid values are
// ignored by the controllers.
func (o *Orchestrator) SetSpeed(speed float64) {
	o.each(func(c *control.Controller) { c.SetSpeed(speed) })
}

// Controller returns the controller of the active run named name.
func (o *Orchestrator) Controller(name string) (*control.Controller, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.active[name]

	return c, ok
}

// Active returns the names of the running algorithms.
func (o *Orchestrator) Active() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]string, 0, len(o.active))
	for name := range o.active {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
