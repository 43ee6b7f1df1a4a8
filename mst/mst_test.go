package mst_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/mst"
	"github.com/katalvlaran/spanviz/progress"
)

// fast returns a controller that never sleeps between steps.
func fast() *control.Controller {
	return control.New(control.WithScheduler(control.ImmediateScheduler{}))
}

// lattice generates a fully connected lattice graph for the given seed.
func lattice(t *testing.T, size int, shape core.Shape, seed int64, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	opts = append([]builder.BuilderOption{builder.WithSeed(seed), builder.WithConnectionChance(1)}, opts...)
	g, err := builder.Generate(size, shape, opts...)
	require.NoError(t, err)
	require.True(t, g.IsConnected())

	return g
}

// pathScenario is the four-node cycle 0-1(1), 1-2(5), 2-3(2), 0-3(10).
func pathScenario(t *testing.T) *core.Graph {
	t.Helper()
	nodes := []core.Node{{ID: 0}, {ID: 1, Col: 1}, {ID: 2, Col: 2}, {ID: 3, Col: 3}}
	g, err := builder.FromEdges(nodes, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 2},
		{From: 0, To: 3, Weight: 10},
	})
	require.NoError(t, err)

	return g
}

// twoTriangles is two disjoint triangles plus the isolated node 6.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, 7)
	for i := range nodes {
		nodes[i] = core.Node{ID: i, Row: i / 3, Col: i % 3}
	}
	g, err := builder.FromEdges(nodes, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 2},
		{From: 3, To: 4, Weight: 7},
		{From: 4, To: 5, Weight: 3},
		{From: 3, To: 5, Weight: 3},
	})
	require.NoError(t, err)

	return g
}

// TestCatalog checks names, aliases, and lookups.
func TestCatalog(t *testing.T) {
	names := mst.Names()
	assert.Len(t, names, 17)
	assert.IsNonDecreasing(t, names)
	for _, name := range names {
		algo, err := mst.Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, algo)
		info, err := mst.Describe(name)
		require.NoError(t, err)
		assert.Equal(t, name, info.Name)
		assert.NotEmpty(t, info.Engine)
		assert.NotEmpty(t, info.Summary)
	}

	_, err := mst.Lookup(" Prim ")
	assert.NoError(t, err)
	_, err = mst.Lookup("both")
	assert.ErrorIs(t, err, mst.ErrUnknownAlgorithm)
	_, err = mst.Describe("dijkstra")
	assert.ErrorIs(t, err, mst.ErrUnknownAlgorithm)

	yao, _ := mst.Describe("yao")
	assert.True(t, yao.Approximate)
	assert.Equal(t, mst.OrderAngular, yao.Order)
	tv, _ := mst.Describe("tarjan-verification")
	assert.True(t, tv.Verify)
	assert.True(t, tv.Alias)
	chazelle, _ := mst.Describe("chazelle")
	assert.Equal(t, mst.EnginePrim, chazelle.Engine)
	ct, _ := mst.Describe("cheriton-tarjan")
	assert.Equal(t, mst.EngineBoruvka, ct.Engine)
	assert.False(t, ct.Alias)
}

// TestAlgorithms_MatchReferenceWeight runs every exact entry on several
// connected graphs, including tie-heavy integer weights.
func TestAlgorithms_MatchReferenceWeight(t *testing.T) {
	graphs := map[string]*core.Graph{
		"grid6":         lattice(t, 6, core.ShapeGrid, 1),
		"grid9":         lattice(t, 9, core.ShapeGrid, 2),
		"diamond7":      lattice(t, 7, core.ShapeDiamond, 3),
		"grid7-ties":    lattice(t, 7, core.ShapeGrid, 4, builder.WithIntegerWeight(1, 4)),
		"grid5-uniform": lattice(t, 5, core.ShapeGrid, 5, builder.WithConstantWeight(2)),
	}

	for gname, g := range graphs {
		want := mst.ReferenceWeight(g)
		for _, name := range mst.Names() {
			info, _ := mst.Describe(name)
			t.Run(gname+"/"+name, func(t *testing.T) {
				rec := progress.NewRecorder()
				res, err := mst.Run(context.Background(), name, g, rec, fast())
				require.NoError(t, err)

				assert.Equal(t, control.Completed, res.State)
				assert.Equal(t, name, res.Algorithm)
				assert.Equal(t, info.Engine, res.Engine)
				assert.True(t, res.Spanning(g.NodeCount()))
				assert.Len(t, res.Edges, res.EdgesAdded)

				comps, err := mst.Verify(g, res.Edges)
				require.NoError(t, err)
				assert.Equal(t, 1, comps)

				if !info.Approximate {
					assert.InDelta(t, want, res.TotalWeight, 1e-6)
				} else {
					assert.GreaterOrEqual(t, res.TotalWeight, want-1e-6)
				}

				final, fired := rec.Final()
				assert.Equal(t, control.Completed, final)
				assert.Equal(t, 1, fired)
				for _, k := range res.Keys() {
					assert.True(t, rec.InTree(k), k.String())
				}
			})
		}
	}
}

// TestKruskal_Scenario walks the four-edge cycle step by step.
func TestKruskal_Scenario(t *testing.T) {
	g := pathScenario(t)
	rec := progress.NewRecorder()

	res, err := mst.Run(context.Background(), "kruskal", g, rec, fast())
	require.NoError(t, err)

	assert.Equal(t, []core.EdgeKey{core.KeyOf(0, 1), core.KeyOf(2, 3), core.KeyOf(1, 2)}, res.Keys())
	assert.Equal(t, 8.0, res.TotalWeight)
	assert.Equal(t, 3, res.EdgesAdded)
	assert.Equal(t, control.Completed, res.State)

	require.Len(t, rec.Rejected(), 1)
	assert.Equal(t, core.KeyOf(0, 3), rec.Rejected()[0].Key())
	added, weight := rec.Stats()
	assert.Equal(t, 3, added)
	assert.Equal(t, 8.0, weight)

	// Stats follow every accepted edge.
	kinds := rec.Kinds()
	for i, k := range kinds {
		if k == progress.EdgeAccepted {
			require.Less(t, i+1, len(kinds))
			assert.Equal(t, progress.StatsChanged, kinds[i+1])
		}
	}
	assert.Equal(t, progress.RunStarted, kinds[0])
	assert.Equal(t, progress.RunFinished, kinds[len(kinds)-1])
}

// TestDisconnected_Forest checks that every engine degrades to a forest.
func TestDisconnected_Forest(t *testing.T) {
	g := twoTriangles(t)
	want := mst.ReferenceWeight(g)
	require.Equal(t, 3, g.Components())

	for _, name := range mst.Names() {
		t.Run(name, func(t *testing.T) {
			res, err := mst.Run(context.Background(), name, g, nil, fast())
			require.NoError(t, err)

			assert.Equal(t, control.Completed, res.State)
			assert.Equal(t, 4, res.EdgesAdded)
			assert.False(t, res.Spanning(g.NodeCount()))
			comps, err := mst.Verify(g, res.Edges)
			require.NoError(t, err)
			assert.Equal(t, 3, comps)
			if !res.Approximate {
				assert.InDelta(t, want, res.TotalWeight, 1e-9)
			}
		})
	}
}

// TestSingleNode completes with no edges.
func TestSingleNode(t *testing.T) {
	g, err := builder.FromEdges([]core.Node{{ID: 0}}, nil)
	require.NoError(t, err)

	for _, name := range mst.Names() {
		res, err := mst.Run(context.Background(), name, g, nil, fast())
		require.NoError(t, err, name)
		assert.Equal(t, control.Completed, res.State, name)
		assert.Zero(t, res.EdgesAdded, name)
		assert.True(t, res.Spanning(1), name)
	}
}

// TestPauseResume_SameOutcome pauses after every accepted edge and resumes
// from another goroutine; the tree must match an uninterrupted run.
func TestPauseResume_SameOutcome(t *testing.T) {
	g := lattice(t, 6, core.ShapeGrid, 11)

	for _, name := range []string{"prim", "fredman-tarjan", "kruskal", "boruvka", "cheriton-tarjan", "reverse-delete", "yao"} {
		t.Run(name, func(t *testing.T) {
			plain, err := mst.Run(context.Background(), name, g, nil, fast())
			require.NoError(t, err)

			ctl := fast()
			var wg sync.WaitGroup
			sink := progress.Funcs{EdgeAccepted: func(core.Edge) {
				ctl.Pause()
				wg.Add(1)
				go func() {
					defer wg.Done()
					time.Sleep(100 * time.Microsecond)
					ctl.Resume()
				}()
			}}
			paused, err := mst.Run(context.Background(), name, g, sink, ctl)
			wg.Wait()
			require.NoError(t, err)

			assert.Equal(t, control.Completed, paused.State)
			assert.Equal(t, plain.Keys(), paused.Keys())
			assert.Equal(t, plain.TotalWeight, paused.TotalWeight)
		})
	}
}

// TestStop covers stopping before, during, and via context.
func TestStop(t *testing.T) {
	g := lattice(t, 8, core.ShapeGrid, 21)

	t.Run("before begin", func(t *testing.T) {
		ctl := fast()
		ctl.Stop()
		rec := progress.NewRecorder()
		res, err := mst.Run(context.Background(), "prim", g, rec, ctl)
		require.NoError(t, err)
		assert.Equal(t, control.Stopped, res.State)
		assert.Zero(t, res.EdgesAdded)
		final, fired := rec.Final()
		assert.Equal(t, control.Stopped, final)
		assert.Equal(t, 1, fired)
	})

	for _, name := range []string{"prim", "fredman-tarjan", "kruskal", "boruvka"} {
		t.Run("mid run/"+name, func(t *testing.T) {
			ctl := fast()
			rec := progress.NewRecorder()
			accepted := 0
			sink := progress.Multi(rec, progress.Funcs{EdgeAccepted: func(core.Edge) {
				accepted++
				if accepted == 3 {
					ctl.Stop()
				}
			}})

			res, err := mst.Run(context.Background(), name, g, sink, ctl)
			require.NoError(t, err)
			assert.Equal(t, control.Stopped, res.State)
			assert.Equal(t, 3, res.EdgesAdded)
			_, err = mst.Verify(g, res.Edges)
			assert.NoError(t, err)

			final, fired := rec.Final()
			assert.Equal(t, control.Stopped, final)
			assert.Equal(t, 1, fired)

			// Stop is terminal: Resume is a no-op.
			ctl.Resume()
			assert.Equal(t, control.Stopped, ctl.State())
		})
	}

	t.Run("context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sink := progress.Funcs{EdgeAccepted: func(core.Edge) { cancel() }}

		res, err := mst.Run(ctx, "kruskal", g, sink, fast())
		require.NoError(t, err)
		assert.Equal(t, control.Stopped, res.State)
		assert.Equal(t, 1, res.EdgesAdded)
	})

	t.Run("reverse-delete partial keeps survivors", func(t *testing.T) {
		ctl := fast()
		removed := 0
		sink := progress.Funcs{EdgeRejected: func(core.Edge) {
			removed++
			if removed == 5 {
				ctl.Stop()
			}
		}}
		res, err := mst.Run(context.Background(), "reverse-delete", g, sink, ctl)
		require.NoError(t, err)
		assert.Equal(t, control.Stopped, res.State)
		assert.Equal(t, g.EdgeCount()-5, res.EdgesAdded)
	})
}

// TestRun_Errors covers argument and controller misuse.
func TestRun_Errors(t *testing.T) {
	_, err := mst.Run(context.Background(), "prim", nil, nil, fast())
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, err = mst.Run(context.Background(), "nope", pathScenario(t), nil, fast())
	assert.ErrorIs(t, err, mst.ErrUnknownAlgorithm)

	ctl := fast()
	_, err = ctl.Begin()
	require.NoError(t, err)
	_, err = mst.Run(context.Background(), "prim", pathScenario(t), nil, ctl)
	assert.ErrorIs(t, err, control.ErrNotIdle)

	// Reset makes the controller reusable for a fresh run.
	ctl.Reset()
	res, err := mst.Run(context.Background(), "prim", pathScenario(t), nil, ctl)
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.TotalWeight)
}

// TestRun_IntegerWeightHugeWeights runs the bucket order on weights that do
// not fit an int.
func TestRun_IntegerWeightHugeWeights(t *testing.T) {
	g, err := builder.Path(1, 1e19, 2)
	require.NoError(t, err)

	res, err := mst.Run(context.Background(), "integer-weight", g, nil, fast())
	require.NoError(t, err)
	assert.Equal(t, control.Completed, res.State)
	assert.Equal(t, 3, res.EdgesAdded)
	assert.InEpsilon(t, mst.ReferenceWeight(g), res.TotalWeight, 1e-12)
}

// TestRun_DefaultController uses the paced scheduler on a tiny graph.
func TestRun_DefaultController(t *testing.T) {
	g, err := builder.Path(3, 1)
	require.NoError(t, err)

	res, err := mst.Run(context.Background(), "boruvka", g, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.TotalWeight)
	assert.Equal(t, control.Completed, res.State)
}

// TestConcurrent_OnePaused runs Prim and Kruskal side by side; Prim is
// paused after its first edge and Kruskal still finishes.
func TestConcurrent_OnePaused(t *testing.T) {
	g := lattice(t, 7, core.ShapeGrid, 31)
	want := mst.ReferenceWeight(g)

	primCtl, kruskalCtl := fast(), fast()
	pausedOnce := make(chan struct{})
	var once sync.Once
	primSink := progress.Funcs{EdgeAccepted: func(core.Edge) {
		once.Do(func() {
			primCtl.Pause()
			close(pausedOnce)
		})
	}}

	var (
		wg                sync.WaitGroup
		primRes, kruskRes mst.Result
		primErr, kruskErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		primRes, primErr = mst.Run(context.Background(), "prim", g, primSink, primCtl)
	}()

	<-pausedOnce
	kruskRes, kruskErr = mst.Run(context.Background(), "kruskal", g, nil, kruskalCtl)
	require.NoError(t, kruskErr)
	assert.Equal(t, control.Completed, kruskRes.State)
	assert.InDelta(t, want, kruskRes.TotalWeight, 1e-6)
	assert.Equal(t, control.Paused, primCtl.State())

	primCtl.Resume()
	wg.Wait()
	require.NoError(t, primErr)
	assert.Equal(t, control.Completed, primRes.State)
	assert.InDelta(t, want, primRes.TotalWeight, 1e-6)
}

// TestRun_ResetRestartSupersedesPausedRun resets a controller under a
// paused run and restarts it; the old run must end stopped without taking
// another step while the new one completes.
func TestRun_ResetRestartSupersedesPausedRun(t *testing.T) {
	g := lattice(t, 6, core.ShapeGrid, 5)
	want := mst.ReferenceWeight(g)
	ctl := fast()

	var accepted atomic.Int32
	pausedOnce := make(chan struct{})
	var once sync.Once
	oldSink := progress.Funcs{EdgeAccepted: func(core.Edge) {
		accepted.Add(1)
		once.Do(func() {
			ctl.Pause()
			close(pausedOnce)
		})
	}}

	done := make(chan struct{})
	var (
		oldRes mst.Result
		oldErr error
	)
	go func() {
		defer close(done)
		oldRes, oldErr = mst.Run(context.Background(), "prim", g, oldSink, ctl)
	}()

	<-pausedOnce
	ctl.Reset()
	rec := progress.NewRecorder()
	res, err := mst.Run(context.Background(), "kruskal", g, rec, ctl)
	require.NoError(t, err)
	assert.Equal(t, control.Completed, res.State)
	assert.InDelta(t, want, res.TotalWeight, 1e-6)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded run did not return")
	}
	require.NoError(t, oldErr)
	assert.Equal(t, control.Stopped, oldRes.State)
	assert.Equal(t, 1, oldRes.EdgesAdded)
	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, control.Completed, ctl.State(), "the old run must not touch the new one")
}

// TestNodeStates checks the classification stream of Prim and
// reverse-delete.
func TestNodeStates(t *testing.T) {
	g := lattice(t, 4, core.ShapeGrid, 41)

	rec := progress.NewRecorder()
	_, err := mst.Run(context.Background(), "prim", g, rec, fast())
	require.NoError(t, err)
	var sawFrontier bool
	for _, ev := range rec.Events() {
		if ev.Kind == progress.NodeStateChanged && ev.NodeState == core.Frontier {
			sawFrontier = true
		}
	}
	assert.True(t, sawFrontier)
	for id := range g.Nodes {
		assert.Equal(t, core.Member, rec.NodeState(id))
	}

	rec = progress.NewRecorder()
	_, err = mst.Run(context.Background(), "reverse-delete", g, rec, fast())
	require.NoError(t, err)
	events := rec.Events()
	require.Equal(t, progress.StatsChanged, events[1].Kind)
	assert.Equal(t, g.EdgeCount(), events[1].EdgesAdded)
	assert.InDelta(t, g.TotalWeight(), events[1].TotalWeight, 1e-9)
	added, _ := rec.Stats()
	assert.Equal(t, g.NodeCount()-1, added)
}

// TestVerify rejects cycles and foreign edges.
func TestVerify(t *testing.T) {
	g := pathScenario(t)

	comps, err := mst.Verify(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, comps)

	_, err = mst.Verify(g, g.Edges)
	assert.ErrorIs(t, err, mst.ErrCycle)

	_, err = mst.Verify(g, []core.Edge{{From: 0, To: 2, Weight: 1}})
	assert.ErrorIs(t, err, mst.ErrForeignEdge)

	_, err = mst.Verify(g, []core.Edge{{From: 0, To: 1, Weight: 3}})
	assert.ErrorIs(t, err, mst.ErrForeignEdge)

	_, err = mst.Verify(nil, nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}
