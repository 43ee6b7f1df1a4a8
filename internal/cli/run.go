package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanviz/config"
	"github.com/katalvlaran/spanviz/control"
	"github.com/katalvlaran/spanviz/mst"
	"github.com/katalvlaran/spanviz/orchestrator"
	"github.com/katalvlaran/spanviz/progress"
)

type runFlags struct {
	steps       bool
	metrics     bool
	trace       bool
	noPace      bool
	interactive bool
}

func newRunCommand(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a graph and run one algorithm (or both prim and kruskal)",
		Long: `Generate a graph and run the selected algorithm over it, paced step by step.

With --interactive, lines read from stdin control the runs:
  pause | p     pause every run
  resume | r    resume every run
  stop | s      stop every run
  speed <x>     set the pacing multiplier, 0 < x <= 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return a.run(ctx, cmd, f)
		},
	}
	addGraphFlags(cmd)
	d := config.Default()
	cmd.Flags().String("algorithm", d.Algorithm, "catalog algorithm or "+strconv.Quote(mst.Both)+" (see: spanviz catalog)")
	cmd.Flags().Float64("speed", d.Speed, "pacing multiplier: step delay is max(2ms, 20ms*speed)")
	cmd.Flags().BoolVar(&f.steps, "steps", false, "log every step (visible with --log-level debug)")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the run")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "log one OpenTelemetry span per run")
	cmd.Flags().BoolVar(&f.noPace, "no-pace", false, "skip the step delay")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "read pause/resume/stop/speed commands from stdin")

	return cmd
}

func (a *app) run(ctx context.Context, cmd *cobra.Command, f runFlags) error {
	out := cmd.OutOrStdout()

	// 1. Observers.
	var opts []orchestrator.Option
	if f.steps {
		stepLog := progress.NewLogSink(a.log)
		opts = append(opts, orchestrator.WithSink(func(string) progress.Sink { return stepLog }))
	}
	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		m := progress.NewMetrics(reg)
		opts = append(opts, orchestrator.WithSink(m.Sink))
	}
	if f.trace {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(progress.NewSpanLogExporter(a.log)))
		defer func() { _ = tp.Shutdown(context.Background()) }()
		tracer := tp.Tracer(progress.TracerName)
		opts = append(opts, orchestrator.WithSink(func(string) progress.Sink {
			return progress.NewTraceSink(ctx, tracer)
		}))
	}
	if f.noPace {
		opts = append(opts, orchestrator.WithScheduler(func() control.Scheduler { return control.ImmediateScheduler{} }))
	}
	o := orchestrator.New(a.log, opts...)

	// 2. Live control from stdin.
	if f.interactive {
		go readCommands(cmd.InOrStdin(), o, a.log)
	}

	// 3. Run and report.
	report, err := o.Run(ctx, a.cfg)
	if err != nil {
		return err
	}
	if err := writeSummary(out, report); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(out, reg)
	}

	return nil
}

// readCommands applies control lines until r is exhausted.
func readCommands(r io.Reader, o *orchestrator.Orchestrator, log *zap.Logger) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "pause", "p":
			o.Pause()
		case "resume", "r":
			o.Resume()
		case "stop", "s":
			o.Stop()
		case "speed":
			if len(fields) != 2 {
				log.Warn("usage: speed <x>")
				continue
			}
			speed, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || speed <= 0 || speed > 1 {
				log.Warn("speed must be in (0, 1]", zap.String("input", fields[1]))
				continue
			}
			o.SetSpeed(speed)
		default:
			log.Warn("unknown command", zap.String("input", fields[0]))
			continue
		}
		log.Info("control", zap.String("command", fields[0]), zap.Strings("active", o.Active()))
	}
}

func writeSummary(w io.Writer, report orchestrator.Report) error {
	g := report.Graph
	fmt.Fprintf(w, "graph: shape=%s size=%d nodes=%d edges=%d components=%d regions=%s\n",
		g.Shape, g.Size, g.NodeCount(), g.EdgeCount(), g.Components(), formatRegions(report.Regions))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tENGINE\tSTATE\tEDGES\tWEIGHT\tSPANNING")
	for _, res := range report.Results {
		name := res.Algorithm
		if res.Approximate {
			name += " (approx.)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%t\n",
			name, res.Engine, res.State, res.EdgesAdded, res.TotalWeight, res.Spanning(g.NodeCount()))
	}

	return tw.Flush()
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
