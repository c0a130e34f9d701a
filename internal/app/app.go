package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/check"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/encoding"
	"github.com/katalvlaran/lvtopo/manifest"
	"github.com/katalvlaran/lvtopo/metrics"
)

// ErrVerify indicates that a generated topology failed check.Verify.
var ErrVerify = errors.New("verification failed")

// App encapsulates one run: its configuration, logger and metrics.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	metrics *metrics.Registry
	config  *Config
}

// NewApp builds an App. Documents go to outW, logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	logger.Debug("Logger configured.", "command", cfg.Command)

	return &App{
		outW:    outW,
		logger:  logger,
		metrics: metrics.NewRegistry(),
		config:  cfg,
	}
}

// Metrics returns the registry populated by Run.
func (a *App) Metrics() *metrics.Registry { return a.metrics }

// Run executes the configured command. Metrics are written even when the
// command fails.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.config.MetricsOut == "" {
			return
		}
		if werr := a.metrics.WriteTextfile(a.config.MetricsOut); werr != nil {
			a.logger.Error("Failed to write metrics.", "path", a.config.MetricsOut, "error", werr)
			err = errors.Join(err, werr)
		}
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	switch a.config.Command {
	case CommandGen:
		return a.runGen()
	case CommandBuild:
		return a.runBuild(ctx)
	case CommandKinds:
		return a.runKinds()
	}

	return fmt.Errorf("%w: unknown command %q", ErrInvalidConfig, a.config.Command)
}

func (a *App) runGen() error {
	kind, err := builder.ParseKind(a.config.Topology)
	if err != nil {
		return err
	}

	start := time.Now()
	g, err := builder.Generate(kind, a.config.Args...)
	a.observe("", kind, g, err, time.Since(start))
	if err != nil {
		return err
	}
	if err = a.verify(g); err != nil {
		return err
	}

	format, err := a.format(a.config.Out)
	if err != nil {
		return err
	}
	if a.config.Out == "" {
		if err = encoding.Encode(a.outW, g, format); err != nil {
			return err
		}
		a.metrics.RecordWrite()

		return nil
	}

	return a.writeFile(a.config.Out, g, format)
}

func (a *App) runBuild(ctx context.Context) error {
	m, err := manifest.LoadFile(a.config.Manifest)
	if err != nil {
		return err
	}
	a.logger.Debug("Manifest loaded.", "path", a.config.Manifest, "fixtures", len(m.Fixtures))

	fixtures, err := manifest.Build(m, manifest.WithObserver(a.observe))
	if err != nil {
		return err
	}

	format := encoding.FormatYAML
	if a.config.Format != "" {
		if format, err = encoding.ParseFormat(a.config.Format); err != nil {
			return err
		}
	}
	if a.config.Out != "" {
		if err = os.MkdirAll(a.config.Out, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, f := range fixtures {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = a.verify(f.Graph); err != nil {
			return fmt.Errorf("fixture %q: %w", f.Name, err)
		}
		if a.config.Out == "" {
			fmt.Fprintf(a.outW, "%s\t%s\tnodes=%d\tedges=%d\n",
				f.Name, f.Graph.Name(), f.Graph.NodeCount(), f.Graph.EdgeCount())
			continue
		}
		if err = a.writeFile(filepath.Join(a.config.Out, f.Name+format.Ext()), f.Graph, format); err != nil {
			return fmt.Errorf("fixture %q: %w", f.Name, err)
		}
	}
	a.logger.Info("Manifest built.", "fixtures", len(fixtures), "out", a.config.Out)

	return nil
}

func (a *App) runKinds() error {
	for _, k := range builder.Kinds() {
		if _, err := fmt.Fprintf(a.outW, "%s(%s)\n", k, strings.Join(builder.ParamNames(k), ", ")); err != nil {
			return err
		}
	}

	return nil
}

// observe logs and records a single generator call. It matches manifest.Observer.
func (a *App) observe(name string, kind builder.Kind, g *core.Graph, err error, took time.Duration) {
	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	a.metrics.RecordGeneration(string(kind), err, took, nodes, edges)

	if err != nil {
		a.logger.Warn("Generation failed.", "fixture", name, "kind", kind, "error", err)
		return
	}
	a.logger.Info("Topology generated.",
		"fixture", name, "name", g.Name(), "nodes", nodes, "edges", edges, "took", took)
}

func (a *App) verify(g *core.Graph) error {
	if !a.config.Verify {
		return nil
	}
	err := check.Verify(g)
	a.metrics.RecordVerification(g.Kind(), err)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	a.logger.Debug("Topology verified.", "name", g.Name())

	return nil
}

// format resolves the output format: -format wins, then the file extension,
// then YAML.
func (a *App) format(path string) (encoding.Format, error) {
	if a.config.Format != "" {
		return encoding.ParseFormat(a.config.Format)
	}
	if path != "" {
		return encoding.FormatFromExt(path)
	}

	return encoding.FormatYAML, nil
}

func (a *App) writeFile(path string, g *core.Graph, format encoding.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if encoding.IsCompressed(path) {
		err = encoding.EncodeCompressed(f, g, format)
	} else {
		err = encoding.Encode(f, g, format)
	}
	if err != nil {
		return err
	}
	a.metrics.RecordWrite()
	a.logger.Debug("Fixture written.", "path", path, "format", format)

	return nil
}
