// Package app provides the main application logic for modorder.
package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/modhearth/modorder/internal/adapters/filesystem"
	orderjson "github.com/modhearth/modorder/internal/adapters/orderfile"
	"github.com/modhearth/modorder/internal/adapters/rulesfile"
	"github.com/modhearth/modorder/internal/adapters/weidu"
	"github.com/modhearth/modorder/internal/domain/order"
	"github.com/modhearth/modorder/internal/domain/orderfile"
	"github.com/modhearth/modorder/internal/ports"
)

// Modorder is the main application orchestrator.
type Modorder struct {
	orders orderfile.Repository
	weidu  *weidu.Parser
	rules  *rulesfile.Loader
	logger ports.Logger
	out    io.Writer
}

// New creates a new Modorder application backed by the real file system.
func New(out io.Writer) *Modorder {
	fs := filesystem.NewRealFileSystem()

	return &Modorder{
		orders: orderjson.NewJSONRepository(fs),
		weidu:  weidu.NewParser(fs),
		rules:  rulesfile.NewLoader(fs),
		out:    out,
	}
}

// WithFileSystem rebuilds every adapter on top of fs.
func (m *Modorder) WithFileSystem(fs ports.FileSystem) *Modorder {
	m.orders = orderjson.NewJSONRepository(fs)
	m.weidu = weidu.NewParser(fs)
	m.rules = rulesfile.NewLoader(fs)
	return m
}

// WithRepository sets the repository for order persistence.
func (m *Modorder) WithRepository(repo orderfile.Repository) *Modorder {
	m.orders = repo
	return m
}

// WithLogger sets the logger. Without one, diagnostics are silenced.
func (m *Modorder) WithLogger(logger ports.Logger) *Modorder {
	m.logger = logger
	return m
}

// GenerateInput names the files feeding one generation run.
type GenerateInput struct {
	// RulesPath is the YAML rules file.
	RulesPath string
	// SelectionPath is the YAML selection file.
	SelectionPath string
	// BasePath is an existing order file to merge around; empty means
	// no base order.
	BasePath string
}

// GenerateOutput is the outcome of one generation run.
type GenerateOutput struct {
	// Order holds the computed installation order as a single sequence.
	Order orderfile.Order
	// CycleDetected reports that the rule graph was cyclic and the order
	// tail is the lexicographic fallback.
	CycleDetected bool
}

// Generate loads rules, selection and optional base order, runs the
// generator and returns the resulting order. The base order's pause
// markers keep their places in the result. The result always holds a
// single sequence; a multi-sequence base collapses into one.
func (m *Modorder) Generate(ctx context.Context, in GenerateInput) (GenerateOutput, error) {
	manager, err := m.rules.LoadRules(in.RulesPath)
	if err != nil {
		return GenerateOutput{}, fmt.Errorf("failed to load rules: %w", err)
	}

	selected, err := m.rules.LoadSelection(in.SelectionPath)
	if err != nil {
		return GenerateOutput{}, fmt.Errorf("failed to load selection: %w", err)
	}

	var base []orderfile.Entry
	if in.BasePath != "" {
		baseOrder, err := m.orders.Load(ctx, in.BasePath)
		if err != nil {
			return GenerateOutput{}, fmt.Errorf("failed to load base order: %w", err)
		}
		base = flatten(baseOrder)
	}

	generator := order.NewGenerator(manager, m.logger)
	result := generator.Generate(ctx, selected, orderfile.Components(base))

	m.logInfo(ctx, "order generated",
		ports.F("selected", len(selected)),
		ports.F("ordered", len(result.Order)),
		ports.F("cycle", result.CycleDetected))

	return GenerateOutput{
		Order:         orderfile.Order{0: orderfile.MergeComponents(result.Order, base)},
		CycleDetected: result.CycleDetected,
	}, nil
}

// Import parses a WeiDU.log and returns it as a single-sequence order.
func (m *Modorder) Import(ctx context.Context, logPath string) (orderfile.Order, error) {
	log, err := m.weidu.ParseFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WeiDU log: %w", err)
	}

	imported, err := orderfile.ImportWeiDULog(log)
	if err != nil {
		return nil, fmt.Errorf("failed to import WeiDU log: %w", err)
	}

	m.logInfo(ctx, "WeiDU log imported",
		ports.F("path", logPath),
		ports.F("components", len(log.ComponentIDs())))

	return imported, nil
}

// Load reads an order file.
func (m *Modorder) Load(ctx context.Context, path string) (orderfile.Order, error) {
	loaded, err := m.orders.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return loaded, nil
}

// Save writes an order file, overwriting any existing one.
func (m *Modorder) Save(ctx context.Context, path string, ord orderfile.Order) error {
	if err := m.orders.Save(ctx, path, ord); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	stats := orderfile.Statistics(ord)
	m.logInfo(ctx, "order saved",
		ports.F("path", path),
		ports.F("sequences", stats.SequenceCount),
		ports.F("components", stats.ComponentCount),
		ports.F("pauses", stats.PauseCount))

	return nil
}

// Stats loads an order file and computes its summary.
func (m *Modorder) Stats(ctx context.Context, path string) (orderfile.Stats, error) {
	loaded, err := m.Load(ctx, path)
	if err != nil {
		return orderfile.Stats{}, err
	}
	return orderfile.Statistics(loaded), nil
}

// PrintOrder outputs the order's sequences and tokens.
func (m *Modorder) PrintOrder(ord orderfile.Order) {
	for _, idx := range sequenceIndices(ord) {
		m.printf("Sequence %d:\n", idx)
		for _, entry := range ord[idx] {
			m.printf("  %s\n", entry.Token())
		}
	}
}

// PrintStats outputs a human-readable order summary.
func (m *Modorder) PrintStats(stats orderfile.Stats) {
	m.printf("Sequences:  %d\n", stats.SequenceCount)
	m.printf("Entries:    %d\n", stats.TotalComponents)
	m.printf("Components: %d\n", stats.ComponentCount)
	m.printf("Pauses:     %d\n", stats.PauseCount)
}

func (m *Modorder) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Modorder) logInfo(ctx context.Context, msg string, fields ...ports.Field) {
	if m.logger == nil {
		return
	}
	m.logger.Info(ctx, msg, fields...)
}

// flatten concatenates an order's entries, pause markers included, in
// ascending sequence index order.
func flatten(ord orderfile.Order) []orderfile.Entry {
	var entries []orderfile.Entry
	for _, idx := range sequenceIndices(ord) {
		entries = append(entries, ord[idx]...)
	}
	return entries
}

func sequenceIndices(ord orderfile.Order) []int {
	indices := make([]int, 0, len(ord))
	for idx := range ord {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}
