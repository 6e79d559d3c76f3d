package domain

import (
	"errors"
	"path/filepath"

	"github.com/mouse-blink/covlight/internal/adapter"
	"github.com/mouse-blink/covlight/internal/controller"
	m "github.com/mouse-blink/covlight/internal/model"
	"golang.org/x/sync/errgroup"
)

// ShowArgs configures the show-coverage operation.
type ShowArgs struct {
	Source m.Path
	Color  string
	// Report overrides the located report path when non-empty.
	Report m.Path
}

// ClearArgs configures the clear-coverage operation.
type ClearArgs struct {
	Source m.Path
}

// ViewArgs configures the interactive viewer.
type ViewArgs struct {
	Source m.Path
	Color  string
	Report m.Path
}

// SummaryArgs configures the per-file summary operation.
type SummaryArgs struct {
	Sources []m.Path
	Threads int
	Report  m.Path
}

// Workflow defines the user-facing coverage highlighting operations.
type Workflow interface {
	Show(args ShowArgs) error
	Clear(args ClearArgs) error
	View(args ViewArgs) error
	Summary(args SummaryArgs) error
}

type workflow struct {
	locator adapter.ReportLocator
	reports adapter.ReportStore
	buffers adapter.BufferFS
	ui      controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(
	locator adapter.ReportLocator,
	reports adapter.ReportStore,
	buffers adapter.BufferFS,
	ui controller.UI,
) Workflow {
	return &workflow{
		locator: locator,
		reports: reports,
		buffers: buffers,
		ui:      ui,
	}
}

// Show runs the full pipeline against the source file and displays it
// with uncovered lines highlighted. Overlays are only touched once
// every stage before them has succeeded.
func (w *workflow) Show(args ShowArgs) error {
	buf, regions, err := w.resolve(args.Source, args.Report)

	switch {
	case err == nil:
		ApplyOverlays(buf, regions, args.Color)
	case errors.Is(err, adapter.ErrPathNotInReport):
		// Nothing to highlight; the file is shown plain with a notice.
		w.ui.DisplayNoCoverage(buf.Path())
	default:
		return err
	}

	return w.ui.DisplayBuffer(buf)
}

// Clear removes every marker from the buffer and displays it plain.
func (w *workflow) Clear(args ClearArgs) error {
	abs, err := w.buffers.Abs(args.Source)
	if err != nil {
		return err
	}

	buf, err := w.buffers.Open(abs)
	if err != nil {
		return err
	}

	ClearOverlays(buf)

	return w.ui.DisplayBuffer(buf)
}

// View runs the pipeline and hands the buffer to the interactive
// viewer, where highlighting can be re-applied and cleared live.
func (w *workflow) View(args ViewArgs) error {
	buf, regions, err := w.resolve(args.Source, args.Report)

	switch {
	case err == nil:
		ApplyOverlays(buf, regions, args.Color)
	case errors.Is(err, adapter.ErrPathNotInReport):
		w.ui.DisplayNoCoverage(buf.Path())

		regions = nil
	default:
		return err
	}

	return w.ui.DisplayInteractive(buf, regions, args.Color)
}

// Summary reports uncovered and executable line counts per source file.
// Files are resolved concurrently with a bounded worker group; each
// report read stays a plain synchronous load.
func (w *workflow) Summary(args SummaryArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	rows := make([]controller.SummaryRow, len(args.Sources))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, source := range args.Sources {
		g.Go(func() error {
			row, err := w.summarize(source, args.Report)
			if err != nil {
				return err
			}

			rows[i] = row

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return w.ui.DisplaySummary(rows)
}

// resolve runs the locate-read-extract-map stages for one source file.
// On ErrPathNotInReport the opened buffer is still returned so callers
// can display it plain.
func (w *workflow) resolve(source, report m.Path) (*m.Buffer, []m.Region, error) {
	abs, err := w.buffers.Abs(source)
	if err != nil {
		return nil, nil, err
	}

	buf, err := w.buffers.Open(abs)
	if err != nil {
		return nil, nil, err
	}

	hits, err := w.lookupHits(abs, report)
	if err != nil {
		if errors.Is(err, adapter.ErrPathNotInReport) {
			return buf, nil, err
		}

		return nil, nil, err
	}

	return buf, LinesToRegions(buf, UncoveredLines(hits)), nil
}

// lookupHits locates (or accepts) the report path and resolves the
// line hits recorded for the absolute source path.
func (w *workflow) lookupHits(abs, report m.Path) (m.LineHits, error) {
	reportPath := report
	if reportPath == "" {
		var err error

		reportPath, err = w.locator.FindReportPath(m.Path(filepath.Dir(string(abs))))
		if err != nil {
			return nil, err
		}
	}

	rs, err := w.reports.LoadReport(reportPath)
	if err != nil {
		return nil, err
	}

	return w.reports.LinesFor(rs, abs)
}

func (w *workflow) summarize(source, report m.Path) (controller.SummaryRow, error) {
	abs, err := w.buffers.Abs(source)
	if err != nil {
		return controller.SummaryRow{}, err
	}

	row := controller.SummaryRow{Source: string(abs)}

	hits, err := w.lookupHits(abs, report)
	if err != nil {
		if errors.Is(err, adapter.ErrPathNotInReport) {
			return row, nil
		}

		return controller.SummaryRow{}, err
	}

	row.Tracked = true
	row.Uncovered = len(UncoveredLines(hits))
	row.Executable = ExecutableLines(hits)

	return row, nil
}
