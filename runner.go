package imexport

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// SubRunFunc processes one table (one sub-run) of a multi-table run. The
// implementation reads or writes rows for the given manager and drives the
// orchestrator's per-row hooks while doing so.
type SubRunFunc func(ctx context.Context, manager TableManager) error

// SetMaxParallel caps the number of sub-runs [ImExporter.RunTables] executes
// concurrently. Zero or negative means no cap (one goroutine per table).
// Set before calling RunTables.
func (ie *ImExporter) SetMaxParallel(n int) {
	ie.maxParallel = n
}

// RunTables drives fn over the named tables as parallel sub-runs.
//
// Every table name is resolved up front; an unknown name fails the whole
// run with a [KindInvalidArgument] error before any sub-run starts. The
// sub-run count is set to len(tableNames), and each completed sub-run is
// marked finished so the percentage stays apportioned across the tables
// still running.
//
// The first sub-run error cancels the remaining sub-runs' context, is
// posted to the observers, and is returned.
func (ie *ImExporter) RunTables(ctx context.Context, tableNames []string, fn SubRunFunc) error {
	managers := make([]TableManager, 0, len(tableNames))
	for _, name := range tableNames {
		manager, ok, err := ie.registry.Lookup(name)
		if err != nil {
			return err
		}
		if !ok {
			return newError(KindInvalidArgument, "imexporter.run", msgTableNotExists, name)
		}
		managers = append(managers, manager)
	}

	ie.SetSubRuns(len(managers))

	g, ctx := errgroup.WithContext(ctx)
	if ie.maxParallel > 0 {
		g.SetLimit(ie.maxParallel)
	}
	for _, manager := range managers {
		g.Go(func() error {
			if err := fn(ctx, manager); err != nil {
				return err
			}
			ie.FinishSubRun()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			ie.PostError(fe)
		} else {
			ie.PostError(wrapError(KindSubRunFailed, "imexporter.run", err, "sub-run failed"))
		}
		return err
	}

	// Finished sub-runs now equal sub-runs; push the final percentage.
	ie.Recalculate()
	return nil
}
