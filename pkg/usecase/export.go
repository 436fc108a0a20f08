package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/service/export"
	"github.com/secmon-lab/talos/pkg/service/normalize"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// ExportData renders a download of the requested dataset. The three record
// sets are fetched concurrently; when clean is set the assessment copy is
// run through the cleaning pipeline before rendering. The store is never
// mutated.
func (uc *UseCase) ExportData(ctx context.Context, dataType types.ExportDataType, format types.ExportFormat, clean bool) (*export.Result, error) {
	if !dataType.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "unsupported export data type", goerr.V("dataType", dataType))
	}
	if !format.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "unsupported export format", goerr.V("format", format))
	}

	var snapshot model.Snapshot
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		assessments, err := uc.repo.Assessment().List(egCtx)
		if err != nil {
			return goerr.Wrap(err, "failed to list assessments")
		}
		snapshot.Assessments = assessments
		return nil
	})
	eg.Go(func() error {
		strategies, err := uc.repo.Mitigation().List(egCtx, interfaces.MitigationQuery{})
		if err != nil {
			return goerr.Wrap(err, "failed to list mitigation strategies")
		}
		snapshot.Strategies = strategies
		return nil
	})
	eg.Go(func() error {
		factors, err := uc.repo.Factor().List(egCtx, "")
		if err != nil {
			return goerr.Wrap(err, "failed to list risk factors")
		}
		snapshot.Factors = factors
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if clean {
		cleaned, report := normalize.CleanAssessments(snapshot.Assessments)
		snapshot.Assessments = cleaned
		logging.From(ctx).Info("cleaned assessments for export",
			"rowsIn", report.RowsIn,
			"rowsOut", report.RowsOut,
			"rowsRemoved", report.RowsRemoved,
		)
	}

	return export.Export(&snapshot, dataType, format, time.Now())
}
