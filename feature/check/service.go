package check

import (
	"context"
	"errors"
	"fmt"

	"bom-checker/core/reconcile"
	"bom-checker/feature/bom"
	"bom-checker/feature/distributor"
	"bom-checker/feature/lookup"
	"bom-checker/feature/schematic"
	"bom-checker/feature/taxonomy"

	"go.uber.org/zap"
)

// ErrPartNotFound is returned by CheckRow when the lookup has no record for the part.
var ErrPartNotFound = errors.New("part not found")

// Service checks BOM rows against distributor data.
type Service struct {
	provider    lookup.Provider
	tax         *taxonomy.Taxonomy
	schematic   *schematic.Classifier
	distributor *distributor.Classifier
	reconciler  *reconcile.Reconciler
	logger      *zap.Logger
}

// NewService creates a new check service.
func NewService(provider lookup.Provider, tax *taxonomy.Taxonomy, logger *zap.Logger) *Service {
	return &Service{
		provider:    provider,
		tax:         tax,
		schematic:   schematic.NewClassifier(tax),
		distributor: distributor.NewClassifier(tax),
		reconciler:  reconcile.NewReconciler(tax),
		logger:      logger,
	}
}

// Run checks every row in order. It only returns an error when the lookup
// collaborator fails in a way other than "not found" or a malformed record.
func (s *Service) Run(ctx context.Context, rows []bom.Row) (*Result, error) {
	result := &Result{
		Reports: []reconcile.MismatchReport{},
		Skipped: []SkippedRow{},
	}

	for _, row := range rows {
		result.Summary.Rows++

		if row.DistributorPartNumber == "" {
			result.Summary.NoPartNumber++
			continue
		}

		report, err := s.CheckRow(ctx, row)
		switch {
		case errors.Is(err, ErrPartNotFound):
			result.Summary.NotFound++
			result.Skipped = append(result.Skipped, skipped(row, SkipNotFound, ""))
			continue
		case errors.Is(err, distributor.ErrMalformedRecord):
			s.logger.Warn("Skipping row with malformed distributor record",
				zap.Int("line", row.Line),
				zap.Strings("components", row.ComponentIDs),
				zap.Error(err),
			)
			result.Summary.Malformed++
			result.Skipped = append(result.Skipped, skipped(row, SkipMalformed, err.Error()))
			continue
		case err != nil:
			return nil, err
		}

		result.Summary.Checked++
		if report != nil {
			result.Summary.Mismatches++
			result.Reports = append(result.Reports, *report)
		}
	}

	return result, nil
}

// CheckRow looks up and reconciles a single row. It returns a nil report when
// both classifications agree, and ErrPartNotFound when the part does not exist.
func (s *Service) CheckRow(ctx context.Context, row bom.Row) (*reconcile.MismatchReport, error) {
	log := s.logger.With(
		zap.String("part_number", row.DistributorPartNumber),
		zap.Strings("components", row.ComponentIDs),
	)
	log.Debug("Looking up part")

	rec, err := s.provider.Lookup(ctx, row.DistributorPartNumber)
	if err != nil {
		if errors.Is(err, distributor.ErrMalformedRecord) {
			return nil, err
		}
		return nil, fmt.Errorf("lookup of %s failed: %w", row.DistributorPartNumber, err)
	}
	if rec == nil {
		log.Debug("Part not found, skipping")
		return nil, ErrPartNotFound
	}

	dk, err := s.distributor.Classify(rec)
	if err != nil {
		return nil, err
	}

	sc, rule, matched := s.schematic.ClassifyRule(row.Footprint)

	if matched && rule.Note != "" {
		log.Warn("Footprint rule covers more than one package",
			zap.String("footprint", row.Footprint),
			zap.String("pattern", rule.Pattern),
			zap.String("note", rule.Note),
		)
	}
	if !matched && row.Footprint != "" {
		log.Info("Footprint matches no taxonomy rule",
			zap.String("footprint", row.Footprint),
			zap.Bool("pad_smt", s.tax.IsSMTPad(row.Footprint)),
			zap.Bool("part_smt", s.distributor.IsSMTPart(rec)),
		)
	}

	log.Debug("Classified part",
		zap.Stringer("schematic_mount", sc.Mount),
		zap.Int("schematic_package", int(sc.Package)),
		zap.Stringer("distributor_mount", dk.Mount),
		zap.Int("distributor_package", int(dk.Package)),
	)

	report := s.reconciler.Reconcile(row.ComponentIDs, sc, dk)
	if report != nil {
		report.PartNumber = row.DistributorPartNumber
		report.Footprint = row.Footprint
	}
	return report, nil
}

func skipped(row bom.Row, reason SkipReason, detail string) SkippedRow {
	return SkippedRow{
		Line:         row.Line,
		ComponentIDs: row.ComponentIDs,
		PartNumber:   row.DistributorPartNumber,
		Reason:       reason,
		Detail:       detail,
	}
}
