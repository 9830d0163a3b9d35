package usecase

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cogcities/drzone/internal/domain"
	"github.com/cogcities/drzone/internal/snapshot"
)

// Reporter is the use case for the report stage. It reads the snapshots
// written by the collector and renders the dashboard document.
type Reporter struct {
	store  *snapshot.Store
	logger zerolog.Logger
	output string
	now    func() time.Time
}

// NewReporter creates a new Reporter writing the rendered report to output.
func NewReporter(store *snapshot.Store, logger zerolog.Logger, output string) *Reporter {
	return &Reporter{
		store:  store,
		logger: logger,
		output: output,
		now:    time.Now,
	}
}

// Run renders the report. A missing summary snapshot is not an error: the
// run is skipped with a log message and no report is written. All other
// snapshots default to empty collections when absent.
func (r *Reporter) Run() error {
	var summary domain.Summary
	ok, err := r.store.Read(snapshot.SummaryFile, &summary)
	if err != nil {
		return err
	}
	if !ok {
		r.logger.Warn().Msg("no summary snapshot found, skipping report generation")
		return nil
	}

	var enterprises []domain.Enterprise
	if _, err := r.store.Read(snapshot.EnterprisesFile, &enterprises); err != nil {
		return err
	}
	var orgs []domain.Organization
	if _, err := r.store.Read(snapshot.OrganizationsFile, &orgs); err != nil {
		return err
	}
	var repos []domain.Repository
	if _, err := r.store.Read(snapshot.RepositoriesFile, &repos); err != nil {
		return err
	}

	enterpriseOrgs := MapOrgsToEnterprises(enterprises)
	r.logger.Debug().
		Int("enterprises", len(enterprises)).
		Int("enterprise_orgs", len(enterpriseOrgs)).
		Int("organizations", len(orgs)).
		Int("repositories", len(repos)).
		Msg("snapshots loaded")

	content := BuildReport(summary, enterprises, orgs, repos, r.now())
	if err := os.WriteFile(r.output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	r.logger.Info().Str("file", r.output).Msg("report generated")
	return nil
}
