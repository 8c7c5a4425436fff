package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/domain/repositories"
)

// Generate is the interface for the generate command.
type Generate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts GenerateOptions) (entities.ReportResult, error)
}

// GenerateOptions holds runtime options for a single report run.
type GenerateOptions struct {
	Input   string // Profile URL or bare login
	Verbose bool
}

// GenerateCommand runs the profile report pipeline:
// extract identifier -> fetch account -> fetch repositories -> lay out -> render.
// Every failure aborts the run and no partial document is produced.
type GenerateCommand struct {
	profileFactory repositories.ProfileRepositoryFactory
	documents      repositories.DocumentRepository
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	profileFactory repositories.ProfileRepositoryFactory,
	documents repositories.DocumentRepository,
) *GenerateCommand {
	return &GenerateCommand{
		profileFactory: profileFactory,
		documents:      documents,
	}
}

// Execute runs one report from start to finish.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts GenerateOptions,
) (entities.ReportResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if settings == nil {
		settings = entities.DefaultSettings()
	}

	identifier, err := entities.ExtractIdentifier(opts.Input)
	if err != nil {
		return fail(identifier, err)
	}
	logger.Debugf("Report for %q is %s", identifier, entities.StateRunning)

	provider, err := it.profileFactory(settings.APIURL, settings.Token)
	if err != nil {
		return fail(identifier, fmt.Errorf("failed to initialize profile provider: %w", err))
	}

	record, err := retrieve(ctx, provider, identifier)
	if err != nil {
		return fail(identifier, err)
	}

	layout := entities.LayoutReport(*record)
	document, err := it.documents.Render(layout)
	if err != nil {
		return fail(identifier, fmt.Errorf("failed to render document: %w", err))
	}

	logger.Infof("Generated report for %q (%d repositories, %d bytes)",
		identifier, len(record.Artifacts), len(document))

	return entities.ReportResult{
		State:      entities.StateCompleted,
		Generated:  true,
		Identifier: identifier,
		Artifacts:  record.Artifacts,
		FileName:   entities.ReportFileName,
		Document:   document,
	}, nil
}

// retrieve fetches the account and then its repositories. The second request
// is only made once the first one succeeded.
func retrieve(
	ctx context.Context,
	provider repositories.ProfileRepository,
	identifier string,
) (*entities.AggregateRecord, error) {
	logger.Infof("Fetching account %q...", identifier)
	profile, err := provider.GetAccount(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %q: %w", identifier, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: account %q is missing", entities.ErrShape, identifier)
	}

	logger.Infof("Fetching repositories of %q...", identifier)
	artifacts, err := provider.ListArtifacts(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories of %q: %w", identifier, err)
	}
	if artifacts == nil {
		return nil, fmt.Errorf("%w: repositories of %q are missing", entities.ErrShape, identifier)
	}

	return &entities.AggregateRecord{Profile: *profile, Artifacts: artifacts}, nil
}

func fail(identifier string, err error) (entities.ReportResult, error) {
	logger.WithField("kind", entities.ErrorKind(err)).Errorf("Report run %s: %v", entities.StateFailed, err)
	return entities.NewFailedResult(identifier), err
}
