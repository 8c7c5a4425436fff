package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/profilereport/internal/domain/repositories"
	ghRepo "github.com/rios0rios0/profilereport/internal/infrastructure/repositories/github"
	pdfRepo "github.com/rios0rios0/profilereport/internal/infrastructure/repositories/pdf"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The API root and token come from the settings of each run, so the
	// profile repository is provided as a factory.
	if err := container.Provide(func() domainRepos.ProfileRepositoryFactory {
		return ghRepo.NewGitHubProfileRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(pdfRepo.NewPDFDocumentRepository); err != nil {
		return err
	}

	return nil
}
