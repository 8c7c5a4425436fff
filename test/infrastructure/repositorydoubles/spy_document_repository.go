//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/domain/repositories"
)

// SpyDocumentRepository implements repositories.DocumentRepository as a configurable spy.
type SpyDocumentRepository struct {
	Document  []byte
	RenderErr error
	// spy: layouts received
	Layouts []entities.PageLayout
}

var _ repositories.DocumentRepository = (*SpyDocumentRepository)(nil)

func (d *SpyDocumentRepository) ContentType() string { return "application/pdf" }

func (d *SpyDocumentRepository) Render(layout entities.PageLayout) ([]byte, error) {
	d.Layouts = append(d.Layouts, layout)
	if d.RenderErr != nil {
		return nil, d.RenderErr
	}
	return d.Document, nil
}
