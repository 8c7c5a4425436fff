package repositories

import "github.com/rios0rios0/profilereport/internal/domain/entities"

// DocumentRepository turns a laid-out page into a binary document.
type DocumentRepository interface {
	// ContentType is the MIME type of the rendered payload.
	ContentType() string

	Render(layout entities.PageLayout) ([]byte, error)
}
