package interfaces

import "calcplanner/internal/domain/entities"

// IDocumentRenderer turns a finalized estimate into a printable document.
type IDocumentRenderer interface {
	Format() entities.ExportFormat
	Render(in entities.ExportInput) (entities.ExportDocument, error)
}
