package interfaces

import "sistema_cvt/internal/domain/entities"

// IReportRenderer abstracts the document renderer (PDF). It consumes a
// finalized report plus its part requests and produces a byte stream.
type IReportRenderer interface {
	Render(report entities.VisitReport, parts []entities.PartRequest) ([]byte, error)
}
