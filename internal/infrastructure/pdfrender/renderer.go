package pdfrender

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"sistema_cvt/internal/domain/entities"

	"github.com/go-pdf/fpdf"
)

// Renderer produces the printable visit report receipt handed to the client
// after a visit. Output is a single A4 page with the report fields and the
// requested parts table.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(report entities.VisitReport, parts []entities.PartRequest) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Comprovante de Visita Técnica "+report.Number), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("COMPROVANTE DE VISITA TÉCNICA"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, report.Number, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	fields := []struct {
		label string
		value string
	}{
		{"Data", formatDate(report.CreatedAt)},
		{"Técnico", report.Technician},
		{"Cliente", report.Client},
		{"Endereço", report.Address},
		{"Elevador", report.Elevator},
		{"Serviço realizado", report.ServicePerformed},
		{"Observações", report.Notes},
		{"Status", string(report.Status)},
	}
	for _, f := range fields {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 7, tr(f.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 7, tr(f.value), "", "L", false)
	}

	if len(parts) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr("PEÇAS SOLICITADAS"), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(30, 7, tr("Código"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(85, 7, tr("Descrição"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 7, "Qtd", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 7, "Prioridade", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, p := range parts {
			pdf.CellFormat(30, 7, tr(p.PartCode), "1", 0, "L", false, 0, "")
			pdf.CellFormat(85, 7, tr(p.PartDescription), "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 7, fmt.Sprintf("%d", p.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 7, tr(string(p.Priority)), "1", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Documento gerado em %s", formatDate(entities.BrasiliaNow()))), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[pdf][render] output failed report=%s err=%v", report.Number, err)
		return nil, fmt.Errorf("rendering report %s: %w", report.Number, err)
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
