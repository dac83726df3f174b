package pdfexport

import (
	"bytes"
	"fmt"

	"calcplanner/internal/adapter/export"
	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Renderer draws an estimate on A4 with the core Helvetica font. Text goes
// through the cp1252 translator, which covers Portuguese accents, € and ².
type Renderer struct {
	compress bool
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer { return &Renderer{compress: true} }

func (r *Renderer) Format() entities.ExportFormat { return entities.ExportFormatPDF }

func (r *Renderer) Render(in entities.ExportInput) (entities.ExportDocument, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	money := func(v float64) string { return tr(export.Money(in.Currency, v)) }

	pdf.SetTitle(tr("Orçamento - "+in.Name), false)
	pdf.SetCreator("CalcPlanner", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Orçamento: "+in.Name), "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Data: "+in.CreatedAt.Format(export.DateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Materiais selecionados: %d itens", len(in.Breakdown.Lines))))
	pdf.Ln(10)

	// materials
	sectionTitle(pdf, tr("Materiais"))
	header(pdf, tr, "Material", "Quantidade", "Preço unitário", "Subtotal")
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range in.Breakdown.Lines {
		row(pdf,
			tr(trim(export.LineName(l), 55)),
			tr(export.Quantity(l.Quantity)+" "+l.Unit),
			money(l.UnitPrice),
			money(l.MaterialCost),
		)
	}
	pdf.Ln(6)

	// labor
	sectionTitle(pdf, tr("Mão de Obra"))
	header(pdf, tr, "Material", "Quantidade", "Preço / unidade", "Subtotal")
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range in.Breakdown.Lines {
		row(pdf,
			tr(trim(export.LineName(l), 55)),
			export.Quantity(l.Quantity),
			money(in.Breakdown.LaborRatePerUnit),
			money(l.LaborCost),
		)
	}
	pdf.Ln(6)

	sectionTitle(pdf, tr("Custos Detalhados"))
	pdf.SetFont("Helvetica", "", 11)
	summary(pdf, tr("Materiais:"), money(in.Breakdown.MaterialsCost))
	summary(pdf, tr("Mão de Obra:"), money(in.Breakdown.LaborCost))
	summary(pdf, tr("Acabamentos:"), money(in.Breakdown.FinishingCost))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(74, 144, 226)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 12, tr("TOTAL: ")+money(in.Breakdown.Total), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, tr("Orçamento gerado automaticamente pelo sistema CalcPlanner"))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Data de geração: %s às %s",
		in.GeneratedAt.Format(export.DateLayout), in.GeneratedAt.Format(export.TimeLayout))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return entities.ExportDocument{}, fmt.Errorf("write pdf: %w", err)
	}
	return entities.ExportDocument{
		FileName:    export.FileName(in.Name, in.CreatedAt, entities.ExportFormatPDF),
		ContentType: "application/pdf",
		Body:        buf.Bytes(),
	}, nil
}

var colWidths = [4]float64{85, 30, 35, 30}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(74, 144, 226)
	pdf.Cell(0, 8, title)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(9)
}

func header(pdf *gofpdf.Fpdf, tr func(string) string, cols ...string) {
	pdf.SetFont("Helvetica", "B", 10)
	for i, c := range cols {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], 7, tr(c), "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func row(pdf *gofpdf.Fpdf, cols ...string) {
	for i, c := range cols {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], 6, c, "", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func summary(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
