package pdfexport

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"calcplanner/internal/domain/entities"
)

func sampleInput() entities.ExportInput {
	return entities.ExportInput{
		Name:        "Remodelação",
		CreatedAt:   time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC),
		GeneratedAt: time.Date(2024, 3, 10, 9, 30, 15, 0, time.UTC),
		Currency:    "€",
		Breakdown: entities.Breakdown{
			Lines: []entities.BreakdownLine{
				{MaterialID: "1", Name: "Tijolo", Unit: "m²", UnitPrice: 25.5, Quantity: 10, MaterialCost: 255, LaborCost: 50},
			},
			LaborRatePerUnit: 5,
			MaterialsCost:    255,
			LaborCost:        50,
			FinishingCost:    100,
			Total:            405,
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()
	if r.Format() != entities.ExportFormatPDF {
		t.Fatalf("Format = %q", r.Format())
	}

	doc, err := r.Render(sampleInput())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(doc.Body, []byte("%PDF-")) {
		t.Fatalf("body is not a PDF")
	}
	if doc.ContentType != "application/pdf" {
		t.Fatalf("ContentType = %q", doc.ContentType)
	}
	if doc.FileName != "orcamento-remodelacao-20240309.pdf" {
		t.Fatalf("FileName = %q", doc.FileName)
	}
}

func TestRenderer_TextContent(t *testing.T) {
	r := &Renderer{compress: false}

	doc, err := r.Render(sampleInput())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"Tijolo", "25.50", "255.00", "100.00", "TOTAL: ", "405.00"} {
		if !bytes.Contains(doc.Body, []byte(want)) {
			t.Errorf("pdf missing %q", want)
		}
	}
}

func TestRenderer_ManyLinesBreakPages(t *testing.T) {
	in := sampleInput()
	in.Breakdown.Lines = nil
	for i := 0; i < 80; i++ {
		in.Breakdown.Lines = append(in.Breakdown.Lines, entities.BreakdownLine{
			MaterialID: fmt.Sprint(i), Name: fmt.Sprintf("Material %d", i), Quantity: 1,
		})
	}

	doc, err := (&Renderer{compress: false}).Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := bytes.Count(doc.Body, []byte("/Type /Page\n")); n < 2 {
		t.Fatalf("expected several pages, got %d", n)
	}
}
