// Package export renders recipe detail documents into downloadable PDFs.
package export

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"dishcovery/models"
	"dishcovery/normalize"
	"dishcovery/provider"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
)

// RecipePDF fetches the recipe detail and streams it as a PDF.
func RecipePDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	detail, err := provider.DefaultClient.Detail(r.Context(), id)
	if err != nil {
		log.Printf("export: detail for %s failed: %v", id, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	pdf := buildRecipePDF(*detail)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "recipe-"+id+".pdf"))
	if err := pdf.Output(w); err != nil {
		log.Printf("export: pdf output for %s failed: %v", id, err)
	}
}

func buildRecipePDF(detail models.RawDetailResult) *gofpdf.Fpdf {
	ref := normalize.FromDetail(detail)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, ref.Title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	meta := []string{}
	if detail.ReadyInMinutes > 0 {
		meta = append(meta, fmt.Sprintf("Ready in %d min", detail.ReadyInMinutes))
	}
	if detail.Servings > 0 {
		meta = append(meta, fmt.Sprintf("Serves %d", detail.Servings))
	}
	if len(ref.Tags) > 0 {
		meta = append(meta, strings.Join(ref.Tags, " / "))
	}
	if len(meta) > 0 {
		pdf.MultiCell(0, 6, strings.Join(meta, "  |  "), "", "L", false)
		pdf.Ln(4)
	}

	if len(detail.Ingredients) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Ingredients", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, ing := range detail.Ingredients {
			line := ing.Original
			if line == "" {
				line = strings.TrimSpace(fmt.Sprintf("%g %s %s", ing.Amount, ing.Unit, ing.Name))
			}
			pdf.MultiCell(0, 6, "- "+line, "", "L", false)
		}
		pdf.Ln(4)
	}

	if detail.Instructions != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, stripHTML(detail.Instructions), "", "L", false)
	}

	return pdf
}

// stripHTML flattens the provider's HTML instruction markup to plain text.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
