package export

import (
	"bytes"
	"testing"

	"dishcovery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecipePDF(t *testing.T) {
	pdf := buildRecipePDF(models.RawDetailResult{
		ID:             42,
		Title:          "Tomato Soup",
		ReadyInMinutes: 25,
		Servings:       4,
		Instructions:   "<p>Simmer the tomatoes.</p>",
		Ingredients: []models.RawIngredient{
			{Original: "4 ripe tomatoes"},
			{Name: "basil", Amount: 1, Unit: "bunch"},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBuildRecipePDFEmptyDetail(t *testing.T) {
	pdf := buildRecipePDF(models.RawDetailResult{})
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.NotZero(t, buf.Len())
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Simmer the tomatoes.", stripHTML("<p>Simmer the <b>tomatoes</b>.</p>"))
	assert.Equal(t, "plain", stripHTML("plain"))
}
