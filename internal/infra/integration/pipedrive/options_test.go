package pipedrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoicingOptionID(t *testing.T) {
	id, ok := InvoicingOptionID("Até R$100 mil/ano")
	assert.True(t, ok)
	assert.Equal(t, 173, id)

	_, ok = InvoicingOptionID("R$1 zilhão/ano")
	assert.False(t, ok, "valor não mapeado vira omissão, não erro")
}

func TestCollaboratorsOptionID(t *testing.T) {
	id, ok := CollaboratorsOptionID("apenas eu")
	assert.True(t, ok)
	assert.Equal(t, 178, id)

	id, ok = CollaboratorsOptionID("+200")
	assert.True(t, ok)
	assert.Equal(t, 183, id)
}

func TestChallengeOptionIDsDescartaNaoMapeados(t *testing.T) {
	ids := ChallengeOptionIDs([]string{
		"Não sei como cobrar o valor justo ou demonstrar o ROI da solução de IA para o cliente.",
		"texto que não existe no mapa",
	})

	assert.Equal(t, []int{186}, ids)
}

func TestChallengeOptionIDsVazio(t *testing.T) {
	assert.Nil(t, ChallengeOptionIDs(nil))
	assert.Nil(t, ChallengeOptionIDs([]string{"nada mapeado"}))
}
