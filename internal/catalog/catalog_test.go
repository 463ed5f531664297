package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/flordelima-golang/internal/models"
)

func TestDefault_HasStoreProducts(t *testing.T) {
	c := Default()

	assert.Len(t, c.All(), 19)

	p, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, 299.90, p.Price)

	p, ok = c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 149.90, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 189.90, *p.OriginalPrice)

	_, ok = c.Get(999)
	assert.False(t, ok)
}

func TestByCategory_NormalisesTag(t *testing.T) {
	c := Default()

	bySlug := c.ByCategory("cestas-romanticas")
	byLabel := c.ByCategory("Cestas Românticas")

	assert.NotEmpty(t, bySlug)
	assert.Equal(t, bySlug, byLabel)
	for _, p := range bySlug {
		assert.Contains(t, p.Category, "cestas-romanticas")
	}

	assert.Empty(t, c.ByCategory("nao-existe"))
	assert.Empty(t, c.ByCategory(""))
}

func TestSearch(t *testing.T) {
	c := New([]models.Product{
		{ID: 1, Name: "Buquê Elegante", Code: "Código: CRSU-AMOR", Category: []string{"buques"}},
		{ID: 2, Name: "Café da Manhã Especial", Code: "Código: CRFB-FELIZ", Category: []string{"cestas"}},
	})

	assert.Len(t, c.Search(""), 2)

	res := c.Search("bUqUe")
	require.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].ID)

	res = c.Search("crfb-feliz")
	require.Len(t, res, 1)
	assert.Equal(t, int64(2), res[0].ID)

	res = c.Search("cestas")
	require.Len(t, res, 1)
	assert.Equal(t, int64(2), res[0].ID)

	assert.Empty(t, c.Search("orquidea"))
}

func TestNew_IgnoresDuplicateIDs(t *testing.T) {
	c := New([]models.Product{
		{ID: 1, Name: "first"},
		{ID: 1, Name: "second"},
	})

	assert.Len(t, c.All(), 1)
	p, _ := c.Get(1)
	assert.Equal(t, "first", p.Name)
}

func TestCategories_SortedAndDistinct(t *testing.T) {
	cats := Default().Categories()
	require.NotEmpty(t, cats)

	slugs := make([]string, 0, len(cats))
	counts := map[string]int{}
	for _, cat := range cats {
		slugs = append(slugs, cat.Slug)
		counts[cat.Slug] = cat.ProductCount
	}
	assert.Contains(t, slugs, "buques")
	assert.Contains(t, slugs, "mais-vendidos")
	assert.IsIncreasing(t, slugs)
	assert.Equal(t, len(Default().ByCategory("buques")), counts["buques"])
}
