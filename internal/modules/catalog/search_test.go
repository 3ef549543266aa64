package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_CeramicAgainstSampleCatalog(t *testing.T) {
	products := SampleProducts()

	out := Search(products, "ceramic")

	// matches by name (bowl, mug) and by description (the candle set's
	// "reusable ceramic vessels")
	assert.Equal(t, []string{"1", "7", "8"}, productIDs(out))
}

func TestSearch_IsCaseInsensitive(t *testing.T) {
	products := SampleProducts()

	assert.Equal(t, productIDs(Search(products, "CERAMIC")), productIDs(Search(products, "ceramic")))
	assert.Equal(t, []string{"2"}, productIDs(Search(products, "LEATHER")))
}

func TestSearch_MatchesMaterials(t *testing.T) {
	products := SampleProducts()

	out := Search(products, "walnut")

	assert.Equal(t, []string{"5"}, productIDs(out))
}

func TestSearch_NoMatches(t *testing.T) {
	out := Search(SampleProducts(), "submarine")

	assert.Empty(t, out)
}

func TestService_SearchEmptyQueryGroupsByCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository(SampleProducts()))

	result, err := svc.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, result.Results)
	require.NotNil(t, result.Categories)
	assert.Len(t, result.Categories["Pottery"], 2)
	assert.Len(t, result.Categories["Jewelry"], 1)
}

func TestService_ArtisanProfile(t *testing.T) {
	svc := NewService(NewMemoryRepository(SampleProducts()))

	profile, err := svc.ArtisanProfile(context.Background(), "artisan-1")
	require.NoError(t, err)
	assert.True(t, profile.Found)
	assert.Equal(t, "Sarah Mitchell", profile.Artisan.Name)
	assert.Len(t, profile.Products, 2)

	// unknown artisan renders a placeholder, not an error
	profile, err = svc.ArtisanProfile(context.Background(), "artisan-99")
	require.NoError(t, err)
	assert.False(t, profile.Found)
	assert.Empty(t, profile.Products)
}

func TestService_CategoriesAndMaterials(t *testing.T) {
	svc := NewService(NewMemoryRepository(SampleProducts()))

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pottery", "Leather Goods", "Textiles", "Jewelry", "Woodwork", "Baskets", "Candles"}, categories)

	materials, err := svc.Materials(context.Background())
	require.NoError(t, err)
	assert.Contains(t, materials, "Ceramic")
	assert.Contains(t, materials, "Stoneware")
	// first appearance order
	assert.Equal(t, "Ceramic", materials[0])
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := NewMemoryRepository(SampleProducts())

	p, err := repo.GetByID(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Artisan Necklace", p.Name)

	_, err = repo.GetByID(context.Background(), "99")
	assert.Error(t, err)
}
