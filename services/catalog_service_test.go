package services

import (
	"context"
	"testing"

	"rosea_server/lib"
	"rosea_server/storage"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService() *CatalogService {
	return NewCatalogService(gecho.NewDefaultLogger(), storage.NewMemoryStore())
}

func TestProductsDefaultDataset(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	products := cs.Products(ctx)
	require.Len(t, products, 9)
	assert.Equal(t, 1, products[0].Id)

	categories := cs.Categories(ctx)
	assert.Len(t, categories, 5)
}

func TestAddProductAssignsMonotonicIds(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	first := cs.AddProduct(ctx, &structs.ProductRequest{Name: "منتج جديد", Price: 2500, Category: structs.CategoryTools})
	assert.Equal(t, 10, first.Id)

	// New products go to the front of the list.
	assert.Equal(t, first.Id, cs.Products(ctx)[0].Id)

	// Deleting the highest id must not let it be reused.
	require.True(t, cs.DeleteProduct(ctx, first.Id))
	second := cs.AddProduct(ctx, &structs.ProductRequest{Name: "منتج آخر", Price: 1000, Category: structs.CategoryTools})
	assert.Equal(t, 10, second.Id)

	third := cs.AddProduct(ctx, &structs.ProductRequest{Name: "ثالث", Price: 500, Category: structs.CategoryTools})
	assert.Equal(t, 11, third.Id)
}

func TestAddProductFillsPlaceholderImage(t *testing.T) {
	cs := newTestCatalogService()

	product := cs.AddProduct(context.Background(), &structs.ProductRequest{Name: "بدون صور", Price: 100, Category: structs.CategoryTools})
	require.Len(t, product.Images, 1)
	assert.Equal(t, placeholderImage, product.Images[0])
}

func TestUpdateProductUnknownId(t *testing.T) {
	cs := newTestCatalogService()

	ok := cs.UpdateProduct(context.Background(), structs.Product{Id: 999, Name: "غير موجود"})
	assert.False(t, ok)
}

func TestProductByID(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	product, err := cs.ProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "شريط ستان", product.Name)

	_, err = cs.ProductByID(ctx, 999)
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestAddCategoryRejectsDuplicatesAndBlank(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	assert.ErrorIs(t, cs.AddCategory(ctx, "  "), lib.ErrMissingFields)
	assert.ErrorIs(t, cs.AddCategory(ctx, structs.CategoryTools), lib.ErrConflict)

	require.NoError(t, cs.AddCategory(ctx, "قسم جديد"))
	assert.Contains(t, cs.Categories(ctx), "قسم جديد")
}

func TestDeleteCategoryLeavesProductsDangling(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	cs.DeleteCategory(ctx, structs.CategoryRibbons)
	assert.NotContains(t, cs.Categories(ctx), structs.CategoryRibbons)

	// Products keep their category string even after the category is gone.
	product, err := cs.ProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, structs.CategoryRibbons, product.Category)
}

func TestBrandingSingletons(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	assert.Empty(t, cs.HeroImage(ctx))

	cs.UpdateHeroImage(ctx, "https://example.com/hero.jpg")
	assert.Equal(t, "https://example.com/hero.jpg", cs.HeroImage(ctx))

	// Empty URL removes the stored value instead of persisting "".
	cs.UpdateHeroImage(ctx, "")
	assert.Empty(t, cs.HeroImage(ctx))

	cs.UpdateLogo(ctx, "https://example.com/logo.png")
	assert.Equal(t, "https://example.com/logo.png", cs.Logo(ctx))
}

func TestResetDataRestoresDefaults(t *testing.T) {
	cs := newTestCatalogService()
	ctx := context.Background()

	cs.AddProduct(ctx, &structs.ProductRequest{Name: "مؤقت", Price: 100, Category: structs.CategoryTools})
	require.NoError(t, cs.AddCategory(ctx, "قسم مؤقت"))
	cs.UpdateHeroImage(ctx, "https://example.com/hero.jpg")

	cs.ResetData(ctx)

	assert.Len(t, cs.Products(ctx), 9)
	assert.Equal(t, structs.DefaultCategories(), cs.Categories(ctx))
	assert.Empty(t, cs.HeroImage(ctx))
}

func TestFilterProductsCategoryAndQuery(t *testing.T) {
	products := structs.DefaultProducts()

	// Category filter with the "all" sentinel is a no-op.
	all := FilterProducts(products, structs.ProductFilter{Category: structs.CategoryAll})
	assert.Len(t, all, len(products))

	ribbons := FilterProducts(products, structs.ProductFilter{Category: structs.CategoryRibbons})
	require.NotEmpty(t, ribbons)
	for _, p := range ribbons {
		assert.Equal(t, structs.CategoryRibbons, p.Category)
	}

	// Query matches name or description, case-insensitively.
	matched := FilterProducts(products, structs.ProductFilter{Query: "شمع"})
	require.Len(t, matched, 1)
	assert.Equal(t, "مسدس شمع حراري احترافي", matched[0].Name)
}

func TestFilterProductsCategoryWithPriceSort(t *testing.T) {
	products := append(structs.DefaultProducts(), structs.Product{
		Id: 10, Name: "قالب قص", Price: 2000, Category: structs.CategoryTools,
	})

	result := FilterProducts(products, structs.ProductFilter{
		Category: structs.CategoryTools,
		Sort:     structs.SortPriceAsc,
	})

	require.NotEmpty(t, result)
	for i, p := range result {
		assert.Equal(t, structs.CategoryTools, p.Category)
		if i > 0 {
			assert.LessOrEqual(t, result[i-1].Price, p.Price)
		}
	}
}

func TestFilterProductsSorting(t *testing.T) {
	products := structs.DefaultProducts()

	asc := FilterProducts(products, structs.ProductFilter{Sort: structs.SortPriceAsc})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := FilterProducts(products, structs.ProductFilter{Sort: structs.SortPriceDesc})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}

	newest := FilterProducts(products, structs.ProductFilter{Sort: structs.SortNewest})
	for i := 1; i < len(newest); i++ {
		assert.Greater(t, newest[i-1].Id, newest[i].Id)
	}

	// Pure: input order is untouched.
	assert.Equal(t, 1, products[0].Id)
}
