package services

import (
	"context"
	"rosea_server/lib"
	"rosea_server/storage"
	"rosea_server/structs"
	"sort"
	"strings"

	"github.com/MonkyMars/gecho"
)

// placeholderImage keeps every product displayable when created without
// images.
const placeholderImage = "https://picsum.photos/400/400"

// CatalogService owns the product list, category list, branding singletons
// and the site content record. Every mutation persists the whole affected
// slice back through the store; reads fall back to the bundled defaults.
type CatalogService struct {
	logger *gecho.Logger
	store  storage.Store
}

func NewCatalogService(logger *gecho.Logger, store storage.Store) *CatalogService {
	return &CatalogService{
		logger: logger,
		store:  store,
	}
}

func (cs *CatalogService) Products(ctx context.Context) []structs.Product {
	return storage.Read(ctx, cs.store, storage.KeyProducts, structs.DefaultProducts())
}

func (cs *CatalogService) ProductByID(ctx context.Context, id int) (*structs.Product, error) {
	for _, p := range cs.Products(ctx) {
		if p.Id == id {
			return &p, nil
		}
	}
	return nil, lib.ErrNotFound
}

// AddProduct assigns id = max(existing ids, 0) + 1 and prepends the product,
// so ids stay strictly increasing and unique even after deletes and the list
// keeps newest-first ordering.
func (cs *CatalogService) AddProduct(ctx context.Context, req *structs.ProductRequest) structs.Product {
	products := cs.Products(ctx)

	maxId := 0
	for _, p := range products {
		if p.Id > maxId {
			maxId = p.Id
		}
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	product := structs.Product{
		Id:          maxId + 1,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Images:      images,
		Description: req.Description,
		Stock:       req.Stock,
	}

	products = append([]structs.Product{product}, products...)
	cs.persistProducts(ctx, products)

	cs.logger.Debug("Product added", gecho.Field("product_id", product.Id), gecho.Field("name", product.Name))
	return product
}

// UpdateProduct replaces the entry with a matching id. A miss is a no-op and
// reported via the return value.
func (cs *CatalogService) UpdateProduct(ctx context.Context, product structs.Product) bool {
	products := cs.Products(ctx)

	found := false
	for i, p := range products {
		if p.Id == product.Id {
			products[i] = product
			found = true
			break
		}
	}
	if !found {
		return false
	}

	cs.persistProducts(ctx, products)
	return true
}

func (cs *CatalogService) DeleteProduct(ctx context.Context, id int) bool {
	products := cs.Products(ctx)

	kept := products[:0]
	found := false
	for _, p := range products {
		if p.Id == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return false
	}

	cs.persistProducts(ctx, kept)
	return true
}

func (cs *CatalogService) Categories(ctx context.Context) []string {
	return storage.Read(ctx, cs.store, storage.KeyCategories, structs.DefaultCategories())
}

// AddCategory appends the name if it is non-empty and not already present.
// Matching is case-sensitive and exact.
func (cs *CatalogService) AddCategory(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return lib.ErrMissingFields
	}

	categories := cs.Categories(ctx)
	for _, c := range categories {
		if c == name {
			return lib.ErrConflict
		}
	}

	categories = append(categories, name)
	storage.Write(ctx, cs.store, storage.KeyCategories, categories)
	return nil
}

// DeleteCategory removes the name from the category list. Products keep
// their (now dangling) category string; callers owning a category filter
// reset it to the "all" sentinel themselves.
func (cs *CatalogService) DeleteCategory(ctx context.Context, name string) {
	categories := cs.Categories(ctx)

	kept := categories[:0]
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}

	storage.Write(ctx, cs.store, storage.KeyCategories, kept)
}

func (cs *CatalogService) HeroImage(ctx context.Context) string {
	return storage.Read(ctx, cs.store, storage.KeyHeroImage, "")
}

func (cs *CatalogService) Logo(ctx context.Context) string {
	return storage.Read(ctx, cs.store, storage.KeyLogo, "")
}

// UpdateHeroImage replaces the singleton value. An empty URL removes the
// persisted key entirely rather than storing an empty string.
func (cs *CatalogService) UpdateHeroImage(ctx context.Context, url string) {
	cs.updateSingleton(ctx, storage.KeyHeroImage, url)
}

func (cs *CatalogService) UpdateLogo(ctx context.Context, url string) {
	cs.updateSingleton(ctx, storage.KeyLogo, url)
}

func (cs *CatalogService) updateSingleton(ctx context.Context, key, value string) {
	if value == "" {
		if err := cs.store.Remove(ctx, key); err != nil {
			cs.logger.Error("Failed to remove key", gecho.Field("key", key), gecho.Field("error", err))
		}
		return
	}
	storage.Write(ctx, cs.store, key, value)
}

func (cs *CatalogService) SiteContent(ctx context.Context) structs.SiteContent {
	return storage.Read(ctx, cs.store, storage.KeySiteContent, structs.DefaultSiteContent())
}

// UpdateSiteContent replaces the content record wholesale, FAQ included.
func (cs *CatalogService) UpdateSiteContent(ctx context.Context, content structs.SiteContent) {
	storage.Write(ctx, cs.store, storage.KeySiteContent, content)
}

// ResetData removes every persisted key so each store reinitializes from the
// bundled defaults on its next read. Best effort: a failed removal is logged
// and the remaining keys are still attempted.
func (cs *CatalogService) ResetData(ctx context.Context) {
	for _, key := range storage.AllKeys() {
		if err := cs.store.Remove(ctx, key); err != nil {
			cs.logger.Error("Failed to remove key during factory reset",
				gecho.Field("key", key),
				gecho.Field("error", err),
			)
		}
	}
	cs.logger.Info("Factory reset completed")
}

func (cs *CatalogService) persistProducts(ctx context.Context, products []structs.Product) {
	storage.Write(ctx, cs.store, storage.KeyProducts, products)
}

// FilterProducts derives the visible product subset: category exact match
// (unless the "all" sentinel), case-insensitive substring query over name and
// description, then the requested sort. Pure: the input slice is not
// modified.
func FilterProducts(products []structs.Product, filter structs.ProductFilter) []structs.Product {
	result := make([]structs.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, p := range products {
		if filter.Category != "" && filter.Category != structs.CategoryAll && p.Category != filter.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		result = append(result, p)
	}

	switch filter.Sort {
	case structs.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case structs.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	default: // newest: descending id is a proxy for insertion recency
		sort.SliceStable(result, func(i, j int) bool { return result[i].Id > result[j].Id })
	}

	return result
}
