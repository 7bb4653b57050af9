package structs

// Product ids are plain integers assigned max(existing)+1 on create, so they
// double as an insertion-recency proxy ("newest" sorts by id descending).
type Product struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // Iraqi dinar, whole units
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"` // may be <= 0, meaning sold out
}

type ProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Price       int64    `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images"`
	Description string   `json:"description" validate:"max=2000"`
	Stock       int      `json:"stock"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SiteContent is a singleton record; the FAQ list has no partial-edit
// surface, it is replaced wholesale with the rest of the record.
type SiteContent struct {
	About   string     `json:"about"`
	Terms   string     `json:"terms"`
	Privacy string     `json:"privacy"`
	Returns string     `json:"returns"`
	FAQ     []FAQEntry `json:"faq"`
}

// BrandingRequest carries a hero-image or logo URL. An empty URL removes the
// persisted value instead of storing an empty string.
type BrandingRequest struct {
	URL string `json:"url"`
}

// Sort keys accepted by the product listing.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// CategoryAll is the "no category filter" sentinel.
const CategoryAll = "all"

// ProductFilter is the stateless view/filter input for the product listing.
type ProductFilter struct {
	Category string
	Query    string
	Sort     string
}
