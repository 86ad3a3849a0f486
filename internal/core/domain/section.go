package domain

// Directive types recognised by section resolution. Any other value in a
// directive's Type field yields no section.
const (
	SectionTypeBanner      = "BANNER"
	SectionTypeFixedBanner = "FIXEDBANNER"
	SectionTypeCategory    = "CATEGORY"
	SectionTypeShop        = "SHOP"
)

// SectionKind identifies a Section variant for rendering dispatch.
type SectionKind int

const (
	// KindBanner is a swipeable banner carousel.
	KindBanner SectionKind = iota
	// KindFixedBanner is a titled, non-scrolling banner row.
	KindFixedBanner
	// KindCategory is a horizontally scrolling category row.
	KindCategory
	// KindShopGrid is a grid of shop tiles.
	KindShopGrid
	// KindFAQ is the expandable FAQ list, always last.
	KindFAQ
)

// String returns the string representation of the section kind.
func (k SectionKind) String() string {
	switch k {
	case KindBanner:
		return "banner"
	case KindFixedBanner:
		return "fixed-banner"
	case KindCategory:
		return "category"
	case KindShopGrid:
		return "shop-grid"
	case KindFAQ:
		return "faq"
	default:
		return "unknown"
	}
}

// Section is one resolved, renderable section of the home feed.
// The variant set is closed: BannerSection, FixedBannerSection,
// CategorySection, ShopGridSection and FAQSection. Renderers dispatch
// with a type switch over these five types.
//
// SectionID is stable across re-resolutions of the same document, so a
// diffing UI layer can use it as reuse identity.
type Section interface {
	SectionID() string
	Kind() SectionKind

	// section is the sealing marker; only this package can add variants.
	section()
}

// Banner is a resolved banner with a validated image URL.
type Banner struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// Category is a resolved category with a validated icon URL.
type Category struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	IconURL string `json:"iconUrl"`
}

// ShopItem is a resolved shop tile. Tags holds display titles resolved
// from the tag catalogue, not ids.
type ShopItem struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	IconURL string   `json:"iconUrl"`
	Tags    []string `json:"tags"`
}

// FAQItem is a single resolved question/answer pair.
type FAQItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Answer string `json:"answer"`
}

// BannerSection is a swipeable banner carousel.
type BannerSection struct {
	ID      string   `json:"id"`
	Banners []Banner `json:"banners"`
}

// FixedBannerSection is a titled banner row.
type FixedBannerSection struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Banners []Banner `json:"banners"`
}

// CategorySection is a row of category chips.
type CategorySection struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
}

// ShopGridSection is a grid of shop tiles.
type ShopGridSection struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Shops []ShopItem `json:"shops"`
}

// FAQSection is the expandable FAQ list appended after all directive
// sections.
type FAQSection struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

// SectionID implements Section.
func (s BannerSection) SectionID() string { return s.ID }

// Kind implements Section.
func (s BannerSection) Kind() SectionKind { return KindBanner }

func (s BannerSection) section() {}

// SectionID implements Section.
func (s FixedBannerSection) SectionID() string { return s.ID }

// Kind implements Section.
func (s FixedBannerSection) Kind() SectionKind { return KindFixedBanner }

func (s FixedBannerSection) section() {}

// SectionID implements Section.
func (s CategorySection) SectionID() string { return s.ID }

// Kind implements Section.
func (s CategorySection) Kind() SectionKind { return KindCategory }

func (s CategorySection) section() {}

// SectionID implements Section.
func (s ShopGridSection) SectionID() string { return s.ID }

// Kind implements Section.
func (s ShopGridSection) Kind() SectionKind { return KindShopGrid }

func (s ShopGridSection) section() {}

// SectionID implements Section.
func (s FAQSection) SectionID() string { return s.ID }

// Kind implements Section.
func (s FAQSection) Kind() SectionKind { return KindFAQ }

func (s FAQSection) section() {}
