package domain

// ShopDocument is the decoded shape of the remote shop JSON document.
// It is denormalised: flat entity arrays keyed by id, plus an ordered
// list of section directives under Home that reference entities by id.
type ShopDocument struct {
	// Home describes the page layout: section directives and the FAQ block.
	Home HomeBlock `json:"home"`

	// Categories is the flat category catalogue.
	Categories []CategoryEntry `json:"categories"`

	// Shops is the flat shop catalogue.
	Shops []ShopEntry `json:"shops"`

	// Banners is the flat banner catalogue.
	Banners []BannerEntry `json:"banners"`

	// Tags is the flat tag catalogue, referenced by shop entries.
	Tags []TagEntry `json:"tags"`

	// Labels is the flat label catalogue. Decoded for completeness;
	// section resolution does not consume it.
	Labels []LabelEntry `json:"labels"`
}

// HomeBlock is the layout portion of the shop document.
type HomeBlock struct {
	// Search indicates whether the search surface is enabled for this page.
	Search bool `json:"search"`

	// FAQ is the FAQ block, always rendered as the final section.
	FAQ FAQBlock `json:"faq"`

	// Sections is the ordered list of section directives.
	Sections []SectionDirective `json:"sections"`
}

// SectionDirective describes one rendered section: its type and the
// entity ids it should display, in display order.
type SectionDirective struct {
	Title   *string  `json:"title"`
	Type    string   `json:"type"`
	SubType *string  `json:"subType"`
	List    []string `json:"list"`
}

// FAQBlock is the wire shape of the FAQ section.
type FAQBlock struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Sections []FAQEntry `json:"sections"`
}

// FAQEntry is a single question/answer pair on the wire.
type FAQEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BannerEntry is a banner as it appears in the flat catalogue.
type BannerEntry struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// CategoryEntry is a category as it appears in the flat catalogue.
type CategoryEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	IconURL string `json:"iconUrl"`
	Status  string `json:"status"`
}

// ShopEntry is a shop as it appears in the flat catalogue.
// Tags, Labels and Categories hold ids into the respective catalogues.
type ShopEntry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	IconURL    string    `json:"iconUrl"`
	Labels     []string  `json:"labels"`
	Tags       []string  `json:"tags"`
	Categories []string  `json:"categories"`
	About      AboutInfo `json:"about"`
	Type       []string  `json:"type"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
}

// AboutInfo is the descriptive blurb attached to a shop entry.
type AboutInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TagEntry is a tag as it appears in the flat catalogue.
type TagEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	IconURL string `json:"iconUrl"`
	Status  string `json:"status"`
}

// LabelEntry is a label as it appears in the flat catalogue.
type LabelEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}
