package services

import (
	"fmt"
	"net/url"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

// ResolveSections transforms a decoded shop document into the ordered,
// renderable section list. It is pure and total: dangling id references,
// unparsable image URLs and unrecognised directive types degrade to
// omission, never to an error. A partially inconsistent document still
// yields every section that can be built from it.
//
// Section ids are synthesised as "TYPE-index", where index is the
// directive's position in the original (unfiltered) sections array, so
// ids stay stable across re-resolutions of the same document. The FAQ
// section is always appended last, even when its item list is empty.
func ResolveSections(doc *domain.ShopDocument) []domain.Section {
	if doc == nil {
		return []domain.Section{}
	}

	banners := bannerLookup(doc.Banners)
	categories := categoryLookup(doc.Categories)
	shops := shopLookup(doc.Shops)
	tags := tagLookup(doc.Tags)

	sections := make([]domain.Section, 0, len(doc.Home.Sections)+1)
	for i, directive := range doc.Home.Sections {
		section, ok := resolveDirective(directive, i, banners, categories, shops, tags)
		if !ok {
			continue
		}
		sections = append(sections, section)
	}

	return append(sections, resolveFAQ(doc.Home.FAQ))
}

// resolveDirective dispatches one directive on its type. The boolean is
// false for unrecognised types; the directive still consumed its index.
func resolveDirective(
	d domain.SectionDirective,
	index int,
	banners map[string]domain.BannerEntry,
	categories map[string]domain.CategoryEntry,
	shops map[string]domain.ShopEntry,
	tags map[string]domain.TagEntry,
) (domain.Section, bool) {
	id := fmt.Sprintf("%s-%d", d.Type, index)

	switch d.Type {
	case domain.SectionTypeBanner:
		return domain.BannerSection{
			ID:      id,
			Banners: resolveBanners(d.List, banners),
		}, true

	case domain.SectionTypeFixedBanner:
		return domain.FixedBannerSection{
			ID:      id,
			Title:   titleOrEmpty(d.Title),
			Banners: resolveBanners(d.List, banners),
		}, true

	case domain.SectionTypeCategory:
		return domain.CategorySection{
			ID:         id,
			Title:      titleOrEmpty(d.Title),
			Categories: resolveCategories(d.List, categories),
		}, true

	case domain.SectionTypeShop:
		return domain.ShopGridSection{
			ID:    id,
			Title: titleOrEmpty(d.Title),
			Shops: resolveShops(d.List, shops, tags),
		}, true

	default:
		return nil, false
	}
}

// resolveFAQ builds the FAQ section. Item ids are synthesised from the
// FAQ block id and the item's position.
func resolveFAQ(faq domain.FAQBlock) domain.FAQSection {
	items := make([]domain.FAQItem, 0, len(faq.Sections))
	for i, entry := range faq.Sections {
		items = append(items, domain.FAQItem{
			ID:     fmt.Sprintf("%s-%d", faq.ID, i),
			Title:  entry.Title,
			Answer: entry.Description,
		})
	}

	return domain.FAQSection{
		ID:    faq.ID,
		Title: faq.Title,
		Items: items,
	}
}

func resolveBanners(ids []string, lookup map[string]domain.BannerEntry) []domain.Banner {
	resolved := make([]domain.Banner, 0, len(ids))
	for _, id := range ids {
		entry, ok := lookup[id]
		if !ok || !validURL(entry.ImageURL) {
			continue
		}
		resolved = append(resolved, domain.Banner{
			ID:       entry.ID,
			ImageURL: entry.ImageURL,
		})
	}
	return resolved
}

func resolveCategories(ids []string, lookup map[string]domain.CategoryEntry) []domain.Category {
	resolved := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		entry, ok := lookup[id]
		if !ok || !validURL(entry.IconURL) {
			continue
		}
		resolved = append(resolved, domain.Category{
			ID:      entry.ID,
			Title:   entry.Title,
			IconURL: entry.IconURL,
		})
	}
	return resolved
}

func resolveShops(
	ids []string,
	lookup map[string]domain.ShopEntry,
	tags map[string]domain.TagEntry,
) []domain.ShopItem {
	resolved := make([]domain.ShopItem, 0, len(ids))
	for _, id := range ids {
		entry, ok := lookup[id]
		if !ok || !validURL(entry.IconURL) {
			continue
		}
		resolved = append(resolved, domain.ShopItem{
			ID:      entry.ID,
			Title:   entry.Title,
			IconURL: entry.IconURL,
			Tags:    resolveTagTitles(entry.Tags, tags),
		})
	}
	return resolved
}

// resolveTagTitles maps tag ids to display titles, dropping dangling ids.
func resolveTagTitles(ids []string, lookup map[string]domain.TagEntry) []string {
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if tag, ok := lookup[id]; ok {
			titles = append(titles, tag.Title)
		}
	}
	return titles
}

// Lookup tables are built once per document. A duplicate id later in the
// source array overwrites the earlier entry (last-write-wins).

func bannerLookup(entries []domain.BannerEntry) map[string]domain.BannerEntry {
	lookup := make(map[string]domain.BannerEntry, len(entries))
	for _, e := range entries {
		lookup[e.ID] = e
	}
	return lookup
}

func categoryLookup(entries []domain.CategoryEntry) map[string]domain.CategoryEntry {
	lookup := make(map[string]domain.CategoryEntry, len(entries))
	for _, e := range entries {
		lookup[e.ID] = e
	}
	return lookup
}

func shopLookup(entries []domain.ShopEntry) map[string]domain.ShopEntry {
	lookup := make(map[string]domain.ShopEntry, len(entries))
	for _, e := range entries {
		lookup[e.ID] = e
	}
	return lookup
}

func tagLookup(entries []domain.TagEntry) map[string]domain.TagEntry {
	lookup := make(map[string]domain.TagEntry, len(entries))
	for _, e := range entries {
		lookup[e.ID] = e
	}
	return lookup
}

// validURL reports whether s parses as an absolute URL with a host.
// Entities with unusable image URLs are dropped from their section.
func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func titleOrEmpty(title *string) string {
	if title == nil {
		return ""
	}
	return *title
}
