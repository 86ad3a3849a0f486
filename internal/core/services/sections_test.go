package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

func strptr(s string) *string { return &s }

// fullDocument builds a document exercising every directive type plus
// the degenerate inputs resolution must tolerate.
func fullDocument() *domain.ShopDocument {
	return &domain.ShopDocument{
		Home: domain.HomeBlock{
			Search: true,
			FAQ: domain.FAQBlock{
				ID:    "faq",
				Title: "Questions",
				Sections: []domain.FAQEntry{
					{Title: "How do I order?", Description: "Tap a shop."},
					{Title: "Is delivery free?", Description: "Above a minimum."},
				},
			},
			Sections: []domain.SectionDirective{
				{Type: "BANNER", List: []string{"b1", "b-missing", "b-badurl"}},
				{Type: "MYSTERY", List: []string{"x"}},
				{Title: strptr("Browse"), Type: "CATEGORY", List: []string{"c1", "c2"}},
				{Title: strptr("Popular"), Type: "SHOP", List: []string{"s1", "s2", "s-missing"}},
				{Type: "FIXEDBANNER", List: []string{"b1"}},
			},
		},
		Banners: []domain.BannerEntry{
			{ID: "b1", ImageURL: "https://cdn.example.com/b1.png"},
			{ID: "b-badurl", ImageURL: "not a url"},
		},
		Categories: []domain.CategoryEntry{
			{ID: "c1", Title: "Food", IconURL: "https://cdn.example.com/c1.png"},
			{ID: "c2", Title: "Broken", IconURL: "://nope"},
		},
		Shops: []domain.ShopEntry{
			{ID: "s1", Title: "Grill House", IconURL: "https://cdn.example.com/s1.png", Tags: []string{"t1", "t-missing"}},
			{ID: "s2", Title: "Green Grocer", IconURL: "https://cdn.example.com/s2.png"},
		},
		Tags: []domain.TagEntry{
			{ID: "t1", Title: "Kebab"},
		},
	}
}

func TestResolveSections_FullDocument(t *testing.T) {
	sections := ResolveSections(fullDocument())

	// Five directives, one unrecognised, plus the FAQ.
	require.Len(t, sections, 5)

	banner, ok := sections[0].(domain.BannerSection)
	require.True(t, ok)
	assert.Equal(t, "BANNER-0", banner.ID)
	require.Len(t, banner.Banners, 1)
	assert.Equal(t, "https://cdn.example.com/b1.png", banner.Banners[0].ImageURL)

	category, ok := sections[1].(domain.CategorySection)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY-2", category.ID)
	assert.Equal(t, "Browse", category.Title)
	require.Len(t, category.Categories, 1)
	assert.Equal(t, "Food", category.Categories[0].Title)

	grid, ok := sections[2].(domain.ShopGridSection)
	require.True(t, ok)
	assert.Equal(t, "SHOP-3", grid.ID)
	assert.Equal(t, "Popular", grid.Title)
	require.Len(t, grid.Shops, 2)
	assert.Equal(t, []string{"Kebab"}, grid.Shops[0].Tags)

	fixed, ok := sections[3].(domain.FixedBannerSection)
	require.True(t, ok)
	assert.Equal(t, "FIXEDBANNER-4", fixed.ID)
	assert.Equal(t, "", fixed.Title)

	faq, ok := sections[4].(domain.FAQSection)
	require.True(t, ok)
	assert.Equal(t, "faq", faq.ID)
	require.Len(t, faq.Items, 2)
	assert.Equal(t, "faq-0", faq.Items[0].ID)
	assert.Equal(t, "faq-1", faq.Items[1].ID)
	assert.Equal(t, "Tap a shop.", faq.Items[0].Answer)
}

func TestResolveSections_UnknownTypeConsumesIndex(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			Sections: []domain.SectionDirective{
				{Type: "MYSTERY"},
				{Type: "BANNER"},
			},
		},
	}

	sections := ResolveSections(doc)

	require.Len(t, sections, 2) // banner + FAQ
	assert.Equal(t, "BANNER-1", sections[0].SectionID())
}

func TestResolveSections_SectionIDsStableAcrossRuns(t *testing.T) {
	doc := fullDocument()

	first := ResolveSections(doc)
	second := ResolveSections(doc)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SectionID(), second[i].SectionID())
	}
}

func TestResolveSections_FAQAlwaysLast(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		sections := ResolveSections(&domain.ShopDocument{})

		require.Len(t, sections, 1)
		faq, ok := sections[0].(domain.FAQSection)
		require.True(t, ok)
		assert.Empty(t, faq.Items)
	})

	t.Run("full document", func(t *testing.T) {
		sections := ResolveSections(fullDocument())

		assert.Equal(t, domain.KindFAQ, sections[len(sections)-1].Kind())
	})
}

func TestResolveSections_NilDocument(t *testing.T) {
	sections := ResolveSections(nil)

	assert.NotNil(t, sections)
	assert.Empty(t, sections)
}

func TestResolveSections_DanglingIDsAndBadURLsAreDropped(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			Sections: []domain.SectionDirective{
				{Type: "SHOP", List: []string{"missing", "badurl", "ok"}},
			},
		},
		Shops: []domain.ShopEntry{
			{ID: "badurl", Title: "No Icon", IconURL: "not a url"},
			{ID: "ok", Title: "Fine", IconURL: "https://cdn.example.com/ok.png"},
		},
	}

	sections := ResolveSections(doc)

	grid := sections[0].(domain.ShopGridSection)
	require.Len(t, grid.Shops, 1)
	assert.Equal(t, "ok", grid.Shops[0].ID)
}

func TestResolveSections_AllDanglingListStillYieldsSection(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			Sections: []domain.SectionDirective{
				{Type: "BANNER", List: []string{"ghost1", "ghost2"}},
			},
		},
	}

	sections := ResolveSections(doc)

	require.Len(t, sections, 2)
	banner := sections[0].(domain.BannerSection)
	assert.Equal(t, "BANNER-0", banner.ID)
	assert.Empty(t, banner.Banners)
}

func TestResolveSections_HomeFeedScenario(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			FAQ: domain.FAQBlock{
				ID: "faq-block",
				Sections: []domain.FAQEntry{
					{Title: "One", Description: "First answer."},
					{Title: "Two", Description: "Second answer."},
				},
			},
			Sections: []domain.SectionDirective{
				{Type: "BANNER", List: []string{"b1", "b2", "dangling"}},
				{Type: "SHOP", List: []string{"s1", "s2", "s3"}},
			},
		},
		Banners: []domain.BannerEntry{
			{ID: "b1", ImageURL: "https://cdn.example.com/b1.png"},
			{ID: "b2", ImageURL: "https://cdn.example.com/b2.png"},
		},
		Shops: []domain.ShopEntry{
			{ID: "s1", Title: "One", IconURL: "https://cdn.example.com/s1.png"},
			{ID: "s2", Title: "Two", IconURL: "https://cdn.example.com/s2.png"},
			{ID: "s3", Title: "Three", IconURL: "https://cdn.example.com/s3.png"},
		},
	}

	sections := ResolveSections(doc)

	require.Len(t, sections, 3)

	banner := sections[0].(domain.BannerSection)
	assert.Equal(t, "BANNER-0", banner.ID)
	require.Len(t, banner.Banners, 2)
	assert.Equal(t, "b1", banner.Banners[0].ID)
	assert.Equal(t, "b2", banner.Banners[1].ID)

	grid := sections[1].(domain.ShopGridSection)
	assert.Equal(t, "SHOP-1", grid.ID)
	require.Len(t, grid.Shops, 3)

	faq := sections[2].(domain.FAQSection)
	assert.Equal(t, "faq-block", faq.ID)
	require.Len(t, faq.Items, 2)
	assert.Equal(t, "faq-block-0", faq.Items[0].ID)
	assert.Equal(t, "faq-block-1", faq.Items[1].ID)
}

func TestResolveSections_DuplicateCatalogueIDLastWriteWins(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			Sections: []domain.SectionDirective{
				{Type: "BANNER", List: []string{"b1"}},
			},
		},
		Banners: []domain.BannerEntry{
			{ID: "b1", ImageURL: "https://cdn.example.com/old.png"},
			{ID: "b1", ImageURL: "https://cdn.example.com/new.png"},
		},
	}

	sections := ResolveSections(doc)

	banner := sections[0].(domain.BannerSection)
	require.Len(t, banner.Banners, 1)
	assert.Equal(t, "https://cdn.example.com/new.png", banner.Banners[0].ImageURL)
}

func TestResolveSections_DuplicateIDInDirectiveListRepeats(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			Sections: []domain.SectionDirective{
				{Type: "BANNER", List: []string{"b1", "b1"}},
			},
		},
		Banners: []domain.BannerEntry{
			{ID: "b1", ImageURL: "https://cdn.example.com/b1.png"},
		},
	}

	sections := ResolveSections(doc)

	banner := sections[0].(domain.BannerSection)
	assert.Len(t, banner.Banners, 2)
}

func TestResolveSections_MissingTitleDefaultsToEmpty(t *testing.T) {
	doc := &domain.ShopDocument{
		Home: domain.HomeBlock{
			Sections: []domain.SectionDirective{
				{Type: "CATEGORY"},
			},
		},
	}

	sections := ResolveSections(doc)

	category := sections[0].(domain.CategorySection)
	assert.Equal(t, "", category.Title)
}

func TestValidURL(t *testing.T) {
	assert.True(t, validURL("https://cdn.example.com/a.png"))
	assert.True(t, validURL("http://host/path"))
	assert.False(t, validURL(""))
	assert.False(t, validURL("not a url"))
	assert.False(t, validURL("/relative/path"))
	assert.False(t, validURL("mailto:a@b.c")) // no host
}
