package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shopfeed-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
)

var homeJSON bool

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Fetch and render the resolved home feed",
	Long: `Fetches the shop document and resolves it into the ordered section
list: banners, fixed banners, category rows, shop grids and the FAQ.

Entries referencing unknown ids or invalid URLs are dropped during
resolution; the FAQ section always renders last.`,
	RunE: runHome,
}

func init() {
	homeCmd.Flags().BoolVar(&homeJSON, "json", false, "output sections as JSON")
	rootCmd.AddCommand(homeCmd)
}

// sectionEnvelope is the JSON shape for one resolved section: the
// stable id and kind plus the variant payload.
type sectionEnvelope struct {
	ID      string         `json:"id"`
	Kind    string         `json:"kind"`
	Section domain.Section `json:"section"`
}

func runHome(cmd *cobra.Command, _ []string) error {
	svc, err := requireShopService()
	if err != nil {
		return err
	}

	sections, err := svc.FetchSections(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch home feed: %w", err)
	}

	if homeJSON {
		return outputHomeJSON(cmd, sections)
	}
	return outputHomeStyled(cmd, sections)
}

func outputHomeJSON(cmd *cobra.Command, sections []domain.Section) error {
	envelopes := make([]sectionEnvelope, 0, len(sections))
	for _, s := range sections {
		envelopes = append(envelopes, sectionEnvelope{
			ID:      s.SectionID(),
			Kind:    s.Kind().String(),
			Section: s,
		})
	}

	data, err := json.MarshalIndent(envelopes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHomeStyled(cmd *cobra.Command, sections []domain.Section) error {
	styles := tui.DefaultStyles()

	if len(sections) == 0 {
		cmd.Println(styles.Muted.Render("The home feed is empty."))
		return nil
	}

	for _, s := range sections {
		cmd.Println(renderSection(styles, s))
		cmd.Println()
	}
	return nil
}

// renderSection dispatches over the closed variant set.
func renderSection(styles *tui.Styles, s domain.Section) string {
	header := styles.Title.Render(sectionHeader(s))

	switch sec := s.(type) {
	case domain.BannerSection:
		return header + renderBanners(styles, sec.Banners)
	case domain.FixedBannerSection:
		return header + renderBanners(styles, sec.Banners)
	case domain.CategorySection:
		out := header
		for _, c := range sec.Categories {
			out += "\n  " + styles.Normal.Render(c.Title) + " " + styles.Muted.Render(c.IconURL)
		}
		return out
	case domain.ShopGridSection:
		out := header
		for _, shop := range sec.Shops {
			line := "\n  " + styles.Normal.Render(shop.Title)
			if len(shop.Tags) > 0 {
				line += " " + styles.Muted.Render(fmt.Sprintf("%v", shop.Tags))
			}
			out += line
		}
		return out
	case domain.FAQSection:
		out := header
		for _, item := range sec.Items {
			out += "\n  " + styles.Normal.Render(item.Title)
			out += "\n    " + styles.Muted.Render(item.Answer)
		}
		return out
	default:
		return header
	}
}

// sectionHeader builds the title line: kind, id and the section title
// when the variant carries one.
func sectionHeader(s domain.Section) string {
	title := ""
	switch sec := s.(type) {
	case domain.FixedBannerSection:
		title = sec.Title
	case domain.CategorySection:
		title = sec.Title
	case domain.ShopGridSection:
		title = sec.Title
	case domain.FAQSection:
		title = sec.Title
	}

	if title == "" {
		return fmt.Sprintf("[%s] %s", s.Kind(), s.SectionID())
	}
	return fmt.Sprintf("[%s] %s (%s)", s.Kind(), title, s.SectionID())
}

func renderBanners(styles *tui.Styles, banners []domain.Banner) string {
	out := ""
	for _, b := range banners {
		out += "\n  " + styles.Muted.Render(b.ImageURL)
	}
	return out
}
