package imdb

import (
	"context"
	"strings"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/page"
)

var plotThemes = []extract.Theme[*string]{
	{Name: "new", Extract: func(doc *extract.Node) (*string, bool) {
		s := doc.Text(`[data-testid="plot-xl"]`)
		return s, s != nil
	}},
	{Name: "old", Extract: func(doc *extract.Node) (*string, bool) {
		s := doc.Text(".plot_summary .summary_text", "See full summary »")
		if s == nil {
			s = doc.Text(".summary_text", "See full summary »")
		}
		return s, s != nil
	}},
}

var taglineThemes = []extract.Theme[[]string]{
	extract.ListTheme("new", `[data-testid="sub-section"] [data-testid="list-item"] .ipc-html-content-inner-div`, tagline),
	extract.ListTheme("old", "#taglines_content .soda", tagline),
}

// tagline skips the placeholder shown for titles without taglines.
func tagline(n *extract.Node) (string, bool) {
	s := n.Text("")
	if s == nil || strings.Contains(*s, "have any Taglines") {
		return "", false
	}
	return *s, true
}

var locationThemes = []extract.Theme[[]string]{
	extract.TextListTheme("new", `[data-testid="sub-section-flmg_locations"] [data-testid="item-text-with-link"]`),
	extract.TextListTheme("old", "#filming_locations .soda dt a"),
}

var certificateThemes = []extract.Theme[map[string]string]{
	{Name: "new", Extract: func(doc *extract.Node) (map[string]string, bool) {
		out := map[string]string{}
		for _, item := range doc.All(`section[data-testid="certificates"] li[data-testid="certificates-item"]`) {
			country := item.Text(".ipc-metadata-list-item__label")
			rating := item.Text(".ipc-metadata-list-item__list-content-item")
			addCertificate(out, country, rating)
		}
		return out, len(out) > 0
	}},
	{Name: "old", Extract: func(doc *extract.Node) (map[string]string, bool) {
		out := map[string]string{}
		for _, item := range doc.All("#certificates .ipl-inline-list__item a") {
			country, rating, ok := strings.Cut(extract.Deref(item.Text("")), ":")
			if !ok {
				continue
			}
			addCertificate(out, extract.CollapseText(country), extract.CollapseText(rating))
		}
		return out, len(out) > 0
	}},
}

// addCertificate keeps the first rating listed for a country.
func addCertificate(out map[string]string, country, rating *string) {
	if country == nil || rating == nil {
		return
	}
	if _, seen := out[*country]; !seen {
		out[*country] = *rating
	}
}

var ratingReasonThemes = []extract.Theme[*string]{
	{Name: "new", Extract: func(doc *extract.Node) (*string, bool) {
		s := doc.Text(`section[data-testid="content-rating"] .ipc-metadata-list-item__label`)
		return s, s != nil
	}},
	{Name: "old", Extract: func(doc *extract.Node) (*string, bool) {
		s := doc.Text("#mpaa-rating td:nth-of-type(2)")
		return s, s != nil
	}},
}

func (l *TitleLookup) params() page.Params {
	return page.Params{"id": l.id}
}

// Plot returns the outline shown on the title main page.
func (l *TitleLookup) Plot(ctx context.Context) (*string, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	return scrape(ctx, &l.base, "plot", page.TitleMain, l.params(), plotThemes...)
}

// Taglines returns every tagline listed for the title.
func (l *TitleLookup) Taglines(ctx context.Context) ([]string, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	out, err := scrape(ctx, &l.base, "taglines", page.Taglines, l.params(), taglineThemes...)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// Locations returns the filming locations.
func (l *TitleLookup) Locations(ctx context.Context) ([]string, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	out, err := scrape(ctx, &l.base, "locations", page.Locations, l.params(), locationThemes...)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// ParentalGuide returns certificate ratings by country and the MPAA reason.
// Both come from the same page, which is fetched once.
func (l *TitleLookup) ParentalGuide(ctx context.Context) (*ParentalGuide, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	byCountry, err := scrape(ctx, &l.base, "certificates", page.ParentalGuide, l.params(), certificateThemes...)
	if err != nil {
		return nil, err
	}
	reason, err := scrape(ctx, &l.base, "mpaaReason", page.ParentalGuide, l.params(), ratingReasonThemes...)
	if err != nil {
		return nil, err
	}
	if byCountry == nil {
		byCountry = map[string]string{}
	}
	return &ParentalGuide{ByCountry: byCountry, Reason: reason}, nil
}
