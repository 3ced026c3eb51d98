package imdb

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/page"
	"github.com/Digital-Shane/imdbkit/internal/provider"
)

// SearchKind selects what the find page searches for.
type SearchKind string

const (
	SearchTitles    SearchKind = "tt"
	SearchNames     SearchKind = "nm"
	SearchCompanies SearchKind = "co"
	SearchKeywords  SearchKind = "kw"
)

var searchKinds = map[string]SearchKind{
	"tt": SearchTitles, "title": SearchTitles, "titles": SearchTitles,
	"nm": SearchNames, "name": SearchNames, "names": SearchNames, "person": SearchNames,
	"co": SearchCompanies, "company": SearchCompanies, "companies": SearchCompanies,
	"kw": SearchKeywords, "keyword": SearchKeywords, "keywords": SearchKeywords,
}

// ParseSearchKind accepts the short codes and their spelled-out names.
func ParseSearchKind(s string) (SearchKind, error) {
	if k, ok := searchKinds[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", &provider.ProviderError{
		Provider: providerName,
		Code:     provider.CodeInvalidRequest,
		Message:  fmt.Sprintf("unknown search kind %q", s),
	}
}

func (k SearchKind) idKind() extract.IDKind {
	switch k {
	case SearchNames:
		return extract.PersonID
	case SearchCompanies:
		return extract.CompanyID
	case SearchKeywords:
		return extract.KeywordID
	}
	return extract.TitleID
}

// Search runs find-page searches. Results are memoized per query and kind.
type Search struct {
	base
}

// hit is one result as read from either theme, before kind-specific mapping.
type hit struct {
	href      string
	label     string
	image     *string
	primary   []string
	secondary []string
}

var (
	yearRe       = regexp.MustCompile(`^\d{4}(?:[–-]\d{0,4})?$`)
	parenRe      = regexp.MustCompile(`\(((?:[^()]|\([^()]*\))*)\)`)
	titleCountRe = regexp.MustCompile(`(?i)([\d,]+)\s+titles?`)
)

var searchThemes = []extract.Theme[[]hit]{
	extract.ListTheme("new", "li.ipc-metadata-list-summary-item", func(n *extract.Node) (hit, bool) {
		h := hit{
			href:      extract.Deref(n.Attr("a.ipc-metadata-list-summary-item__t", "href")),
			label:     extract.Deref(n.Text("a.ipc-metadata-list-summary-item__t")),
			image:     n.Attr("img.ipc-image", "src"),
			primary:   n.Texts("ul.ipc-metadata-list-summary-item__tl li"),
			secondary: n.Texts("ul.ipc-metadata-list-summary-item__stl li"),
		}
		return h, h.href != "" && h.label != ""
	}),
	extract.ListTheme("old", "table.findList tr.findResult", func(n *extract.Node) (hit, bool) {
		h := hit{
			href:  extract.Deref(n.Attr("td.result_text a", "href")),
			label: extract.Deref(n.Text("td.result_text a")),
			image: n.Attr("td.primary_photo img", "src"),
		}
		for _, m := range parenRe.FindAllStringSubmatch(extract.Deref(n.OwnText("td.result_text")), -1) {
			if s := extract.CollapseText(m[1]); s != nil {
				h.primary = append(h.primary, *s)
			}
		}
		return h, h.href != "" && h.label != ""
	}),
}

// Find searches for query among kind and returns the first page of hits.
func (s *Search) Find(ctx context.Context, query string, kind SearchKind) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &provider.ProviderError{
			Provider: providerName,
			Code:     provider.CodeInvalidRequest,
			Message:  "search requires a query",
		}
	}
	k, err := ParseSearchKind(string(kind))
	if err != nil {
		return nil, err
	}

	key := "find:" + string(k) + ":" + query
	hits, err := scrape(ctx, &s.base, key, page.Find, page.Params{"q": query, "kind": string(k)}, searchThemes...)
	if err != nil {
		return nil, err
	}
	out := []SearchResult{}
	for _, h := range hits {
		if r, ok := mapHit(k, h); ok {
			r.Index = len(out) + 1
			out = append(out, r)
		}
	}
	return out, nil
}

func mapHit(kind SearchKind, h hit) (SearchResult, bool) {
	r := SearchResult{
		ID:    hitID(kind, h.href),
		Name:  h.label,
		Image: imagePair(h.image),
	}
	if r.IsEmpty() {
		return SearchResult{}, false
	}

	switch kind {
	case SearchTitles:
		for _, p := range h.primary {
			if yearRe.MatchString(p) && r.Year == nil {
				r.Year = extract.ExtractInt(p[:4])
			} else if r.Type == nil {
				r.Type = extract.StringPtr(p)
			}
		}
		r.Description = joined(h.secondary)
	case SearchNames:
		if len(h.primary) > 0 {
			// Older markup packs "Actor, The Matrix (1999)" into one fragment.
			job, rest, found := strings.Cut(h.primary[0], ", ")
			r.Job = extract.StringPtr(job)
			if found && len(h.secondary) == 0 {
				r.Description = extract.StringPtr(rest)
			}
		}
		if r.Description == nil {
			r.Description = joined(h.secondary)
		}
	case SearchCompanies:
		r.Description = joined(append(h.primary, h.secondary...))
	case SearchKeywords:
		for _, p := range append(h.primary, h.secondary...) {
			if m := titleCountRe.FindStringSubmatch(p); m != nil {
				r.TitleCount = extract.ExtractInt(m[1])
				break
			}
		}
	}
	return r, true
}

// hitID reads the id out of a result link. Keyword links carry the keyword
// slug instead of an id.
func hitID(kind SearchKind, href string) string {
	if id := extract.ExtractID(href, kind.idKind()); id != nil {
		return *id
	}
	if kind == SearchKeywords {
		if u, err := url.Parse(href); err == nil {
			return strings.TrimSpace(u.Query().Get("keywords"))
		}
	}
	return ""
}

func joined(parts []string) *string {
	return extract.CollapseText(strings.Join(parts, ", "))
}
