package imdb

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/graphql"
	"github.com/Digital-Shane/imdbkit/internal/page"
	"github.com/Digital-Shane/imdbkit/internal/provider"
)

// NewsCategory selects a news feed.
type NewsCategory string

const (
	NewsTop       NewsCategory = "TOP"
	NewsMovie     NewsCategory = "MOVIE"
	NewsTV        NewsCategory = "TV"
	NewsCelebrity NewsCategory = "CELEBRITY"
)

// ParseNewsCategory accepts a category name in any case.
func ParseNewsCategory(s string) (NewsCategory, error) {
	c := NewsCategory(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case NewsTop, NewsMovie, NewsTV, NewsCelebrity:
		return c, nil
	}
	return "", &provider.ProviderError{
		Provider: providerName,
		Code:     provider.CodeInvalidRequest,
		Message:  fmt.Sprintf("unknown news category %q", s),
	}
}

// Lists fetches the site-wide lists.
type Lists struct {
	base
}

type rawKeywordTitles struct {
	AdvancedTitleSearch *edges[struct {
		Title *struct {
			ID             string        `json:"id"`
			TitleText      *rawText      `json:"titleText"`
			TitleType      *rawText      `json:"titleType"`
			ReleaseYear    *rawYearRange `json:"releaseYear"`
			RatingsSummary *struct {
				AggregateRating *float64 `json:"aggregateRating"`
			} `json:"ratingsSummary"`
			PrimaryImage *rawImage `json:"primaryImage"`
		} `json:"title"`
	}] `json:"advancedTitleSearch"`
}

type rawNews struct {
	News *edges[struct {
		ID           string    `json:"id"`
		ArticleTitle *rawPlain `json:"articleTitle"`
		Date         *string   `json:"date"`
		ExternalURL  *string   `json:"externalUrl"`
		Source       *struct {
			Homepage *struct {
				Label string `json:"label"`
			} `json:"homepage"`
		} `json:"source"`
		Byline *string   `json:"byline"`
		Image  *rawImage `json:"image"`
		Text   *rawPlain `json:"text"`
	}] `json:"news"`
}

// KeywordTitles returns the titles tagged with keyword.
func (l *Lists) KeywordTitles(ctx context.Context, keyword string) ([]SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, &provider.ProviderError{
			Provider: providerName,
			Code:     provider.CodeInvalidRequest,
			Message:  "keyword search requires a keyword",
		}
	}
	return remember(l.memo, opKeywordTitles+":"+keyword, func() ([]SearchResult, error) {
		var raw rawKeywordTitles
		if err := l.gql.QueryInto(ctx, keywordTitlesQuery, opKeywordTitles, graphql.Variables{"keyword": keyword}, &raw); err != nil {
			return nil, err
		}
		out := []SearchResult{}
		for _, n := range raw.AdvancedTitleSearch.nodes() {
			t := n.Title
			if t == nil {
				continue
			}
			r := SearchResult{
				ID:    t.ID,
				Name:  extract.Deref(textOf(t.TitleText)),
				Index: len(out) + 1,
				Image: t.PrimaryImage.pair(),
				Type:  textOf(t.TitleType),
			}
			if t.ReleaseYear != nil {
				r.Year = t.ReleaseYear.Year
			}
			if t.RatingsSummary != nil {
				r.Rating = t.RatingsSummary.AggregateRating
			}
			if !r.IsEmpty() {
				out = append(out, r)
			}
		}
		return out, nil
	})
}

// News returns the latest articles of category.
func (l *Lists) News(ctx context.Context, category NewsCategory) ([]NewsItem, error) {
	c, err := ParseNewsCategory(string(category))
	if err != nil {
		return nil, err
	}
	return remember(l.memo, opNews+":"+string(c), func() ([]NewsItem, error) {
		var raw rawNews
		if err := l.gql.QueryInto(ctx, newsQuery, opNews, graphql.Variables{"category": string(c)}, &raw); err != nil {
			return nil, err
		}
		out := []NewsItem{}
		for _, n := range raw.News.nodes() {
			item := NewsItem{
				ID:     n.ID,
				Title:  extract.Deref(plainOf(n.ArticleTitle)),
				Date:   n.Date,
				URL:    n.ExternalURL,
				Byline: n.Byline,
				Image:  n.Image.pair(),
				Text:   plainOf(n.Text),
			}
			if n.Source != nil && n.Source.Homepage != nil {
				item.Source = extract.CleanText(n.Source.Homepage.Label)
			}
			if !item.IsEmpty() {
				out = append(out, item)
			}
		}
		return out, nil
	})
}

var rankPrefixRe = regexp.MustCompile(`^(\d+)\.\s*`)

var boxOfficeThemes = []extract.Theme[[]BoxOfficeEntry]{
	extract.ListTheme("new", `ul.ipc-metadata-list li.ipc-metadata-list-summary-item`, func(n *extract.Node) (BoxOfficeEntry, bool) {
		e := BoxOfficeEntry{
			ID:    extract.Deref(extract.ExtractID(extract.Deref(n.Attr("a.ipc-title-link-wrapper", "href")), extract.TitleID)),
			Image: imagePair(n.Attr("img.ipc-image", "src")),
		}
		heading := extract.Deref(n.Text("h3.ipc-title__text"))
		if m := rankPrefixRe.FindStringSubmatch(heading); m != nil {
			e.Rank, _ = strconv.Atoi(m[1])
			heading = heading[len(m[0]):]
		}
		e.Title = heading
		for _, li := range n.All(`[data-testid="title-metadata-box-office-data-container"] li`) {
			text := extract.Deref(li.Text(""))
			switch {
			case strings.HasPrefix(text, "Weekend Gross"):
				e.WeekendMillions = extract.MoneyPtr(text)
			case strings.HasPrefix(text, "Total Gross"):
				e.GrossMillions = extract.MoneyPtr(text)
			case strings.HasPrefix(text, "Weeks Released"):
				e.Weeks = extract.ExtractInt(text)
			}
		}
		return e, !e.IsEmpty()
	}),
	extract.ListTheme("old", "table.chart tbody tr", func(n *extract.Node) (BoxOfficeEntry, bool) {
		e := BoxOfficeEntry{
			ID:    extract.Deref(extract.ExtractID(extract.Deref(n.Attr("td.titleColumn a", "href")), extract.TitleID)),
			Title: extract.Deref(n.Text("td.titleColumn a")),
			Image: imagePair(n.Attr("td.posterColumn img", "src")),
			Weeks: extract.ExtractInt(extract.Deref(n.Text("td.weeksColumn"))),
		}
		money := n.All("td.ratingColumn")
		if len(money) > 0 {
			e.WeekendMillions = extract.MoneyPtr(extract.Deref(money[0].Text("")))
		}
		if len(money) > 1 {
			e.GrossMillions = extract.MoneyPtr(extract.Deref(money[1].Text("span.secondaryInfo")))
		}
		return e, !e.IsEmpty()
	}),
}

// BoxOffice returns the weekend box-office chart with amounts in millions.
// Rows without a printed rank are numbered in page order.
func (l *Lists) BoxOffice(ctx context.Context) ([]BoxOfficeEntry, error) {
	out, err := scrape(ctx, &l.base, "boxOffice", page.BoxOffice, nil, boxOfficeThemes...)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Rank == 0 {
			out[i].Rank = i + 1
		}
	}
	if out == nil {
		out = []BoxOfficeEntry{}
	}
	return out, nil
}

func imagePair(src *string) *ImagePair {
	if src == nil {
		return nil
	}
	return extract.SplitImage(*src)
}
