package imdb

import (
	"context"
	"log/slog"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/graphql"
)

// TitleLookup fetches the sections of one title. Each accessor fetches only
// its own section; Full aggregates all of them.
type TitleLookup struct {
	base
	id string
}

// ID returns the requested title id.
func (l *TitleLookup) ID() string { return l.id }

type rawTitleMain struct {
	Title *struct {
		ID                string   `json:"id"`
		TitleText         *rawText `json:"titleText"`
		OriginalTitleText *rawText `json:"originalTitleText"`
		TitleType         *struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"titleType"`
		ReleaseYear *rawYearRange `json:"releaseYear"`
		Runtime     *struct {
			Seconds *int `json:"seconds"`
		} `json:"runtime"`
		RatingsSummary *struct {
			AggregateRating *float64 `json:"aggregateRating"`
			VoteCount       *int     `json:"voteCount"`
		} `json:"ratingsSummary"`
		Plot *struct {
			PlotText *rawPlain `json:"plotText"`
		} `json:"plot"`
		Genres *struct {
			Genres []rawText `json:"genres"`
		} `json:"genres"`
		SpokenLanguages *struct {
			SpokenLanguages []rawCodeName `json:"spokenLanguages"`
		} `json:"spokenLanguages"`
		CountriesOfOrigin *struct {
			Countries []rawCodeName `json:"countries"`
		} `json:"countriesOfOrigin"`
		TechnicalSpecs *struct {
			Colorations *struct {
				Items []rawText `json:"items"`
			} `json:"colorations"`
			SoundMixes *struct {
				Items []rawText `json:"items"`
			} `json:"soundMixes"`
			AspectRatios *struct {
				Items []struct {
					AspectRatio string `json:"aspectRatio"`
				} `json:"items"`
			} `json:"aspectRatios"`
		} `json:"technicalSpecs"`
		PrimaryImage *rawImage `json:"primaryImage"`
	} `json:"title"`
}

type rawCodeName struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type rawTitleKeywords struct {
	Title *struct {
		Keywords *edges[rawText] `json:"keywords"`
	} `json:"title"`
}

type rawTrailer struct {
	ID          string    `json:"id"`
	Name        *rawValue `json:"name"`
	ContentType *struct {
		DisplayName *rawValue `json:"displayName"`
	} `json:"contentType"`
	Runtime *struct {
		Value *int `json:"value"`
	} `json:"runtime"`
	Thumbnail    *rawImage `json:"thumbnail"`
	PlaybackURLs []struct {
		URL string `json:"url"`
	} `json:"playbackURLs"`
}

type rawTitleTrailers struct {
	Title *struct {
		PrimaryVideos *edges[rawTrailer] `json:"primaryVideos"`
	} `json:"title"`
}

// Main returns the core title fields from the query API. A response without
// id or title yields an empty record and no error.
func (l *TitleLookup) Main(ctx context.Context) (*Title, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	return remember(l.memo, opTitleMain, func() (*Title, error) {
		var raw rawTitleMain
		if err := l.gql.QueryInto(ctx, titleMainQuery, opTitleMain, graphql.Variables{"id": l.id}, &raw); err != nil {
			return nil, err
		}
		return mapTitleMain(&raw, l.logger), nil
	})
}

// Keywords returns the title's plot keywords.
func (l *TitleLookup) Keywords(ctx context.Context) ([]string, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	return remember(l.memo, opTitleKeywords, func() ([]string, error) {
		var raw rawTitleKeywords
		if err := l.gql.QueryInto(ctx, titleKeywordsQuery, opTitleKeywords, graphql.Variables{"id": l.id}, &raw); err != nil {
			return nil, err
		}
		if raw.Title == nil {
			return []string{}, nil
		}
		out := []string{}
		for _, k := range raw.Title.Keywords.nodes() {
			if s := extract.CleanText(k.Text); s != nil {
				out = append(out, *s)
			}
		}
		return out, nil
	})
}

// Trailers returns the title's primary videos.
func (l *TitleLookup) Trailers(ctx context.Context) ([]Trailer, error) {
	if err := requireID(l.id, extract.TitleID); err != nil {
		return nil, err
	}
	return remember(l.memo, opTitleTrailers, func() ([]Trailer, error) {
		var raw rawTitleTrailers
		if err := l.gql.QueryInto(ctx, titleTrailersQuery, opTitleTrailers, graphql.Variables{"id": l.id}, &raw); err != nil {
			return nil, err
		}
		out := []Trailer{}
		if raw.Title == nil {
			return out, nil
		}
		for _, v := range raw.Title.PrimaryVideos.nodes() {
			if t, ok := mapTrailer(v); ok {
				out = append(out, t)
			}
		}
		return out, nil
	})
}

// Full aggregates every section. When the core fields carry no identity the
// empty record is returned without fetching the remaining sections.
func (l *TitleLookup) Full(ctx context.Context) (*Title, error) {
	core, err := l.Main(ctx)
	if err != nil {
		return nil, err
	}
	if core.IsEmpty() {
		return core, nil
	}

	full := *core
	if full.Keywords, err = l.Keywords(ctx); err != nil {
		return nil, err
	}
	if full.Trailers, err = l.Trailers(ctx); err != nil {
		return nil, err
	}
	if full.Plot == nil {
		if full.Plot, err = l.Plot(ctx); err != nil {
			return nil, err
		}
	}
	if full.Taglines, err = l.Taglines(ctx); err != nil {
		return nil, err
	}
	guide, err := l.ParentalGuide(ctx)
	if err != nil {
		return nil, err
	}
	full.MPAAByCountry = guide.ByCountry
	full.MPAAReason = guide.Reason
	if full.Locations, err = l.Locations(ctx); err != nil {
		return nil, err
	}
	return &full, nil
}

func mapTitleMain(raw *rawTitleMain, logger *slog.Logger) *Title {
	t := raw.Title
	if t == nil {
		return &Title{}
	}
	name := textOf(t.TitleText)
	if t.ID == "" || name == nil {
		return &Title{}
	}

	out := &Title{
		ID:            t.ID,
		Title:         *name,
		OriginalTitle: textOf(t.OriginalTitleText),
		Type:          "Movie",
		PrimaryImage:  t.PrimaryImage.image(),
		Genres:        []string{},
		Languages:     []CodeName{},
		Countries:     []CodeName{},
		Keywords:      []string{},
		Taglines:      []string{},
		Colors:        []string{},
		Sounds:        []string{},
		Locations:     []string{},
		MPAAByCountry: map[string]string{},
		Trailers:      []Trailer{},
	}
	if t.TitleType != nil {
		if s := extract.CleanText(t.TitleType.Text); s != nil {
			out.Type = *s
		}
	}
	if t.ReleaseYear != nil {
		out.Year = t.ReleaseYear.Year
		out.EndYear = t.ReleaseYear.EndYear
		if out.Year != nil && out.EndYear != nil && *out.EndYear < *out.Year {
			logger.Warn("dropping end year before start year",
				slog.Int("year", *out.Year), slog.Int("endYear", *out.EndYear))
			out.EndYear = nil
		}
	}
	if t.Runtime != nil && t.Runtime.Seconds != nil {
		out.RuntimeMinutes = extract.Ptr(*t.Runtime.Seconds / 60)
	}
	if r := t.RatingsSummary; r != nil {
		out.Rating = r.AggregateRating
		out.VoteCount = r.VoteCount
	}
	if t.Plot != nil {
		out.Plot = plainOf(t.Plot.PlotText)
	}
	if t.Genres != nil {
		out.Genres = texts(t.Genres.Genres)
	}
	if t.SpokenLanguages != nil {
		out.Languages = codeNames(t.SpokenLanguages.SpokenLanguages)
	}
	if t.CountriesOfOrigin != nil {
		out.Countries = codeNames(t.CountriesOfOrigin.Countries)
	}
	if ts := t.TechnicalSpecs; ts != nil {
		if ts.Colorations != nil {
			out.Colors = texts(ts.Colorations.Items)
		}
		if ts.SoundMixes != nil {
			out.Sounds = texts(ts.SoundMixes.Items)
		}
		if ts.AspectRatios != nil && len(ts.AspectRatios.Items) > 0 {
			out.AspectRatio = extract.CleanText(ts.AspectRatios.Items[0].AspectRatio)
		}
	}
	return out
}

func mapTrailer(v rawTrailer) (Trailer, bool) {
	name := valueOf(v.Name)
	if v.ID == "" || name == nil {
		return Trailer{}, false
	}
	t := Trailer{ID: v.ID, Name: *name, Thumbnail: v.Thumbnail.image()}
	if v.ContentType != nil {
		t.ContentType = valueOf(v.ContentType.DisplayName)
	}
	if v.Runtime != nil {
		t.RuntimeSeconds = v.Runtime.Value
	}
	if len(v.PlaybackURLs) > 0 {
		t.URL = extract.StringPtr(v.PlaybackURLs[0].URL)
	}
	return t, true
}

func texts(in []rawText) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if s := extract.CleanText(t.Text); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func codeNames(in []rawCodeName) []CodeName {
	out := make([]CodeName, 0, len(in))
	for _, c := range in {
		name := extract.CleanText(c.Text)
		if c.ID == "" || name == nil {
			continue
		}
		out = append(out, CodeName{Code: c.ID, Name: *name})
	}
	return out
}
