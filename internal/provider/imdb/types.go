package imdb

import (
	"strings"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/imageurl"
)

// Thumbnail geometry for list images derived from API records.
const (
	thumbWidth   = 140
	thumbHeight  = 207
	thumbQuality = 75
)

// ImagePair is an original image and its thumbnail variant.
type ImagePair = extract.ImagePair

// Image is an API-sourced image with its native dimensions.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CodeName is a language or country.
type CodeName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Title is a movie, series, episode or any other title type.
type Title struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	OriginalTitle  *string           `json:"originalTitle"`
	Type           string            `json:"type"`
	Year           *int              `json:"year"`
	EndYear        *int              `json:"endYear"`
	RuntimeMinutes *int              `json:"runtimeMinutes"`
	Rating         *float64          `json:"rating"`
	VoteCount      *int              `json:"voteCount"`
	Plot           *string           `json:"plot"`
	Genres         []string          `json:"genres"`
	Languages      []CodeName        `json:"languages"`
	Countries      []CodeName        `json:"countries"`
	Keywords       []string          `json:"keywords"`
	Taglines       []string          `json:"taglines"`
	Colors         []string          `json:"colors"`
	Sounds         []string          `json:"sounds"`
	AspectRatio    *string           `json:"aspectRatio"`
	Locations      []string          `json:"locations"`
	MPAAByCountry  map[string]string `json:"mpaaByCountry"`
	MPAAReason     *string           `json:"mpaaReason"`
	PrimaryImage   *Image            `json:"primaryImage"`
	Trailers       []Trailer         `json:"trailers"`
}

// IsEmpty reports whether the record lacks an id or a title.
func (t *Title) IsEmpty() bool {
	return t == nil || t.ID == "" || t.Title == ""
}

// Trailer is a video attached to a title.
type Trailer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ContentType    *string `json:"contentType"`
	RuntimeSeconds *int    `json:"runtimeSeconds"`
	Thumbnail      *Image  `json:"thumbnail"`
	URL            *string `json:"url"`
}

// ParentalGuide holds certificate ratings by country and the rating reason.
type ParentalGuide struct {
	ByCountry map[string]string `json:"byCountry"`
	Reason    *string           `json:"reason"`
}

// BirthDeath is a partial date plus the place and, for deaths, the cause.
type BirthDeath struct {
	extract.Date
	Place *string `json:"place"`
	Cause *string `json:"cause,omitempty"`
}

// Height is a body height in both unit systems.
type Height struct {
	Imperial *string `json:"imperial"`
	Metric   *string `json:"metric"`
	MetricCm *int    `json:"metricCm"`
}

// Bio is one biography with its author.
type Bio struct {
	Text   string  `json:"text"`
	Author *string `json:"author"`
}

// Rank is a popularity meter position.
type Rank struct {
	CurrentRank     *int    `json:"currentRank"`
	ChangeDirection *string `json:"changeDirection"`
	Difference      *int    `json:"difference"`
}

// Person is a cast or crew member. A nil Death means the subject is presumed
// living.
type Person struct {
	ID          string         `json:"id"`
	FullName    string         `json:"fullName"`
	Photo       *Image         `json:"photo"`
	Birth       *BirthDeath    `json:"birth"`
	Death       *BirthDeath    `json:"death"`
	BirthName   *string        `json:"birthName"`
	NickNames   []string       `json:"nickNames"`
	AkaNames    []string       `json:"akaNames"`
	BodyHeight  *Height        `json:"bodyHeight"`
	Bio         []Bio          `json:"bio"`
	Professions []string       `json:"professions"`
	Rank        *Rank          `json:"rank"`
	KnownFor    []SearchResult `json:"knownFor"`
}

// IsEmpty reports whether the record lacks an id or a name.
func (p *Person) IsEmpty() bool {
	return p == nil || p.ID == "" || p.FullName == ""
}

// DisplayBio returns the biography shown on a profile: of the first two
// entries the second wins when present.
func (p *Person) DisplayBio() *Bio {
	if p == nil || len(p.Bio) == 0 {
		return nil
	}
	if len(p.Bio) >= 2 {
		return &p.Bio[1]
	}
	return &p.Bio[0]
}

// Affiliation links a company to a related company.
type Affiliation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Staff is a key employee of a company.
type Staff struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Employments []string `json:"employments"`
}

// KnownFor is a title a company is credited on.
type KnownFor struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Jobs      []string `json:"jobs"`
	Countries []string `json:"countries"`
	YearFrom  *int     `json:"yearFrom"`
	YearTo    *int     `json:"yearTo"`
}

// Company is a production, distribution or other company.
type Company struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Country      *string       `json:"country"`
	Types        []string      `json:"types"`
	Rank         *int          `json:"rank"`
	Affiliations []Affiliation `json:"affiliations"`
	Staff        []Staff       `json:"staff"`
	KnownFor     []KnownFor    `json:"knownFor"`
}

// IsEmpty reports whether the record lacks an id or a name.
func (c *Company) IsEmpty() bool {
	return c == nil || c.ID == "" || c.Name == ""
}

// SearchResult is one hit of any search kind. ID, Name and Image are always
// present in the shape; the secondary fields depend on the kind.
type SearchResult struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Index       int        `json:"index"`
	Image       *ImagePair `json:"image"`
	Type        *string    `json:"type,omitempty"`
	Year        *int       `json:"year,omitempty"`
	Job         *string    `json:"job,omitempty"`
	Description *string    `json:"description,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	TitleCount  *int       `json:"titleCount,omitempty"`
}

// IsEmpty reports whether the hit lacks an id or a label.
func (r *SearchResult) IsEmpty() bool {
	return r == nil || r.ID == "" || r.Name == ""
}

// NewsItem is one news article.
type NewsItem struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Date   *string    `json:"date"`
	URL    *string    `json:"url"`
	Source *string    `json:"source"`
	Byline *string    `json:"byline"`
	Image  *ImagePair `json:"image"`
	Text   *string    `json:"text"`
}

// IsEmpty reports whether the item lacks an id or a headline.
func (n *NewsItem) IsEmpty() bool {
	return n == nil || n.ID == "" || n.Title == ""
}

// PlaybackURL is one encoding of a video.
type PlaybackURL struct {
	Quality  string `json:"quality"`
	MimeType string `json:"mimeType"`
	URL      string `json:"url"`
}

// VideoTitle is the title a video belongs to.
type VideoTitle struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	ReleaseDate *extract.Date `json:"releaseDate"`
	Image       *Image        `json:"image"`
}

// Video is a trailer, clip or featurette.
type Video struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	VideoTitle     string        `json:"videoTitle"`
	Description    *string       `json:"description"`
	RuntimeSeconds *int          `json:"runtimeSeconds"`
	AspectRatio    *string       `json:"aspectRatio"`
	CreatedDate    *string       `json:"createdDate"`
	Thumbnail      *Image        `json:"thumbnail"`
	PlaybackURLs   []PlaybackURL `json:"playbackUrls"`
	PrimaryTitle   *VideoTitle   `json:"primaryTitle"`
}

// IsEmpty reports whether the record lacks an id or a name.
func (v *Video) IsEmpty() bool {
	return v == nil || v.ID == "" || v.VideoTitle == ""
}

// BoxOfficeEntry is one row of the weekend box-office chart. Money is in
// millions of the quoted currency.
type BoxOfficeEntry struct {
	Rank            int        `json:"rank"`
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	WeekendMillions *float64   `json:"weekendMillions"`
	GrossMillions   *float64   `json:"grossMillions"`
	Weeks           *int       `json:"weeks"`
	Image           *ImagePair `json:"image"`
}

// IsEmpty reports whether the row lacks an id or a title.
func (b *BoxOfficeEntry) IsEmpty() bool {
	return b == nil || b.ID == "" || b.Title == ""
}

// Raw API fragments shared by several queries.

type rawText struct {
	Text string `json:"text"`
}

type rawPlain struct {
	PlainText string `json:"plainText"`
}

type rawValue struct {
	Value string `json:"value"`
}

type rawImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (r *rawImage) image() *Image {
	if r == nil || strings.TrimSpace(r.URL) == "" {
		return nil
	}
	return &Image{URL: r.URL, Width: r.Width, Height: r.Height}
}

// pair derives the list thumbnail through the crop builder. Images without
// usable dimensions keep the original as their thumbnail.
func (r *rawImage) pair() *ImagePair {
	if r == nil || strings.TrimSpace(r.URL) == "" {
		return nil
	}
	return &ImagePair{
		Original:  r.URL,
		Thumbnail: imageurl.ThumbnailOr(r.URL, r.Width, r.Height, thumbWidth, thumbHeight, thumbQuality),
	}
}

type rawYearRange struct {
	Year    *int `json:"year"`
	EndYear *int `json:"endYear"`
}

type rawDateComponents struct {
	Day   *int `json:"day"`
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

func textOf(t *rawText) *string {
	if t == nil {
		return nil
	}
	return extract.CleanText(t.Text)
}

func plainOf(p *rawPlain) *string {
	if p == nil {
		return nil
	}
	return extract.CleanText(p.PlainText)
}

func valueOf(v *rawValue) *string {
	if v == nil {
		return nil
	}
	return extract.CleanText(v.Value)
}

// edges is the connection shape used by every paginated field.
type edges[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (e *edges[T]) nodes() []T {
	if e == nil {
		return nil
	}
	out := make([]T, 0, len(e.Edges))
	for _, ed := range e.Edges {
		out = append(out, ed.Node)
	}
	return out
}
