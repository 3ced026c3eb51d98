package imdb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Digital-Shane/imdbkit/internal/graphql"
	"github.com/Digital-Shane/imdbkit/internal/provider"
)

func matrixTransport(t *testing.T) *fakeTransport {
	return newFakeTransport(t).
		query(opTitleMain, "title_main.json").
		query(opTitleKeywords, "title_keywords.json").
		query(opTitleTrailers, "title_trailers.json").
		page("/title/tt0133093/", "title_new.html").
		page("/title/tt0133093/taglines/", "taglines_old.html").
		page("/title/tt0133093/parentalguide/", "parentalguide_new.html").
		page("/title/tt0133093/locations/", "locations_new.html")
}

func TestTitleMain(t *testing.T) {
	f := matrixTransport(t)
	got, err := newTestClient(f).Title("tt0133093").Main(context.Background())
	mustNoErr(t, err, "Main()")

	want := &Title{
		ID:             "tt0133093",
		Title:          "The Matrix",
		OriginalTitle:  ptr("The Matrix"),
		Type:           "Movie",
		Year:           ptr(1999),
		RuntimeMinutes: ptr(136),
		Rating:         ptr(8.7),
		VoteCount:      ptr(2100000),
		Plot:           ptr("When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth."),
		Genres:         []string{"Action", "Sci-Fi"},
		Languages:      []CodeName{{Code: "en", Name: "English"}},
		Countries:      []CodeName{{Code: "US", Name: "United States"}, {Code: "AU", Name: "Australia"}},
		Keywords:       []string{},
		Taglines:       []string{},
		Colors:         []string{"Color"},
		Sounds:         []string{"Dolby Digital", "SDDS"},
		AspectRatio:    ptr("2.39 : 1"),
		Locations:      []string{},
		MPAAByCountry:  map[string]string{},
		PrimaryImage: &Image{
			URL:    "https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVkLWI0MTEtMDllZjNkYzNjNTc4L2ltYWdlXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_.jpg",
			Width:  1000,
			Height: 1500,
		},
		Trailers: []Trailer{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Main() mismatch (-want +got):\n%s", diff)
	}
	if f.variables[opTitleMain]["id"] != "tt0133093" {
		t.Errorf("id variable = %v", f.variables[opTitleMain]["id"])
	}
}

func TestTitleMainDefaultsAndEndYear(t *testing.T) {
	f := newFakeTransport(t).query(opTitleMain, "title_series.json")
	got, err := newTestClient(f).Title("tt0944947").Main(context.Background())
	mustNoErr(t, err, "Main()")

	if got.Type != "Movie" {
		t.Errorf("Type = %q, want Movie default", got.Type)
	}
	if got.Year == nil || *got.Year != 2011 {
		t.Errorf("Year = %v, want 2011", got.Year)
	}
	if got.EndYear != nil {
		t.Errorf("EndYear = %d, want nil when before Year", *got.EndYear)
	}
	if got.PrimaryImage != nil || got.Plot != nil {
		t.Error("absent sections should stay nil")
	}
}

func TestTitleMissingIdentity(t *testing.T) {
	f := newFakeTransport(t)
	f.queries[opTitleMain] = `{"data":{"title":null}}`

	l := newTestClient(f).Title("tt0000001")
	got, err := l.Full(context.Background())
	mustNoErr(t, err, "Full()")
	if !got.IsEmpty() {
		t.Errorf("Full() = %+v, want empty record", got)
	}
	if f.queryCalls[opTitleKeywords] != 0 || len(f.pageCalls) != 0 {
		t.Error("empty record should not fetch further sections")
	}
}

func TestTitleFull(t *testing.T) {
	f := matrixTransport(t)
	got, err := newTestClient(f).Title("tt0133093").Full(context.Background())
	mustNoErr(t, err, "Full()")

	if diff := cmp.Diff([]string{"artificial reality", "simulated reality"}, got.Keywords); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
	wantTrailers := []Trailer{{
		ID:             "vi1032782617",
		Name:           "The Matrix",
		ContentType:    ptr("Trailer"),
		RuntimeSeconds: ptr(146),
		Thumbnail:      &Image{URL: "https://m.media-amazon.com/images/M/trailer.jpg", Width: 1920, Height: 1080},
		URL:            ptr("https://imdb-video.media-imdb.com/vi1032782617/1080p.mp4"),
	}}
	if diff := cmp.Diff(wantTrailers, got.Trailers); diff != "" {
		t.Errorf("Trailers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Free your mind.", "The fight for the future begins.", "Believe the unbelievable."}, got.Taglines); diff != "" {
		t.Errorf("Taglines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"United States": "R", "Germany": "16"}, got.MPAAByCountry); diff != "" {
		t.Errorf("MPAAByCountry mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ptr("Rated R for sci-fi violence and brief language"), got.MPAAReason); diff != "" {
		t.Errorf("MPAAReason mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Sydney, New South Wales, Australia", "Fox Studios Australia, Sydney"}, got.Locations); diff != "" {
		t.Errorf("Locations mismatch (-want +got):\n%s", diff)
	}
	// The API plot wins, so the main page is never fetched.
	if f.pageCalls["/title/tt0133093/"] != 0 {
		t.Error("title page fetched although the API returned a plot")
	}
	if f.pageCalls["/title/tt0133093/parentalguide/"] != 1 {
		t.Errorf("parental guide fetched %d times, want 1", f.pageCalls["/title/tt0133093/parentalguide/"])
	}
	if got.IsEmpty() {
		t.Error("full record should not be empty")
	}
}

func TestTitleAccessorsAreMemoized(t *testing.T) {
	f := matrixTransport(t)
	l := newTestClient(f).Title("tt0133093")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := l.Main(ctx)
		mustNoErr(t, err, "Main()")
		_, err = l.Taglines(ctx)
		mustNoErr(t, err, "Taglines()")
	}
	_, err := l.Full(ctx)
	mustNoErr(t, err, "Full()")

	if f.queryCalls[opTitleMain] != 1 {
		t.Errorf("TitleMain sent %d times, want 1", f.queryCalls[opTitleMain])
	}
	if f.pageCalls["/title/tt0133093/taglines/"] != 1 {
		t.Errorf("taglines fetched %d times, want 1", f.pageCalls["/title/tt0133093/taglines/"])
	}

	// A fresh lookup object shares nothing.
	_, err = newTestClient(f).Title("tt0133093").Main(ctx)
	mustNoErr(t, err, "Main()")
	if f.queryCalls[opTitleMain] != 2 {
		t.Errorf("TitleMain sent %d times, want 2 after a new lookup", f.queryCalls[opTitleMain])
	}
}

func TestTitleFailuresAreNotMemoized(t *testing.T) {
	f := matrixTransport(t)
	f.status[opTitleMain] = 500
	l := newTestClient(f).Title("tt0133093")

	_, err := l.Main(context.Background())
	var rfe *graphql.RequestFailedError
	if !errors.As(err, &rfe) {
		t.Fatalf("Main() error = %v, want *graphql.RequestFailedError", err)
	}
	if !strings.Contains(err.Error(), "TitleMain") || !strings.Contains(err.Error(), "tt0133093") {
		t.Errorf("error %q should name the operation and id", err)
	}

	delete(f.status, opTitleMain)
	if _, err := l.Main(context.Background()); err != nil {
		t.Fatalf("second Main() error = %v", err)
	}
	if f.queryCalls[opTitleMain] != 2 {
		t.Errorf("TitleMain sent %d times, want 2", f.queryCalls[opTitleMain])
	}
}

func TestTitleInvalidID(t *testing.T) {
	f := newFakeTransport(t)
	_, err := newTestClient(f).Title("nm0000206").Main(context.Background())
	var pe *provider.ProviderError
	if !errors.As(err, &pe) || pe.Code != provider.CodeInvalidRequest {
		t.Fatalf("Main() error = %v, want INVALID_REQUEST", err)
	}
	if len(f.queryCalls) != 0 {
		t.Error("invalid id should not reach the transport")
	}
}

func TestTitlePlotThemes(t *testing.T) {
	tests := map[string]struct {
		file string
		want string
	}{
		"new theme wins over remnants": {
			file: "title_new.html",
			want: "When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth — the life he knows is the elaborate deception of an evil cyber-intelligence.",
		},
		"old theme": {file: "title_old.html", want: "Thomas A. Anderson is a man living two lives."},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFakeTransport(t).page("/title/tt0133093/", tc.file)
			got, err := newTestClient(f).Title("tt0133093").Plot(context.Background())
			mustNoErr(t, err, "Plot()")
			if diff := cmp.Diff(ptr(tc.want), got); diff != "" {
				t.Errorf("Plot() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTitleTaglineThemes(t *testing.T) {
	tests := map[string]struct {
		file string
		want []string
	}{
		"new":         {file: "taglines_new.html", want: []string{"Free your mind.", "Reality is a thing of the past."}},
		"old":         {file: "taglines_old.html", want: []string{"Free your mind.", "The fight for the future begins.", "Believe the unbelievable."}},
		"placeholder": {file: "taglines_empty.html", want: []string{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFakeTransport(t).page("/title/tt0133093/taglines/", tc.file)
			got, err := newTestClient(f).Title("tt0133093").Taglines(context.Background())
			mustNoErr(t, err, "Taglines()")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Taglines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTitleParentalGuideOldTheme(t *testing.T) {
	f := newFakeTransport(t).page("/title/tt0133093/parentalguide/", "parentalguide_old.html")
	got, err := newTestClient(f).Title("tt0133093").ParentalGuide(context.Background())
	mustNoErr(t, err, "ParentalGuide()")

	want := &ParentalGuide{
		ByCountry: map[string]string{"United States": "R", "United Kingdom": "15"},
		Reason:    ptr("Rated R for sci-fi violence and brief language"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParentalGuide() mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleMissingPageIsAnError(t *testing.T) {
	f := newFakeTransport(t)
	_, err := newTestClient(f).Title("tt0133093").Locations(context.Background())
	if err == nil {
		t.Fatal("Locations() should fail on a 404 page")
	}
	var pe *provider.ProviderError
	if !errors.As(provider.MapError(providerName, err), &pe) || pe.Code != provider.CodeNotFound {
		t.Errorf("mapped error = %v, want NOT_FOUND", err)
	}
}

func TestTextFieldsKeepBrackets(t *testing.T) {
	tests := map[string]struct {
		got  *string
		want *string
	}{
		"encoded plain text": {got: plainOf(&rawPlain{PlainText: "Love &lt;3 you&gt; ok"}), want: ptr("Love <3 you> ok")},
		"bare comparison":    {got: plainOf(&rawPlain{PlainText: "1 < 2 and 3 > 2"}), want: ptr("1 < 2 and 3 > 2")},
		"markup in text":     {got: textOf(&rawText{Text: "<i>Heat</i> &amp; more"}), want: ptr("Heat & more")},
	}
	for name, tc := range tests {
		if diff := cmp.Diff(tc.want, tc.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}
