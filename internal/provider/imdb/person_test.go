package imdb

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Digital-Shane/imdbkit/internal/extract"
)

func TestPersonMain(t *testing.T) {
	f := newFakeTransport(t).query(opName, "name.json")
	got, err := newTestClient(f).Person("nm0000206").Main(context.Background())
	mustNoErr(t, err, "Main()")

	want := &Person{
		ID:       "nm0000206",
		FullName: "Keanu Reeves",
		Photo:    &Image{URL: "https://m.media-amazon.com/images/M/keanu.jpg", Width: 1000, Height: 1500},
		Birth: &BirthDeath{
			Date:  extract.Date{Day: ptr(2), Month: ptr(9), Year: ptr(1964), Date: ptr("1964-09-02")},
			Place: ptr("Beirut, Lebanon"),
		},
		BirthName:  ptr("Keanu Charles Reeves"),
		NickNames:  []string{"The Wall"},
		AkaNames:   []string{"Keanu Reves"},
		BodyHeight: &Height{Imperial: ptr("6′ 1″"), Metric: ptr("1.86 m"), MetricCm: ptr(186)},
		Bio: []Bio{
			{Text: "Short bio.", Author: ptr("IMDb")},
			{Text: `Keanu Charles Reeves, whose first name means "cool breeze over the mountains" in Hawaiian, was born September 2, 1964 in Beirut, Lebanon.`, Author: ptr("Pedro Borges")},
		},
		Professions: []string{"Actor", "Producer"},
		Rank:        &Rank{CurrentRank: ptr(42), ChangeDirection: ptr("UP"), Difference: ptr(7)},
		KnownFor: []SearchResult{{
			ID:    "tt0133093",
			Name:  "The Matrix",
			Index: 1,
			Image: &ImagePair{
				Original:  "https://m.media-amazon.com/images/M/matrix.jpg",
				Thumbnail: "https://m.media-amazon.com/images/M/matrix.QL75_UX140_CR0,1,140,207_.jpg",
			},
			Type: ptr("Movie"),
			Year: ptr(1999),
			Job:  ptr("Actor"),
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Main() mismatch (-want +got):\n%s", diff)
	}
	if got.Death != nil {
		t.Error("living person should have no death")
	}
}

func TestPersonDisplayBio(t *testing.T) {
	tests := map[string]struct {
		bios []Bio
		want *Bio
	}{
		"none":  {bios: nil, want: nil},
		"one":   {bios: []Bio{{Text: "a"}}, want: &Bio{Text: "a"}},
		"two":   {bios: []Bio{{Text: "a"}, {Text: "b"}}, want: &Bio{Text: "b"}},
		"three": {bios: []Bio{{Text: "a"}, {Text: "b"}, {Text: "c"}}, want: &Bio{Text: "b"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := &Person{ID: "nm0000001", FullName: "X", Bio: tc.bios}
			if diff := cmp.Diff(tc.want, p.DisplayBio()); diff != "" {
				t.Errorf("DisplayBio() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPersonDeathBeforeBirthIsDropped(t *testing.T) {
	f := newFakeTransport(t).
		query(opName, "name_inverted.json").
		page("/name/nm0000134/bio/", "bio_new.html")
	l := newTestClient(f).Person("nm0000134")

	got, err := l.Main(context.Background())
	mustNoErr(t, err, "Main()")
	if got.Death != nil {
		t.Fatalf("Death = %+v, want nil when before birth", got.Death)
	}
	if got.Birth == nil || got.Birth.Date.Date == nil || *got.Birth.Date.Date != "1943-08-17" {
		t.Errorf("Birth = %+v, want 1943-08-17", got.Birth)
	}

	full, err := l.Full(context.Background())
	mustNoErr(t, err, "Full()")
	if full.Death != nil {
		t.Error("Full() must keep the lifespan invariant")
	}
	// Fields the API lacks come from the bio page.
	if diff := cmp.Diff(ptr("Robert Anthony De Niro Jr."), full.BirthName); diff != "" {
		t.Errorf("BirthName mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bobby", "Bobby Milk"}, full.NickNames); diff != "" {
		t.Errorf("NickNames mismatch (-want +got):\n%s", diff)
	}
	if len(full.Bio) != 2 || full.DisplayBio().Text != "Robert De Niro was born in New York City." {
		t.Errorf("DisplayBio() = %+v", full.DisplayBio())
	}
}

func TestPersonMissingIdentity(t *testing.T) {
	f := newFakeTransport(t).query(opName, "name_missing.json")
	got, err := newTestClient(f).Person("nm9999999").Full(context.Background())
	mustNoErr(t, err, "Full()")
	if !got.IsEmpty() {
		t.Errorf("Full() = %+v, want empty", got)
	}
	if len(f.pageCalls) != 0 {
		t.Error("empty record should not fetch the bio page")
	}
}

func TestPersonOverviewThemes(t *testing.T) {
	tests := map[string]struct {
		file string
		want *Overview
	}{
		"new": {
			file: "bio_new.html",
			want: &Overview{
				Birth: &BirthDeath{
					Date:  extract.Date{Day: ptr(17), Month: ptr(8), Year: ptr(1943), Date: ptr("1943-08-17")},
					Place: ptr("New York City, New York, USA"),
				},
				BirthName:  ptr("Robert Anthony De Niro Jr."),
				NickNames:  []string{"Bobby", "Bobby Milk"},
				BodyHeight: &Height{Imperial: ptr("5′ 9½″"), Metric: ptr("1.77 m"), MetricCm: ptr(177)},
				Bio: []Bio{
					{Text: "One of the greatest actors of all time.", Author: ptr("Pedro Borges")},
					{Text: "Robert De Niro was born in New York City.", Author: ptr("Anonymous")},
				},
			},
		},
		"old": {
			file: "bio_old.html",
			want: &Overview{
				Birth: &BirthDeath{
					Date:  extract.Date{Day: ptr(4), Month: ptr(5), Year: ptr(1929), Date: ptr("1929-05-04")},
					Place: ptr("Ixelles, Brussels, Belgium"),
				},
				Death: &BirthDeath{
					Date:  extract.Date{Day: ptr(20), Month: ptr(1), Year: ptr(1993), Date: ptr("1993-01-20")},
					Place: ptr("Tolochenaz, Vaud, Switzerland"),
					Cause: ptr("colon cancer"),
				},
				BirthName:  ptr("Audrey Kathleen Ruston"),
				NickNames:  []string{"Adriaantje", "Edda"},
				BodyHeight: &Height{Imperial: ptr("5′ 7″"), Metric: ptr("1.7 m"), MetricCm: ptr(170)},
				Bio:        []Bio{{Text: "Audrey Hepburn was born in Ixelles.", Author: ptr("Pedro Borges")}},
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFakeTransport(t).page("/name/nm0000001/bio/", tc.file)
			l := newTestClient(f).Person("nm0000001")
			got, err := l.Overview(context.Background())
			mustNoErr(t, err, "Overview()")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Overview() mismatch (-want +got):\n%s", diff)
			}
			if f.pageCalls["/name/nm0000001/bio/"] != 1 {
				t.Errorf("bio page fetched %d times, want 1", f.pageCalls["/name/nm0000001/bio/"])
			}
		})
	}
}

func TestParseLifeEvent(t *testing.T) {
	tests := map[string]*BirthDeath{
		"1944": {Date: extract.Date{Year: ptr(1944)}},
		"June 25, 2009 · Los Angeles, California, USA (cardiac arrest)": {
			Date:  extract.Date{Day: ptr(25), Month: ptr(6), Year: ptr(2009), Date: ptr("2009-06-25")},
			Place: ptr("Los Angeles, California, USA"),
			Cause: ptr("cardiac arrest"),
		},
		"": nil,
	}
	for in, want := range tests {
		if diff := cmp.Diff(want, ParseLifeEvent(in)); diff != "" {
			t.Errorf("ParseLifeEvent(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseHeight(t *testing.T) {
	tests := map[string]*Height{
		"6′ 1″ (1.86 m)": {Imperial: ptr("6′ 1″"), Metric: ptr("1.86 m"), MetricCm: ptr(186)},
		"1.75 m":         {Metric: ptr("1.75 m"), MetricCm: ptr(175)},
		"5′ 11″":         {Imperial: ptr("5′ 11″")},
		"":               nil,
	}
	for in, want := range tests {
		if diff := cmp.Diff(want, ParseHeight(in)); diff != "" {
			t.Errorf("ParseHeight(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}
