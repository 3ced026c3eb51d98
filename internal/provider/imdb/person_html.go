package imdb

import (
	"context"
	"regexp"
	"strings"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/page"
)

// Overview is the biographical summary scraped from a person's bio page.
type Overview struct {
	Birth      *BirthDeath `json:"birth"`
	Death      *BirthDeath `json:"death"`
	BirthName  *string     `json:"birthName"`
	NickNames  []string    `json:"nickNames"`
	BodyHeight *Height     `json:"bodyHeight"`
	Bio        []Bio       `json:"bio"`
}

// overviewRows maps a lowercased row label to its values.
type overviewRows map[string][]string

var brRe = regexp.MustCompile(`(?i)<br\s*/?>`)

var overviewThemes = []extract.Theme[overviewRows]{
	{Name: "new", Extract: func(doc *extract.Node) (overviewRows, bool) {
		rows := overviewRows{}
		for _, item := range doc.All(`section[data-testid="sub-section-overview"] li.ipc-metadata-list__item`) {
			label := item.Text(".ipc-metadata-list-item__label")
			values := item.Texts(".ipc-metadata-list-item__list-content-item")
			if label != nil && len(values) > 0 {
				rows[strings.ToLower(*label)] = values
			}
		}
		return rows, len(rows) > 0
	}},
	{Name: "old", Extract: func(doc *extract.Node) (overviewRows, bool) {
		rows := overviewRows{}
		for _, tr := range doc.All("#overviewTable tr") {
			label := tr.Text("td.label")
			cell := tr.Find("td:nth-of-type(2)")
			if label == nil || cell == nil {
				continue
			}
			var values []string
			for _, part := range brRe.Split(cell.HTML(), -1) {
				if s := extract.CleanText(part); s != nil {
					values = append(values, *s)
				}
			}
			if len(values) > 0 {
				rows[strings.ToLower(*label)] = values
			}
		}
		return rows, len(rows) > 0
	}},
}

var bioAuthorRe = regexp.MustCompile(`[-–]?\s*IMDb Mini Biography By:\s*(.+)$`)

var bioThemes = []extract.Theme[[]Bio]{
	extract.ListTheme("new", `[data-testid="sub-section-mini_bio"] .ipc-html-content-inner-div`, bioEntry),
	extract.ListTheme("old", "#bio_content .soda", bioEntry),
}

// bioEntry splits the trailing "- IMDb Mini Biography By: X" credit off a bio.
func bioEntry(n *extract.Node) (Bio, bool) {
	text := n.Text("")
	if text == nil {
		return Bio{}, false
	}
	b := Bio{Text: *text}
	if m := bioAuthorRe.FindStringSubmatchIndex(*text); m != nil {
		b.Author = extract.CollapseText((*text)[m[2]:m[3]])
		body := extract.CollapseText((*text)[:m[0]])
		if body == nil {
			return Bio{}, false
		}
		b.Text = *body
	}
	return b, true
}

// Overview scrapes birth, death, names, height and bios from the bio page.
func (l *PersonLookup) Overview(ctx context.Context) (*Overview, error) {
	if err := requireID(l.id, extract.PersonID); err != nil {
		return nil, err
	}
	params := page.Params{"id": l.id}
	rows, err := scrape(ctx, &l.base, "overview", page.PersonBio, params, overviewThemes...)
	if err != nil {
		return nil, err
	}
	bios, err := scrape(ctx, &l.base, "bios", page.PersonBio, params, bioThemes...)
	if err != nil {
		return nil, err
	}

	ov := mapOverview(rows)
	ov.Bio = bios
	if ov.Bio == nil {
		ov.Bio = []Bio{}
	}
	ov.Death = consistentDeath(ov.Birth, ov.Death, l.logger)
	return ov, nil
}

func mapOverview(rows overviewRows) *Overview {
	ov := &Overview{NickNames: []string{}}
	first := func(label string) string {
		if v := rows[label]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	ov.Birth = ParseLifeEvent(first("born"))
	ov.Death = ParseLifeEvent(first("died"))
	ov.BirthName = extract.StringPtr(first("birth name"))
	for _, label := range []string{"nicknames", "nickname"} {
		if v := rows[label]; len(v) > 0 {
			ov.NickNames = v
			break
		}
	}
	if h := first("height"); h != "" {
		ov.BodyHeight = ParseHeight(h)
	}
	return ov
}

var causeRe = regexp.MustCompile(`\(([^)]*)\)\s*$`)

// ParseLifeEvent reads "September 2, 1964 · Beirut, Lebanon" (and the older
// "... in Beirut, Lebanon") with an optional trailing "(cause)". Blank text
// yields nil.
func ParseLifeEvent(text string) *BirthDeath {
	s := extract.CleanString(text)
	if s == "" {
		return nil
	}
	ev := BirthDeath{}
	if m := causeRe.FindStringSubmatchIndex(s); m != nil {
		ev.Cause = extract.CollapseText(s[m[2]:m[3]])
		s = strings.TrimSpace(s[:m[0]])
	}

	datePart, place := s, ""
	if before, after, ok := strings.Cut(s, "·"); ok {
		datePart, place = before, after
	} else if before, after, ok := strings.Cut(s, " in "); ok {
		datePart, place = before, after
	}
	ev.Date = extract.ParseDateText(datePart)
	ev.Place = extract.CollapseText(place)
	if ev.Date.IsZero() && ev.Place == nil && ev.Cause == nil {
		return nil
	}
	return &ev
}
