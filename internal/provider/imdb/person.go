package imdb

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/graphql"
)

// PersonLookup fetches one person. Full merges the query API record with the
// bio page; Main and Overview fetch one source each.
type PersonLookup struct {
	base
	id string
}

// ID returns the requested person id.
func (l *PersonLookup) ID() string { return l.id }

type rawDate struct {
	DateComponents *rawDateComponents `json:"dateComponents"`
}

type rawBio struct {
	Text   *rawPlain `json:"text"`
	Author *rawPlain `json:"author"`
}

type rawKnownForCredit struct {
	Title *struct {
		ID           string        `json:"id"`
		TitleText    *rawText      `json:"titleText"`
		TitleType    *rawText      `json:"titleType"`
		ReleaseYear  *rawYearRange `json:"releaseYear"`
		PrimaryImage *rawImage     `json:"primaryImage"`
	} `json:"title"`
	Summary *struct {
		PrincipalCategory *rawText `json:"principalCategory"`
	} `json:"summary"`
}

type rawName struct {
	Name *struct {
		ID            string          `json:"id"`
		NameText      *rawText        `json:"nameText"`
		PrimaryImage  *rawImage       `json:"primaryImage"`
		BirthDate     *rawDate        `json:"birthDate"`
		BirthLocation *rawText        `json:"birthLocation"`
		DeathDate     *rawDate        `json:"deathDate"`
		DeathLocation *rawText        `json:"deathLocation"`
		DeathCause    *rawText        `json:"deathCause"`
		BirthName     *rawText        `json:"birthName"`
		NickNames     []rawText       `json:"nickNames"`
		Akas          *edges[rawText] `json:"akas"`
		Height        *struct {
			DisplayableProperty *struct {
				Value *rawPlain `json:"value"`
			} `json:"displayableProperty"`
		} `json:"height"`
		Bios               *edges[rawBio] `json:"bios"`
		PrimaryProfessions []struct {
			Category *rawText `json:"category"`
		} `json:"primaryProfessions"`
		MeterRanking *struct {
			CurrentRank *int `json:"currentRank"`
			RankChange  *struct {
				ChangeDirection *string `json:"changeDirection"`
				Difference      *int    `json:"difference"`
			} `json:"rankChange"`
		} `json:"meterRanking"`
		KnownFor *edges[rawKnownForCredit] `json:"knownFor"`
	} `json:"name"`
}

// Main returns the person record from the query API alone.
func (l *PersonLookup) Main(ctx context.Context) (*Person, error) {
	if err := requireID(l.id, extract.PersonID); err != nil {
		return nil, err
	}
	return remember(l.memo, opName, func() (*Person, error) {
		var raw rawName
		if err := l.gql.QueryInto(ctx, nameQuery, opName, graphql.Variables{"id": l.id}, &raw); err != nil {
			return nil, err
		}
		p := mapName(&raw)
		checkLifespan(p, l.logger)
		return p, nil
	})
}

// Full returns the API record with any missing biographical fields filled
// from the bio page.
func (l *PersonLookup) Full(ctx context.Context) (*Person, error) {
	core, err := l.Main(ctx)
	if err != nil {
		return nil, err
	}
	if core.IsEmpty() {
		return core, nil
	}
	ov, err := l.Overview(ctx)
	if err != nil {
		return nil, err
	}

	full := *core
	if full.Birth == nil {
		full.Birth = ov.Birth
	}
	if full.Death == nil {
		full.Death = ov.Death
	}
	if full.BirthName == nil {
		full.BirthName = ov.BirthName
	}
	if len(full.NickNames) == 0 {
		full.NickNames = ov.NickNames
	}
	if full.BodyHeight == nil {
		full.BodyHeight = ov.BodyHeight
	}
	if len(full.Bio) == 0 {
		full.Bio = ov.Bio
	}
	checkLifespan(&full, l.logger)
	return &full, nil
}

// DisplayBio returns the biography picked for display from the full record.
func (l *PersonLookup) DisplayBio(ctx context.Context) (*Bio, error) {
	p, err := l.Full(ctx)
	if err != nil {
		return nil, err
	}
	return p.DisplayBio(), nil
}

func mapName(raw *rawName) *Person {
	n := raw.Name
	if n == nil {
		return &Person{}
	}
	name := textOf(n.NameText)
	if n.ID == "" || name == nil {
		return &Person{}
	}

	p := &Person{
		ID:          n.ID,
		FullName:    *name,
		Photo:       n.PrimaryImage.image(),
		Birth:       lifeEvent(n.BirthDate, n.BirthLocation, nil),
		Death:       lifeEvent(n.DeathDate, n.DeathLocation, n.DeathCause),
		BirthName:   textOf(n.BirthName),
		NickNames:   texts(n.NickNames),
		AkaNames:    texts(n.Akas.nodes()),
		Bio:         []Bio{},
		Professions: []string{},
		KnownFor:    []SearchResult{},
	}
	if n.Height != nil && n.Height.DisplayableProperty != nil {
		p.BodyHeight = ParseHeight(extract.Deref(plainOf(n.Height.DisplayableProperty.Value)))
	}
	for _, b := range n.Bios.nodes() {
		if text := plainOf(b.Text); text != nil {
			p.Bio = append(p.Bio, Bio{Text: *text, Author: plainOf(b.Author)})
		}
	}
	for _, pr := range n.PrimaryProfessions {
		if s := textOf(pr.Category); s != nil {
			p.Professions = append(p.Professions, *s)
		}
	}
	if m := n.MeterRanking; m != nil {
		p.Rank = &Rank{CurrentRank: m.CurrentRank}
		if m.RankChange != nil {
			p.Rank.ChangeDirection = m.RankChange.ChangeDirection
			p.Rank.Difference = m.RankChange.Difference
		}
	}
	for i, kf := range n.KnownFor.nodes() {
		t := kf.Title
		if t == nil {
			continue
		}
		r := SearchResult{ID: t.ID, Name: extract.Deref(textOf(t.TitleText)), Index: i + 1, Image: t.PrimaryImage.pair(), Type: textOf(t.TitleType)}
		if t.ReleaseYear != nil {
			r.Year = t.ReleaseYear.Year
		}
		if kf.Summary != nil {
			r.Job = textOf(kf.Summary.PrincipalCategory)
		}
		if !r.IsEmpty() {
			p.KnownFor = append(p.KnownFor, r)
		}
	}
	return p
}

func lifeEvent(d *rawDate, place, cause *rawText) *BirthDeath {
	ev := BirthDeath{Place: textOf(place), Cause: textOf(cause)}
	if d != nil && d.DateComponents != nil {
		c := d.DateComponents
		ev.Date = extract.NewDate(c.Day, c.Month, c.Year)
	}
	if ev.Date.IsZero() && ev.Place == nil && ev.Cause == nil {
		return nil
	}
	return &ev
}

// checkLifespan drops a death that precedes the birth year.
func checkLifespan(p *Person, logger *slog.Logger) {
	if p != nil {
		p.Death = consistentDeath(p.Birth, p.Death, logger)
	}
}

// consistentDeath returns death, or nil when its year precedes the birth year.
func consistentDeath(birth, death *BirthDeath, logger *slog.Logger) *BirthDeath {
	if birth == nil || death == nil || birth.Year == nil || death.Year == nil {
		return death
	}
	if *death.Year < *birth.Year {
		logger.Warn("dropping death before birth",
			slog.Int("birthYear", *birth.Year),
			slog.Int("deathYear", *death.Year))
		return nil
	}
	return death
}

var metricHeightRe = regexp.MustCompile(`([\d.]+)\s*m\b`)

// ParseHeight reads displays such as `6' 1" (1.86 m)`.
func ParseHeight(text string) *Height {
	s := extract.CollapseText(text)
	if s == nil {
		return nil
	}
	h := &Height{Imperial: s}
	if i := strings.Index(*s, "("); i >= 0 {
		h.Imperial = extract.CollapseText((*s)[:i])
	}
	if m := metricHeightRe.FindStringSubmatch(*s); m != nil {
		h.Metric = extract.Ptr(m[1] + " m")
		if meters, err := strconv.ParseFloat(m[1], 64); err == nil {
			h.MetricCm = extract.Ptr(int(math.Round(meters * 100)))
		}
		if !strings.Contains(*s, "(") {
			h.Imperial = nil
		}
	}
	return h
}
