package imdb

import (
	"context"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/graphql"
)

// CompanyLookup fetches one company from the query API.
type CompanyLookup struct {
	base
	id string
}

// ID returns the requested company id.
func (l *CompanyLookup) ID() string { return l.id }

type rawCompany struct {
	Company *struct {
		ID           string    `json:"id"`
		CompanyText  *rawText  `json:"companyText"`
		Country      *rawText  `json:"country"`
		CompanyTypes []rawText `json:"companyTypes"`
		MeterRanking *struct {
			CurrentRank *int `json:"currentRank"`
		} `json:"meterRanking"`
		Affiliations *edges[struct {
			Company *struct {
				ID          string   `json:"id"`
				CompanyText *rawText `json:"companyText"`
			} `json:"company"`
			Text string `json:"text"`
		}] `json:"affiliations"`
		KeyStaff *edges[struct {
			Name *struct {
				ID       string   `json:"id"`
				NameText *rawText `json:"nameText"`
			} `json:"name"`
			Employments []struct {
				EmploymentTitle *rawText `json:"employmentTitle"`
			} `json:"employments"`
		}] `json:"keyStaff"`
		KnownForTitles *edges[struct {
			Title *struct {
				ID        string   `json:"id"`
				TitleText *rawText `json:"titleText"`
			} `json:"title"`
			Jobs []struct {
				Category *rawText `json:"category"`
			} `json:"jobs"`
			Countries []rawText     `json:"countries"`
			YearRange *rawYearRange `json:"yearRange"`
		}] `json:"knownForTitles"`
	} `json:"company"`
}

// Full returns the company record. Missing identity yields an empty record.
func (l *CompanyLookup) Full(ctx context.Context) (*Company, error) {
	if err := requireID(l.id, extract.CompanyID); err != nil {
		return nil, err
	}
	return remember(l.memo, opCompany, func() (*Company, error) {
		var raw rawCompany
		if err := l.gql.QueryInto(ctx, companyQuery, opCompany, graphql.Variables{"id": l.id}, &raw); err != nil {
			return nil, err
		}
		return mapCompany(&raw), nil
	})
}

func mapCompany(raw *rawCompany) *Company {
	c := raw.Company
	if c == nil {
		return &Company{}
	}
	name := textOf(c.CompanyText)
	if c.ID == "" || name == nil {
		return &Company{}
	}

	out := &Company{
		ID:           c.ID,
		Name:         *name,
		Country:      textOf(c.Country),
		Types:        texts(c.CompanyTypes),
		Affiliations: []Affiliation{},
		Staff:        []Staff{},
		KnownFor:     []KnownFor{},
	}
	if c.MeterRanking != nil {
		out.Rank = c.MeterRanking.CurrentRank
	}
	for _, a := range c.Affiliations.nodes() {
		if a.Company == nil {
			continue
		}
		aname := textOf(a.Company.CompanyText)
		if a.Company.ID == "" || aname == nil {
			continue
		}
		out.Affiliations = append(out.Affiliations, Affiliation{ID: a.Company.ID, Name: *aname, Description: extract.CleanText(a.Text)})
	}
	for _, s := range c.KeyStaff.nodes() {
		if s.Name == nil {
			continue
		}
		sname := textOf(s.Name.NameText)
		if s.Name.ID == "" || sname == nil {
			continue
		}
		st := Staff{ID: s.Name.ID, Name: *sname, Employments: []string{}}
		for _, e := range s.Employments {
			if t := textOf(e.EmploymentTitle); t != nil {
				st.Employments = append(st.Employments, *t)
			}
		}
		out.Staff = append(out.Staff, st)
	}
	for _, k := range c.KnownForTitles.nodes() {
		if k.Title == nil {
			continue
		}
		title := textOf(k.Title.TitleText)
		if k.Title.ID == "" || title == nil {
			continue
		}
		kf := KnownFor{ID: k.Title.ID, Title: *title, Jobs: []string{}, Countries: texts(k.Countries)}
		for _, j := range k.Jobs {
			if t := textOf(j.Category); t != nil {
				kf.Jobs = append(kf.Jobs, *t)
			}
		}
		if k.YearRange != nil {
			kf.YearFrom = k.YearRange.Year
			kf.YearTo = k.YearRange.EndYear
		}
		out.KnownFor = append(out.KnownFor, kf)
	}
	return out
}
