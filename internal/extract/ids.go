package extract

import "regexp"

// IDKind selects the identifier pattern ExtractID looks for.
type IDKind string

const (
	TitleID   IDKind = "title"
	PersonID  IDKind = "person"
	CompanyID IDKind = "company"
	VideoID   IDKind = "video"
	KeywordID IDKind = "keyword"
)

var idPatterns = map[IDKind]*regexp.Regexp{
	TitleID:   regexp.MustCompile(`tt\d{7,8}`),
	PersonID:  regexp.MustCompile(`nm\d{7,8}`),
	CompanyID: regexp.MustCompile(`co\d{7,8}`),
	VideoID:   regexp.MustCompile(`vi\d{8,10}`),
	KeywordID: regexp.MustCompile(`kw\d{7,8}`),
}

// ExtractID returns the first identifier of kind found in text, typically an
// href. Nil when there is none.
func ExtractID(text string, kind IDKind) *string {
	re, ok := idPatterns[kind]
	if !ok {
		return nil
	}
	id := re.FindString(text)
	if id == "" {
		return nil
	}
	return &id
}
