package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	// dateTextRe matches "August 17, 1943", "Aug 17 1943", "August 1944" and "1944".
	dateTextRe = regexp.MustCompile(`(?:([A-Za-z]{3,9})\.?\s+)?(?:(\d{1,2})(?:st|nd|rd|th)?,?\s+)?(\d{4})`)
	// dayFirstRe matches "17 August 1943" and "17th Aug. 1943".
	dayFirstRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]{3,9})\.?,?\s+(\d{4})`)
)

// Date is a possibly partial calendar date. Date is set only when day, month
// and year are all known.
type Date struct {
	Day   *int    `json:"day"`
	Month *int    `json:"month"`
	Year  *int    `json:"year"`
	Date  *string `json:"date"`
}

// MonthNumber maps a full or three-letter English month name to 1..12, or 0.
func MonthNumber(name string) int {
	name = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	if len(name) < 3 {
		return 0
	}
	for i, m := range monthNames {
		full := strings.ToLower(m)
		if name == full || name == full[:3] {
			return i + 1
		}
	}
	// "Sept" is the one common four-letter form.
	if name == "sept" {
		return 9
	}
	return 0
}

// MonthName maps 1..12 to the English month name, or "".
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return monthNames[n-1]
}

// NewDate keeps whichever fragments are present and only formats the full
// YYYY-MM-DD value when all three are.
func NewDate(day, month, year *int) Date {
	d := Date{Day: validDay(day), Month: validMonth(month), Year: year}
	if d.Day != nil && d.Month != nil && d.Year != nil {
		s := fmt.Sprintf("%04d-%02d-%02d", *d.Year, *d.Month, *d.Day)
		d.Date = &s
	}
	return d
}

// IsZero reports whether no fragment is known.
func (d Date) IsZero() bool {
	return d.Day == nil && d.Month == nil && d.Year == nil
}

// ParseDateText reads dates written as "August 17, 1943", "Aug 17, 1943",
// "17 August 1943", "August 1944" or "1944". Unrecognised text yields a zero
// Date.
func ParseDateText(text string) Date {
	if m := dayFirstRe.FindStringSubmatch(text); m != nil {
		if month := MonthNumber(m[2]); month != 0 {
			return NewDate(atoi(m[1]), &month, atoi(m[3]))
		}
	}

	m := dateTextRe.FindStringSubmatch(text)
	if m == nil {
		return Date{}
	}
	var day, month *int
	if m[1] != "" {
		if n := MonthNumber(m[1]); n != 0 {
			month = &n
		}
	}
	if m[2] != "" && month != nil {
		day = atoi(m[2])
	}
	return NewDate(day, month, atoi(m[3]))
}

func atoi(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func validDay(d *int) *int {
	if d == nil || *d < 1 || *d > 31 {
		return nil
	}
	return d
}

func validMonth(m *int) *int {
	if m == nil || *m < 1 || *m > 12 {
		return nil
	}
	return m
}
