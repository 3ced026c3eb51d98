package extract

import "strings"

// ImagePair holds the full-size and the as-served variant of one image.
type ImagePair struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
}

// SplitImage derives the original from a size-decorated CDN URL by cutting
// at "@@" (or "@" when there is no "@@") and replacing the size suffix with
// ".jpg". The thumbnail is the URL as given. Blank input yields nil.
func SplitImage(rawURL string) *ImagePair {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return nil
	}
	original := u
	if i := strings.Index(u, "@@"); i >= 0 {
		original = u[:i+2] + ".jpg"
	} else if i := strings.Index(u, "@"); i >= 0 {
		original = u[:i+1] + ".jpg"
	}
	return &ImagePair{Original: original, Thumbnail: u}
}
