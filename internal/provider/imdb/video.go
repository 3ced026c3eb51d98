package imdb

import (
	"context"
	"strconv"

	"github.com/Digital-Shane/imdbkit/internal/extract"
	"github.com/Digital-Shane/imdbkit/internal/graphql"
)

// VideoLookup fetches one video from the query API.
type VideoLookup struct {
	base
	id string
}

// ID returns the requested video id.
func (l *VideoLookup) ID() string { return l.id }

type rawVideo struct {
	Video *struct {
		ID          string    `json:"id"`
		Name        *rawValue `json:"name"`
		Description *rawValue `json:"description"`
		Runtime     *struct {
			Value *int `json:"value"`
		} `json:"runtime"`
		VideoDimensions *struct {
			AspectRatio *float64 `json:"aspectRatio"`
		} `json:"videoDimensions"`
		CreatedDate  *string   `json:"createdDate"`
		Thumbnail    *rawImage `json:"thumbnail"`
		PlaybackURLs []struct {
			DisplayName *rawValue `json:"displayName"`
			MimeType    string    `json:"mimeType"`
			URL         string    `json:"url"`
		} `json:"playbackURLs"`
		PrimaryTitle *struct {
			ID           string             `json:"id"`
			TitleText    *rawText           `json:"titleText"`
			ReleaseDate  *rawDateComponents `json:"releaseDate"`
			PrimaryImage *rawImage          `json:"primaryImage"`
		} `json:"primaryTitle"`
	} `json:"video"`
}

// Full returns the video record. Missing identity yields an empty record.
func (l *VideoLookup) Full(ctx context.Context) (*Video, error) {
	if err := requireID(l.id, extract.VideoID); err != nil {
		return nil, err
	}
	return remember(l.memo, opVideo, func() (*Video, error) {
		var raw rawVideo
		if err := l.gql.QueryInto(ctx, videoQuery, opVideo, graphql.Variables{"id": l.id}, &raw); err != nil {
			return nil, err
		}
		return mapVideo(&raw), nil
	})
}

func mapVideo(raw *rawVideo) *Video {
	v := raw.Video
	if v == nil {
		return &Video{}
	}
	name := valueOf(v.Name)
	if v.ID == "" || name == nil {
		return &Video{}
	}

	out := &Video{
		ID:           v.ID,
		VideoTitle:   *name,
		Description:  valueOf(v.Description),
		CreatedDate:  v.CreatedDate,
		Thumbnail:    v.Thumbnail.image(),
		PlaybackURLs: []PlaybackURL{},
	}
	if v.Runtime != nil {
		out.RuntimeSeconds = v.Runtime.Value
	}
	if v.VideoDimensions != nil && v.VideoDimensions.AspectRatio != nil {
		out.AspectRatio = extract.Ptr(formatAspectRatio(*v.VideoDimensions.AspectRatio))
	}
	for _, p := range v.PlaybackURLs {
		if p.URL == "" {
			continue
		}
		out.PlaybackURLs = append(out.PlaybackURLs, PlaybackURL{
			Quality:  extract.Deref(valueOf(p.DisplayName)),
			MimeType: p.MimeType,
			URL:      p.URL,
		})
	}
	if pt := v.PrimaryTitle; pt != nil && pt.ID != "" {
		vt := &VideoTitle{ID: pt.ID, Title: extract.Deref(textOf(pt.TitleText)), Image: pt.PrimaryImage.image()}
		if rd := pt.ReleaseDate; rd != nil {
			d := extract.NewDate(rd.Day, rd.Month, rd.Year)
			if !d.IsZero() {
				vt.ReleaseDate = &d
			}
		}
		out.PrimaryTitle = vt
		out.Title = vt.Title
	}
	if out.Title == "" {
		out.Title = out.VideoTitle
	}
	return out
}

// formatAspectRatio renders 1.7777 as "1.78:1".
func formatAspectRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64) + ":1"
}
