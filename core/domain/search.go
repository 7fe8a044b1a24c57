// ABOUTME: Search domain models for article search results
// ABOUTME: Handles the provider's inconsistent multimedia shape (array or single object)

package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	timeutil "articles-app-core/pkg/utils/time"
)

// ThumbnailBaseURL resolves relative multimedia URLs returned by article search
const ThumbnailBaseURL = "https://www.nytimes.com/"

// SearchArticle is a single document returned by article search
type SearchArticle struct {
	ID             string         `json:"_id"`
	URLString      string         `json:"web_url"`
	Snippet        string         `json:"snippet"`
	LeadParagraph  string         `json:"lead_paragraph,omitempty"`
	Abstract       string         `json:"abstract,omitempty"`
	PrintPage      string         `json:"print_page,omitempty"`
	Source         string         `json:"source,omitempty"`
	Multimedia     MultimediaList `json:"multimedia,omitempty"`
	Title          SearchHeadline `json:"headline"`
	Keywords       []Keyword      `json:"keywords,omitempty"`
	PubDate        string         `json:"pub_date"`
	DocumentType   string         `json:"document_type"`
	NewsDesk       string         `json:"news_desk,omitempty"`
	Section        string         `json:"section_name,omitempty"`
	Subsection     string         `json:"subsection_name,omitempty"`
	Byline         *Byline        `json:"byline,omitempty"`
	TypeOfMaterial string         `json:"type_of_material,omitempty"`
	WordCount      int            `json:"word_count,omitempty"`
	URI            string         `json:"uri,omitempty"`
}

// SearchHeadline holds the headline variants of a search document
type SearchHeadline struct {
	Main          string `json:"main"`
	Kicker        string `json:"kicker,omitempty"`
	ContentKicker string `json:"content_kicker,omitempty"`
	PrintHeadline string `json:"print_headline,omitempty"`
	Name          string `json:"name,omitempty"`
	SEO           string `json:"seo,omitempty"`
	Sub           string `json:"sub,omitempty"`
}

// Byline describes the authors of a search document
type Byline struct {
	Original     string   `json:"original,omitempty"`
	Person       []Person `json:"person,omitempty"`
	Organization string   `json:"organization,omitempty"`
}

// Person is a single byline contributor
type Person struct {
	Firstname    string `json:"firstname,omitempty"`
	Middlename   string `json:"middlename,omitempty"`
	Lastname     string `json:"lastname,omitempty"`
	Qualifier    string `json:"qualifier,omitempty"`
	Title        string `json:"title,omitempty"`
	Role         string `json:"role,omitempty"`
	Organization string `json:"organization,omitempty"`
	Rank         int    `json:"rank,omitempty"`
}

// Keyword is a subject tag on a search document
type Keyword struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Rank  int    `json:"rank"`
	Major string `json:"major,omitempty"`
}

// Multimedia is an image rendition attached to a search document
type Multimedia struct {
	Rank     int     `json:"rank"`
	Subtype  string  `json:"subtype"`
	Caption  string  `json:"caption,omitempty"`
	Credit   string  `json:"credit,omitempty"`
	Type     string  `json:"type"`
	URL      string  `json:"url"`
	Height   int     `json:"height"`
	Width    int     `json:"width"`
	Legacy   *Legacy `json:"legacy,omitempty"`
	CropName string  `json:"crop_name,omitempty"`
}

// Legacy holds the pre-crop image fields some documents still carry
type Legacy struct {
	XLarge       string `json:"xlarge,omitempty"`
	XLargeWidth  int    `json:"xlargewidth,omitempty"`
	XLargeHeight int    `json:"xlargeheight,omitempty"`
}

// MultimediaList decodes from either a JSON array or a single JSON object.
// Any other shape decodes to an empty list rather than failing the document.
type MultimediaList []Multimedia

// UnmarshalJSON implements json.Unmarshaler
func (m *MultimediaList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*m = nil
	case trimmed[0] == '[':
		var list []Multimedia
		if err := json.Unmarshal(trimmed, &list); err != nil {
			*m = nil
			return nil
		}
		*m = list
	case trimmed[0] == '{':
		var single Multimedia
		if err := json.Unmarshal(trimmed, &single); err != nil {
			*m = nil
			return nil
		}
		*m = MultimediaList{single}
	default:
		*m = nil
	}
	return nil
}

// ArticleID returns the document identifier
func (a SearchArticle) ArticleID() string {
	return a.ID
}

// Headline returns the main headline
func (a SearchArticle) Headline() string {
	return a.Title.Main
}

// Summary returns the snippet
func (a SearchArticle) Summary() string {
	return a.Snippet
}

// WebURL returns the canonical article URL
func (a SearchArticle) WebURL() string {
	return a.URLString
}

// SectionName returns the section, defaulting to "General"
func (a SearchArticle) SectionName() string {
	if a.Section == "" {
		return "General"
	}
	return a.Section
}

// PublishedAt parses PubDate, returning the zero time when it is malformed
func (a SearchArticle) PublishedAt() time.Time {
	return timeutil.ParseFlexibleTime(a.PubDate)
}

// ThumbnailURL returns the first "thumbnail" rendition as an absolute URL
func (a SearchArticle) ThumbnailURL() string {
	for _, media := range a.Multimedia {
		if media.Subtype != "thumbnail" || media.URL == "" {
			continue
		}
		if strings.HasPrefix(media.URL, "http://") || strings.HasPrefix(media.URL, "https://") {
			return media.URL
		}
		return ThumbnailBaseURL + strings.TrimPrefix(media.URL, "/")
	}
	return ""
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
