package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchArticle_DecodesMultimediaShapes(t *testing.T) {
	tests := []struct {
		name          string
		multimedia    string
		expectedCount int
	}{
		{"array", `[{"rank":0,"subtype":"thumbnail","type":"image","url":"images/a.jpg","height":75,"width":75}]`, 1},
		{"single object", `{"rank":0,"subtype":"thumbnail","type":"image","url":"images/a.jpg","height":75,"width":75}`, 1},
		{"null", `null`, 0},
		{"unexpected shape", `"nope"`, 0},
		{"malformed array element", `[{"rank":"zero"}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"_id":"nyt://article/1","web_url":"https://www.nytimes.com/a.html","snippet":"s",` +
				`"headline":{"main":"Test Headline"},"pub_date":"2024-05-01T12:00:06+0000","document_type":"article",` +
				`"multimedia":` + tt.multimedia + `}`

			var doc SearchArticle
			require.NoError(t, json.Unmarshal([]byte(payload), &doc))
			assert.Len(t, doc.Multimedia, tt.expectedCount)
			assert.Equal(t, "Test Headline", doc.Headline())
		})
	}
}

func TestSearchArticle_ThumbnailURL(t *testing.T) {
	tests := []struct {
		name       string
		multimedia MultimediaList
		expected   string
	}{
		{"none", nil, ""},
		{
			"relative thumbnail resolved against site",
			MultimediaList{
				{Subtype: "xlarge", URL: "images/big.jpg"},
				{Subtype: "thumbnail", URL: "images/thumb.jpg"},
			},
			"https://www.nytimes.com/images/thumb.jpg",
		},
		{
			"absolute thumbnail kept",
			MultimediaList{{Subtype: "thumbnail", URL: "https://static01.nyt.com/images/thumb.jpg"}},
			"https://static01.nyt.com/images/thumb.jpg",
		},
		{"no thumbnail subtype", MultimediaList{{Subtype: "xlarge", URL: "images/big.jpg"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := SearchArticle{Multimedia: tt.multimedia}
			assert.Equal(t, tt.expected, doc.ThumbnailURL())
		})
	}
}

func TestSearchArticle_SectionNameDefaultsToGeneral(t *testing.T) {
	assert.Equal(t, "General", SearchArticle{}.SectionName())
	assert.Equal(t, "Arts", SearchArticle{Section: "Arts"}.SectionName())
}

func TestSearchArticle_PublishedAtParsesOffsetWithoutColon(t *testing.T) {
	doc := SearchArticle{PubDate: "2024-05-01T12:00:06+0000"}
	assert.Equal(t, 2024, doc.PublishedAt().Year())
	assert.Equal(t, 6, doc.PublishedAt().Second())
}
