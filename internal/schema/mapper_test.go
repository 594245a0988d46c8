package schema

import (
	"testing"

	"github.com/sanity-tools/contentful-to-sanity/pkg/contentful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentType(id string, name string, fields ...contentful.Field) *contentful.ContentType {
	return &contentful.ContentType{
		Sys:    contentful.Sys{ID: id, Type: "ContentType"},
		Name:   name,
		Fields: fields,
	}
}

func assetLink(id string, mimetypeGroups ...string) contentful.Field {
	field := contentful.Field{
		ID:       id,
		Name:     id,
		Type:     "Link",
		LinkType: "Asset",
	}

	for _, group := range mimetypeGroups {
		field.Validations = append(field.Validations, contentful.Validation{
			LinkMimetypeGroup: []string{group},
		})
	}

	return field
}

func TestMapPreservesFieldCountAndOrder(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{ID: "title", Name: "Title", Type: "Symbol"},
		contentful.Field{ID: "body", Name: "Body", Type: "Text"},
		contentful.Field{ID: "rating", Name: "Rating", Type: "Integer"},
		contentful.Field{ID: "published", Name: "Published", Type: "Boolean"},
		assetLink("cover", "image"),
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)

	require.Len(t, doc.Fields, len(contentType.Fields))
	for i, field := range contentType.Fields {
		assert.Equal(t, field.ID, doc.Fields[i].Name)
	}

	assert.Equal(t, "post", doc.Name)
	assert.Equal(t, "Post", doc.Title)
	assert.Equal(t, "document", doc.Type)
}

func TestMapScalarTypes(t *testing.T) {
	tests := []struct {
		contentfulType string
		sanityType     string
	}{
		{"Symbol", "string"},
		{"Text", "text"},
		{"Integer", "number"},
		{"Number", "number"},
		{"Boolean", "boolean"},
		{"Date", "datetime"},
		{"Location", "geopoint"},
		{"Object", "object"},
	}

	for _, test := range tests {
		t.Run(test.contentfulType, func(t *testing.T) {
			contentType := newContentType("thing", "Thing",
				contentful.Field{ID: "value", Name: "Value", Type: test.contentfulType},
			)

			doc, err := Map(contentType, nil, Options{})
			require.NoError(t, err)
			require.Len(t, doc.Fields, 1)
			assert.Equal(t, test.sanityType, doc.Fields[0].Type)
		})
	}
}

func TestMapAssetLinkClassification(t *testing.T) {
	contentType := newContentType("media", "Media",
		assetLink("image", "image"),
		assetLink("asset"),
		assetLink("pdf", "pdfdocument"),
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)
	require.Len(t, doc.Fields, 3)

	assert.Equal(t, "image", doc.Fields[0].Type)
	assert.Equal(t, "file", doc.Fields[1].Type)
	assert.Equal(t, "file", doc.Fields[2].Type)
}

func TestMapAssetLinkFirstRestrictionWins(t *testing.T) {
	contentType := newContentType("media", "Media",
		assetLink("pdfFirst", "pdfdocument", "image"),
		assetLink("imageFirst", "image", "pdfdocument"),
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "file", doc.Fields[0].Type)
	assert.Equal(t, "image", doc.Fields[1].Type)
}

func TestMapAssetLinkMultiGroupRestrictionIsFile(t *testing.T) {
	contentType := newContentType("media", "Media",
		contentful.Field{
			ID:       "attachment",
			Name:     "Attachment",
			Type:     "Link",
			LinkType: "Asset",
			Validations: []contentful.Validation{
				{LinkMimetypeGroup: []string{"image", "video"}},
			},
		},
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "file", doc.Fields[0].Type)
}

func TestMapEntryReference(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{
			ID:       "author",
			Name:     "Author",
			Type:     "Link",
			LinkType: "Entry",
			Validations: []contentful.Validation{
				{LinkContentType: []string{"author", "guestAuthor"}},
			},
		},
		contentful.Field{
			ID:       "related",
			Name:     "Related",
			Type:     "Link",
			LinkType: "Entry",
		},
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "reference", doc.Fields[0].Type)
	assert.Equal(t, []ReferenceTarget{
		{Type: "author"},
		{Type: "guestAuthor"},
	}, doc.Fields[0].To)

	assert.Equal(t, "reference", doc.Fields[1].Type)
	assert.Empty(t, doc.Fields[1].To)
}

func TestMapArrayOfLinks(t *testing.T) {
	contentType := newContentType("gallery", "Gallery",
		contentful.Field{
			ID:   "images",
			Name: "Images",
			Type: "Array",
			Items: &contentful.FieldItems{
				Type:     "Link",
				LinkType: "Asset",
				Validations: []contentful.Validation{
					{LinkMimetypeGroup: []string{"image"}},
				},
			},
		},
		contentful.Field{
			ID:   "authors",
			Name: "Authors",
			Type: "Array",
			Items: &contentful.FieldItems{
				Type:     "Link",
				LinkType: "Entry",
				Validations: []contentful.Validation{
					{LinkContentType: []string{"author"}},
				},
			},
		},
		contentful.Field{
			ID:    "keywords",
			Name:  "Keywords",
			Type:  "Array",
			Items: &contentful.FieldItems{Type: "Symbol"},
		},
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)
	require.Len(t, doc.Fields, 3)

	images := doc.Fields[0]
	assert.Equal(t, "array", images.Type)
	require.Len(t, images.Of, 1)
	assert.Equal(t, "image", images.Of[0].Type)

	authors := doc.Fields[1]
	assert.Equal(t, "array", authors.Type)
	require.Len(t, authors.Of, 1)
	assert.Equal(t, "reference", authors.Of[0].Type)
	assert.Equal(t, []ReferenceTarget{{Type: "author"}}, authors.Of[0].To)

	keywords := doc.Fields[2]
	assert.Equal(t, "array", keywords.Type)
	require.Len(t, keywords.Of, 1)
	assert.Equal(t, "string", keywords.Of[0].Type)
}

func TestMapMarkdownText(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{ID: "body", Name: "Body", Type: "Text"},
		contentful.Field{ID: "summary", Name: "Summary", Type: "Text"},
	)

	bundle := &contentful.ExportBundle{
		EditorInterfaces: []contentful.EditorInterface{
			{
				Sys: contentful.Sys{
					ID:          "default",
					ContentType: &contentful.SysLink{Sys: contentful.Sys{ID: "post"}},
				},
				Controls: []contentful.Control{
					{FieldID: "body", WidgetID: "markdown"},
					{FieldID: "summary", WidgetID: "singleLine"},
				},
			},
		},
	}

	doc, err := Map(contentType, bundle, Options{})
	require.NoError(t, err)

	// markdown text converts to portable text by default
	assert.Equal(t, "array", doc.Fields[0].Type)
	require.Len(t, doc.Fields[0].Of, 1)
	assert.Equal(t, "block", doc.Fields[0].Of[0].Type)

	// non-markdown text stays text
	assert.Equal(t, "text", doc.Fields[1].Type)

	doc, err = Map(contentType, bundle, Options{KeepMarkdown: true})
	require.NoError(t, err)

	// keepMarkdown preserves the raw markdown string
	assert.Equal(t, "text", doc.Fields[0].Type)
}

func TestMapRichText(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{ID: "body", Name: "Body", Type: "RichText"},
	)

	doc, err := Map(contentType, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "array", doc.Fields[0].Type)
	require.Len(t, doc.Fields[0].Of, 1)
	assert.Equal(t, "block", doc.Fields[0].Of[0].Type)
}

func TestMapMissingFieldTypeError(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{ID: "title", Name: "Title", Type: "Symbol"},
		contentful.Field{ID: "mystery", Name: "Mystery"},
	)

	doc, err := Map(contentType, nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
	assert.Nil(t, doc)
}

func TestMapUnknownFieldTypeError(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{ID: "odd", Name: "Odd", Type: "Hologram"},
	)

	doc, err := Map(contentType, nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd")
	assert.Nil(t, doc)
}

func TestMapArrayWithoutItemsError(t *testing.T) {
	contentType := newContentType("post", "Post",
		contentful.Field{ID: "list", Name: "List", Type: "Array"},
	)

	_, err := Map(contentType, nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list")
}
