package schema

import (
	"fmt"
	"strings"

	"github.com/sanity-tools/contentful-to-sanity/pkg/contentful"
)

// Map converts one Contentful content type into a Sanity document
// definition. The bundle is only consulted for the content type's
// editor interface (markdown widget detection); no I/O happens here.
// The output carries exactly one field definition per source field, in
// source order.
func Map(
	contentType *contentful.ContentType,
	bundle *contentful.ExportBundle,
	options Options,
) (*DocumentDefinition, error) {
	doc := &DocumentDefinition{
		Name:  contentType.Sys.ID,
		Title: contentType.Name,
		Type:  "document",
	}

	markdownFields := markdownFieldIDs(contentType, bundle)

	for _, field := range contentType.Fields {
		fieldDef, err := mapField(field, markdownFields, options)
		if err != nil {
			return nil, err
		}

		doc.Fields = append(doc.Fields, fieldDef)
	}

	return doc, nil
}

func mapField(
	field contentful.Field,
	markdownFields map[string]bool,
	options Options,
) (FieldDefinition, error) {
	fieldDef := FieldDefinition{
		Name:  field.ID,
		Title: field.Name,
	}

	switch field.Type {
	case "":
		return FieldDefinition{}, fmt.Errorf(
			"field %s: missing field type",
			fieldRef(field),
		)

	case "Symbol":
		fieldDef.Type = "string"

	case "Text":
		if markdownFields[field.ID] && !options.KeepMarkdown {
			// markdown-edited text becomes portable text unless the
			// caller asked to keep it raw
			fieldDef.Type = "array"
			fieldDef.Of = []FieldDefinition{{Type: "block"}}
		} else {
			fieldDef.Type = "text"
		}

	case "RichText":
		fieldDef.Type = "array"
		fieldDef.Of = []FieldDefinition{{Type: "block"}}

	case "Integer", "Number":
		fieldDef.Type = "number"

	case "Boolean":
		fieldDef.Type = "boolean"

	case "Date":
		fieldDef.Type = "datetime"

	case "Location":
		fieldDef.Type = "geopoint"

	case "Object":
		fieldDef.Type = "object"

	case "Link":
		linkType, to, err := mapLink(field.LinkType, field.Validations)
		if err != nil {
			return FieldDefinition{}, fmt.Errorf(
				"field %s: %s",
				fieldRef(field),
				err,
			)
		}

		fieldDef.Type = linkType
		fieldDef.To = to

	case "Array":
		itemDef, err := mapArrayItems(field)
		if err != nil {
			return FieldDefinition{}, err
		}

		fieldDef.Type = "array"
		fieldDef.Of = []FieldDefinition{itemDef}

	default:
		return FieldDefinition{}, fmt.Errorf(
			"field %s: unsupported field type %s",
			fieldRef(field),
			field.Type,
		)
	}

	return fieldDef, nil
}

func mapArrayItems(field contentful.Field) (FieldDefinition, error) {
	if field.Items == nil {
		return FieldDefinition{}, fmt.Errorf(
			"field %s: array field has no items type",
			fieldRef(field),
		)
	}

	switch field.Items.Type {
	case "Link":
		linkType, to, err := mapLink(field.Items.LinkType, field.Items.Validations)
		if err != nil {
			return FieldDefinition{}, fmt.Errorf(
				"field %s: %s",
				fieldRef(field),
				err,
			)
		}

		return FieldDefinition{Type: linkType, To: to}, nil

	case "Symbol":
		return FieldDefinition{Type: "string"}, nil

	case "Integer", "Number":
		return FieldDefinition{Type: "number"}, nil

	default:
		return FieldDefinition{}, fmt.Errorf(
			"field %s: unsupported array item type %s",
			fieldRef(field),
			field.Items.Type,
		)
	}
}

func mapLink(
	linkType string,
	validations []contentful.Validation,
) (string, []ReferenceTarget, error) {
	switch linkType {
	case "Asset":
		return assetLinkType(validations), nil, nil

	case "Entry":
		return "reference", referenceTargets(validations), nil

	default:
		return "", nil, fmt.Errorf("unsupported link type %q", linkType)
	}
}

// assetLinkType classifies an asset link by its mime-type group
// restrictions. The first validation carrying a restriction wins; a
// link only becomes an image when that restriction is image and nothing
// else. Unrestricted links are plain files.
func assetLinkType(validations []contentful.Validation) string {
	for _, validation := range validations {
		if len(validation.LinkMimetypeGroup) == 0 {
			continue
		}

		if len(validation.LinkMimetypeGroup) == 1 &&
			strings.EqualFold(validation.LinkMimetypeGroup[0], "image") {
			return "image"
		}

		return "file"
	}

	return "file"
}

func referenceTargets(validations []contentful.Validation) []ReferenceTarget {
	for _, validation := range validations {
		if len(validation.LinkContentType) == 0 {
			continue
		}

		targets := make([]ReferenceTarget, len(validation.LinkContentType))
		for i, contentTypeId := range validation.LinkContentType {
			targets[i] = ReferenceTarget{Type: contentTypeId}
		}

		return targets
	}

	return nil
}

func markdownFieldIDs(
	contentType *contentful.ContentType,
	bundle *contentful.ExportBundle,
) map[string]bool {
	fields := map[string]bool{}

	if bundle == nil {
		return fields
	}

	for _, editorInterface := range bundle.EditorInterfaces {
		if editorInterface.Sys.ContentType == nil ||
			editorInterface.Sys.ContentType.Sys.ID != contentType.Sys.ID {
			continue
		}

		for _, control := range editorInterface.Controls {
			if control.WidgetID == "markdown" {
				fields[control.FieldID] = true
			}
		}
	}

	return fields
}

func fieldRef(field contentful.Field) string {
	if field.ID != "" {
		return field.ID
	}

	return field.Name
}
