package contentful

// Sys holds the system metadata Contentful attaches to every entity.
type Sys struct {
	ID          string   `json:"id"`
	Type        string   `json:"type,omitempty"`
	LinkType    string   `json:"linkType,omitempty"`
	ContentType *SysLink `json:"contentType,omitempty"`
}

type SysLink struct {
	Sys Sys `json:"sys"`
}

// Validation carries the subset of Contentful field validations the
// schema conversion cares about. Other validation kinds are ignored on
// unmarshal.
type Validation struct {
	LinkMimetypeGroup []string `json:"linkMimetypeGroup,omitempty"`
	LinkContentType   []string `json:"linkContentType,omitempty"`
}

type FieldItems struct {
	Type        string       `json:"type"`
	LinkType    string       `json:"linkType,omitempty"`
	Validations []Validation `json:"validations,omitempty"`
}

type Field struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	LinkType    string       `json:"linkType,omitempty"`
	Items       *FieldItems  `json:"items,omitempty"`
	Validations []Validation `json:"validations,omitempty"`
	Required    bool         `json:"required,omitempty"`
	Localized   bool         `json:"localized,omitempty"`
	Disabled    bool         `json:"disabled,omitempty"`
	Omitted     bool         `json:"omitted,omitempty"`
}

type ContentType struct {
	Sys          Sys     `json:"sys"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	DisplayField string  `json:"displayField,omitempty"`
	Fields       []Field `json:"fields"`
}

// AssetFields keeps the locale-keyed shape the API returns. The file
// member stays loosely typed because its layout varies by media kind.
type AssetFields struct {
	Title       map[string]string                 `json:"title,omitempty"`
	Description map[string]string                 `json:"description,omitempty"`
	File        map[string]map[string]interface{} `json:"file,omitempty"`
}

type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

type Entry struct {
	Sys    Sys                    `json:"sys"`
	Fields map[string]interface{} `json:"fields"`
}

type Locale struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Default      bool    `json:"default,omitempty"`
	FallbackCode *string `json:"fallbackCode,omitempty"`
}

type Tag struct {
	Sys  Sys    `json:"sys"`
	Name string `json:"name"`
}

type Control struct {
	FieldID         string                 `json:"fieldId"`
	WidgetID        string                 `json:"widgetId"`
	WidgetNamespace string                 `json:"widgetNamespace,omitempty"`
	Settings        map[string]interface{} `json:"settings,omitempty"`
}

// EditorInterface describes the editor configuration of one content
// type; Sys.ContentType links it back to the content type it belongs to.
type EditorInterface struct {
	Sys      Sys       `json:"sys"`
	Controls []Control `json:"controls"`
}

// ExportBundle is the full exported snapshot of a space. Collection
// order is the API return order.
type ExportBundle struct {
	ContentTypes     []ContentType            `json:"contentTypes"`
	EditorInterfaces []EditorInterface        `json:"editorInterfaces"`
	Entries          []Entry                  `json:"entries"`
	Assets           []Asset                  `json:"assets"`
	Locales          []Locale                 `json:"locales"`
	Tags             []Tag                    `json:"tags"`
	Webhooks         []map[string]interface{} `json:"webhooks"`
	Roles            []map[string]interface{} `json:"roles"`
}

// ExportParams is the per-run input to Client.Export.
type ExportParams struct {
	SpaceID        string
	EnvironmentID  string
	ExportDir      string
	DownloadAssets bool
}
