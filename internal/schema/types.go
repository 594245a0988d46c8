package schema

type Options struct {
	KeepMarkdown bool
}

type ReferenceTarget struct {
	Type string `json:"type"`
}

type FieldDefinition struct {
	Name    string                 `json:"name"`
	Title   string                 `json:"title,omitempty"`
	Type    string                 `json:"type"`
	To      []ReferenceTarget      `json:"to,omitempty"`
	Of      []FieldDefinition      `json:"of,omitempty"`
	Options map[string]interface{} `json:"options,omitempty"`
}

type DocumentDefinition struct {
	Name   string            `json:"name"`
	Title  string            `json:"title"`
	Type   string            `json:"type"`
	Fields []FieldDefinition `json:"fields"`
}
