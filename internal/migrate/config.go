package migrate

import "github.com/sanity-tools/contentful-to-sanity/internal/export"

type SchemaConfig struct {
	KeepMarkdown bool
	SchemaFile   string
}

type EventsConfig struct {
	Enabled   bool
	AccountId int
	EventType string
}

type Config struct {
	Export export.Config
	Schema SchemaConfig
	Events EventsConfig
}
