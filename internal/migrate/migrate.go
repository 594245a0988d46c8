package migrate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
	nrclient "github.com/newrelic/newrelic-client-go/newrelic"
	"github.com/sanity-tools/contentful-to-sanity/internal/export"
	"github.com/sanity-tools/contentful-to-sanity/internal/schema"
	"github.com/sanity-tools/contentful-to-sanity/pkg/contentful"
	"github.com/sanity-tools/contentful-to-sanity/pkg/interop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const DEFAULT_SCHEMA_FILE = "sanity-schema.json"

type Migrator struct {
	log      *log.Logger
	config   *Config
	exporter export.Exporter
	nrClient *nrclient.NewRelic
	runId    uuid.UUID
}

func New(i *interop.Interop) (*Migrator, error) {
	config := &Config{}

	if err := viper.UnmarshalKey("export", &config.Export); err != nil {
		return nil, err
	}

	if err := viper.UnmarshalKey("schema", &config.Schema); err != nil {
		return nil, err
	}

	if err := viper.UnmarshalKey("events", &config.Events); err != nil {
		return nil, err
	}

	if config.Events.EventType == "" {
		config.Events.EventType = "ContentfulSanityMigration"
	}

	runId, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	m := &Migrator{
		log:      i.Logger,
		config:   config,
		exporter: i.Contentful,
		nrClient: i.NrClient,
		runId:    runId,
	}

	if config.Events.Enabled && m.nrClient != nil {
		if err := m.startEventBatch(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Run exports the configured space and converts every exported content
// type into a Sanity document definition, writing the result next to
// the export artifact. Audit events bracket the run when enabled.
func (m *Migrator) Run() error {
	m.pushEvent(m.newAuditEvent("migration_start", nil))

	err := m.run()

	m.pushEvent(m.newAuditEvent("migration_end", err))
	m.flushEvents()

	return err
}

func (m *Migrator) run() error {
	bundle, err := export.Run(m.exporter, &m.config.Export, m.log)
	if err != nil {
		return err
	}

	m.log.Infof(
		"exported %d content types, %d entries, %d assets",
		len(bundle.ContentTypes),
		len(bundle.Entries),
		len(bundle.Assets),
	)

	docs, err := m.mapContentTypes(bundle)
	if err != nil {
		return err
	}

	return m.writeSchemas(docs)
}

func (m *Migrator) mapContentTypes(
	bundle *contentful.ExportBundle,
) ([]*schema.DocumentDefinition, error) {
	options := schema.Options{
		KeepMarkdown: m.config.Schema.KeepMarkdown,
	}

	var docs []*schema.DocumentDefinition

	for i := range bundle.ContentTypes {
		contentType := &bundle.ContentTypes[i]

		m.log.Debugf("mapping content type %s...", contentType.Sys.ID)

		doc, err := schema.Map(contentType, bundle, options)
		if err != nil {
			return nil, fmt.Errorf(
				"content type %s: %s",
				contentType.Sys.ID,
				err,
			)
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func (m *Migrator) writeSchemas(docs []*schema.DocumentDefinition) error {
	dir := m.config.Export.Dir
	if dir == "" {
		dir = "."
	}

	schemaFile := m.config.Schema.SchemaFile
	if schemaFile == "" {
		schemaFile = DEFAULT_SCHEMA_FILE
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema definitions: %w", err)
	}

	path := filepath.Join(dir, schemaFile)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}

	m.log.Infof("wrote %d document definitions to %s", len(docs), path)

	return nil
}
