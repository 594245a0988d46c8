package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sanity-tools/contentful-to-sanity/pkg/contentful"
	log "github.com/sirupsen/logrus"
)

const ASSETS_DIR_NAME = "assets"

// Exporter is the seam to the external space-export collaborator. The
// production implementation is contentful.Client.
type Exporter interface {
	Export(params contentful.ExportParams) (*contentful.ExportBundle, error)
}

// Run performs one export: it validates the configuration, makes sure
// the destination directory tree exists, delegates the actual export to
// the exporter and, when asset download was requested, guarantees the
// assets directory exists afterwards. Export errors come back
// unchanged; filesystem errors are wrapped so callers can tell them
// apart.
func Run(
	exporter Exporter,
	config *Config,
	logger *log.Logger,
) (*contentful.ExportBundle, error) {
	if config.SpaceID == "" {
		return nil, fmt.Errorf("missing contentful space id")
	}

	dir := config.Dir
	if dir == "" {
		dir = "."
	}

	environmentId := config.EnvironmentID
	if environmentId == "" {
		environmentId = "master"
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	logger.Debugf(
		"exporting space %s (environment %s) to %s...",
		config.SpaceID,
		environmentId,
		dir,
	)

	bundle, err := exporter.Export(contentful.ExportParams{
		SpaceID:        config.SpaceID,
		EnvironmentID:  environmentId,
		ExportDir:      dir,
		DownloadAssets: config.DownloadAssets,
	})
	if err != nil {
		return nil, err
	}

	if config.DownloadAssets {
		// the exporter usually creates this while downloading, but the
		// assets directory must exist either way
		if err := os.MkdirAll(filepath.Join(dir, ASSETS_DIR_NAME), 0755); err != nil {
			return nil, fmt.Errorf("create assets directory: %w", err)
		}
	}

	if config.SaveFile {
		if err := saveBundle(bundle, dir, config, logger); err != nil {
			return nil, err
		}
	}

	return bundle, nil
}

func saveBundle(
	bundle *contentful.ExportBundle,
	dir string,
	config *Config,
	logger *log.Logger,
) error {
	exportFile := config.ExportFile
	if exportFile == "" {
		environmentId := config.EnvironmentID
		if environmentId == "" {
			environmentId = "master"
		}

		exportFile = fmt.Sprintf(
			"contentful-export-%s-%s.json",
			config.SpaceID,
			environmentId,
		)
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export bundle: %w", err)
	}

	path := filepath.Join(dir, exportFile)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	logger.Debugf("wrote export bundle to %s", path)

	return nil
}
