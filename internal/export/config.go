package export

// Config drives one export run. Dir, EnvironmentID and ExportFile are
// defaulted by Run when empty; SpaceID is required.
type Config struct {
	Dir            string
	SpaceID        string
	EnvironmentID  string
	SaveFile       bool
	ExportFile     string
	DownloadAssets bool
}
