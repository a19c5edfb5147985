package domain

// DefaultCauldronPath is where the file-backed cauldron lives relative to
// the working directory when the configuration does not override it.
const DefaultCauldronPath = ".crucible/cauldron.json"

// Config is the resolved runtime configuration of the CLI.
type Config struct {
	// CauldronPath is the location of the file-backed cauldron store.
	CauldronPath string

	// ServerURL is the base URL of the OTA release service.
	ServerURL string

	// AccessKey authenticates against the OTA release service.
	AccessKey string

	// Deployments are the deployment tracks known for the app.
	Deployments []string

	// Packager is the package manager command used to assemble the
	// composite bundle ("yarn" or "npm").
	Packager string
}

// HasDeployment reports whether the given deployment track is configured.
func (c *Config) HasDeployment(name string) bool {
	for _, d := range c.Deployments {
		if d == name {
			return true
		}
	}
	return false
}
