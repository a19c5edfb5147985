package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/zerr"
)

// manifest is the composite package.json written into the staging directory.
// The package manager installs every MiniApp from it in one pass.
type manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Dependencies map[string]string `json:"dependencies"`
}

func writeManifest(targetDir string, packages domain.ReleaseSet) error {
	deps := make(map[string]string, len(packages))
	for _, ref := range packages {
		deps[ref.Identity()] = ref.Version
	}

	m := manifest{
		Name:         "crucible-composite",
		Version:      "0.0.0",
		Private:      true,
		Dependencies: deps,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal composite manifest")
	}

	path := filepath.Join(targetDir, "package.json")
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write composite manifest")
	}
	return nil
}

// writeEntryPoint writes the composite index.js requiring every MiniApp, in
// release set order so the bundle is deterministic.
func writeEntryPoint(targetDir string, packages domain.ReleaseSet) error {
	var b strings.Builder
	for _, ref := range packages {
		fmt.Fprintf(&b, "import '%s';\n", ref.Identity())
	}

	path := filepath.Join(targetDir, "index.js")
	if err := os.WriteFile(path, []byte(b.String()), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write composite entry point")
	}
	return nil
}
