package workspace

import (
	"os"

	"github.com/goccy/go-yaml"
)

// FileConfig is the on-disk shape of an optional workspace config file
// (`rucc.yaml`), letting a project pin its target/flags once instead of
// repeating CLI flags on every invocation.
type FileConfig struct {
	Target string            `yaml:"target"`
	Flags  map[string]string `yaml:"flags"`
}

// LoadFile reads and applies a YAML workspace config, CLI flags (applied
// afterward by the caller) taking precedence over anything it sets.
func LoadFile(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	w := New()
	switch fc.Target {
	case "mipsel":
		w.Target = TargetMipsel
	case "x86_64", "":
		w.Target = TargetX86_64
	}
	for k, v := range fc.Flags {
		w.SetFlag(k, v)
	}
	return w, nil
}
