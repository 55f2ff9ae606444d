// Package cli defines CLI commands.
package cli

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"

	"github.com/act3-ai/go-common/pkg/config"
)

const (
	// configEnv names a configuration file, replacing the search path.
	configEnv = "GITCONNECT_CONFIG"
	appName   = "gitconnect"
	cfgName   = "config.yaml"
)

// configFiles lists the configuration file candidates, explicit files first.
func configFiles(explicit []string) []string {
	files := slices.Clone(explicit)
	files = append(files, config.EnvPathOr(configEnv, config.DefaultConfigSearchPath(appName, cfgName))...)

	// the default search path may not honor XDG_CONFIG_HOME
	if xdgFile := filepath.Join(xdg.ConfigHome, appName, cfgName); !slices.Contains(files, xdgFile) {
		files = append(files, xdgFile)
	}
	return files
}
