package enuconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/enu/cmds"
	"github.com/reusee/enu/configs"
	"github.com/reusee/enu/logs"
)

//go:embed schema.cue
var schema string

// ConfigPaths lists existing config files, highest precedence first.
type ConfigPaths []string

var configFlag = cmds.Collect[string]("-config", "extra config file, highest precedence")

func (Module) ConfigPaths() (paths ConfigPaths) {
	// explicit files
	paths = append(paths, *configFlag...)

	filenames := []string{
		"enu.cue",
		".enu.cue",
	}

	var dirs []string
	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
