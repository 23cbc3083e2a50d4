package aqaconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/aqa/configs"
	"github.com/reusee/aqa/logs"
	"github.com/reusee/aqa/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"aqa.cue",
	".aqa.cue",
}

// ConfigsLoader searches the working directory, the user config directory
// and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
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
