package bfaconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfa/configs"
	"github.com/reusee/bfa/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bfa.cue",
	".bfa.cue",
}

// ConfigsLoader loads bfa.cue files from the working directory, the user config directory and /etc, in that precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
