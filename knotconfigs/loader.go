package knotconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/knot/configs"
	"github.com/reusee/knot/logs"
	"github.com/reusee/knot/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"knot.cue",
	".knot.cue",
}

// ConfigsLoader reads knot.cue from the working directory, the user config
// directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := searchPaths(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func searchPaths(dirs []string) (paths []string) {
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
