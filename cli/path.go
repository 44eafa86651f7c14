package cli

import (
	"os"
	"path/filepath"

	"github.com/dynamix-lang/dynamix/pkg"
)

// baseConfig is the file name of the YAML configuration file.
const baseConfig = "config.yaml"

// defaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// configDir returns the configuration directory path.
func configDir() string { return pkg.ConfigDir() }

// cacheDir returns the cache directory path used for transient files
// (compile cache, REPL history, pprof output).
func cacheDir() string { return pkg.CacheDir() }

// configPath returns the absolute path formed by joining the configuration
// directory with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	err := os.MkdirAll(configDir(), defaultDirMode)
	if err != nil {
		return err
	}

	return os.MkdirAll(cacheDir(), defaultDirMode)
}
