package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// dotEnvFile is the conventional env-file name used by the original
// integration worksheet. Values already present in the process environment
// take precedence over the file.
const dotEnvFile = ".env.local"

// loadDotEnv loads dotEnvFile from the working directory into the process
// environment so that parseEnv picks the values up. A missing file is not an
// error; running with plain environment variables is the normal CI mode.
func loadDotEnv() error {
	if err := godotenv.Load(dotEnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", dotEnvFile, err)
	}

	return nil
}
