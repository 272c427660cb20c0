package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// loadDotEnv loads variables from a .env file without overriding variables
// that are already set. An explicit path must exist; a missing default
// ".env" is ignored.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading dotenv file %q: %w", path, err)
}
