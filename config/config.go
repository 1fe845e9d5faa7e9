package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AppName     = "menucart"
	EnvFileName = "config.env"
)

// RequiredVars is the configuration without which the catalog cannot
// be fetched.
var RequiredVars = []string{"SUPABASE_URL", "SUPABASE_ANON_KEY"}

// LoadEnvFile loads environment variables from the config file in the
// user's config directory, then from a .env in the working directory.
// Errors are ignored since the files may not exist.
func LoadEnvFile() {
	if configBase, err := os.UserConfigDir(); err == nil {
		_ = godotenv.Load(filepath.Join(configBase, AppName, EnvFileName))
	}
	_ = godotenv.Load()
}

// CheckRequired returns the names of required variables that are not
// set.
func CheckRequired() []string {
	var missing []string
	for _, name := range RequiredVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
