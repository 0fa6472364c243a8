package cliparse

import (
	"errors"
	"flag"
	"os"
)

const (
	DefaultStorePath = "pollbox.db"
	DefaultNamespace = "pollApp"
)

type Config struct {
	StorePath string
	StoreType string
	Namespace string
}

// ParseFlags validates flags and fills in environment/default fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("class-poll-mate", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "d", "", "Store path (sqlite file) or connection URL (postgres)")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (sqlite or postgres)")
	fs.StringVar(&cfg.Namespace, "n", "", "Storage key namespace")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "sqlite"
		}
	}
	if cfg.StoreType != "sqlite" && cfg.StoreType != "postgres" {
		return Config{}, errors.New("store type must be sqlite or postgres")
	}

	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
	}
	if cfg.StorePath == "" {
		if cfg.StoreType == "postgres" {
			// No sensible default for a server URL
			return Config{}, errors.New("postgres store requires a connection URL (use -d or STORE_PATH env)")
		}
		cfg.StorePath = DefaultStorePath
	}

	if cfg.Namespace == "" {
		cfg.Namespace = os.Getenv("POLL_NAMESPACE")
		if cfg.Namespace == "" {
			cfg.Namespace = DefaultNamespace
		}
	}

	return cfg, nil
}
