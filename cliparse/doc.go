/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - StorePath: sqlite file path or postgres URL (default: pollbox.db)
  - StoreType: storage backend, sqlite or postgres (default: sqlite)
  - Namespace: prefix for storage keys (default: pollApp)

# CLI Flags

	-d    Store path / connection URL
	-t    Store type (sqlite or postgres)
	-n    Storage key namespace

# Environment Variables

Flags fall back to environment variables:

	STORE_PATH     → -d
	STORE_TYPE     → -t
	POLL_NAMESPACE → -n

CLI flags take precedence over environment variables, which take precedence
over defaults.

# Validation

ParseFlags returns an error if:

  - StoreType is neither sqlite nor postgres
  - StoreType is postgres and no connection URL was provided (there is no
    sensible default URL; the sqlite path defaults to pollbox.db)

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := kv.OpenSQLite(cfg.StorePath)
	// ...
*/
package cliparse
