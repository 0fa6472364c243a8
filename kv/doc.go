/*
Package kv provides the persistent key-value store behind the poll data.

# Store Interface

A Store maps string keys to string (JSON) values:

	value, ok, err := store.Get("pollApp_users")
	err = store.Set("pollApp_users", payload)
	err = store.Remove("pollApp_currentUser")

Get reports a missing key with ok = false, not an error. Remove of a missing
key succeeds. Close flushes and releases the backend.

# Backends

  - OpenSQLite(path): default. One local sqlite file, pure Go driver
    (modernc.org/sqlite), survives restarts of the client.
  - OpenPostgres(url): same kv table on a postgres server, for machines that
    already run one.
  - NewMemory(): non-durable map, for tests.

All SQL backends keep a single table:

	CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)

Schema creation is safe to repeat - IF NOT EXISTS throughout.

# Access Model

A store has exactly one accessor: it is opened once at process start and
closed at exit. Individual Get/Set calls are serialized by the backend, but
there are no transactions spanning calls. Two processes writing the same
store race with last-write-wins on whole values.
*/
package kv
