/*
Package main provides the entry point for the Poll Box classroom polling
utility.

Poll Box is a device-local tool: a tutor creates single-question multiple
choice polls, students respond once each, and the tutor views per-option
tallies and per-student response status. Everything is stored in a local
key-value store; there is no server and no synchronization between devices.

# Starting the App

	go run .

Or against a specific store:

	go run . -d /var/lib/pollbox/class-a.db
	STORE_TYPE=postgres STORE_PATH="postgres://..." go run .

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Optional settings (flags fall back to env, then defaults):

  - STORE_PATH (-d): sqlite file path or postgres URL (default: pollbox.db)
  - STORE_TYPE (-t): sqlite or postgres (default: sqlite)
  - POLL_NAMESPACE (-n): storage key prefix (default: pollApp)

# Seeded Accounts

First run seeds the roster: the tutor (roll "tutor", password "admin123")
and 60 students (rolls 1-61, seat 49 discontinued) with per-seat passwords
of the form skct@<roll>. Students pick their own name and password at first
login.

# Architecture

The app wires a small stack with dependency injection:

  - kv: persistent key-value store (sqlite, postgres, or in-memory)
  - storage: data-access layer (seeding, auth, poll/response CRUD, session)
  - app: terminal screens (login, setup, dashboards)
  - models: persisted domain types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
