/*
Package storage implements the data-access layer over a kv.Store.

# Access Pattern

Every operation is a synchronous whole-collection read, an in-memory
transformation, and a whole-collection rewrite. No partial writes, no
locking across calls: the store is single-accessor, and two writers would
race last-write-wins. The kv.Store is injected at construction and its
lifecycle (open once, close at exit) belongs to the caller:

	data := storage.New(store, "pollApp")
	if err := data.Seed(); err != nil { ... }

# Storage Keys

Four records under the configured namespace (default pollApp):

	pollApp_users        JSON array of User
	pollApp_polls        JSON array of Poll
	pollApp_responses    JSON array of Response
	pollApp_currentUser  JSON object, the active session's User

Absent or malformed collection JSON decodes as the empty collection; a
corrupt session record is removed on read.

# Seeding

Seed runs once per store (keyed on the presence of users): the tutor account
plus the 60-seat roster, roll numbers 1..61 with discontinued seat 49
skipped, placeholder names drawn in order from a fixed pool, emails
student<roll>@college.edu, per-seat passwords skct@<roll>.

# Failure Signals

Lookups fail with a bare false/absent result - "unknown user" and "wrong
password" are deliberately indistinguishable. Write failures on boolean
operations are logged and reported as false.

# Known Weaknesses

Passwords are stored and compared in plain text, and SaveResponse appends
without checking for an earlier response from the same student; both match
the persisted-data contract this package maintains. The presentation layer
is responsible for blocking duplicate submissions.
*/
package storage
