/*
Package app renders the terminal screens over the data-access layer.

# Screens

Run dispatches on session state, mirroring the data the store holds:

  - no session record → login (roll number or email + password)
  - student without completed setup → first-time setup (name + new password)
  - admin session → tutor dashboard
  - student session → student dashboard

The student dashboard lists polls with answered/not-answered markers and
takes "a <n>" to answer, "p" to change password, "l"/"q" to logout or quit.
The tutor dashboard takes "n" to create a poll, "d <n>" to delete (cascading
to its responses), "r <n>" for per-option tallies and per-student status.

# Data-Layer Contract

The screens own the rules the data layer deliberately does not enforce:
duplicate submissions are blocked by checking HasResponded before the answer
prompt, poll creation requires a question and 2-6 options, and new passwords
must be at least 6 characters and confirmed twice. Login failure prints one
message for both failure causes, since the store does not distinguish them.

# Testing

New takes an io.Reader and io.Writer, so tests drive whole sessions from a
scripted string and assert on the transcript.
*/
package app
