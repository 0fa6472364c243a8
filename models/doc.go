/*
Package models defines the persisted domain types.

# Domain Types

  - User: account record (roll number, name, email, password, flags)
  - Poll: question with an ordered list of options
  - Response: one student's answer to one poll
  - OptionCount: derived tally row for results views

# Persisted Layout

All three collections are stored as JSON arrays, and the JSON field names
(rollNumber, isAdmin, hasCompletedSetup, pollId, submittedAt, ...) are a
compatibility contract with stores written by earlier versions. Do not rename
tags.

hasCompletedSetup is omitted when false, so seeded students carry no setup
marker until their first login completes.

# Constants

	AdminRollNumber = "tutor"

Exactly one user (the tutor) holds this roll number and isAdmin = true.
*/
package models
