package storage

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haresh-sai06/class-poll-mate/kv"
	"github.com/haresh-sai06/class-poll-mate/models"
)

// Storage key suffixes; full keys are "<namespace>_<suffix>".
const (
	usersKey       = "users"
	pollsKey       = "polls"
	responsesKey   = "responses"
	currentUserKey = "currentUser"
)

// Store is the data-access layer over a kv.Store. Every mutation reads the
// whole affected collection, changes it in memory, and writes it back; there
// are no partial updates. The kv store is injected once and owned by main.
type Store struct {
	kv kv.Store
	ns string
}

func New(store kv.Store, namespace string) *Store {
	return &Store{kv: store, ns: namespace}
}

func (s *Store) key(suffix string) string {
	return s.ns + "_" + suffix
}

// readRaw returns the raw value under a collection key, or "" when absent or
// unreadable. Store errors are logged, not surfaced: readers always get a
// usable (possibly empty) collection.
func (s *Store) readRaw(suffix string) string {
	raw, ok, err := s.kv.Get(s.key(suffix))
	if err != nil {
		slog.Error("failed to read collection", "key", s.key(suffix), "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return raw
}

func (s *Store) writeJSON(suffix string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	// Collections are always persisted as arrays, never null.
	if string(payload) == "null" {
		payload = []byte("[]")
	}
	return s.kv.Set(s.key(suffix), string(payload))
}

// Users returns every user record in seeded order. Absent or malformed data
// decodes as the empty collection.
func (s *Store) Users() []models.User {
	var users []models.User
	if raw := s.readRaw(usersKey); raw != "" {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			slog.Error("corrupt users collection, treating as empty", "error", err)
			return nil
		}
	}
	return users
}

func (s *Store) writeUsers(users []models.User) error {
	return s.writeJSON(usersKey, users)
}

// Authenticate scans the user collection for the first record whose email or
// roll number equals identifier and whose password matches exactly. The
// second result is false on any mismatch; callers cannot tell an unknown
// identifier from a wrong password.
func (s *Store) Authenticate(identifier, password string) (models.User, bool) {
	for _, u := range s.Users() {
		if (u.Email == identifier || u.RollNumber == identifier) && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// UpdatePassword changes a user's password after verifying the current one.
// Returns false when no user matches the (rollNumber, currentPassword) pair;
// a wrong password and an unknown roll number are indistinguishable.
func (s *Store) UpdatePassword(rollNumber, currentPassword, newPassword string) bool {
	users := s.Users()
	for i, u := range users {
		if u.RollNumber == rollNumber && u.Password == currentPassword {
			users[i].Password = newPassword
			if err := s.writeUsers(users); err != nil {
				slog.Error("failed to write users", "error", err)
				return false
			}
			slog.Info("password updated", "roll_number", rollNumber)
			return true
		}
	}
	return false
}

// CompleteSetup records a student's first-login name and password choice and
// marks setup done. No password check: the roll number alone locates the
// record. When the active session belongs to this roll number the session
// record is refreshed too, so the UI sees the change without a re-login.
func (s *Store) CompleteSetup(rollNumber, name, newPassword string) bool {
	users := s.Users()
	for i, u := range users {
		if u.RollNumber != rollNumber {
			continue
		}
		users[i].Name = name
		users[i].Password = newPassword
		users[i].HasCompletedSetup = true
		if err := s.writeUsers(users); err != nil {
			slog.Error("failed to write users", "error", err)
			return false
		}
		if current, ok := s.CurrentUser(); ok && current.RollNumber == rollNumber {
			if err := s.SetCurrentUser(users[i]); err != nil {
				slog.Error("failed to refresh session record", "error", err)
			}
		}
		slog.Info("setup completed", "roll_number", rollNumber)
		return true
	}
	return false
}

// Polls returns all polls in insertion order.
func (s *Store) Polls() []models.Poll {
	var polls []models.Poll
	if raw := s.readRaw(pollsKey); raw != "" {
		if err := json.Unmarshal([]byte(raw), &polls); err != nil {
			slog.Error("corrupt polls collection, treating as empty", "error", err)
			return nil
		}
	}
	return polls
}

func (s *Store) writePolls(polls []models.Poll) error {
	return s.writeJSON(pollsKey, polls)
}

// SavePoll assigns a fresh ID, appends the poll, and returns the stored
// record. Validation (non-empty question, at least two options) is the
// caller's concern.
func (s *Store) SavePoll(question string, options []string, createdAt time.Time) (models.Poll, error) {
	poll := models.Poll{
		ID:        uuid.NewString(),
		Question:  question,
		Options:   options,
		CreatedAt: createdAt,
	}
	polls := append(s.Polls(), poll)
	if err := s.writePolls(polls); err != nil {
		return models.Poll{}, err
	}
	slog.Info("poll created", "poll_id", poll.ID, "question", question)
	return poll, nil
}

// DeletePoll removes the poll and cascades to every response referencing it.
// Polls and responses are rewritten as two separate collections.
func (s *Store) DeletePoll(pollID string) error {
	polls := s.Polls()
	kept := polls[:0]
	for _, p := range polls {
		if p.ID != pollID {
			kept = append(kept, p)
		}
	}
	if err := s.writePolls(kept); err != nil {
		return err
	}

	responses := s.Responses()
	keptResponses := responses[:0]
	for _, r := range responses {
		if r.PollID != pollID {
			keptResponses = append(keptResponses, r)
		}
	}
	if err := s.writeResponses(keptResponses); err != nil {
		return err
	}

	slog.Info("poll deleted", "poll_id", pollID, "responses_removed", len(responses)-len(keptResponses))
	return nil
}

// Responses returns all responses in storage order.
func (s *Store) Responses() []models.Response {
	var responses []models.Response
	if raw := s.readRaw(responsesKey); raw != "" {
		if err := json.Unmarshal([]byte(raw), &responses); err != nil {
			slog.Error("corrupt responses collection, treating as empty", "error", err)
			return nil
		}
	}
	return responses
}

func (s *Store) writeResponses(responses []models.Response) error {
	return s.writeJSON(responsesKey, responses)
}

// SaveResponse stamps the submission time and appends unconditionally. This
// layer does not prevent a second response for the same (poll, roll number)
// pair; callers that want one-response-per-student check HasResponded first.
func (s *Store) SaveResponse(pollID, rollNumber, option string) (models.Response, error) {
	response := models.Response{
		PollID:      pollID,
		RollNumber:  rollNumber,
		Option:      option,
		SubmittedAt: time.Now(),
	}
	responses := append(s.Responses(), response)
	if err := s.writeResponses(responses); err != nil {
		return models.Response{}, err
	}
	slog.Info("response recorded", "poll_id", pollID, "roll_number", rollNumber)
	return response, nil
}

// HasResponded reports whether any stored response matches the pair.
func (s *Store) HasResponded(pollID, rollNumber string) bool {
	for _, r := range s.Responses() {
		if r.PollID == pollID && r.RollNumber == rollNumber {
			return true
		}
	}
	return false
}

// PollResponses returns the responses for one poll, in storage order.
func (s *Store) PollResponses(pollID string) []models.Response {
	var matched []models.Response
	for _, r := range s.Responses() {
		if r.PollID == pollID {
			matched = append(matched, r)
		}
	}
	return matched
}

// Tally counts responses per option, in the poll's option order. Responses
// naming an option the poll no longer lists are ignored.
func (s *Store) Tally(poll models.Poll) []models.OptionCount {
	counts := make([]models.OptionCount, len(poll.Options))
	index := make(map[string]int, len(poll.Options))
	for i, option := range poll.Options {
		counts[i] = models.OptionCount{Option: option}
		index[option] = i
	}
	for _, r := range s.PollResponses(poll.ID) {
		if i, ok := index[r.Option]; ok {
			counts[i].Count++
		}
	}
	return counts
}

// CurrentUser returns the active session record. A record that fails to
// decode is removed, the same as no session at all.
func (s *Store) CurrentUser() (models.User, bool) {
	raw, ok, err := s.kv.Get(s.key(currentUserKey))
	if err != nil {
		slog.Error("failed to read session record", "error", err)
		return models.User{}, false
	}
	if !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		slog.Error("corrupt session record, clearing", "error", err)
		if err := s.kv.Remove(s.key(currentUserKey)); err != nil {
			slog.Error("failed to clear session record", "error", err)
		}
		return models.User{}, false
	}
	return user, true
}

func (s *Store) SetCurrentUser(user models.User) error {
	return s.writeJSON(currentUserKey, user)
}

func (s *Store) ClearCurrentUser() error {
	return s.kv.Remove(s.key(currentUserKey))
}
