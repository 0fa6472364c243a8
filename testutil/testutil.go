package testutil

import (
	"testing"
	"time"

	"github.com/haresh-sai06/class-poll-mate/kv"
	"github.com/haresh-sai06/class-poll-mate/models"
	"github.com/haresh-sai06/class-poll-mate/storage"
)

// TestNamespace is the storage key prefix used by all test stores
const TestNamespace = "pollApp"

// SetupTestStore returns a seeded data layer over an in-memory kv store
func SetupTestStore(t *testing.T) *storage.Store {
	t.Helper()

	data := storage.New(kv.NewMemory(), TestNamespace)
	if err := data.Seed(); err != nil {
		t.Fatalf("Failed to seed test store: %v", err)
	}
	return data
}

// CreateTestPoll creates a poll and returns the stored record
func CreateTestPoll(t *testing.T, data *storage.Store, question string, options ...string) models.Poll {
	t.Helper()

	if len(options) == 0 {
		options = []string{"Yes", "No"}
	}
	poll, err := data.SavePoll(question, options, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// SubmitTestResponse records a response for the given student
func SubmitTestResponse(t *testing.T, data *storage.Store, pollID, rollNumber, option string) models.Response {
	t.Helper()

	response, err := data.SaveResponse(pollID, rollNumber, option)
	if err != nil {
		t.Fatalf("Failed to submit test response: %v", err)
	}
	return response
}

// LoginTestUser authenticates and installs the session record
func LoginTestUser(t *testing.T, data *storage.Store, identifier, password string) models.User {
	t.Helper()

	user, ok := data.Authenticate(identifier, password)
	if !ok {
		t.Fatalf("Failed to authenticate test user %q", identifier)
	}
	if err := data.SetCurrentUser(user); err != nil {
		t.Fatalf("Failed to set session record: %v", err)
	}
	return user
}
