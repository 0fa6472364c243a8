package storage

import (
	"testing"
	"time"

	"github.com/haresh-sai06/class-poll-mate/kv"
	"github.com/haresh-sai06/class-poll-mate/models"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	data := New(kv.NewMemory(), "pollApp")
	if err := data.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return data
}

func TestAuthenticate(t *testing.T) {
	data := seededStore(t)

	tests := []struct {
		name       string
		identifier string
		password   string
		wantOK     bool
		wantRoll   string
	}{
		{"tutor by roll", "tutor", "admin123", true, "tutor"},
		{"tutor by email", "tutor@college.edu", "admin123", true, "tutor"},
		{"student by roll", "12", "skct@12", true, "12"},
		{"student by email", "student12@college.edu", "skct@12", true, "12"},
		{"wrong password", "12", "wrong", false, ""},
		{"password of another account", "12", "skct@13", false, ""},
		{"unknown identifier", "99", "skct@99", false, ""},
		{"discontinued roll", "49", "skct@49", false, ""},
		{"case sensitive password", "12", "SKCT@12", false, ""},
		{"empty identifier", "", "skct@12", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := data.Authenticate(tt.identifier, tt.password)
			if ok != tt.wantOK {
				t.Fatalf("Authenticate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && user.RollNumber != tt.wantRoll {
				t.Errorf("Authenticate() roll = %q, want %q", user.RollNumber, tt.wantRoll)
			}
		})
	}
}

func TestAuthenticateEverySeededUser(t *testing.T) {
	data := seededStore(t)

	for _, u := range data.Users() {
		if _, ok := data.Authenticate(u.RollNumber, u.Password); !ok {
			t.Errorf("Authenticate(%q, password) failed for seeded user", u.RollNumber)
		}
		if _, ok := data.Authenticate(u.Email, u.Password); !ok {
			t.Errorf("Authenticate(%q, password) failed for seeded user", u.Email)
		}
	}
}

func TestUpdatePassword(t *testing.T) {
	data := seededStore(t)

	if data.UpdatePassword("12", "not-the-password", "newpass") {
		t.Error("UpdatePassword() = true with wrong current password")
	}
	if data.UpdatePassword("99", "skct@99", "newpass") {
		t.Error("UpdatePassword() = true for unknown roll number")
	}

	if !data.UpdatePassword("12", "skct@12", "newpass") {
		t.Fatal("UpdatePassword() = false with correct current password")
	}

	// Old password no longer authenticates; new one does
	if _, ok := data.Authenticate("12", "skct@12"); ok {
		t.Error("old password still authenticates after change")
	}
	if _, ok := data.Authenticate("12", "newpass"); !ok {
		t.Error("new password does not authenticate after change")
	}
}

func TestCompleteSetup(t *testing.T) {
	data := seededStore(t)

	if data.CompleteSetup("99", "Nobody", "secret1") {
		t.Error("CompleteSetup() = true for unknown roll number")
	}

	if !data.CompleteSetup("5", "Priya R", "secret1") {
		t.Fatal("CompleteSetup() = false for seeded student")
	}

	user, ok := data.Authenticate("5", "secret1")
	if !ok {
		t.Fatal("new password does not authenticate after setup")
	}
	if user.Name != "Priya R" {
		t.Errorf("name = %q, want %q", user.Name, "Priya R")
	}
	if !user.HasCompletedSetup {
		t.Error("hasCompletedSetup not set after setup")
	}
}

func TestCompleteSetupRefreshesSession(t *testing.T) {
	data := seededStore(t)

	user, _ := data.Authenticate("5", "skct@5")
	if err := data.SetCurrentUser(user); err != nil {
		t.Fatal(err)
	}

	if !data.CompleteSetup("5", "Priya R", "secret1") {
		t.Fatal("CompleteSetup() = false")
	}

	current, ok := data.CurrentUser()
	if !ok {
		t.Fatal("session record missing after setup")
	}
	if current.Name != "Priya R" || !current.HasCompletedSetup || current.Password != "secret1" {
		t.Errorf("session record not refreshed: %+v", current)
	}
}

func TestCompleteSetupLeavesOtherSessionsAlone(t *testing.T) {
	data := seededStore(t)

	user, _ := data.Authenticate("6", "skct@6")
	if err := data.SetCurrentUser(user); err != nil {
		t.Fatal(err)
	}

	if !data.CompleteSetup("5", "Priya R", "secret1") {
		t.Fatal("CompleteSetup() = false")
	}

	current, _ := data.CurrentUser()
	if current.RollNumber != "6" || current.Name != user.Name {
		t.Errorf("setup for roll 5 touched the session of roll 6: %+v", current)
	}
}

func TestPollLifecycle(t *testing.T) {
	data := seededStore(t)

	created, err := data.SavePoll("Best lab slot?", []string{"Morning", "Afternoon"}, time.Now())
	if err != nil {
		t.Fatalf("SavePoll() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("SavePoll() returned empty ID")
	}

	second, err := data.SavePoll("Retest on Friday?", []string{"Yes", "No"}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if second.ID == created.ID {
		t.Error("SavePoll() reused a poll ID")
	}

	// Insertion order preserved
	polls := data.Polls()
	if len(polls) != 2 {
		t.Fatalf("Polls() = %d polls, want 2", len(polls))
	}
	if polls[0].ID != created.ID || polls[1].ID != second.ID {
		t.Error("Polls() not in insertion order")
	}

	if err := data.DeletePoll(created.ID); err != nil {
		t.Fatalf("DeletePoll() error = %v", err)
	}
	polls = data.Polls()
	if len(polls) != 1 || polls[0].ID != second.ID {
		t.Errorf("after delete, Polls() = %+v", polls)
	}
}

func TestDeletePollCascades(t *testing.T) {
	data := seededStore(t)

	doomed, _ := data.SavePoll("Doomed?", []string{"Yes", "No"}, time.Now())
	kept, _ := data.SavePoll("Kept?", []string{"Yes", "No"}, time.Now())

	for _, roll := range []string{"1", "2", "3"} {
		if _, err := data.SaveResponse(doomed.ID, roll, "Yes"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := data.SaveResponse(kept.ID, "1", "No"); err != nil {
		t.Fatal(err)
	}

	if err := data.DeletePoll(doomed.ID); err != nil {
		t.Fatalf("DeletePoll() error = %v", err)
	}

	if got := data.PollResponses(doomed.ID); len(got) != 0 {
		t.Errorf("PollResponses(deleted) = %d responses, want 0", len(got))
	}
	for _, r := range data.Responses() {
		if r.PollID == doomed.ID {
			t.Errorf("response referencing deleted poll survived: %+v", r)
		}
	}

	// The other poll's responses are untouched
	if got := data.PollResponses(kept.ID); len(got) != 1 {
		t.Errorf("PollResponses(kept) = %d responses, want 1", len(got))
	}
}

func TestSaveResponseAppendsUnconditionally(t *testing.T) {
	data := seededStore(t)
	poll, _ := data.SavePoll("Double?", []string{"A", "B"}, time.Now())

	if _, err := data.SaveResponse(poll.ID, "4", "A"); err != nil {
		t.Fatal(err)
	}
	if _, err := data.SaveResponse(poll.ID, "4", "B"); err != nil {
		t.Fatal(err)
	}

	// No duplicate guard at this layer: both records are stored. Callers
	// that want one response per student check HasResponded first.
	if got := data.PollResponses(poll.ID); len(got) != 2 {
		t.Errorf("PollResponses() = %d records after double submit, want 2", len(got))
	}
}

func TestHasResponded(t *testing.T) {
	data := seededStore(t)
	poll, _ := data.SavePoll("Q", []string{"A", "B"}, time.Now())

	if data.HasResponded(poll.ID, "8") {
		t.Error("HasResponded() = true before any response")
	}

	if _, err := data.SaveResponse(poll.ID, "8", "A"); err != nil {
		t.Fatal(err)
	}

	if !data.HasResponded(poll.ID, "8") {
		t.Error("HasResponded() = false after response")
	}
	if data.HasResponded(poll.ID, "9") {
		t.Error("HasResponded() = true for a student who did not respond")
	}
	if data.HasResponded("other-poll", "8") {
		t.Error("HasResponded() = true for a different poll")
	}
}

func TestTally(t *testing.T) {
	data := seededStore(t)
	poll, _ := data.SavePoll("Q", []string{"A", "B", "C"}, time.Now())

	for _, pick := range []struct{ roll, option string }{
		{"1", "A"}, {"2", "C"}, {"3", "A"},
	} {
		if _, err := data.SaveResponse(poll.ID, pick.roll, pick.option); err != nil {
			t.Fatal(err)
		}
	}

	counts := data.Tally(poll)
	want := []models.OptionCount{{Option: "A", Count: 2}, {Option: "B", Count: 0}, {Option: "C", Count: 1}}
	if len(counts) != len(want) {
		t.Fatalf("Tally() = %d rows, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("Tally()[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestMalformedCollectionsReadAsEmpty(t *testing.T) {
	store := kv.NewMemory()
	data := New(store, "pollApp")

	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"truncated users", "pollApp_users", `[{"rollNumber":`},
		{"non-array polls", "pollApp_polls", `{"oops":1}`},
		{"garbage responses", "pollApp_responses", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.Set(tt.key, tt.raw); err != nil {
				t.Fatal(err)
			}
		})
	}

	if got := data.Users(); len(got) != 0 {
		t.Errorf("Users() over corrupt data = %d records, want 0", len(got))
	}
	if got := data.Polls(); len(got) != 0 {
		t.Errorf("Polls() over corrupt data = %d records, want 0", len(got))
	}
	if got := data.Responses(); len(got) != 0 {
		t.Errorf("Responses() over corrupt data = %d records, want 0", len(got))
	}
}

func TestCorruptSessionRecordIsCleared(t *testing.T) {
	store := kv.NewMemory()
	data := New(store, "pollApp")

	if err := store.Set("pollApp_currentUser", `{"rollNumber":`); err != nil {
		t.Fatal(err)
	}

	if _, ok := data.CurrentUser(); ok {
		t.Error("CurrentUser() = ok for corrupt record")
	}
	if _, ok, _ := store.Get("pollApp_currentUser"); ok {
		t.Error("corrupt session record not removed")
	}
}

func TestSessionRecord(t *testing.T) {
	data := seededStore(t)

	if _, ok := data.CurrentUser(); ok {
		t.Error("CurrentUser() = ok on fresh store")
	}

	user, _ := data.Authenticate("3", "skct@3")
	if err := data.SetCurrentUser(user); err != nil {
		t.Fatal(err)
	}

	current, ok := data.CurrentUser()
	if !ok || current.RollNumber != "3" {
		t.Errorf("CurrentUser() = %+v, %v; want roll 3", current, ok)
	}

	if err := data.ClearCurrentUser(); err != nil {
		t.Fatal(err)
	}
	if _, ok := data.CurrentUser(); ok {
		t.Error("CurrentUser() = ok after ClearCurrentUser")
	}
}

// Seed a class, log a student in, answer a poll, and check what the tutor
// sees - the full path every screen drives.
func TestEndToEndScenario(t *testing.T) {
	data := seededStore(t)

	poll, err := data.SavePoll("Which unit needs revision?", []string{"Unit 1", "Unit 2", "Unit 3"}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	student, ok := data.Authenticate("student21@college.edu", "skct@21")
	if !ok {
		t.Fatal("seeded student failed to authenticate")
	}
	if err := data.SetCurrentUser(student); err != nil {
		t.Fatal(err)
	}

	if !poll.HasOption("Unit 2") {
		t.Fatal("poll missing expected option")
	}
	if _, err := data.SaveResponse(poll.ID, student.RollNumber, "Unit 2"); err != nil {
		t.Fatal(err)
	}

	if !data.HasResponded(poll.ID, student.RollNumber) {
		t.Error("HasResponded() = false after submitting")
	}

	if _, ok := data.Authenticate("tutor", "admin123"); !ok {
		t.Fatal("tutor failed to authenticate")
	}
	responses := data.PollResponses(poll.ID)
	if len(responses) != 1 {
		t.Fatalf("PollResponses() = %d records, want 1", len(responses))
	}
	if responses[0].RollNumber != "21" || responses[0].Option != "Unit 2" {
		t.Errorf("stored response = %+v, want roll 21 / Unit 2", responses[0])
	}
	if responses[0].SubmittedAt.IsZero() {
		t.Error("response missing submission timestamp")
	}
}
