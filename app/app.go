package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/haresh-sai06/class-poll-mate/models"
	"github.com/haresh-sai06/class-poll-mate/storage"
)

const (
	minPasswordLen = 6
	maxOptions     = 6
)

// App drives the terminal screens: login, first-time setup, and the two
// dashboards. Input and output are injected so scripted sessions can run in
// tests without a terminal.
type App struct {
	store *storage.Store
	in    *bufio.Scanner
	out   io.Writer
}

func New(store *storage.Store, in io.Reader, out io.Writer) *App {
	return &App{store: store, in: bufio.NewScanner(in), out: out}
}

// Run restores the saved session if there is one and loops between screens
// until the user quits or input ends.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "Poll Box")

	for {
		user, ok := a.store.CurrentUser()
		if !ok {
			user, ok = a.login()
			if !ok {
				return nil
			}
		}

		if !user.IsAdmin && !user.HasCompletedSetup {
			user, ok = a.firstTimeSetup(user)
			if !ok {
				return nil
			}
		}

		var quit bool
		if user.IsAdmin {
			quit = a.tutorDashboard(user)
		} else {
			quit = a.studentDashboard(user)
		}
		if quit {
			return nil
		}
	}
}

// prompt prints a label and reads one trimmed line. ok is false when input
// has ended.
func (a *App) prompt(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// login loops until a session is established or input ends. A blank
// identifier quits. The failure message is the same whether the identifier
// is unknown or the password is wrong.
func (a *App) login() (models.User, bool) {
	for {
		fmt.Fprintln(a.out)
		identifier, ok := a.prompt("Roll number or email (blank to quit)")
		if !ok || identifier == "" {
			return models.User{}, false
		}
		password, ok := a.prompt("Password")
		if !ok {
			return models.User{}, false
		}

		user, ok := a.store.Authenticate(identifier, password)
		if !ok {
			fmt.Fprintln(a.out, "Invalid roll number or password.")
			continue
		}
		if err := a.store.SetCurrentUser(user); err != nil {
			fmt.Fprintln(a.out, "Login failed. Please try again.")
			continue
		}
		fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
		return user, true
	}
}

// firstTimeSetup forces a student to pick a display name and a real password
// before reaching the dashboard.
func (a *App) firstTimeSetup(user models.User) (models.User, bool) {
	fmt.Fprintf(a.out, "\nFirst-time setup for roll %s (%s)\n", user.RollNumber, user.Email)

	for {
		name, ok := a.prompt("Full name")
		if !ok {
			return models.User{}, false
		}
		if name == "" {
			fmt.Fprintln(a.out, "Please enter your full name.")
			continue
		}

		password, ok := a.prompt("New password")
		if !ok {
			return models.User{}, false
		}
		if len(password) < minPasswordLen {
			fmt.Fprintf(a.out, "Password must be at least %d characters long.\n", minPasswordLen)
			continue
		}
		confirm, ok := a.prompt("Confirm new password")
		if !ok {
			return models.User{}, false
		}
		if password != confirm {
			fmt.Fprintln(a.out, "Passwords don't match.")
			continue
		}

		if !a.store.CompleteSetup(user.RollNumber, name, password) {
			fmt.Fprintln(a.out, "Setup failed. Please try again.")
			continue
		}
		fmt.Fprintln(a.out, "Setup complete.")

		// CompleteSetup refreshed the session record
		updated, ok := a.store.CurrentUser()
		if !ok {
			return models.User{}, false
		}
		return updated, true
	}
}

func (a *App) studentDashboard(user models.User) (quit bool) {
	for {
		polls := a.store.Polls()

		fmt.Fprintf(a.out, "\n== Student Dashboard - %s (roll %s) ==\n", user.Name, user.RollNumber)
		if len(polls) == 0 {
			fmt.Fprintln(a.out, "No polls yet.")
		}
		for i, p := range polls {
			status := "not answered"
			if a.store.HasResponded(p.ID, user.RollNumber) {
				status = "answered"
			}
			fmt.Fprintf(a.out, "  %d. %s (created %s) [%s]\n", i+1, p.Question, humanize.Time(p.CreatedAt), status)
		}
		fmt.Fprintln(a.out, "(a <n>) answer  (p) change password  (l) logout  (q) quit")

		line, ok := a.prompt(">")
		if !ok {
			return true
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "a":
			poll, ok := pickPoll(a.out, polls, fields)
			if ok {
				a.answerPoll(user, poll)
			}
		case "p":
			a.changePassword(user.RollNumber)
		case "l":
			a.logout()
			return false
		case "q":
			return true
		default:
			fmt.Fprintln(a.out, "Unknown command.")
		}
	}
}

func (a *App) answerPoll(user models.User, poll models.Poll) {
	// Duplicate submissions are blocked here, not in the data layer
	if a.store.HasResponded(poll.ID, user.RollNumber) {
		fmt.Fprintln(a.out, "You have already responded to this poll.")
		return
	}

	fmt.Fprintln(a.out, poll.Question)
	for i, option := range poll.Options {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, option)
	}

	line, ok := a.prompt("Option number")
	if !ok {
		return
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(poll.Options) {
		fmt.Fprintln(a.out, "Invalid option.")
		return
	}

	if _, err := a.store.SaveResponse(poll.ID, user.RollNumber, poll.Options[choice-1]); err != nil {
		fmt.Fprintln(a.out, "Failed to submit response.")
		return
	}
	fmt.Fprintln(a.out, "Response submitted.")
}

func (a *App) changePassword(rollNumber string) {
	current, ok := a.prompt("Current password")
	if !ok {
		return
	}
	password, ok := a.prompt("New password")
	if !ok {
		return
	}
	if len(password) < minPasswordLen {
		fmt.Fprintf(a.out, "Password must be at least %d characters long.\n", minPasswordLen)
		return
	}
	confirm, ok := a.prompt("Confirm new password")
	if !ok {
		return
	}
	if password != confirm {
		fmt.Fprintln(a.out, "Passwords don't match.")
		return
	}

	if !a.store.UpdatePassword(rollNumber, current, password) {
		fmt.Fprintln(a.out, "Current password is incorrect.")
		return
	}
	fmt.Fprintln(a.out, "Password updated.")
}

func (a *App) tutorDashboard(user models.User) (quit bool) {
	for {
		polls := a.store.Polls()

		fmt.Fprintf(a.out, "\n== Tutor Dashboard - %s ==\n", user.Name)
		if len(polls) == 0 {
			fmt.Fprintln(a.out, "No polls yet.")
		}
		for i, p := range polls {
			fmt.Fprintf(a.out, "  %d. %s (created %s, %d responses)\n",
				i+1, p.Question, humanize.Time(p.CreatedAt), len(a.store.PollResponses(p.ID)))
		}
		fmt.Fprintln(a.out, "(n) new poll  (d <n>) delete  (r <n>) results  (l) logout  (q) quit")

		line, ok := a.prompt(">")
		if !ok {
			return true
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "n":
			a.createPoll()
		case "d":
			poll, ok := pickPoll(a.out, polls, fields)
			if ok {
				if err := a.store.DeletePoll(poll.ID); err != nil {
					fmt.Fprintln(a.out, "Failed to delete poll.")
				} else {
					fmt.Fprintln(a.out, "Poll deleted.")
				}
			}
		case "r":
			poll, ok := pickPoll(a.out, polls, fields)
			if ok {
				a.showResults(poll)
			}
		case "l":
			a.logout()
			return false
		case "q":
			return true
		default:
			fmt.Fprintln(a.out, "Unknown command.")
		}
	}
}

func (a *App) createPoll() {
	question, ok := a.prompt("Question")
	if !ok {
		return
	}
	if question == "" {
		fmt.Fprintln(a.out, "Question is required.")
		return
	}

	var options []string
	for len(options) < maxOptions {
		option, ok := a.prompt(fmt.Sprintf("Option %d (blank to finish)", len(options)+1))
		if !ok {
			return
		}
		if option == "" {
			break
		}
		options = append(options, option)
	}
	if len(options) < 2 {
		fmt.Fprintln(a.out, "At least two options are required.")
		return
	}

	if _, err := a.store.SavePoll(question, options, time.Now()); err != nil {
		fmt.Fprintln(a.out, "Failed to create poll.")
		return
	}
	fmt.Fprintln(a.out, "Poll created.")
}

func (a *App) showResults(poll models.Poll) {
	fmt.Fprintf(a.out, "\nResults: %s\n", poll.Question)
	for _, row := range a.store.Tally(poll) {
		fmt.Fprintf(a.out, "  %-20s %d\n", row.Option, row.Count)
	}

	// First stored response per student, matching what HasResponded gates
	picked := make(map[string]models.Response)
	for _, r := range a.store.PollResponses(poll.ID) {
		if _, ok := picked[r.RollNumber]; !ok {
			picked[r.RollNumber] = r
		}
	}

	fmt.Fprintln(a.out, "Students:")
	for _, u := range a.store.Users() {
		if u.IsAdmin {
			continue
		}
		if r, ok := picked[u.RollNumber]; ok {
			fmt.Fprintf(a.out, "  roll %-4s %-20s %s (%s)\n", u.RollNumber, u.Name, r.Option, humanize.Time(r.SubmittedAt))
		} else {
			fmt.Fprintf(a.out, "  roll %-4s %-20s no response yet\n", u.RollNumber, u.Name)
		}
	}
}

func (a *App) logout() {
	if err := a.store.ClearCurrentUser(); err != nil {
		fmt.Fprintln(a.out, "Failed to clear session.")
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

// pickPoll resolves a "<cmd> <n>" command against the listed polls.
func pickPoll(out io.Writer, polls []models.Poll, fields []string) (models.Poll, bool) {
	if len(fields) < 2 {
		fmt.Fprintln(out, "Which poll? Give its number.")
		return models.Poll{}, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(polls) {
		fmt.Fprintln(out, "Invalid poll number.")
		return models.Poll{}, false
	}
	return polls[n-1], true
}
