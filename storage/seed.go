package storage

import (
	"fmt"
	"log/slog"

	"github.com/haresh-sai06/class-poll-mate/models"
)

// Roster shape: roll numbers run 1..61 with seat 49 discontinued, giving 60
// students plus the tutor.
const (
	firstRoll        = 1
	lastRoll         = 61
	discontinuedRoll = 49
)

// namePool holds the placeholder display names handed out at seeding, one
// per roster seat in roll order. Students replace theirs during first-time
// setup.
var namePool = [60]string{
	"Aarav", "Aditi", "Akash", "Amrita", "Ananya", "Anjali",
	"Arjun", "Arun", "Bhavya", "Charan", "Deepak", "Devika",
	"Dinesh", "Divya", "Gautham", "Gayathri", "Girish", "Hari",
	"Harini", "Indira", "Ishaan", "Janani", "Jayanth", "Kavya",
	"Keerthi", "Kiran", "Lakshmi", "Madhav", "Meena", "Mohan",
	"Mukesh", "Naveen", "Nisha", "Pallavi", "Pranav", "Priya",
	"Raghav", "Rajesh", "Ramya", "Ravi", "Rekha", "Rohan",
	"Sandhya", "Sanjay", "Sarika", "Shalini", "Shiva", "Shreya",
	"Sneha", "Sridhar", "Sudha", "Suresh", "Swathi", "Tejas",
	"Uma", "Varun", "Vidya", "Vijay", "Vinay", "Yamini",
}

// Seed populates a fresh store with the tutor account, the student roster,
// and empty poll/response collections. It is a no-op whenever the users key
// already holds a value; it never merges into or upgrades an existing roster.
func (s *Store) Seed() error {
	_, ok, err := s.kv.Get(s.key(usersKey))
	if err != nil {
		return fmt.Errorf("seed check failed: %w", err)
	}
	if ok {
		return nil
	}

	users := seedUsers()
	if err := s.writeUsers(users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.writePolls([]models.Poll{}); err != nil {
		return fmt.Errorf("failed to seed polls: %w", err)
	}
	if err := s.writeResponses([]models.Response{}); err != nil {
		return fmt.Errorf("failed to seed responses: %w", err)
	}

	slog.Info("store seeded", "users", len(users))
	return nil
}

func seedUsers() []models.User {
	users := []models.User{
		{
			RollNumber: models.AdminRollNumber,
			Name:       "Tutor",
			Email:      "tutor@college.edu",
			Password:   "admin123",
			IsAdmin:    true,
		},
	}

	next := 0
	for i := firstRoll; i <= lastRoll; i++ {
		if i == discontinuedRoll {
			continue
		}
		roll := fmt.Sprintf("%d", i)
		users = append(users, models.User{
			RollNumber: roll,
			Name:       namePool[next],
			Email:      fmt.Sprintf("student%s@college.edu", roll),
			Password:   fmt.Sprintf("skct@%s", roll),
			IsAdmin:    false,
		})
		next++
	}

	return users
}
