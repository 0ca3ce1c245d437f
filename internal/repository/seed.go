package repository

import "github.com/mergington/activities-api/internal/model"

// SeedActivities returns a fresh copy of the fixed activity table the
// service starts with. Each call builds new records, so tests can seed
// independent stores without reset hooks.
func SeedActivities() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Team-based soccer training and competitive matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice basketball fundamentals and play weekly scrimmages",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, sketching, and mixed media art",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"isabella@mergington.edu", "charlotte@mergington.edu"},
		},
		"Drama Society": {
			Description:     "Acting workshops and school theater productions",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Debate Club": {
			Description:     "Develop public speaking and argumentation skills through debates",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "james@mergington.edu"},
		},
		"Math Olympiad": {
			Description:     "Solve advanced math problems and prepare for competitions",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"lucas@mergington.edu", "benjamin@mergington.edu"},
		},
	}
}

// NewSeededStore creates a store populated from the fixed seed table.
func NewSeededStore() *ActivityStore {
	return NewActivityStore(SeedActivities())
}
