package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"standup-bot/internal/domain/entity"
)

// Roster is the static set of tracked team members, loaded once at startup
// and never mutated afterwards.
type Roster struct {
	members []entity.Member
	byName  map[string]entity.Member
}

// Load reads the roster from a JSON file of the form
// [{"id":"U123","name":"Jane Doe","exempt":false}, ...].
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var members []entity.Member
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	return New(members)
}

// New builds a roster from an in-memory member list, validating that user
// IDs are unique and that at most one member is marked exempt.
func New(members []entity.Member) (*Roster, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("roster must contain at least one member")
	}

	byName := make(map[string]entity.Member, len(members))
	seen := make(map[string]bool, len(members))
	exemptCount := 0

	for _, m := range members {
		if m.SlackUserID == "" {
			return nil, fmt.Errorf("roster member %q has no user ID", m.DisplayName)
		}
		if seen[m.SlackUserID] {
			return nil, fmt.Errorf("duplicate roster user ID: %s", m.SlackUserID)
		}
		seen[m.SlackUserID] = true

		if m.Exempt {
			exemptCount++
		}
		byName[strings.ToLower(m.DisplayName)] = m
	}

	if exemptCount > 1 {
		return nil, fmt.Errorf("roster may have at most one exempt member, found %d", exemptCount)
	}

	return &Roster{members: members, byName: byName}, nil
}

// Members returns every roster member, exempt or not.
func (r *Roster) Members() []entity.Member {
	return r.members
}

// TrackedUserIDs returns the IDs of members who owe a daily report,
// excluding the exempt member.
func (r *Roster) TrackedUserIDs() []string {
	ids := make([]string, 0, len(r.members))
	for _, m := range r.members {
		if m.Exempt {
			continue
		}
		ids = append(ids, m.SlackUserID)
	}
	return ids
}

// ByDisplayName looks a member up by display name, case-insensitively.
func (r *Roster) ByDisplayName(name string) (entity.Member, bool) {
	m, ok := r.byName[strings.ToLower(name)]
	return m, ok
}
