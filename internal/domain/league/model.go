package league

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleMember       Role = "member"
	RoleCommissioner Role = "commissioner"
)

// League groups the participants who draft and score together.
type League struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Membership ties a participant to a league. JoinedAt fixes draft order.
type Membership struct {
	LeagueID      string
	ParticipantID string
	DisplayName   string
	Role          Role
	JoinedAt      time.Time
}

// Satisfies reports whether the membership grants at least the required role.
func (m Membership) Satisfies(required Role) bool {
	switch required {
	case RoleMember:
		return m.Role == RoleMember || m.Role == RoleCommissioner
	case RoleCommissioner:
		return m.Role == RoleCommissioner
	default:
		return false
	}
}

func ParseRole(v string) (Role, error) {
	switch Role(v) {
	case RoleMember, RoleCommissioner:
		return Role(v), nil
	default:
		return "", fmt.Errorf("unknown league role %q", v)
	}
}

// ParticipantIDs returns member ids in draft order.
func ParticipantIDs(members []Membership) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.ParticipantID)
	}
	return out
}
