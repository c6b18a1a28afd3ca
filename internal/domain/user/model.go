package user

const (
	RoleAdmin   = "admin"
	RoleCoach   = "coach"
	RoleAnalyst = "analyst"
)

// Principal is the authenticated caller as reported by the roster account
// service. TeamIDs lists the teams the caller may log stats for; admins may
// act on any team.
type Principal struct {
	UserID  string
	Email   string
	Role    string
	TeamIDs []string
}

func (p Principal) CanManageTeam(teamID string) bool {
	if p.Role == RoleAdmin {
		return true
	}
	for _, id := range p.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
