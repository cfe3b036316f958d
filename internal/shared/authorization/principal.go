package authorization

// Principal is the authenticated caller, derived from a session and never persisted.
// Role predicates are computed once at construction.
type Principal struct {
	UserID    uint
	OrgID     uint
	Role      Role
	Email     string
	SessionID uint

	isAdmin       bool
	isServiceSide bool
	isEndSide     bool
	isEngineer    bool
}

func NewPrincipal(userID, orgID uint, role Role, email string, sessionID uint) *Principal {
	return &Principal{
		UserID:        userID,
		OrgID:         orgID,
		Role:          role,
		Email:         email,
		SessionID:     sessionID,
		isAdmin:       role.IsAdmin(),
		isServiceSide: role.IsServiceSide(),
		isEndSide:     role.IsEndSide(),
		isEngineer:    role.IsEngineer(),
	}
}

func (p *Principal) IsAdmin() bool       { return p.isAdmin }
func (p *Principal) IsServiceSide() bool { return p.isServiceSide }
func (p *Principal) IsEndSide() bool     { return p.isEndSide }
func (p *Principal) IsEngineer() bool    { return p.isEngineer }
