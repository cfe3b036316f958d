// Package authz decides whether a principal may act on a specific entity.
// The guard predicates are pure; Authorizer loads contract state and combines
// them with the permission matrix.
package authz

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

// ActiveLinks is the set of organizations bound to the principal's org by an
// active service contract.
type ActiveLinks struct {
	partners map[uint]struct{}
}

func NewActiveLinks(partnerIDs []uint) ActiveLinks {
	l := ActiveLinks{partners: make(map[uint]struct{}, len(partnerIDs))}
	for _, id := range partnerIDs {
		l.partners[id] = struct{}{}
	}
	return l
}

// Has reports whether orgID is an active partner.
func (l ActiveLinks) Has(orgID uint) bool {
	_, ok := l.partners[orgID]
	return ok
}

// IDs returns the partner IDs in no particular order.
func (l ActiveLinks) IDs() []uint {
	out := make([]uint, 0, len(l.partners))
	for id := range l.partners {
		out = append(out, id)
	}
	return out
}

// CanAccessTicket applies the per-role ticket rule. Engineers are admitted by
// assignment or by belonging to either party's organization.
func CanAccessTicket(p *authorization.Principal, t *ticket.Ticket, links ActiveLinks) bool {
	if p == nil || t == nil {
		return false
	}
	switch p.Role {
	case authorization.RoleServiceAdmin:
		return links.Has(t.CustomerID())
	case authorization.RoleEndAdmin:
		return t.CustomerID() == p.OrgID
	case authorization.RoleServiceEngineer, authorization.RoleEndEngineer:
		return t.IsAssignedTo(p.UserID) ||
			p.OrgID == t.CustomerID() ||
			p.OrgID == t.ServiceProviderID()
	default:
		return false
	}
}

func CanAccessRobot(p *authorization.Principal, r *robot.Robot, links ActiveLinks) bool {
	if p == nil || r == nil {
		return false
	}
	switch p.Role {
	case authorization.RoleServiceAdmin:
		return r.OrgID() == p.OrgID || links.Has(r.OrgID())
	case authorization.RoleEndAdmin:
		return r.OrgID() == p.OrgID
	case authorization.RoleServiceEngineer, authorization.RoleEndEngineer:
		return p.OrgID == r.OrgID() || p.OrgID == r.ServiceProviderID()
	default:
		return false
	}
}

// CanAccessLibraryDoc lets providers see their own documents and customers see
// documents of providers they hold an active contract with.
func CanAccessLibraryDoc(p *authorization.Principal, d *library.Document, links ActiveLinks) bool {
	if p == nil || d == nil {
		return false
	}
	switch {
	case p.IsServiceSide():
		return d.OrgID() == p.OrgID
	case p.IsEndSide():
		return links.Has(d.OrgID())
	default:
		return false
	}
}
