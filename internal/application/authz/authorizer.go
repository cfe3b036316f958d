package authz

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// ContractLinkSource loads the active counterparties of an organization.
type ContractLinkSource interface {
	ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error)
}

// Authorizer checks the permission matrix first and the entity guard second.
// Denials are Forbidden AppErrors.
type Authorizer struct {
	checker   permission.Checker
	contracts ContractLinkSource
	logger    logger.Interface
}

func NewAuthorizer(checker permission.Checker, contracts ContractLinkSource, logger logger.Interface) *Authorizer {
	return &Authorizer{
		checker:   checker,
		contracts: contracts,
		logger:    logger,
	}
}

// Require checks the matrix only.
func (a *Authorizer) Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error {
	if p == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !a.checker.HasPermission(p.Role, resource, action) {
		a.logger.Warnw("permission denied",
			"user_id", p.UserID,
			"role", p.Role,
			"resource", resource,
			"action", action,
		)
		return errors.NewForbiddenError(fmt.Sprintf("role %s cannot %s %s", p.Role, action, resource))
	}
	return nil
}

// ActiveLinks loads the principal organization's active contract partners.
func (a *Authorizer) ActiveLinks(ctx context.Context, p *authorization.Principal) (ActiveLinks, error) {
	ids, err := a.contracts.ActivePartnerIDs(ctx, p.OrgID)
	if err != nil {
		a.logger.Errorw("failed to load contract partners", "org_id", p.OrgID, "error", err)
		return ActiveLinks{}, fmt.Errorf("failed to load contract partners: %w", err)
	}
	return NewActiveLinks(ids), nil
}

// linksFor skips the contract lookup for roles whose rule never consults it.
func (a *Authorizer) linksFor(ctx context.Context, p *authorization.Principal, needed bool) (ActiveLinks, error) {
	if !needed {
		return NewActiveLinks(nil), nil
	}
	return a.ActiveLinks(ctx, p)
}

func (a *Authorizer) AuthorizeTicket(ctx context.Context, p *authorization.Principal, t *ticket.Ticket, resource permission.Resource, action permission.Action) error {
	if err := a.Require(p, resource, action); err != nil {
		return err
	}
	links, err := a.linksFor(ctx, p, p.Role == authorization.RoleServiceAdmin)
	if err != nil {
		return err
	}
	if !CanAccessTicket(p, t, links) {
		a.logger.Warnw("ticket access denied", "user_id", p.UserID, "org_id", p.OrgID, "ticket_id", t.ID())
		return errors.NewForbiddenError("access to this ticket is not allowed")
	}
	return nil
}

func (a *Authorizer) AuthorizeRobot(ctx context.Context, p *authorization.Principal, r *robot.Robot, resource permission.Resource, action permission.Action) error {
	if err := a.Require(p, resource, action); err != nil {
		return err
	}
	links, err := a.linksFor(ctx, p, p.Role == authorization.RoleServiceAdmin && r.OrgID() != p.OrgID)
	if err != nil {
		return err
	}
	if !CanAccessRobot(p, r, links) {
		a.logger.Warnw("robot access denied", "user_id", p.UserID, "org_id", p.OrgID, "robot_id", r.ID())
		return errors.NewForbiddenError("access to this robot is not allowed")
	}
	return nil
}

func (a *Authorizer) AuthorizeLibraryDoc(ctx context.Context, p *authorization.Principal, d *library.Document, action permission.Action) error {
	if err := a.Require(p, permission.ResourceLibrary, action); err != nil {
		return err
	}
	links, err := a.linksFor(ctx, p, p.IsEndSide())
	if err != nil {
		return err
	}
	if !CanAccessLibraryDoc(p, d, links) {
		a.logger.Warnw("library document access denied", "user_id", p.UserID, "org_id", p.OrgID, "document_id", d.ID())
		return errors.NewForbiddenError("access to this document is not allowed")
	}
	return nil
}
