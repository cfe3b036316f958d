package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/dto"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// CreateRobotCommand registers a robot. End-side callers register for their own
// organization and name the servicing provider; a service admin registers for
// a contracted customer named by OrgID and services it itself.
type CreateRobotCommand struct {
	OrgID             uint
	ServiceProviderID uint
	SN                string
	Name              string
	Model             string
	Location          string
	Principal         *authorization.Principal
}

type CreateRobotUseCase struct {
	robotRepo    robot.Repository
	orgRepo      organization.Repository
	contractRepo organization.ContractRepository
	recorder     EventRecorder
	authorizer   Authorizer
	txManager    db.Transactor
	logger       logger.Interface
}

func NewCreateRobotUseCase(
	robotRepo robot.Repository,
	orgRepo organization.Repository,
	contractRepo organization.ContractRepository,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateRobotUseCase {
	return &CreateRobotUseCase{
		robotRepo:    robotRepo,
		orgRepo:      orgRepo,
		contractRepo: contractRepo,
		recorder:     recorder,
		authorizer:   authorizer,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateRobotUseCase) Execute(ctx context.Context, cmd CreateRobotCommand) (*dto.RobotDTO, error) {
	uc.logger.Infow("executing create robot use case", "sn", cmd.SN)

	if err := uc.authorizer.Require(cmd.Principal, permission.ResourceRobot, permission.ActionCreate); err != nil {
		return nil, err
	}
	p := cmd.Principal

	ownerID, providerID, err := uc.resolveParties(p, cmd)
	if err != nil {
		return nil, err
	}

	contracted, err := uc.contractRepo.ExistsActive(ctx, providerID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check contract: %w", err)
	}
	if !contracted {
		return nil, errors.NewForbiddenError("no active service contract between the owner and the provider")
	}

	newRobot, err := robot.NewRobot(ownerID, providerID, cmd.SN, cmd.Name, cmd.Model, cmd.Location, p.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.robotRepo.ExistsBySN(ctx, newRobot.SN())
	if err != nil {
		return nil, fmt.Errorf("failed to check serial number: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("a robot with this serial number already exists")
	}

	if err := uc.checkQuota(ctx, ownerID); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.robotRepo.Create(txCtx, newRobot); err != nil {
			return err
		}
		_, err := uc.recorder.Record(txCtx, timelineuc.RecordEventCommand{
			RobotID:  newRobot.ID(),
			Type:     timeline.EventRobotCreated,
			Title:    fmt.Sprintf("Robot %s registered", newRobot.SN()),
			Metadata: map[string]interface{}{"model": newRobot.Model(), "location": newRobot.Location()},
			ActorID:  p.UserID,
		})
		return err
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a robot with this serial number already exists")
		}
		uc.logger.Errorw("failed to create robot", "sn", cmd.SN, "error", err)
		return nil, err
	}

	uc.logger.Infow("robot created successfully", "robot_id", newRobot.ID(), "org_id", ownerID)

	result := dto.ToRobotDTO(newRobot)
	return &result, nil
}

func (uc *CreateRobotUseCase) resolveParties(p *authorization.Principal, cmd CreateRobotCommand) (uint, uint, error) {
	switch {
	case p.IsEndSide():
		if cmd.ServiceProviderID == 0 {
			return 0, 0, errors.NewValidationError("service_provider_id is required")
		}
		if cmd.OrgID != 0 && cmd.OrgID != p.OrgID {
			return 0, 0, errors.NewForbiddenError("robots can only be registered for your own organization")
		}
		return p.OrgID, cmd.ServiceProviderID, nil
	case p.Role == authorization.RoleServiceAdmin:
		if cmd.OrgID == 0 {
			return 0, 0, errors.NewValidationError("org_id of the customer is required")
		}
		if cmd.ServiceProviderID != 0 && cmd.ServiceProviderID != p.OrgID {
			return 0, 0, errors.NewForbiddenError("robots can only be serviced by your own organization")
		}
		return cmd.OrgID, p.OrgID, nil
	default:
		return 0, 0, errors.NewForbiddenError("role cannot register robots")
	}
}

func (uc *CreateRobotUseCase) checkQuota(ctx context.Context, ownerID uint) error {
	owner, err := uc.orgRepo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	count, err := uc.robotRepo.CountByOrg(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to count robots: %w", err)
	}
	if !orgvo.Allows(owner.Quotas().MaxRobots, count) {
		return errors.NewConflictError(fmt.Sprintf("robot quota of %d reached", owner.Quotas().MaxRobots))
	}
	return nil
}
