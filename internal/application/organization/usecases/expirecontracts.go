package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// ExpireContractsUseCase moves active contracts past their end date to expired.
// Running it twice is harmless.
type ExpireContractsUseCase struct {
	contractRepo organization.ContractRepository
	logger       logger.Interface
}

func NewExpireContractsUseCase(contractRepo organization.ContractRepository, logger logger.Interface) *ExpireContractsUseCase {
	return &ExpireContractsUseCase{contractRepo: contractRepo, logger: logger}
}

func (uc *ExpireContractsUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.contractRepo.ListActiveEndingBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list due contracts: %w", err)
	}

	expired := 0
	for _, c := range due {
		if !c.ExpireIfDue(now) {
			continue
		}
		if err := uc.contractRepo.Update(ctx, c); err != nil {
			uc.logger.Errorw("failed to expire contract", "contract_id", c.ID(), "error", err)
			return expired, fmt.Errorf("failed to expire contract %d: %w", c.ID(), err)
		}
		expired++
	}

	if expired > 0 {
		uc.logger.Infow("contracts expired", "count", expired)
	}
	return expired, nil
}
