package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/files/dto"
)

type UploadFileExecutor interface {
	Execute(ctx context.Context, cmd UploadFileCommand) (*dto.FileDTO, error)
}

type OpenFileExecutor interface {
	Execute(ctx context.Context, query OpenFileQuery) (*OpenFileResult, error)
}

var (
	_ UploadFileExecutor = (*UploadFileUseCase)(nil)
	_ OpenFileExecutor   = (*OpenFileUseCase)(nil)
)
