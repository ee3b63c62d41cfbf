package usecases

import (
	"context"

	"provisio/internal/domain/production"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
)

// GetFileUseCase serves one attachment with its base64 content, for
// download by the client.
type GetFileUseCase struct {
	ledgerRepo production.LedgerRepository
	logger     logger.Interface
}

func NewGetFileUseCase(ledgerRepo production.LedgerRepository, logger logger.Interface) *GetFileUseCase {
	return &GetFileUseCase{ledgerRepo: ledgerRepo, logger: logger}
}

type GetFileQuery struct {
	FileID uint
}

func (uc *GetFileUseCase) Execute(ctx context.Context, query GetFileQuery) (*FileView, error) {
	file, err := uc.ledgerRepo.GetFileByID(ctx, query.FileID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load file", "file_id", query.FileID, "error", err)
		return nil, errors.NewInternalError("failed to load file")
	}

	view := newFileView(file, true)
	return &view, nil
}
