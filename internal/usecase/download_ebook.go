package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Kupenya/landPage/internal/entity"
)

type DownloadEbookUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Assets EbookProvider
}

func NewDownloadEbookUseCase(repo entity.LeadRepositoryInterface, assets EbookProvider) *DownloadEbookUseCase {
	return &DownloadEbookUseCase{Repo: repo, Assets: assets}
}

func (uc *DownloadEbookUseCase) Execute(ctx context.Context, downloadToken string) (*DownloadEbookOutput, error) {
	if downloadToken == "" {
		return nil, &DomainError{Code: CodeTokenRequired, Message: "Token required"}
	}

	record, err := uc.Repo.FindByToken(ctx, downloadToken)
	if err != nil {
		if errors.Is(err, entity.ErrRecordNotFound) {
			return nil, &DomainError{Code: CodeTokenNotFound, Message: "Invalid token"}
		}
		return nil, &TechnicalError{Code: CodeStoreError, Message: "failed to validate token: " + err.Error()}
	}

	if record.Expired(time.Now()) {
		return nil, &DomainError{Code: CodeTokenExpired, Message: "Token expired"}
	}

	data, err := uc.Assets.Fetch()
	if err != nil {
		return nil, &TechnicalError{Code: CodeAssetError, Message: "failed to load ebook asset: " + err.Error()}
	}

	return &DownloadEbookOutput{
		Data:     data,
		Filename: uc.Assets.Filename(),
	}, nil
}
