package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Kupenya/landPage/internal/entity"
)

type ValidateTokenUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewValidateTokenUseCase(repo entity.LeadRepositoryInterface) *ValidateTokenUseCase {
	return &ValidateTokenUseCase{Repo: repo}
}

func (uc *ValidateTokenUseCase) Execute(ctx context.Context, downloadToken string) (*ValidateTokenOutput, error) {
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

	return &ValidateTokenOutput{
		Valid:         true,
		DownloadCount: record.DownloadCount,
		Email:         record.Email,
	}, nil
}
