package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Kupenya/landPage/internal/entity"
)

type TrackDownloadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewTrackDownloadUseCase(repo entity.LeadRepositoryInterface) *TrackDownloadUseCase {
	return &TrackDownloadUseCase{Repo: repo}
}

// Execute records one redemption. It deliberately re-scans for the token and
// performs no expiry check: tracking is analytics, not access control, and a
// token stays redeemable any number of times within its window.
func (uc *TrackDownloadUseCase) Execute(ctx context.Context, downloadToken string) (*TrackDownloadOutput, error) {
	if downloadToken == "" {
		return nil, &DomainError{Code: CodeTokenRequired, Message: "Token required"}
	}

	newCount, err := uc.Repo.IncrementDownloadCount(ctx, downloadToken, time.Now())
	if err != nil {
		if errors.Is(err, entity.ErrRecordNotFound) {
			return nil, &DomainError{Code: CodeTokenNotFound, Message: "Token not found"}
		}
		return nil, &TechnicalError{Code: CodeStoreError, Message: "failed to track download: " + err.Error()}
	}

	return &TrackDownloadOutput{
		Success:       true,
		DownloadCount: newCount,
	}, nil
}
