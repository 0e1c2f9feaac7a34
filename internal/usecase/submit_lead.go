package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kupenya/landPage/internal/entity"
	"github.com/Kupenya/landPage/internal/infra/queue"
	"github.com/Kupenya/landPage/internal/token"
)

const defaultSource = "landing-page"

type SubmitLeadUseCase struct {
	Repo    entity.LeadRepositoryInterface
	Queue   QueueProducerInterface
	BaseURL string
}

func NewSubmitLeadUseCase(
	repo entity.LeadRepositoryInterface,
	producer QueueProducerInterface,
	baseURL string,
) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:    repo,
		Queue:   producer,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, &DomainError{
			Code:    CodeInvalidEmail,
			Message: "Valid email is required",
		}
	}

	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = defaultSource
	}

	downloadToken := token.New()
	downloadLink := fmt.Sprintf("%s/download?token=%s", uc.BaseURL, downloadToken)

	record := &entity.LeadRecord{
		Email:         email,
		CreatedAt:     time.Now(),
		EmailSent:     false,
		DownloadCount: 0,
		Source:        source,
		Token:         downloadToken,
	}

	// The row is the source of truth: if the append fails the lead is lost
	// and the request must fail. Everything after it is best-effort.
	if err := uc.Repo.Append(ctx, record); err != nil {
		return nil, &TechnicalError{
			Code:    CodeStoreError,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	payload := queue.DownloadEmailPayload{
		EventID:      uuid.New().String(),
		Email:        email,
		DownloadLink: downloadLink,
		Token:        downloadToken,
		Source:       source,
	}

	// Publish failure is swallowed: the lead already exists and the link is
	// returned in the response, so losing the email must not lose the lead.
	if uc.Queue != nil {
		if err := uc.Queue.PublishDownloadEmail(ctx, payload); err != nil {
			log.Printf("⚠️ lead %s saved but notification publish failed: %v", email, err)
		}
	}

	return &SubmitLeadOutput{
		Success:      true,
		Message:      "Email submitted successfully",
		DownloadLink: downloadLink,
	}, nil
}
