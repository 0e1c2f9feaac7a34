package usecase

import (
	"context"

	"github.com/Kupenya/landPage/internal/infra/queue"
)

type SubmitLeadInput struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type SubmitLeadOutput struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DownloadLink string `json:"downloadLink"`
}

type ValidateTokenOutput struct {
	Valid         bool   `json:"valid"`
	Expired       bool   `json:"expired,omitempty"`
	DownloadCount int    `json:"downloadCount"`
	Email         string `json:"email"`
}

type TrackDownloadOutput struct {
	Success       bool `json:"success"`
	DownloadCount int  `json:"downloadCount"`
}

type DownloadEbookOutput struct {
	Data     []byte
	Filename string
}

type QueueProducerInterface interface {
	PublishDownloadEmail(ctx context.Context, payload queue.DownloadEmailPayload) error
}

// EbookProvider hands out the static asset payload.
type EbookProvider interface {
	Fetch() ([]byte, error)
	Filename() string
}
