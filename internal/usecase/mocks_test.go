package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Kupenya/landPage/internal/entity"
	"github.com/Kupenya/landPage/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Append(ctx context.Context, record *entity.LeadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByToken(ctx context.Context, token string) (*entity.LeadRecord, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadRecord), args.Error(1)
}

func (m *MockLeadRepository) IncrementDownloadCount(ctx context.Context, token string, at time.Time) (int, error) {
	args := m.Called(ctx, token, at)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) MarkEmailSent(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishDownloadEmail(ctx context.Context, payload queue.DownloadEmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockEbookProvider struct {
	mock.Mock
}

func (m *MockEbookProvider) Fetch() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockEbookProvider) Filename() string {
	args := m.Called()
	return args.String(0)
}
