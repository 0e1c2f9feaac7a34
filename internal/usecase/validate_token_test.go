package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Kupenya/landPage/internal/entity"
)

func TestValidateTokenFresh(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByToken", mock.Anything, "tok-1").Return(&entity.LeadRecord{
		Email:         "nobody@example.com",
		CreatedAt:     time.Now().Add(-time.Hour),
		DownloadCount: 0,
		Token:         "tok-1",
	}, nil)

	uc := NewValidateTokenUseCase(mockRepo)

	output, err := uc.Execute(context.Background(), "tok-1")

	assert.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, 0, output.DownloadCount)
	assert.Equal(t, "nobody@example.com", output.Email)
}

func TestValidateTokenMissing(t *testing.T) {
	uc := NewValidateTokenUseCase(new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), "")

	assert.Error(t, err)
	assert.Equal(t, CodeTokenRequired, err.(*DomainError).Code)
}

func TestValidateTokenNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByToken", mock.Anything, "ghost").Return(nil, entity.ErrRecordNotFound)

	uc := NewValidateTokenUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), "ghost")

	assert.Error(t, err)
	assert.Equal(t, CodeTokenNotFound, err.(*DomainError).Code)
}

func TestValidateTokenExpiry(t *testing.T) {
	cases := []struct {
		name    string
		age     time.Duration
		expired bool
	}{
		{"just inside the window", entity.TokenTTL - time.Hour, false},
		{"just past the window", entity.TokenTTL + time.Hour, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockLeadRepository)
			mockRepo.On("FindByToken", mock.Anything, "tok-1").Return(&entity.LeadRecord{
				Email:     "nobody@example.com",
				CreatedAt: time.Now().Add(-tc.age),
				Token:     "tok-1",
			}, nil)

			uc := NewValidateTokenUseCase(mockRepo)
			output, err := uc.Execute(context.Background(), "tok-1")

			if tc.expired {
				assert.Error(t, err)
				assert.Equal(t, CodeTokenExpired, err.(*DomainError).Code)
			} else {
				assert.NoError(t, err)
				assert.True(t, output.Valid)
			}
		})
	}
}

func TestValidateTokenStoreFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByToken", mock.Anything, "tok-1").Return(nil, assert.AnError)

	uc := NewValidateTokenUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), "tok-1")

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}
