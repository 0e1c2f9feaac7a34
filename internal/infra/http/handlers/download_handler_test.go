package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kupenya/landPage/internal/entity"
	"github.com/Kupenya/landPage/internal/usecase"
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

func newRouter(repo entity.LeadRepositoryInterface, assets usecase.EbookProvider) *chi.Mux {
	handler := NewDownloadHandler(
		usecase.NewValidateTokenUseCase(repo),
		usecase.NewTrackDownloadUseCase(repo),
		usecase.NewDownloadEbookUseCase(repo, assets),
	)

	r := chi.NewRouter()
	r.Get("/api/validate-download", handler.Validate)
	r.Post("/api/track-download", handler.Track)
	r.Post("/api/download-ebook", handler.Download)
	return r
}

func freshRecord(token string) *entity.LeadRecord {
	return &entity.LeadRecord{
		Email:         "nobody@example.com",
		CreatedAt:     time.Now().Add(-time.Hour),
		DownloadCount: 0,
		Token:         token,
	}
}

func TestValidateFreshToken(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByToken", mock.Anything, "tok-1").Return(freshRecord("tok-1"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/validate-download?token=tok-1", nil)
	newRouter(repo, new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.ValidateTokenOutput
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Valid)
	assert.Equal(t, 0, response.DownloadCount)
	assert.Equal(t, "nobody@example.com", response.Email)
}

func TestValidateMissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/validate-download", nil)
	newRouter(new(MockLeadRepository), new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, false, body["valid"])
}

func TestValidateUnknownToken(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByToken", mock.Anything, "ghost").Return(nil, entity.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/validate-download?token=ghost", nil)
	newRouter(repo, new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateExpiredToken(t *testing.T) {
	repo := new(MockLeadRepository)
	record := freshRecord("tok-1")
	record.CreatedAt = time.Now().Add(-entity.TokenTTL - time.Minute)
	repo.On("FindByToken", mock.Anything, "tok-1").Return(record, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/validate-download?token=tok-1", nil)
	newRouter(repo, new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusGone, w.Code)

	var body map[string]any
	json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, true, body["expired"])
}

func TestTrackIncrements(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("IncrementDownloadCount", mock.Anything, "tok-1", mock.Anything).Return(2, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/track-download?token=tok-1", nil)
	newRouter(repo, new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.TrackDownloadOutput
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, 2, response.DownloadCount)
}

func TestTrackUnknownToken(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("IncrementDownloadCount", mock.Anything, "ghost", mock.Anything).Return(0, entity.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/track-download?token=ghost", nil)
	newRouter(repo, new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackMissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/track-download", nil)
	newRouter(new(MockLeadRepository), new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadStreamsPDF(t *testing.T) {
	repo := new(MockLeadRepository)
	assets := new(MockEbookProvider)
	repo.On("FindByToken", mock.Anything, "tok-1").Return(freshRecord("tok-1"), nil)
	assets.On("Fetch").Return([]byte("%PDF-1.4 fake"), nil)
	assets.On("Filename").Return("The-Story-That-Sells-Framework.pdf")

	body, _ := json.Marshal(map[string]string{"token": "tok-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/download-ebook", bytes.NewReader(body))
	newRouter(repo, assets).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="The-Story-That-Sells-Framework.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestDownloadExpiredToken(t *testing.T) {
	repo := new(MockLeadRepository)
	record := freshRecord("tok-1")
	record.CreatedAt = time.Now().Add(-entity.TokenTTL - time.Minute)
	repo.On("FindByToken", mock.Anything, "tok-1").Return(record, nil)

	body, _ := json.Marshal(map[string]string{"token": "tok-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/download-ebook", bytes.NewReader(body))
	newRouter(repo, new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestDownloadMissingToken(t *testing.T) {
	body := bytes.NewReader([]byte(`{}`))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/download-ebook", body)
	newRouter(new(MockLeadRepository), new(MockEbookProvider)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
