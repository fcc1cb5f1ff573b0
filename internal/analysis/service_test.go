package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chartwhisperer/internal/gateway/provider"
	"chartwhisperer/internal/types"
)

type MockVisionProvider struct {
	mock.Mock
}

func (m *MockVisionProvider) Analyze(ctx context.Context, req provider.VisionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func testLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), []byte("fake-png-payload")...)

func newTestService(t *testing.T, p provider.VisionProvider) *Service {
	t.Helper()
	svc, err := NewService(&Config{Provider: p, Logger: testLogger()})
	require.NoError(t, err)
	return svc
}

func TestAnalyze(t *testing.T) {
	mockProvider := new(MockVisionProvider)
	mockProvider.On("Analyze", mock.Anything, mock.MatchedBy(func(req provider.VisionRequest) bool {
		return strings.Contains(req.Prompt, "sweep the Asian low") &&
			strings.Contains(req.Prompt, NoSetupLiteral) &&
			strings.HasPrefix(req.ImageDataURL, "data:image/png;base64,")
	})).Return("PAIR: EURUSD\nBIAS: Bullish", nil)

	svc := newTestService(t, mockProvider)
	result, err := svc.Analyze(context.Background(), types.AnalysisRequest{
		Image:       pngBytes,
		ContentType: "image/png",
		Strategy:    "sweep the Asian low",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAIR: EURUSD\nBIAS: Bullish", result.Text)

	_, err = uuid.Parse(result.ID)
	assert.NoError(t, err, "analysis id must be a uuid")

	mockProvider.AssertExpectations(t)
}

func TestAnalyzeRejectsNonImage(t *testing.T) {
	mockProvider := new(MockVisionProvider)
	svc := newTestService(t, mockProvider)

	for _, ct := range []string{"application/pdf", "text/plain", ""} {
		t.Run("ct="+ct, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), types.AnalysisRequest{
				Image:       pngBytes,
				ContentType: ct,
				Strategy:    "anything",
			})
			require.Error(t, err)
			assert.Equal(t, types.KindInvalidInput, types.KindOf(err))
		})
	}
	mockProvider.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestAnalyzeRejectsBlankStrategy(t *testing.T) {
	mockProvider := new(MockVisionProvider)
	svc := newTestService(t, mockProvider)

	_, err := svc.Analyze(context.Background(), types.AnalysisRequest{
		Image:       pngBytes,
		ContentType: "image/png",
		Strategy:    "   ",
	})
	require.Error(t, err)
	assert.Equal(t, types.KindInvalidInput, types.KindOf(err))
	mockProvider.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	mockProvider := new(MockVisionProvider)
	mockProvider.On("Analyze", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	svc := newTestService(t, mockProvider)
	_, err := svc.Analyze(context.Background(), types.AnalysisRequest{
		Image:       pngBytes,
		ContentType: "image/png",
		Strategy:    "anything",
	})
	require.Error(t, err)
	assert.Equal(t, types.KindUpstreamFailure, types.KindOf(err))
	// raw provider detail stays wrapped for the server log, not the client message
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNewServiceRequiresDeps(t *testing.T) {
	_, err := NewService(&Config{Logger: testLogger()})
	assert.Error(t, err)

	_, err = NewService(&Config{Provider: new(MockVisionProvider)})
	assert.Error(t, err)
}
