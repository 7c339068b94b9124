package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/troublescope/github2gram/config"
	"github.com/troublescope/github2gram/internal/entities"
	"github.com/troublescope/github2gram/internal/notifier"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sinkMock struct{ mock.Mock }

var _ notifier.Notifier = (*sinkMock)(nil)

func (m *sinkMock) Send(ctx context.Context, chatID string, msg entities.Message) error {
	args := m.Called(ctx, chatID, msg)
	return args.Error(0)
}

func (m *sinkMock) Probe(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newPipeline(sink notifier.Notifier, overrides map[string]string) *Usecase {
	cfg := &config.Config{}
	cfg.Webhook.Secret = "s3cret"
	cfg.Telegram.DefaultChatID = "-100"
	cfg.Routing.Overrides = overrides
	return New(zap.NewNop().Sugar(), sink, cfg, time.Second)
}

func delivery(eventType string, body []byte) entities.WebhookDelivery {
	return entities.WebhookDelivery{
		EventType:  eventType,
		Signature:  signBody("s3cret", body),
		DeliveryID: "d-1",
		Body:       body,
	}
}

func TestProcessWebhookInvalidSignature(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, nil)

	body := []byte(pushBody)
	_, err := uc.ProcessWebhook(context.Background(), entities.WebhookDelivery{
		EventType: "push",
		Signature: "sha256=deadbeef",
		Body:      body,
	})
	require.ErrorIs(t, err, entities.ErrInvalidSignature)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhookDeliversToDefaultChat(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, nil)

	sink.On("Send", mock.Anything, "-100", mock.MatchedBy(func(msg entities.Message) bool {
		return msg.Buttons != nil && msg.Text != ""
	})).Return(nil)

	res, err := uc.ProcessWebhook(context.Background(), delivery("push", []byte(pushBody)))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "Notification sent", res.Message)
	require.Equal(t, "push", res.EventType)
	sink.AssertExpectations(t)
}

func TestProcessWebhookRoutesOverride(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, map[string]string{"org_repo": "-200"})

	sink.On("Send", mock.Anything, "-200", mock.Anything).Return(nil)

	res, err := uc.ProcessWebhook(context.Background(), delivery("push", []byte(pushBody)))
	require.NoError(t, err)
	require.True(t, res.Success)
	sink.AssertExpectations(t)
}

func TestProcessWebhookFilteredTagPush(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, nil)

	body := []byte(`{
		"ref": "refs/tags/v1.0.0",
		"repository": {"full_name": "org/repo", "html_url": "u"},
		"pusher": {"name": "p"},
		"commits": []
	}`)

	res, err := uc.ProcessWebhook(context.Background(), delivery("push", body))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "Event processed (filtered out)", res.Message)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhookUnsupportedType(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, nil)

	body := []byte(`{"zen": "Keep it logically awesome."}`)
	res, err := uc.ProcessWebhook(context.Background(), delivery("ping", body))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, "Event processed (filtered out)", res.Message)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhookDeliveryFailure(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, nil)

	sink.On("Send", mock.Anything, "-100", mock.Anything).Return(errors.New("api down"))

	res, err := uc.ProcessWebhook(context.Background(), delivery("push", []byte(pushBody)))
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, "Failed to send notification", res.Message)
	sink.AssertExpectations(t)
}

func TestReadiness(t *testing.T) {
	sink := &sinkMock{}
	uc := newPipeline(sink, nil)

	sink.On("Probe", mock.Anything).Return(nil).Once()
	require.NoError(t, uc.Readiness(context.Background()))

	probeErr := errors.New("unauthorized")
	sink.On("Probe", mock.Anything).Return(probeErr).Once()
	require.ErrorIs(t, uc.Readiness(context.Background()), probeErr)
}
