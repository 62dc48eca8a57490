package eventsub

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
)

func TestClassifyCreateFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing proper authorization",
			err:  &twitch.APIError{StatusCode: 403, Message: "subscription missing proper authorization"},
			want: CodeInsufficientPermissions,
		},
		{
			name: "missing scope",
			err:  &twitch.APIError{StatusCode: 401, Message: "missing scope: channel:read:polls"},
			want: CodeMissingScope,
		},
		{
			name: "unauthorized",
			err:  &twitch.APIError{StatusCode: 401, Message: "invalid access token"},
			want: CodeUnauthorized,
		},
		{
			name: "forbidden",
			err:  &twitch.APIError{StatusCode: 403, Message: "access denied"},
			want: CodeUnauthorized,
		},
		{
			name: "rate limited",
			err:  &twitch.APIError{StatusCode: 429, Message: "too many requests"},
			want: CodeTransient,
		},
		{
			name: "server error",
			err:  &twitch.APIError{StatusCode: 503, Message: "service unavailable"},
			want: CodeTransient,
		},
		{
			name: "network failure",
			err:  errors.New("dial tcp: connection refused"),
			want: CodeTransient,
		},
		{
			name: "plain bad request",
			err:  &twitch.APIError{StatusCode: 400, Message: "invalid transport"},
			want: CodeCreateFailed,
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCreateFailure(tt.err))
		})
	}
}

func TestErrorCooldown(t *testing.T) {
	cooldown := newErrorCooldown(time.Minute)
	now := time.Now()
	cooldown.now = func() time.Time { return now }

	service := uuid.New()
	otherService := uuid.New()
	key := services.InterestKey{BotAccountID: uuid.New(), EventType: "channel.follow", BroadcasterUserID: "12345"}

	assert.True(t, cooldown.Allow(service, key, CodeMissingScope))
	assert.False(t, cooldown.Allow(service, key, CodeMissingScope), "same composite is suppressed")

	// Different service, key or code each get their own window.
	assert.True(t, cooldown.Allow(otherService, key, CodeMissingScope))
	assert.True(t, cooldown.Allow(service, key, CodeUnauthorized))

	now = now.Add(61 * time.Second)
	assert.True(t, cooldown.Allow(service, key, CodeMissingScope), "window expired")
}

func TestErrorHint(t *testing.T) {
	for _, code := range []string{
		CodeInsufficientPermissions,
		CodeMissingScope,
		CodeUnauthorized,
		CodeRevoked,
		CodeUnsupportedUpstream,
		CodeCreateFailed,
	} {
		assert.NotEmpty(t, ErrorHint(code))
	}
}
