package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/botaccount"
	"github.com/streamgate/streamgate/pkg/twitch"
)

// tokenRefreshSkew refreshes a bot token this long before its recorded
// expiry so in-flight requests never race the cutoff.
const tokenRefreshSkew = 120 * time.Second

// BotService manages bot accounts and keeps their user tokens fresh.
type BotService struct {
	client *ent.Client
	twitch *twitch.Client
}

// NewBotService creates a new BotService
func NewBotService(client *ent.Client, twitchClient *twitch.Client) *BotService {
	return &BotService{client: client, twitch: twitchClient}
}

// GetBot retrieves a bot account by id.
func (s *BotService) GetBot(ctx context.Context, id uuid.UUID) (*ent.BotAccount, error) {
	bot, err := s.client.BotAccount.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot account: %w", err)
	}
	return bot, nil
}

// GetBotByTwitchUserID retrieves a bot account by its Twitch user id.
func (s *BotService) GetBotByTwitchUserID(ctx context.Context, twitchUserID string) (*ent.BotAccount, error) {
	bot, err := s.client.BotAccount.Query().
		Where(botaccount.TwitchUserIDEQ(twitchUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot account by twitch user id: %w", err)
	}
	return bot, nil
}

// ListEnabledBots returns every bot that can currently hold subscriptions.
func (s *BotService) ListEnabledBots(ctx context.Context) ([]*ent.BotAccount, error) {
	bots, err := s.client.BotAccount.Query().
		Where(botaccount.EnabledEQ(true)).
		Order(ent.Asc(botaccount.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bot accounts: %w", err)
	}
	return bots, nil
}

// RegisterBot creates or updates a bot account identified by its Twitch user
// id, storing the user token obtained from the OAuth flow.
func (s *BotService) RegisterBot(httpCtx context.Context, twitchUserID, login, displayName, accessToken, refreshToken string, expiresAt time.Time) (*ent.BotAccount, error) {
	if twitchUserID == "" {
		return nil, NewValidationError("twitch_user_id", "must not be empty")
	}
	if login == "" {
		return nil, NewValidationError("twitch_login", "must not be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.BotAccount.Query().
		Where(botaccount.TwitchUserIDEQ(twitchUserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up bot account: %w", err)
	}
	if existing != nil {
		bot, err := existing.Update().
			SetTwitchLogin(login).
			SetDisplayName(displayName).
			SetAccessToken(accessToken).
			SetRefreshToken(refreshToken).
			SetTokenExpiresAt(expiresAt).
			SetEnabled(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update bot account: %w", err)
		}
		return bot, nil
	}

	bot, err := s.client.BotAccount.Create().
		SetTwitchUserID(twitchUserID).
		SetTwitchLogin(login).
		SetDisplayName(displayName).
		SetAccessToken(accessToken).
		SetRefreshToken(refreshToken).
		SetTokenExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot account: %w", err)
	}
	return bot, nil
}

// FreshUserToken returns a bot user access token valid for at least
// tokenRefreshSkew, refreshing and persisting it when necessary.
func (s *BotService) FreshUserToken(ctx context.Context, botID uuid.UUID) (string, error) {
	bot, err := s.GetBot(ctx, botID)
	if err != nil {
		return "", err
	}
	if !bot.Enabled {
		return "", fmt.Errorf("bot account %s is disabled", bot.TwitchUserID)
	}
	if bot.AccessToken == "" {
		return "", fmt.Errorf("bot account %s has no stored user token", bot.TwitchUserID)
	}
	if bot.TokenExpiresAt != nil && time.Until(*bot.TokenExpiresAt) > tokenRefreshSkew {
		return bot.AccessToken, nil
	}
	if bot.RefreshToken == "" {
		return "", fmt.Errorf("bot account %s token expired and no refresh token stored", bot.TwitchUserID)
	}

	refreshed, err := s.twitch.RefreshToken(ctx, bot.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token for bot %s: %w", bot.TwitchUserID, err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	expiresAt := refreshed.ExpiresAt
	newRefresh := refreshed.RefreshToken
	if newRefresh == "" {
		newRefresh = bot.RefreshToken
	}
	_, err = bot.Update().
		SetAccessToken(refreshed.AccessToken).
		SetRefreshToken(newRefresh).
		SetTokenExpiresAt(expiresAt).
		Save(writeCtx)
	if err != nil {
		return "", fmt.Errorf("failed to persist refreshed token for bot %s: %w", bot.TwitchUserID, err)
	}

	slog.Info("Refreshed bot user token",
		"twitch_user_id", bot.TwitchUserID,
		"expires_at", expiresAt)
	return refreshed.AccessToken, nil
}

// DisableOnRevoke disables the bot and clears its tokens after Twitch
// reports user.authorization.revoke. Unknown users are a no-op.
func (s *BotService) DisableOnRevoke(httpCtx context.Context, twitchUserID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.BotAccount.Update().
		Where(botaccount.TwitchUserIDEQ(twitchUserID)).
		SetEnabled(false).
		SetAccessToken("").
		SetRefreshToken("").
		ClearTokenExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to disable bot account: %w", err)
	}
	if n > 0 {
		slog.Warn("Disabled bot after authorization revoke", "twitch_user_id", twitchUserID)
	}
	return nil
}
