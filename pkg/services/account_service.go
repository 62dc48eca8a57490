package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/serviceaccount"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
)

// AccountService manages downstream service accounts and their bot
// allow-lists.
type AccountService struct {
	client *ent.Client
}

// NewAccountService creates a new AccountService
func NewAccountService(client *ent.Client) *AccountService {
	return &AccountService{client: client}
}

// Authenticate verifies client credentials and returns the enabled service
// account they belong to. Every failure mode returns ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, clientID, clientSecret string) (*ent.ServiceAccount, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrInvalidCredentials
	}
	account, err := s.client.ServiceAccount.Query().
		Where(
			serviceaccount.ClientIDEQ(clientID),
			serviceaccount.EnabledEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up service account: %w", err)
	}
	if !VerifyClientSecret(clientSecret, account.ClientSecretHash) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// CreateServiceAccount registers a new service and returns its generated
// credentials. The plaintext secret is returned exactly once.
func (s *AccountService) CreateServiceAccount(httpCtx context.Context, name string) (*ent.ServiceAccount, string, error) {
	if name == "" {
		return nil, "", NewValidationError("name", "must not be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientID, clientSecret := GenerateClientCredentials()
	account, err := s.client.ServiceAccount.Create().
		SetName(name).
		SetClientID(clientID).
		SetClientSecretHash(HashClientSecret(clientSecret)).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create service account: %w", err)
	}
	return account, clientSecret, nil
}

// ListServiceAccounts returns all service accounts ordered by creation time.
func (s *AccountService) ListServiceAccounts(ctx context.Context) ([]*ent.ServiceAccount, error) {
	accounts, err := s.client.ServiceAccount.Query().
		Order(ent.Asc(serviceaccount.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service accounts: %w", err)
	}
	return accounts, nil
}

// CanUseBot reports whether a service may register interests against a bot.
// A service with no allow-list rows may use any bot; once any rows exist the
// list is exhaustive.
func (s *AccountService) CanUseBot(ctx context.Context, serviceAccountID, botAccountID uuid.UUID) (bool, error) {
	total, err := s.client.ServiceBotAccess.Query().
		Where(servicebotaccess.ServiceAccountIDEQ(serviceAccountID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count bot access rows: %w", err)
	}
	if total == 0 {
		return true, nil
	}
	allowed, err := s.client.ServiceBotAccess.Query().
		Where(
			servicebotaccess.ServiceAccountIDEQ(serviceAccountID),
			servicebotaccess.BotAccountIDEQ(botAccountID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check bot access: %w", err)
	}
	return allowed, nil
}

// GrantBotAccess adds a bot to a service's allow-list. Granting twice is a
// no-op.
func (s *AccountService) GrantBotAccess(httpCtx context.Context, serviceAccountID, botAccountID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ServiceBotAccess.Create().
		SetServiceAccountID(serviceAccountID).
		SetBotAccountID(botAccountID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to grant bot access: %w", err)
	}
	return nil
}
