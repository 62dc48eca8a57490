// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/botaccount"
)

// BotAccount is the model entity for the BotAccount schema.
type BotAccount struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Numeric Twitch user id of the bot
	TwitchUserID string `json:"twitch_user_id,omitempty"`
	// TwitchLogin holds the value of the "twitch_login" field.
	TwitchLogin string `json:"twitch_login,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// AccessToken holds the value of the "access_token" field.
	AccessToken string `json:"-"`
	// RefreshToken holds the value of the "refresh_token" field.
	RefreshToken string `json:"-"`
	// TokenExpiresAt holds the value of the "token_expires_at" field.
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	// Cleared when Twitch reports user.authorization.revoke
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BotAccount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case botaccount.FieldEnabled:
			values[i] = new(sql.NullBool)
		case botaccount.FieldTwitchUserID, botaccount.FieldTwitchLogin, botaccount.FieldDisplayName, botaccount.FieldAccessToken, botaccount.FieldRefreshToken:
			values[i] = new(sql.NullString)
		case botaccount.FieldTokenExpiresAt, botaccount.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case botaccount.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BotAccount fields.
func (_m *BotAccount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case botaccount.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case botaccount.FieldTwitchUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twitch_user_id", values[i])
			} else if value.Valid {
				_m.TwitchUserID = value.String
			}
		case botaccount.FieldTwitchLogin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twitch_login", values[i])
			} else if value.Valid {
				_m.TwitchLogin = value.String
			}
		case botaccount.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case botaccount.FieldAccessToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token", values[i])
			} else if value.Valid {
				_m.AccessToken = value.String
			}
		case botaccount.FieldRefreshToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token", values[i])
			} else if value.Valid {
				_m.RefreshToken = value.String
			}
		case botaccount.FieldTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field token_expires_at", values[i])
			} else if value.Valid {
				_m.TokenExpiresAt = new(time.Time)
				*_m.TokenExpiresAt = value.Time
			}
		case botaccount.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case botaccount.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BotAccount.
// This includes values selected through modifiers, order, etc.
func (_m *BotAccount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BotAccount.
// Note that you need to call BotAccount.Unwrap() before calling this method if this BotAccount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BotAccount) Update() *BotAccountUpdateOne {
	return NewBotAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BotAccount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BotAccount) Unwrap() *BotAccount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BotAccount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BotAccount) String() string {
	var builder strings.Builder
	builder.WriteString("BotAccount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("twitch_user_id=")
	builder.WriteString(_m.TwitchUserID)
	builder.WriteString(", ")
	builder.WriteString("twitch_login=")
	builder.WriteString(_m.TwitchLogin)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("access_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("refresh_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.TokenExpiresAt; v != nil {
		builder.WriteString("token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BotAccounts is a parsable slice of BotAccount.
type BotAccounts []*BotAccount
