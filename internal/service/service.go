package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"chirp/internal/models"
)

// MaxMessageLength is the longest message_text that may be persisted,
// counted in characters, not bytes, to match the VARCHAR(254) column.
const MaxMessageLength = 254

// Gateway is the persistence surface the service orchestrates. It is
// satisfied by *repository.Repository.
type Gateway interface {
	AccountExists(ctx context.Context, username string) (bool, error)
	CreateAccount(ctx context.Context, acc models.Account) (*models.Account, error)
	FindAccountByCredentials(ctx context.Context, username, password string) (*models.Account, error)
	AccountIDExists(ctx context.Context, id int) (bool, error)
	CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error)
	ListAllMessages(ctx context.Context) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
	DeleteMessageByID(ctx context.Context, id int) (*models.Message, error)
	ListMessagesByUser(ctx context.Context, userID int) ([]models.Message, error)
	UpdateMessage(ctx context.Context, msg models.Message) (*models.Message, error)
}

// Service enforces the business rules for accounts and messages and
// sequences gateway calls. Validation always runs before any write, so
// a rejected request leaves no partial state behind.
type Service struct {
	gw Gateway
}

func New(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Register creates a new account. Order matters: shape validation, then
// the uniqueness check, then the insert. The check-then-insert sequence
// is not transactional; the unique index on username backstops it and a
// racing duplicate surfaces as a storage failure.
func (s *Service) Register(ctx context.Context, acc models.Account) (*models.Account, error) {
	if strings.TrimSpace(acc.Username) == "" {
		return nil, fmt.Errorf("%w: username must not be blank", ErrInvalidInput)
	}
	if utf8.RuneCountInString(acc.Password) < 4 {
		return nil, fmt.Errorf("%w: password must be at least 4 characters", ErrInvalidInput)
	}
	exists, err := s.gw.AccountExists(ctx, acc.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrConflict, acc.Username)
	}
	return s.gw.CreateAccount(ctx, acc)
}

// Login returns the account matching the exact username/password pair.
// A miss gives ErrAuthenticationFailed without saying whether the
// username or the password was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Account, error) {
	acc, err := s.gw.FindAccountByCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAuthenticationFailed
	}
	return acc, nil
}

func (s *Service) CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error) {
	if err := validateText(msg.MessageText); err != nil {
		return nil, err
	}
	exists, err := s.gw.AccountIDExists(ctx, msg.PostedBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: account %d does not exist", ErrInvalidInput, msg.PostedBy)
	}
	return s.gw.CreateMessage(ctx, msg)
}

func (s *Service) ListAllMessages(ctx context.Context) ([]models.Message, error) {
	return s.gw.ListAllMessages(ctx)
}

func (s *Service) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	return s.gw.GetMessageByID(ctx, id)
}

func (s *Service) DeleteMessageByID(ctx context.Context, id int) (*models.Message, error) {
	return s.gw.DeleteMessageByID(ctx, id)
}

func (s *Service) ListMessagesForUser(ctx context.Context, userID int) ([]models.Message, error) {
	return s.gw.ListMessagesByUser(ctx, userID)
}

// UpdateMessage replaces the text of an existing message. The poster is
// re-checked even though no API can change it. The stored timestamp is
// re-sent as-is: an update changes the text only, it does not bump
// time_posted_epoch to now.
func (s *Service) UpdateMessage(ctx context.Context, id int, newText string) (*models.Message, error) {
	msg, err := s.gw.GetMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
	}
	if err := validateText(newText); err != nil {
		return nil, err
	}
	exists, err := s.gw.AccountIDExists(ctx, msg.PostedBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: account %d does not exist", ErrInvalidInput, msg.PostedBy)
	}
	msg.MessageText = newText
	return s.gw.UpdateMessage(ctx, *msg)
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: message text must not be blank", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return fmt.Errorf("%w: message text must be at most %d characters", ErrInvalidInput, MaxMessageLength)
	}
	return nil
}
