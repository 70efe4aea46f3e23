package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chirp/internal/models"
)

// ErrStorage marks persistence-layer failures: constraint violations,
// zero-rows-affected anomalies, missing generated keys.
var ErrStorage = errors.New("storage failure")

// Repository issues parameterized SQL against the account and message
// tables and maps rows to domain records. It holds no business logic;
// callers own validation. Every method is a single round-trip except
// delete and update, which read-then-write by contract.
type Repository struct {
	DB *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) AccountExists(ctx context.Context, username string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM account WHERE username = ?", username).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("account exists: %w: %v", ErrStorage, err)
	}
	return n > 0, nil
}

func (r *Repository) CreateAccount(ctx context.Context, acc models.Account) (*models.Account, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO account (username, password) VALUES (?, ?)",
		acc.Username, acc.Password)
	if err != nil {
		return nil, fmt.Errorf("create account: %w: %v", ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("create account: %w: %v", ErrStorage, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("create account: %w: no rows affected", ErrStorage)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create account: %w: no generated id: %v", ErrStorage, err)
	}
	acc.AccountID = int(id)
	return &acc, nil
}

// FindAccountByCredentials does an exact username+password match. A nil
// result means no matching row; unknown-username and wrong-password are
// indistinguishable on purpose.
func (r *Repository) FindAccountByCredentials(ctx context.Context, username, password string) (*models.Account, error) {
	var acc models.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT account_id, username, password FROM account WHERE username = ? AND password = ?",
		username, password).Scan(&acc.AccountID, &acc.Username, &acc.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by credentials: %w: %v", ErrStorage, err)
	}
	return &acc, nil
}

func (r *Repository) AccountIDExists(ctx context.Context, id int) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM account WHERE account_id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("account id exists: %w: %v", ErrStorage, err)
	}
	return n > 0, nil
}

func (r *Repository) CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?)",
		msg.PostedBy, msg.MessageText, msg.TimePostedEpoch)
	if err != nil {
		return nil, fmt.Errorf("create message: %w: %v", ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("create message: %w: %v", ErrStorage, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("create message: %w: no rows affected", ErrStorage)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create message: %w: no generated id: %v", ErrStorage, err)
	}
	msg.MessageID = int(id)
	return &msg, nil
}

func (r *Repository) ListAllMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT message_id, posted_by, message_text, time_posted_epoch FROM message ORDER BY time_posted_epoch DESC")
	if err != nil {
		return nil, fmt.Errorf("list messages: %w: %v", ErrStorage, err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *Repository) GetMessageByID(ctx context.Context, id int) (*models.Message, error) {
	var msg models.Message
	err := r.DB.QueryRowContext(ctx,
		"SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE message_id = ?",
		id).Scan(&msg.MessageID, &msg.PostedBy, &msg.MessageText, &msg.TimePostedEpoch)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w: %v", ErrStorage, err)
	}
	return &msg, nil
}

// DeleteMessageByID reads the row first so it can be returned, then
// deletes it. Absent id is a no-op.
func (r *Repository) DeleteMessageByID(ctx context.Context, id int) (*models.Message, error) {
	msg, err := r.GetMessageByID(ctx, id)
	if err != nil || msg == nil {
		return nil, err
	}
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM message WHERE message_id = ?", id); err != nil {
		return nil, fmt.Errorf("delete message: %w: %v", ErrStorage, err)
	}
	return msg, nil
}

func (r *Repository) ListMessagesByUser(ctx context.Context, userID int) ([]models.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE posted_by = ? ORDER BY time_posted_epoch DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("list messages by user: %w: %v", ErrStorage, err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

// UpdateMessage writes message_text and time_posted_epoch by id and
// returns the freshly re-read row. Zero rows affected means the id does
// not exist and is reported as a storage failure.
func (r *Repository) UpdateMessage(ctx context.Context, msg models.Message) (*models.Message, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE message SET message_text = ?, time_posted_epoch = ? WHERE message_id = ?",
		msg.MessageText, msg.TimePostedEpoch, msg.MessageID)
	if err != nil {
		return nil, fmt.Errorf("update message: %w: %v", ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update message: %w: %v", ErrStorage, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("update message: %w: no rows affected", ErrStorage)
	}
	return r.GetMessageByID(ctx, msg.MessageID)
}

func collectMessages(rows *sql.Rows) ([]models.Message, error) {
	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.MessageID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			return nil, fmt.Errorf("scan message: %w: %v", ErrStorage, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w: %v", ErrStorage, err)
	}
	return messages, nil
}
