package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// MemGateway is an in-memory Gateway for tests. It honors the same
// contracts as the SQL repository: generated ids, nil-for-absent, and
// descending time_posted_epoch ordering on lists. Setting Err makes
// every call fail with that error.
type MemGateway struct {
	mu            sync.Mutex
	accounts      map[int]models.Account
	messages      map[int]models.Message
	nextAccountID int
	nextMessageID int

	Err error
}

func NewMemGateway() *MemGateway {
	return &MemGateway{
		accounts:      make(map[int]models.Account),
		messages:      make(map[int]models.Message),
		nextAccountID: 1,
		nextMessageID: 1,
	}
}

func (g *MemGateway) AccountExists(_ context.Context, username string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return false, g.Err
	}
	for _, acc := range g.accounts {
		if acc.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (g *MemGateway) CreateAccount(_ context.Context, acc models.Account) (*models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	acc.AccountID = g.nextAccountID
	g.nextAccountID++
	g.accounts[acc.AccountID] = acc
	return &acc, nil
}

func (g *MemGateway) FindAccountByCredentials(_ context.Context, username, password string) (*models.Account, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	for _, acc := range g.accounts {
		if acc.Username == username && acc.Password == password {
			found := acc
			return &found, nil
		}
	}
	return nil, nil
}

func (g *MemGateway) AccountIDExists(_ context.Context, id int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return false, g.Err
	}
	_, ok := g.accounts[id]
	return ok, nil
}

func (g *MemGateway) CreateMessage(_ context.Context, msg models.Message) (*models.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	msg.MessageID = g.nextMessageID
	g.nextMessageID++
	g.messages[msg.MessageID] = msg
	return &msg, nil
}

func (g *MemGateway) ListAllMessages(_ context.Context) ([]models.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	return g.collect(func(models.Message) bool { return true }), nil
}

func (g *MemGateway) GetMessageByID(_ context.Context, id int) (*models.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	msg, ok := g.messages[id]
	if !ok {
		return nil, nil
	}
	return &msg, nil
}

func (g *MemGateway) DeleteMessageByID(_ context.Context, id int) (*models.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	msg, ok := g.messages[id]
	if !ok {
		return nil, nil
	}
	delete(g.messages, id)
	return &msg, nil
}

func (g *MemGateway) ListMessagesByUser(_ context.Context, userID int) ([]models.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	return g.collect(func(m models.Message) bool { return m.PostedBy == userID }), nil
}

func (g *MemGateway) UpdateMessage(_ context.Context, msg models.Message) (*models.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	if _, ok := g.messages[msg.MessageID]; !ok {
		return nil, fmt.Errorf("update message: %w: no rows affected", repository.ErrStorage)
	}
	g.messages[msg.MessageID] = msg
	updated := msg
	return &updated, nil
}

func (g *MemGateway) collect(keep func(models.Message) bool) []models.Message {
	var out []models.Message
	for _, m := range g.messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TimePostedEpoch > out[j].TimePostedEpoch
	})
	return out
}
