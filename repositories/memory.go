package repositories

import (
	"fmt"
	"sort"
	"sync"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/google/uuid"
)

// MemoryTransactionManager is the ephemeral unit-of-work implementation used
// by tests. A single mutex serializes units of work, which is enough to make
// each one appear atomic to concurrent callers. Rollback is not supported:
// writes performed before a failure stay applied, and the state is discarded
// with the process on test teardown.
type MemoryTransactionManager struct {
	mu    sync.Mutex
	state *memoryState
	limit *int
}

type memoryState struct {
	users              map[uuid.UUID]userRecord
	usernames          map[string]uuid.UUID
	userInvitations    map[string]userInvitationRecord
	tokens             map[string]tokenRecord
	channels           map[uuid.UUID]channelRecord
	channelNames       map[string]uuid.UUID
	memberships        map[string]membershipRecord
	channelInvitations map[uuid.UUID]channelInvitationRecord
	invitationCodes    map[string]uuid.UUID
	messages           map[uuid.UUID][]messageRecord
}

func NewMemoryTransactionManager(limitMessages *int) *MemoryTransactionManager {
	return &MemoryTransactionManager{
		state: &memoryState{
			users:              make(map[uuid.UUID]userRecord),
			usernames:          make(map[string]uuid.UUID),
			userInvitations:    make(map[string]userInvitationRecord),
			tokens:             make(map[string]tokenRecord),
			channels:           make(map[uuid.UUID]channelRecord),
			channelNames:       make(map[string]uuid.UUID),
			memberships:        make(map[string]membershipRecord),
			channelInvitations: make(map[uuid.UUID]channelInvitationRecord),
			invitationCodes:    make(map[string]uuid.UUID),
			messages:           make(map[uuid.UUID][]messageRecord),
		},
		limit: limitMessages,
	}
}

func (m *MemoryTransactionManager) run(fn func(r Repos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	repos := Repos{
		Users:    memoryUserRepository{state: m.state},
		Channels: memoryChannelRepository{state: m.state},
		Messages: memoryMessageRepository{state: m.state, limit: m.limit},
	}
	return fn(repos)
}

func (m *MemoryTransactionManager) ReadWrite(fn func(r Repos) error) error { return m.run(fn) }
func (m *MemoryTransactionManager) ReadOnly(fn func(r Repos) error) error  { return m.run(fn) }

type memoryUserRepository struct {
	state *memoryState
}

func (r memoryUserRepository) CreateUser(user domain.User) error {
	if _, exists := r.state.usernames[user.Username]; exists {
		return errors.ErrUserAlreadyExists
	}
	r.state.users[user.ID] = userRecord{ID: user.ID, Username: user.Username, PasswordHash: user.PasswordHash}
	r.state.usernames[user.Username] = user.ID
	return nil
}

func (r memoryUserRepository) GetUserByID(id uuid.UUID) (domain.User, error) {
	record, ok := r.state.users[id]
	if !ok {
		return domain.User{}, errors.ErrUserNotFound
	}
	return record.toDomain(), nil
}

func (r memoryUserRepository) GetUserByUsername(username string) (domain.User, error) {
	id, ok := r.state.usernames[username]
	if !ok {
		return domain.User{}, errors.ErrUserNotFound
	}
	return r.GetUserByID(id)
}

func (r memoryUserRepository) DeleteUser(id uuid.UUID) error {
	user, err := r.GetUserByID(id)
	if err != nil {
		return err
	}
	for token, record := range r.state.tokens {
		if record.UserID == id {
			delete(r.state.tokens, token)
		}
	}
	for key, record := range r.state.userInvitations {
		if record.InviterID == id {
			delete(r.state.userInvitations, key)
		}
	}
	delete(r.state.usernames, user.Username)
	delete(r.state.users, id)
	return nil
}

func memoryInvitationKey(inviterID uuid.UUID, digest string) string {
	return fmt.Sprintf("%s:%s", inviterID, digest)
}

func (r memoryUserRepository) PutUserInvitation(digest string, inv domain.UserInvitation) error {
	r.state.userInvitations[memoryInvitationKey(inv.InviterID, digest)] = userInvitationRecord{
		InviterID: inv.InviterID, Code: inv.Code, ExpiresAt: inv.ExpiresAt,
	}
	return nil
}

func (r memoryUserRepository) GetUserInvitation(inviterID uuid.UUID, digest string) (domain.UserInvitation, error) {
	record, ok := r.state.userInvitations[memoryInvitationKey(inviterID, digest)]
	if !ok {
		return domain.UserInvitation{}, errors.ErrInvitationCodeInvalid
	}
	return domain.UserInvitation{InviterID: record.InviterID, Code: record.Code, ExpiresAt: record.ExpiresAt}, nil
}

func (r memoryUserRepository) DeleteUserInvitation(inviterID uuid.UUID, digest string) error {
	delete(r.state.userInvitations, memoryInvitationKey(inviterID, digest))
	return nil
}

func (r memoryUserRepository) PutToken(token domain.UserToken) error {
	r.state.tokens[token.Token] = tokenRecord{
		UserID: token.UserID, Token: token.Token, CreatedAt: token.CreatedAt, ExpiresAt: token.ExpiresAt,
	}
	return nil
}

func (r memoryUserRepository) GetToken(token string) (domain.UserToken, error) {
	record, ok := r.state.tokens[token]
	if !ok {
		return domain.UserToken{}, errors.ErrTokenNotFound
	}
	return record.toDomain(), nil
}

func (r memoryUserRepository) DeleteToken(token string) error {
	delete(r.state.tokens, token)
	return nil
}

func (r memoryUserRepository) TokensByUser(userID uuid.UUID) ([]domain.UserToken, error) {
	var tokens []domain.UserToken
	for _, record := range r.state.tokens {
		if record.UserID == userID {
			tokens = append(tokens, record.toDomain())
		}
	}
	// Same order as the Badger token index: creation time, then token bytes.
	sort.Slice(tokens, func(i, j int) bool {
		if !tokens[i].CreatedAt.Equal(tokens[j].CreatedAt) {
			return tokens[i].CreatedAt.Before(tokens[j].CreatedAt)
		}
		return tokens[i].Token < tokens[j].Token
	})
	return tokens, nil
}

type memoryChannelRepository struct {
	state *memoryState
}

func (r memoryChannelRepository) CreateChannel(channel domain.Channel) error {
	meta := channel.Meta()
	if _, exists := r.state.channelNames[meta.Name.String()]; exists {
		return errors.ErrUnableToCreateChannel
	}
	r.state.channels[meta.ID] = fromChannel(channel)
	r.state.channelNames[meta.Name.String()] = meta.ID
	return nil
}

func (r memoryChannelRepository) GetChannelByID(id uuid.UUID) (domain.Channel, error) {
	record, ok := r.state.channels[id]
	if !ok {
		return nil, errors.ErrChannelNotFound
	}
	return record.toDomain(), nil
}

func (r memoryChannelRepository) GetChannelByName(name domain.ChannelName) (domain.Channel, error) {
	id, ok := r.state.channelNames[name.String()]
	if !ok {
		return nil, errors.ErrChannelNotFound
	}
	return r.GetChannelByID(id)
}

func memoryMembershipKey(channelID, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", channelID, userID)
}

func (r memoryChannelRepository) PutMembership(m domain.Membership) error {
	r.state.memberships[memoryMembershipKey(m.ChannelID, m.UserID)] = membershipRecord{
		ChannelID: m.ChannelID, UserID: m.UserID, Access: m.Access, JoinedAt: m.JoinedAt,
	}
	return nil
}

func (r memoryChannelRepository) GetMembership(channelID, userID uuid.UUID) (*domain.Membership, error) {
	record, ok := r.state.memberships[memoryMembershipKey(channelID, userID)]
	if !ok {
		return nil, nil
	}
	m := record.toDomain()
	return &m, nil
}

func (r memoryChannelRepository) DeleteMembershipsForUser(userID uuid.UUID) error {
	for key, record := range r.state.memberships {
		if record.UserID == userID {
			delete(r.state.memberships, key)
		}
	}
	return nil
}

func (r memoryChannelRepository) PutChannelInvitation(digest string, inv domain.ChannelInvitation) error {
	if previous, ok := r.state.channelInvitations[inv.ChannelID]; ok && previous.Digest != digest {
		delete(r.state.invitationCodes, previous.Digest)
	}
	r.state.channelInvitations[inv.ChannelID] = channelInvitationRecord{
		ChannelID: inv.ChannelID, Code: inv.Code, Digest: digest,
		Access: inv.Access, MaxUses: inv.MaxUses, ExpiresAt: inv.ExpiresAt,
	}
	r.state.invitationCodes[digest] = inv.ChannelID
	return nil
}

func (r memoryChannelRepository) GetChannelInvitation(channelID uuid.UUID) (domain.ChannelInvitation, string, error) {
	record, ok := r.state.channelInvitations[channelID]
	if !ok {
		return domain.ChannelInvitation{}, "", errors.ErrInvitationCodeInvalid
	}
	return record.toDomain(), record.Digest, nil
}

func (r memoryChannelRepository) GetChannelInvitationByDigest(digest string) (domain.ChannelInvitation, error) {
	channelID, ok := r.state.invitationCodes[digest]
	if !ok {
		return domain.ChannelInvitation{}, errors.ErrInvitationCodeInvalid
	}
	inv, _, err := r.GetChannelInvitation(channelID)
	return inv, err
}

func (r memoryChannelRepository) DeleteChannelInvitation(channelID uuid.UUID) error {
	record, ok := r.state.channelInvitations[channelID]
	if !ok {
		return nil
	}
	delete(r.state.invitationCodes, record.Digest)
	delete(r.state.channelInvitations, channelID)
	return nil
}

type memoryMessageRepository struct {
	state *memoryState
	limit *int
}

func (r memoryMessageRepository) StoreMessage(message domain.Message) error {
	record := messageRecord{
		ID:         message.ID,
		ChannelID:  message.ChannelID,
		AuthorID:   message.Author.ID,
		AuthorName: message.Author.Username,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}
	list := r.state.messages[message.ChannelID]
	list = append(list, record)
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID.String() < list[j].ID.String()
	})
	r.state.messages[message.ChannelID] = list
	return nil
}

func memoryCursor(record messageRecord) string {
	return fmt.Sprintf("%019d:%s", record.CreatedAt.UnixNano(), record.ID)
}

// GetMessages mirrors the Badger cursor semantics: newest first, the cursor
// names the last record of the previous page.
func (r memoryMessageRepository) GetMessages(channelID uuid.UUID, cursor *string) ([]domain.Message, *string, error) {
	list := r.state.messages[channelID]

	start := len(list) - 1
	if cursor != nil {
		start = -1
		for i := len(list) - 1; i >= 0; i-- {
			if memoryCursor(list[i]) < *cursor {
				start = i
				break
			}
		}
	}

	var messages []domain.Message
	var lastKey string
	truncated := false
	for i := start; i >= 0; i-- {
		if r.limit != nil && len(messages) == *r.limit {
			truncated = true
			break
		}
		messages = append(messages, list[i].toDomain())
		lastKey = memoryCursor(list[i])
	}
	if !truncated {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}
