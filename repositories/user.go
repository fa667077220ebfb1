package repositories

import (
	"fmt"
	"strings"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// badgerUserRepository is bound to a single transaction; the transaction
// manager vends a fresh instance per unit of work.
type badgerUserRepository struct {
	txn *badger.Txn
}

func (r badgerUserRepository) CreateUser(user domain.User) error {
	if _, err := r.txn.Get(usernameKey(user.Username)); err == nil {
		return errors.ErrUserAlreadyExists
	} else if !isNotFound(err) {
		return err
	}

	record := userRecord{ID: user.ID, Username: user.Username, PasswordHash: user.PasswordHash}
	if err := setJSON(r.txn, userKey(user.ID), record); err != nil {
		return err
	}
	return r.txn.Set(usernameKey(user.Username), []byte(user.ID.String()))
}

func (r badgerUserRepository) GetUserByID(id uuid.UUID) (domain.User, error) {
	var record userRecord
	if err := getJSON(r.txn, userKey(id), &record); err != nil {
		if isNotFound(err) {
			return domain.User{}, errors.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return record.toDomain(), nil
}

func (r badgerUserRepository) GetUserByUsername(username string) (domain.User, error) {
	raw, err := getString(r.txn, usernameKey(username))
	if err != nil {
		if isNotFound(err) {
			return domain.User{}, errors.ErrUserNotFound
		}
		return domain.User{}, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.User{}, fmt.Errorf("corrupt username index for %q: %w", username, err)
	}
	return r.GetUserByID(id)
}

// DeleteUser cascades to the user's tokens and outstanding invitations.
// Everything happens inside the surrounding unit of work.
func (r badgerUserRepository) DeleteUser(id uuid.UUID) error {
	user, err := r.GetUserByID(id)
	if err != nil {
		return err
	}

	tokens, err := r.TokensByUser(id)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if err := r.DeleteToken(t.Token); err != nil {
			return err
		}
	}

	if err := deletePrefix(r.txn, userInvitationPrefix(id)); err != nil {
		return err
	}

	if err := r.txn.Delete(usernameKey(user.Username)); err != nil {
		return err
	}
	return r.txn.Delete(userKey(id))
}

func (r badgerUserRepository) PutUserInvitation(digest string, inv domain.UserInvitation) error {
	record := userInvitationRecord{InviterID: inv.InviterID, Code: inv.Code, ExpiresAt: inv.ExpiresAt}
	return setJSON(r.txn, userInvitationKey(inv.InviterID, digest), record)
}

func (r badgerUserRepository) GetUserInvitation(inviterID uuid.UUID, digest string) (domain.UserInvitation, error) {
	var record userInvitationRecord
	if err := getJSON(r.txn, userInvitationKey(inviterID, digest), &record); err != nil {
		if isNotFound(err) {
			return domain.UserInvitation{}, errors.ErrInvitationCodeInvalid
		}
		return domain.UserInvitation{}, err
	}
	return domain.UserInvitation{InviterID: record.InviterID, Code: record.Code, ExpiresAt: record.ExpiresAt}, nil
}

func (r badgerUserRepository) DeleteUserInvitation(inviterID uuid.UUID, digest string) error {
	return r.txn.Delete(userInvitationKey(inviterID, digest))
}

func (r badgerUserRepository) PutToken(token domain.UserToken) error {
	record := tokenRecord{UserID: token.UserID, Token: token.Token, CreatedAt: token.CreatedAt, ExpiresAt: token.ExpiresAt}
	if err := setJSON(r.txn, tokenKey(token.Token), record); err != nil {
		return err
	}
	return r.txn.Set(tokenIndexKey(token.UserID, token.CreatedAt, token.Token), nil)
}

func (r badgerUserRepository) GetToken(token string) (domain.UserToken, error) {
	var record tokenRecord
	if err := getJSON(r.txn, tokenKey(token), &record); err != nil {
		if isNotFound(err) {
			return domain.UserToken{}, errors.ErrTokenNotFound
		}
		return domain.UserToken{}, err
	}
	return record.toDomain(), nil
}

func (r badgerUserRepository) DeleteToken(token string) error {
	var record tokenRecord
	err := getJSON(r.txn, tokenKey(token), &record)
	if isNotFound(err) {
		// Idempotent: deleting an absent token is not an error.
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.txn.Delete(tokenIndexKey(record.UserID, record.CreatedAt, record.Token)); err != nil {
		return err
	}
	return r.txn.Delete(tokenKey(token))
}

// TokensByUser scans the per-user index, whose keys sort by padded creation
// time then token bytes. The resulting order is the eviction order.
func (r badgerUserRepository) TokensByUser(userID uuid.UUID) ([]domain.UserToken, error) {
	prefix := tokenIndexPrefix(userID)
	var tokens []domain.UserToken

	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := r.txn.NewIterator(options)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		key := string(it.Item().Key())
		// tokenidx:{user}:{created}:{token} - the token starts after the
		// third separator.
		raw := key[len(prefix):]
		sep := strings.IndexByte(raw, ':')
		if sep < 0 {
			return nil, fmt.Errorf("corrupt token index key %q", key)
		}
		token, err := r.GetToken(raw[sep+1:])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func deletePrefix(txn *badger.Txn, prefix []byte) error {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
