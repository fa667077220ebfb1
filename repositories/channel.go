package repositories

import (
	"encoding/json"
	"fmt"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type badgerChannelRepository struct {
	txn *badger.Txn
}

func (r badgerChannelRepository) CreateChannel(channel domain.Channel) error {
	meta := channel.Meta()
	if _, err := r.txn.Get(channelNameKey(meta.Name)); err == nil {
		return errors.ErrUnableToCreateChannel
	} else if !isNotFound(err) {
		return err
	}

	if err := setJSON(r.txn, channelKey(meta.ID), fromChannel(channel)); err != nil {
		return err
	}
	return r.txn.Set(channelNameKey(meta.Name), []byte(meta.ID.String()))
}

func (r badgerChannelRepository) GetChannelByID(id uuid.UUID) (domain.Channel, error) {
	var record channelRecord
	if err := getJSON(r.txn, channelKey(id), &record); err != nil {
		if isNotFound(err) {
			return nil, errors.ErrChannelNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r badgerChannelRepository) GetChannelByName(name domain.ChannelName) (domain.Channel, error) {
	raw, err := getString(r.txn, channelNameKey(name))
	if err != nil {
		if isNotFound(err) {
			return nil, errors.ErrChannelNotFound
		}
		return nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("corrupt channel name index for %q: %w", name, err)
	}
	return r.GetChannelByID(id)
}

func (r badgerChannelRepository) PutMembership(m domain.Membership) error {
	record := membershipRecord{ChannelID: m.ChannelID, UserID: m.UserID, Access: m.Access, JoinedAt: m.JoinedAt}
	return setJSON(r.txn, membershipKey(m.ChannelID, m.UserID), record)
}

func (r badgerChannelRepository) GetMembership(channelID, userID uuid.UUID) (*domain.Membership, error) {
	var record membershipRecord
	if err := getJSON(r.txn, membershipKey(channelID, userID), &record); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	m := record.toDomain()
	return &m, nil
}

// DeleteMembershipsForUser walks the whole membership relation and drops the
// rows belonging to userID. Memberships are keyed channel-first, so the user
// cascade has no index to lean on; the relation is small enough to scan.
func (r badgerChannelRepository) DeleteMembershipsForUser(userID uuid.UUID) error {
	it := r.txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefix := membershipPrefix()
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var record membershipRecord
		err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
		if err != nil {
			return err
		}
		if record.UserID == userID {
			keys = append(keys, item.KeyCopy(nil))
		}
	}
	for _, key := range keys {
		if err := r.txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// PutChannelInvitation replaces the channel's single invitation slot.
// The stale code index of the previous invitation is removed so a replaced
// code can no longer be redeemed.
func (r badgerChannelRepository) PutChannelInvitation(digest string, inv domain.ChannelInvitation) error {
	var previous channelInvitationRecord
	err := getJSON(r.txn, channelInvitationKey(inv.ChannelID), &previous)
	if err == nil && previous.Digest != digest {
		if err := r.txn.Delete(invitationCodeKey(previous.Digest)); err != nil {
			return err
		}
	} else if err != nil && !isNotFound(err) {
		return err
	}

	record := channelInvitationRecord{
		ChannelID: inv.ChannelID,
		Code:      inv.Code,
		Digest:    digest,
		Access:    inv.Access,
		MaxUses:   inv.MaxUses,
		ExpiresAt: inv.ExpiresAt,
	}
	if err := setJSON(r.txn, channelInvitationKey(inv.ChannelID), record); err != nil {
		return err
	}
	return r.txn.Set(invitationCodeKey(digest), []byte(inv.ChannelID.String()))
}

func (r badgerChannelRepository) GetChannelInvitation(channelID uuid.UUID) (domain.ChannelInvitation, string, error) {
	var record channelInvitationRecord
	if err := getJSON(r.txn, channelInvitationKey(channelID), &record); err != nil {
		if isNotFound(err) {
			return domain.ChannelInvitation{}, "", errors.ErrInvitationCodeInvalid
		}
		return domain.ChannelInvitation{}, "", err
	}
	return record.toDomain(), record.Digest, nil
}

func (r badgerChannelRepository) GetChannelInvitationByDigest(digest string) (domain.ChannelInvitation, error) {
	raw, err := getString(r.txn, invitationCodeKey(digest))
	if err != nil {
		if isNotFound(err) {
			return domain.ChannelInvitation{}, errors.ErrInvitationCodeInvalid
		}
		return domain.ChannelInvitation{}, err
	}
	channelID, err := uuid.Parse(raw)
	if err != nil {
		return domain.ChannelInvitation{}, fmt.Errorf("corrupt invitation code index: %w", err)
	}
	inv, _, err := r.GetChannelInvitation(channelID)
	return inv, err
}

func (r badgerChannelRepository) DeleteChannelInvitation(channelID uuid.UUID) error {
	var record channelInvitationRecord
	err := getJSON(r.txn, channelInvitationKey(channelID), &record)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.txn.Delete(invitationCodeKey(record.Digest)); err != nil {
		return err
	}
	return r.txn.Delete(channelInvitationKey(channelID))
}
