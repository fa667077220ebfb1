package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"chat-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type badgerMessageRepository struct {
	txn   *badger.Txn
	log   *slog.Logger
	limit *int
}

// StoreMessage persists a message under "msg:{channel}:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero padding keeps chronological and lexicographical order
//     aligned, so history scans need no sorting.
//  2. The UUID suffix disambiguates two messages landing on the same
//     nanosecond.
func (m badgerMessageRepository) StoreMessage(message domain.Message) error {
	record := messageRecord{
		ID:         message.ID,
		ChannelID:  message.ChannelID,
		AuthorID:   message.Author.ID,
		AuthorName: message.Author.Username,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}
	return setJSON(m.txn, messageKey(message.ChannelID, message.CreatedAt, message.ID), record)
}

// GetMessages pages backwards through a channel's history. The cursor is the
// key suffix of the last message returned; passing it back resumes just
// before that message. Collection stops once the configured limit is reached.
func (m badgerMessageRepository) GetMessages(channelID uuid.UUID, cursor *string) ([]domain.Message, *string, error) {
	prefix := messagePrefix(channelID)
	prefixLen := len(prefix)

	options := badger.DefaultIteratorOptions
	options.Reverse = true
	it := m.txn.NewIterator(options)
	defer it.Close()

	var seekKey []byte
	switch cursor {
	case nil:
		// Seek past every possible timestamp, then walk backwards.
		seekKey = append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
	default:
		seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
	}

	it.Seek(seekKey)

	if cursor != nil && it.ValidForPrefix(prefix) {
		it.Next()
	}

	var messages []domain.Message
	var lastKey string
	truncated := false
	for ; it.ValidForPrefix(prefix); it.Next() {
		if m.limit != nil && len(messages) == *m.limit {
			m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limit))
			truncated = true
			break
		}
		item := it.Item()
		lastKey = string(item.Key()[prefixLen:])

		var record messageRecord
		err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, record.toDomain())
	}
	if !truncated {
		// History exhausted, nothing left to resume from.
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}
