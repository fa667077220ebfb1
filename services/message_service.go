package services

import (
	"strings"
	"time"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"
	"chat-hub/repositories"

	"github.com/google/uuid"
)

type IMessageService interface {
	PostMessage(authorID, channelID uuid.UUID, content string) (domain.Message, error)
	GetMessages(userID, channelID uuid.UUID, cursor *string) ([]domain.Message, *string, error)
}

// MessageService posts and reads messages. Authorization state and message
// persistence are read and written against the same snapshot: one unit of
// work per operation.
type MessageService struct {
	tm       repositories.ITransactionManager
	notifier contract.INotifier
	now      func() time.Time
}

func NewMessageService(tm repositories.ITransactionManager, notifier contract.INotifier, now func() time.Time) IMessageService {
	return &MessageService{tm: tm, notifier: notifier, now: now}
}

// PostMessage persists the message only when the write policy allows it.
// Connected clients are notified after the commit, fire and forget: a full
// notification buffer never fails the post.
func (s *MessageService) PostMessage(authorID, channelID uuid.UUID, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrInvalidMessageInfo
	}

	var message domain.Message
	err := s.tm.ReadWrite(func(r repositories.Repos) error {
		channel, err := r.Channels.GetChannelByID(channelID)
		if err != nil {
			return err
		}
		author, err := r.Users.GetUserByID(authorID)
		if err != nil {
			return err
		}
		membership, err := r.Channels.GetMembership(channelID, authorID)
		if err != nil {
			return err
		}
		if err := domain.CanWrite(authorID, channel, membership); err != nil {
			return err
		}

		message = domain.Message{
			ID:        uuid.New(),
			ChannelID: channelID,
			Author:    author.Info(),
			Content:   content,
			CreatedAt: s.now(),
		}
		return r.Messages.StoreMessage(message)
	})
	if err != nil {
		return domain.Message{}, err
	}

	s.notifier.Publish(event.MessagePosted{
		ID:      message.ID,
		Channel: message.ChannelID,
		Author:  message.Author.Username,
		Content: message.Content,
		At:      message.CreatedAt,
	})
	return message, nil
}

// GetMessages pages backwards through the channel history, newest first,
// after checking the read policy against the same snapshot.
func (s *MessageService) GetMessages(userID, channelID uuid.UUID, cursor *string) ([]domain.Message, *string, error) {
	var (
		messages []domain.Message
		next     *string
	)
	err := s.tm.ReadOnly(func(r repositories.Repos) error {
		channel, err := r.Channels.GetChannelByID(channelID)
		if err != nil {
			return err
		}
		if _, err := r.Users.GetUserByID(userID); err != nil {
			return err
		}
		membership, err := r.Channels.GetMembership(channelID, userID)
		if err != nil {
			return err
		}
		if !domain.CanRead(userID, channel, membership) {
			return errors.ErrUserNotInChannel
		}

		messages, next, err = r.Messages.GetMessages(channelID, cursor)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return messages, next, nil
}
