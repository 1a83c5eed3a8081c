package usertags

import (
	"context"
	"errors"
	"time"

	"graphsense-dashboard/pkg/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const tagpackTitle = "Tagpack exported from GraphSense Dashboard"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go
type Service interface {
	AddUserTag(ctx context.Context, currency storage.Currency, body AddUserTagBody) (*UserTag, error)
	ListUserTags(ctx context.Context, currency storage.Currency, address string, page int) ([]*UserTag, error)
	DeleteUserTag(ctx context.Context, currency storage.Currency, id string) (*UserTag, error)

	ExportTagpack(ctx context.Context, currency storage.Currency, creator string) ([]byte, error)
	ImportTagpack(ctx context.Context, currency storage.Currency, data []byte) (int, error)
}

type service struct {
	repository Repository
	currencies []string
	logger     *zap.SugaredLogger
	now        func() time.Time
}

func NewService(repository Repository, currencies []string, logger *zap.SugaredLogger) (Service, error) {
	if repository == nil {
		return nil, errors.New("[usertags_service] invalid repository")
	}
	if len(currencies) == 0 {
		return nil, errors.New("[usertags_service] no currencies configured")
	}
	if logger == nil {
		return nil, errors.New("[usertags_service] invalid logger")
	}

	return &service{repository: repository, currencies: currencies, logger: logger, now: time.Now}, nil
}

func (s *service) AddUserTag(ctx context.Context, currency storage.Currency, body AddUserTagBody) (*UserTag, error) {
	tag, err := NewUserTag(currency, body.Address, body.Label)
	if err != nil {
		return nil, err
	}
	tag.Source = body.Source
	tag.Category = body.Category
	tag.Abuse = body.Abuse

	if err := s.repository.CreateUserTags(ctx, []*UserTag{tag}); err != nil {
		return nil, err
	}

	s.logger.Infow("user tag added", "currency", tag.Currency, "address", tag.Address)
	return tag, nil
}

func (s *service) ListUserTags(ctx context.Context, currency storage.Currency, address string, page int) ([]*UserTag, error) {
	filters := bson.M{"currency": currency.String()}
	if address != "" {
		filters["address"] = address
	}
	return s.repository.GetUserTagList(ctx, filters, page)
}

// DeleteUserTag removes the tag and returns it as it was stored.
func (s *service) DeleteUserTag(ctx context.Context, currency storage.Currency, id string) (*UserTag, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	filters := bson.M{"_id": oid, "currency": currency.String()}

	tag, err := s.repository.GetUserTag(ctx, filters)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrUserTagNotFound
	}

	if err := s.repository.DeleteUserTag(ctx, filters); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *service) ExportTagpack(ctx context.Context, currency storage.Currency, creator string) ([]byte, error) {
	tags, err := s.repository.GetAllUserTags(ctx, bson.M{"currency": currency.String()})
	if err != nil {
		return nil, err
	}
	return EncodeTagpack(tagpackTitle, creator, tags, s.now())
}

func (s *service) ImportTagpack(ctx context.Context, currency storage.Currency, data []byte) (int, error) {
	tags, err := DecodeTagpack(data, currency, s.currencies, s.now())
	if err != nil {
		return 0, err
	}
	if err := s.repository.CreateUserTags(ctx, tags); err != nil {
		return 0, err
	}

	s.logger.Infow("tagpack imported", "currency", currency.String(), "tags", len(tags))
	return len(tags), nil
}
