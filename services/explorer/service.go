package explorer

import (
	"context"
	"errors"

	"graphsense-dashboard/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go
type Service interface {
	Statistics(ctx context.Context) (storage.Statistics, error)

	AddressPage(ctx context.Context, currency storage.Currency, address string) (*storage.Address, error)
	TransactionPage(ctx context.Context, currency storage.Currency, hash string) (*storage.Transaction, error)
	BlockPage(ctx context.Context, currency storage.Currency, heightOrHash string) (*storage.Block, error)
	ClusterPage(ctx context.Context, currency storage.Currency, id string) (*ClusterPage, error)

	Suggestions(ctx context.Context, currency storage.Currency, fragment string, limit int) (*storage.SearchResult, error)
}

type ClusterPage struct {
	Cluster *storage.Cluster
	Tags    []storage.Tag
}

type service struct {
	storage storage.Client
	logger  *zap.SugaredLogger
}

func NewService(storageClient storage.Client, logger *zap.SugaredLogger) (Service, error) {
	if storageClient == nil {
		return nil, errors.New("[explorer_service] invalid storage client")
	}
	if logger == nil {
		return nil, errors.New("[explorer_service] invalid logger")
	}

	return &service{storage: storageClient, logger: logger}, nil
}

func (s *service) Statistics(ctx context.Context) (storage.Statistics, error) {
	return s.storage.Statistics(ctx)
}

// AddressPage fetches the address with its tags and cluster. The four backend calls are
// independent and run concurrently; an unknown address fails the whole page.
func (s *service) AddressPage(ctx context.Context, currency storage.Currency, address string) (*storage.Address, error) {
	var (
		res      *storage.Address
		explicit []storage.Tag
		implicit []storage.Tag
		cluster  *storage.Cluster
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res, err = s.storage.Address(gctx, currency, address)
		return err
	})
	g.Go(func() (err error) {
		explicit, err = s.storage.ExplicitTags(gctx, currency, address)
		return err
	})
	g.Go(func() (err error) {
		implicit, err = s.storage.ImplicitTags(gctx, currency, address)
		return err
	})
	g.Go(func() error {
		c, err := s.storage.AddressCluster(gctx, currency, address)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		cluster = c
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Tags = &storage.AddressTags{
		Explicit: nonNil(explicit),
		Implicit: nonNil(implicit),
	}
	res.Cluster = cluster

	s.logger.Debugw("address page fetched", "currency", currency, "address", address,
		"explicit_tags", len(explicit), "implicit_tags", len(implicit))

	return res, nil
}

func (s *service) TransactionPage(ctx context.Context, currency storage.Currency, hash string) (*storage.Transaction, error) {
	return s.storage.Transaction(ctx, currency, hash)
}

func (s *service) BlockPage(ctx context.Context, currency storage.Currency, heightOrHash string) (*storage.Block, error) {
	return s.storage.Block(ctx, currency, heightOrHash)
}

// ClusterPage fetches the cluster and its tags concurrently.
func (s *service) ClusterPage(ctx context.Context, currency storage.Currency, id string) (*ClusterPage, error) {
	var page ClusterPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Cluster, err = s.storage.Cluster(gctx, currency, id)
		return err
	})
	g.Go(func() (err error) {
		page.Tags, err = s.storage.ClusterTags(gctx, currency, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	page.Tags = nonNil(page.Tags)

	return &page, nil
}

func (s *service) Suggestions(ctx context.Context, currency storage.Currency, fragment string, limit int) (*storage.SearchResult, error) {
	return s.storage.QueryTermSuggestions(ctx, currency, fragment, limit)
}

func nonNil(tags []storage.Tag) []storage.Tag {
	if tags == nil {
		return []storage.Tag{}
	}
	return tags
}
