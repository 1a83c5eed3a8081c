package storage

import (
	"context"
	"errors"
	"net/url"
	"strconv"
)

func resourcePath(kind, id string, sub ...string) string {
	p := kind + "/" + url.PathEscape(id)
	for _, s := range sub {
		p += "/" + s
	}
	return p
}

func limitParams(limit, fallback int) url.Values {
	if limit <= 0 {
		limit = fallback
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

// tags treats a missing tag list as an empty one.
func (c *client) tags(ctx context.Context, currency Currency, resource string) ([]Tag, error) {
	tags := []Tag{}
	if err := c.Fetch(ctx, resource, currency, nil, &tags); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []Tag{}, nil
		}
		return nil, err
	}
	if tags == nil {
		tags = []Tag{}
	}
	return tags, nil
}

func (c *client) Address(ctx context.Context, currency Currency, address string) (*Address, error) {
	var res Address
	if err := c.Fetch(ctx, resourcePath("address", address), currency, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) AddressTransactions(ctx context.Context, currency Currency, address string, limit int) ([]AddressTransaction, error) {
	var res []AddressTransaction
	if err := c.Fetch(ctx, resourcePath("address", address, "transactions"), currency, limitParams(limit, DefaultListLimit), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *client) ExplicitTags(ctx context.Context, currency Currency, address string) ([]Tag, error) {
	return c.tags(ctx, currency, resourcePath("address", address, "tags"))
}

func (c *client) ImplicitTags(ctx context.Context, currency Currency, address string) ([]Tag, error) {
	return c.tags(ctx, currency, resourcePath("address", address, "implicitTags"))
}

// AddressTags returns explicit and implicit tags in one list, see MergeTags.
func (c *client) AddressTags(ctx context.Context, currency Currency, address string) ([]Tag, error) {
	explicit, err := c.ExplicitTags(ctx, currency, address)
	if err != nil {
		return nil, err
	}
	implicit, err := c.ImplicitTags(ctx, currency, address)
	if err != nil {
		return nil, err
	}
	return MergeTags(explicit, implicit), nil
}

func (c *client) AddressCluster(ctx context.Context, currency Currency, address string) (*Cluster, error) {
	var res Cluster
	if err := c.Fetch(ctx, resourcePath("address", address, "cluster"), currency, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) AddressEgonet(ctx context.Context, currency Currency, address string, direction Direction, limit int) (*EgoNetwork, error) {
	return c.egonet(ctx, currency, "address", address, direction, limit, func() (Stats, error) {
		a, err := c.Address(ctx, currency, address)
		if err != nil {
			return Stats{}, err
		}
		return a.Stats, nil
	})
}

func (c *client) ClusterEgonet(ctx context.Context, currency Currency, id string, direction Direction, limit int) (*EgoNetwork, error) {
	return c.egonet(ctx, currency, "cluster", id, direction, limit, func() (Stats, error) {
		cl, err := c.Cluster(ctx, currency, id)
		if err != nil {
			return Stats{}, err
		}
		return cl.Stats, nil
	})
}

// egonet fetches the neighbourhood and, for "all" queries only, refreshes the root
// node from a separate stats call.
func (c *client) egonet(ctx context.Context, currency Currency, kind, id string, direction Direction, limit int, stats func() (Stats, error)) (*EgoNetwork, error) {
	if direction == "" {
		direction = DirectionAll
	}
	if limit <= 0 {
		limit = DefaultEgonetLimit
	}
	params := url.Values{
		"direction": {string(direction)},
		"limit":     {strconv.Itoa(limit)},
	}

	var res EgoNetwork
	if err := c.Fetch(ctx, resourcePath(kind, id, "egonet"), currency, params, &res); err != nil {
		return nil, err
	}

	if direction != DirectionAll {
		return &res, nil
	}

	s, err := stats()
	if err != nil {
		return nil, err
	}
	res = InjectEgoRootStats(res, direction, s)
	return &res, nil
}

func (c *client) Transaction(ctx context.Context, currency Currency, hash string) (*Transaction, error) {
	var res Transaction
	if err := c.Fetch(ctx, resourcePath("tx", hash), currency, nil, &res); err != nil {
		return nil, err
	}
	res = EnrichTransactionFee(res, res.Coinbase)
	return &res, nil
}

func (c *client) Block(ctx context.Context, currency Currency, heightOrHash string) (*Block, error) {
	var res Block
	if err := c.Fetch(ctx, resourcePath("block", heightOrHash), currency, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BlockTransactions enriches every transaction, treating those without inputs as coinbase.
func (c *client) BlockTransactions(ctx context.Context, currency Currency, height string) (*BlockTransactions, error) {
	var res BlockTransactions
	if err := c.Fetch(ctx, resourcePath("block", height, "transactions"), currency, nil, &res); err != nil {
		return nil, err
	}
	for i, tx := range res.Txs {
		res.Txs[i] = EnrichTransactionFee(tx, tx.NoInputs <= 0)
	}
	return &res, nil
}

func (c *client) Cluster(ctx context.Context, currency Currency, id string) (*Cluster, error) {
	var res Cluster
	if err := c.Fetch(ctx, resourcePath("cluster", id), currency, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) ClusterAddresses(ctx context.Context, currency Currency, id string, limit int) ([]Address, error) {
	var res []Address
	if err := c.Fetch(ctx, resourcePath("cluster", id, "addresses"), currency, limitParams(limit, DefaultListLimit), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *client) ClusterTags(ctx context.Context, currency Currency, id string) ([]Tag, error) {
	return c.tags(ctx, currency, resourcePath("cluster", id, "tags"))
}

func (c *client) QueryTermSuggestions(ctx context.Context, currency Currency, fragment string, limit int) (*SearchResult, error) {
	params := url.Values{
		"q":     {fragment},
		"limit": {strconv.Itoa(limit)},
	}

	var res SearchResult
	if err := c.Fetch(ctx, "search", currency, params, &res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &SearchResult{}, nil
		}
		return nil, err
	}
	return &res, nil
}

// Statistics lists per-currency totals; an empty answer yields an empty map.
func (c *client) Statistics(ctx context.Context) (Statistics, error) {
	res := Statistics{}
	if err := c.Fetch(ctx, "", "", nil, &res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Statistics{}, nil
		}
		return nil, err
	}
	return res, nil
}
