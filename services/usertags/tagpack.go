package usertags

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"graphsense-dashboard/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"
)

const tagpackDateLayout = "2006-01-02"

var ErrInvalidTagpack = errors.New("invalid tagpack")

// Tagpack is the YAML document analysts exchange. Header fields apply to every tag
// that leaves them empty.
type Tagpack struct {
	Title    string `yaml:"title"`
	Creator  string `yaml:"creator,omitempty"`
	Lastmod  string `yaml:"lastmod"`
	Currency string `yaml:"currency,omitempty"`
	Source   string `yaml:"source,omitempty"`
	Category string `yaml:"category,omitempty"`
	Abuse    string `yaml:"abuse,omitempty"`

	Tags []TagpackEntry `yaml:"tags"`
}

type TagpackEntry struct {
	Address  string `yaml:"address"`
	Label    string `yaml:"label"`
	Currency string `yaml:"currency,omitempty"`
	Source   string `yaml:"source,omitempty"`
	Category string `yaml:"category,omitempty"`
	Abuse    string `yaml:"abuse,omitempty"`
	Lastmod  string `yaml:"lastmod,omitempty"`
}

func EncodeTagpack(title, creator string, tags []*UserTag, now time.Time) ([]byte, error) {
	pack := Tagpack{
		Title:   title,
		Creator: creator,
		Lastmod: now.UTC().Format(tagpackDateLayout),
		Tags:    make([]TagpackEntry, 0, len(tags)),
	}
	for _, t := range tags {
		pack.Tags = append(pack.Tags, TagpackEntry{
			Address:  t.Address,
			Label:    t.Label,
			Currency: strings.ToUpper(t.Currency),
			Source:   t.Source,
			Category: t.Category,
			Abuse:    t.Abuse,
			Lastmod:  t.Lastmod.UTC().Format(tagpackDateLayout),
		})
	}

	return yaml.Marshal(&pack)
}

// DecodeTagpack parses a tagpack into user tags. Tags without a currency take
// fallback; every currency must be one of allowed.
func DecodeTagpack(data []byte, fallback storage.Currency, allowed []string, now time.Time) ([]*UserTag, error) {
	var pack Tagpack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTagpack, err)
	}
	if len(pack.Tags) == 0 {
		return nil, fmt.Errorf("%w: no tags", ErrInvalidTagpack)
	}

	out := make([]*UserTag, 0, len(pack.Tags))
	for i, e := range pack.Tags {
		e.Currency = firstNonEmpty(e.Currency, pack.Currency)
		e.Source = firstNonEmpty(e.Source, pack.Source)
		e.Category = firstNonEmpty(e.Category, pack.Category)
		e.Abuse = firstNonEmpty(e.Abuse, pack.Abuse)
		e.Lastmod = firstNonEmpty(e.Lastmod, pack.Lastmod)

		// imported tags obey the same rules as tags added one by one
		body := AddUserTagBody{Address: e.Address, Label: e.Label, Source: e.Source, Category: e.Category, Abuse: e.Abuse}
		if err := Validate(body); err != nil {
			return nil, fmt.Errorf("%w: tag %d: %v", ErrInvalidTagpack, i, err)
		}

		currency := fallback
		if e.Currency != "" {
			c, err := storage.ParseCurrency(e.Currency, allowed)
			if err != nil {
				return nil, fmt.Errorf("%w: tag %d: %v", ErrInvalidTagpack, i, err)
			}
			currency = c
		}

		out = append(out, &UserTag{
			ID:       primitive.NewObjectID(),
			Currency: currency.String(),
			Address:  e.Address,
			Label:    e.Label,
			Source:   e.Source,
			Category: e.Category,
			Abuse:    e.Abuse,
			Lastmod:  parseLastmod(e.Lastmod, now),
		})
	}

	return out, nil
}

func parseLastmod(raw string, now time.Time) time.Time {
	for _, layout := range []string{tagpackDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return now.UTC().Truncate(time.Millisecond)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
