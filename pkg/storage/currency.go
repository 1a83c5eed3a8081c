package storage

import (
	"fmt"
	"regexp"
	"strings"
)

var currencyPattern = regexp.MustCompile(`^[a-z]{2,8}$`)

// Currency is a validated backend keyspace such as "btc". Only values produced by
// ParseCurrency, or the empty currency for keyspace-less resources, reach the URL builder.
type Currency string

// ParseCurrency lowercases raw and checks it against the allowed keyspaces. An empty
// allowed list accepts any well-formed code.
func ParseCurrency(raw string, allowed []string) (Currency, error) {
	c := strings.ToLower(strings.TrimSpace(raw))
	if !currencyPattern.MatchString(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}

	if len(allowed) == 0 {
		return Currency(c), nil
	}
	for _, a := range allowed {
		if strings.EqualFold(a, c) {
			return Currency(c), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
}

func (c Currency) String() string {
	return string(c)
}

// Upper is the ticker form used in views and tagpacks.
func (c Currency) Upper() string {
	return strings.ToUpper(string(c))
}

// Direction selects which neighbours an egonet query returns.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
	DirectionAll Direction = "all"
)

// ParseDirection defaults to DirectionAll when raw is empty.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case "":
		return DirectionAll, nil
	case DirectionIn, DirectionOut, DirectionAll:
		return Direction(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, raw)
}
