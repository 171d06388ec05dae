package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// DefaultLimit is the page size used when a listing does not ask for one.
const DefaultLimit = 20

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// EncodeToken builds the cursor of the last journal entry on a page from its
// accounting date and creation time. Listings run newest first on both keys.
func EncodeToken(entryDate time.Time, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", entryDate.Format(timeFormat), createdAt.Format(timeFormat))
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor produced by EncodeToken.
func DecodeToken(token string) (time.Time, time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return entryDate, createdAt, nil
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit], defaulting to DefaultLimit.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Slice returns the page of items that follows token, together with the token of
// the next page. Items must already be ordered newest first on the keys returned
// by keys; it is used by stores that cannot push the cursor into a query.
func Slice[T any](items []T, keys func(T) (time.Time, time.Time), limit int, token *string) ([]T, *string, error) {
	limit = NormalizeLimit(limit)
	start := 0
	if token != nil && *token != "" {
		afterDate, afterCreated, err := DecodeToken(*token)
		if err != nil {
			return nil, nil, err
		}
		start = len(items)
		for i, item := range items {
			date, created := keys(item)
			if date.Before(afterDate) || (date.Equal(afterDate) && created.Before(afterCreated)) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if end >= len(items) {
		return items[start:], nil, nil
	}
	date, created := keys(items[end-1])
	next := EncodeToken(date, created)
	return items[start:end], &next, nil
}
