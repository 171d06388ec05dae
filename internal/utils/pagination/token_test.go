package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 14, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(entryDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, entryDate, decodedDate)
	assert.Equal(t, createdAt, decodedCreatedAt)

	zeroTime := time.Time{}
	decodedZeroDate, decodedZeroTime, err := DecodeToken(EncodeToken(zeroTime, zeroTime))
	assert.NoError(t, err)
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)

	now := time.Now().UTC()
	decodedNowDate, decodedNowTime, err := DecodeToken(EncodeToken(now, now))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNowDate))
	assert.True(t, now.Equal(decodedNowTime))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// "2023-05-15T00:00:00Z" without a separator
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// "notadate|2023-05-15T14:30:45.123456789Z"
	_, _, err = DecodeToken("bm90YWRhdGV8MjAyMy0wNS0xNVQxNDozMDo0NS4xMjM0NTY3ODla")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-5))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestSlice(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	items := []time.Time{day(5), day(4), day(3), day(2), day(1)}
	keys := func(d time.Time) (time.Time, time.Time) { return d, d }

	page, next, err := Slice(items, keys, 2, nil)
	assert.NoError(t, err)
	assert.Equal(t, []time.Time{day(5), day(4)}, page)
	if assert.NotNil(t, next) {
		page, next, err = Slice(items, keys, 2, next)
		assert.NoError(t, err)
		assert.Equal(t, []time.Time{day(3), day(2)}, page)
	}
	if assert.NotNil(t, next) {
		page, next, err = Slice(items, keys, 2, next)
		assert.NoError(t, err)
		assert.Equal(t, []time.Time{day(1)}, page)
		assert.Nil(t, next)
	}

	bad := "%%%"
	_, _, err = Slice(items, keys, 2, &bad)
	assert.Error(t, err)
}
