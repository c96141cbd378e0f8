package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/tagabukid-property/pkg/strings"
)

func TestParseTypedValue_Scalars(t *testing.T) {
	b, err := strings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := strings.ParseTypedValue[int64]("9351234567")
	require.NoError(t, err)
	assert.Equal(t, int64(9351234567), i)

	d, err := strings.ParseTypedValue[time.Duration]("30m")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, d)

	id := uuid.New()
	parsedID, err := strings.ParseTypedValue[uuid.UUID](id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsedID)
}

func TestParseTypedValue_Time(t *testing.T) {
	tm, err := strings.ParseTypedValue[time.Time]("2023-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2023, tm.Year())

	tm, err = strings.ParseTypedValue[time.Time]("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), tm.Unix())

	_, err = strings.ParseTypedValue[time.Time]("-1")
	assert.Error(t, err)
}

func TestParseTypedValue_InvalidValue_ReturnsError(t *testing.T) {
	_, err := strings.ParseTypedValue[int]("ten")
	assert.Error(t, err)

	_, err = strings.ParseTypedValue[uuid.UUID]("not-a-uuid")
	assert.Error(t, err)
}
