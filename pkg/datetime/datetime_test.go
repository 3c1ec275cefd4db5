package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/pkg/datetime"
)

func TestParseInstant_ISOAndLegacyAgree(t *testing.T) {
	// Одинаковый настенный момент в обеих кодировках должен давать равные instant'ы
	iso, err := datetime.ParseInstant("2025-11-22T15:00:00+07:00")
	require.NoError(t, err)
	require.NotNil(t, iso)

	legacy, err := datetime.ParseInstant("15:00:00 22/11/2025")
	require.NoError(t, err)
	require.NotNil(t, legacy)

	assert.True(t, iso.Equal(*legacy), "iso=%v legacy=%v", iso, legacy)
}

func TestParseInstant_ISOOffsetHonored(t *testing.T) {
	got, err := datetime.ParseInstant("2025-11-22T15:00:00+02:00")
	require.NoError(t, err)
	require.NotNil(t, got)

	want := time.Date(2025, 11, 22, 13, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want))
}

func TestParseInstantIn_LegacyUsesGivenLocation(t *testing.T) {
	loc := datetime.FixedOffset(3)

	got, err := datetime.ParseInstantIn("09:30:00 01/02/2025", loc)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Календарные поля берутся как есть, dd/MM/yyyy: 1 февраля
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, offset := got.Zone()
	assert.Equal(t, 3*3600, offset)
}

func TestParseInstant_EmptyIsAbsentNotError(t *testing.T) {
	for _, s := range []string{"", "   "} {
		got, err := datetime.ParseInstant(s)
		assert.NoError(t, err)
		assert.Nil(t, got, "input %q must parse as absent", s)
	}
}

func TestParseInstant_Malformed(t *testing.T) {
	cases := []string{
		"15:00:00",             // только одна часть
		"99:00:00 22/11/2025",  // невалидный час
		"15:00:00 40/11/2025",  // невалидный день
		"15:00:00 22-11-2025",  // неверный разделитель даты
		"not-a-date",           // мусор
		"2025-11-22T25:00:00Z", // невалидный ISO
	}

	for _, s := range cases {
		got, err := datetime.ParseInstant(s)
		assert.ErrorIs(t, err, datetime.ErrMalformed, "input %q", s)
		assert.Nil(t, got)
	}
}
