package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punch(day string, clock string, kind Kind) Record {
	d, _ := time.Parse("2006-01-02", day)
	t, _ := time.Parse("15:04", clock)
	return Record{UserID: "u1", Date: d, Time: t, Kind: kind}
}

func TestSummarize(t *testing.T) {
	records := []Record{
		punch("2025-03-10", "08:00", KindCheckIn),
		punch("2025-03-10", "17:30", KindCheckOut),
		punch("2025-03-11", "08:15", KindCheckIn),
		punch("2025-03-12", "18:00", KindCheckOut),
	}

	days := Summarize(records)
	require.Len(t, days, 3)

	assert.Equal(t, "2025-03-10", days[0].Date.Format("2006-01-02"))
	require.NotNil(t, days[0].WorkedMinutes)
	assert.Equal(t, 570, *days[0].WorkedMinutes)

	// Check-in without check-out
	assert.NotNil(t, days[1].CheckIn)
	assert.Nil(t, days[1].CheckOut)
	assert.Nil(t, days[1].WorkedMinutes)

	// Check-out without check-in
	assert.Nil(t, days[2].CheckIn)
	assert.NotNil(t, days[2].CheckOut)
	assert.Nil(t, days[2].WorkedMinutes)
}

func TestSummarize_CheckOutBeforeCheckIn(t *testing.T) {
	records := []Record{
		punch("2025-03-10", "17:00", KindCheckIn),
		punch("2025-03-10", "08:00", KindCheckOut),
	}
	days := Summarize(records)
	require.Len(t, days, 1)
	assert.Nil(t, days[0].WorkedMinutes)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
