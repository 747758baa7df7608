package planner

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"consultly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdayToken_Kinds(t *testing.T) {
	tests := []struct {
		in    string
		kind  TokenKind
		start time.Weekday
		end   time.Weekday
	}{
		{"Monday", TokenNamed, time.Monday, time.Monday},
		{"wed", TokenNamed, time.Wednesday, time.Wednesday},
		{"Fri.", TokenNamed, time.Friday, time.Friday},
		{" SAT ", TokenNamed, time.Saturday, time.Saturday},
		{"0", TokenNumeric, time.Sunday, time.Sunday},
		{"7", TokenNumeric, time.Sunday, time.Sunday},
		{"4", TokenNumeric, time.Thursday, time.Thursday},
		{"Mon-Fri", TokenRange, time.Monday, time.Friday},
		{"2-5", TokenRange, time.Tuesday, time.Friday},
		{"sat - 1", TokenRange, time.Saturday, time.Monday},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tok, ok := ParseWeekdayToken(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.kind, tok.Kind)
			assert.Equal(t, tt.start, tok.Start)
			assert.Equal(t, tt.end, tok.End)
		})
	}
}

func TestParseWeekdayToken_Rejects(t *testing.T) {
	for _, in := range []string{"", "funday", "8", "-1", "Mon-", "-Fri", "Mon-Xyz", "tues"} {
		_, ok := ParseWeekdayToken(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestNormalizeWeekdays_Ranges(t *testing.T) {
	assert.Equal(t,
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		NormalizeWeekdays([]string{"Mon-Fri"}).Days())

	assert.Equal(t,
		[]time.Weekday{time.Sunday, time.Monday, time.Saturday},
		NormalizeWeekdays([]string{"Sat-Mon"}).Days())

	assert.Equal(t, []time.Weekday{time.Wednesday}, NormalizeWeekdays([]string{"Wed-Wed"}).Days())
}

func TestNormalizeWeekdays_IdempotentOnCanonicalInput(t *testing.T) {
	canonical := []string{"0", "2", "4", "6"}
	first := NormalizeWeekdays(canonical)

	var again []string
	for _, d := range first.Days() {
		again = append(again, strconv.Itoa(int(d)))
	}
	assert.Equal(t, first, NormalizeWeekdays(again))
	assert.Equal(t, 4, first.Len())
}

func TestNormalizeWeekdays_MixedAndDuplicates(t *testing.T) {
	set := NormalizeWeekdays([]string{"Monday", "mon", "1", "7", "garbage", "Thu.", "5-6"})
	assert.Equal(t,
		[]time.Weekday{time.Sunday, time.Monday, time.Thursday, time.Friday, time.Saturday},
		set.Days())
}

func TestNormalizeWeekdays_EmptyFailsOpen(t *testing.T) {
	set := NormalizeWeekdays(nil)
	assert.True(t, set.IsEmpty())
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, set.Allows(d))
	}

	unknown := NormalizeWeekdays([]string{"someday", "99"})
	assert.True(t, unknown.IsEmpty())
}

func TestWeekdayList_DecodesMixedJSON(t *testing.T) {
	var avail models.ConsultantAvailability
	err := json.Unmarshal([]byte(`{"weeklyDays":["Mon-Wed", 5, "sat", true]}`), &avail)
	require.NoError(t, err)
	assert.Equal(t, models.WeekdayList{"Mon-Wed", "5", "sat"}, avail.WeeklyDays)

	set := NormalizeWeekdays(avail.WeeklyDays)
	assert.Equal(t,
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Friday, time.Saturday},
		set.Days())
}
