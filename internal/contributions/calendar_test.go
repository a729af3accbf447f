package contributions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForColor(t *testing.T) {
	tests := []struct {
		color string
		want  int
	}{
		{"#ebedf0", 0},
		{"#161b22", 0},
		{"#9BE9A8", 1},
		{"#0e4429", 1},
		{"#40c463", 2},
		{"#006d32", 2},
		{"#30a14e", 3},
		{"#26a641", 3},
		{"#216e39", 4},
		{"#39d353", 4},
		{"var(--color) #39d353", 4},
		{"#123456", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelForColor(tt.color))
		})
	}
}

func TestNewCalendar(t *testing.T) {
	cal := newCalendar([]Day{
		{Date: "2024-12-31", Count: 9, Level: 3},
		{Date: "2025-01-02", Count: 2, Level: 1},
		{Date: "2025-01-01", Count: 5, Level: 2},
		{Date: "2025-01-02", Count: 7, Level: 3},
		{Date: "2026-01-01", Count: 1, Level: 1},
	})

	assert.Equal(t, []Day{
		{Date: "2025-01-01", Count: 5, Level: 2},
		{Date: "2025-01-02", Count: 2, Level: 1},
	}, cal.Contributions)
	assert.Equal(t, 7, cal.Total)
}

func TestNewCalendar_Empty(t *testing.T) {
	cal := newCalendar(nil)
	assert.NotNil(t, cal.Contributions)
	assert.Empty(t, cal.Contributions)
	assert.Zero(t, cal.Total)
}
