package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spaceBooker/internal/models"
)

func TestOverlaps(t *testing.T) {
	t.Parallel()

	existing := models.Booking{
		StartTime: "2024-07-25 10:00:00",
		EndTime:   "2024-07-25 12:00:00",
	}

	testCases := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{
			name:  "identical window",
			start: "2024-07-25 10:00:00",
			end:   "2024-07-25 12:00:00",
			want:  true,
		},
		{
			name:  "contained window",
			start: "2024-07-25 10:30:00",
			end:   "2024-07-25 11:30:00",
			want:  true,
		},
		{
			name:  "containing window",
			start: "2024-07-25 09:00:00",
			end:   "2024-07-25 13:00:00",
			want:  true,
		},
		{
			name:  "overlaps the start",
			start: "2024-07-25 09:00:00",
			end:   "2024-07-25 11:00:00",
			want:  true,
		},
		{
			name:  "overlaps the end",
			start: "2024-07-25 11:00:00",
			end:   "2024-07-25 13:00:00",
			want:  true,
		},
		{
			name:  "back to back before",
			start: "2024-07-25 08:00:00",
			end:   "2024-07-25 10:00:00",
			want:  false,
		},
		{
			name:  "back to back after",
			start: "2024-07-25 12:00:00",
			end:   "2024-07-25 13:00:00",
			want:  false,
		},
		{
			name:  "disjoint before",
			start: "2024-07-25 07:00:00",
			end:   "2024-07-25 08:00:00",
			want:  false,
		},
		{
			name:  "disjoint after",
			start: "2024-07-25 13:00:00",
			end:   "2024-07-25 14:00:00",
			want:  false,
		},
		{
			name:  "spans midnight into next day",
			start: "2024-07-25 11:59:59",
			end:   "2024-07-26 00:00:00",
			want:  true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Overlaps(existing, tc.start, tc.end))

			// Pure function: repeated evaluation never changes the answer.
			assert.Equal(t, tc.want, Overlaps(existing, tc.start, tc.end))
		})
	}
}
