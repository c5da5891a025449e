package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/psqlbuilder"
	"github.com/m04kA/RoomBookingService/pkg/ptr"
)

func TestApplyHistoryFilter(t *testing.T) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   domain.HistoryFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "no filter",
			filter:  domain.HistoryFilter{},
			wantSQL: "SELECT COUNT(*) FROM bookings b",
		},
		{
			name:     "association only",
			filter:   domain.HistoryFilter{AssociationID: ptr.Ptr(int64(7))},
			wantSQL:  "SELECT COUNT(*) FROM bookings b WHERE b.association_id = $1",
			wantArgs: []interface{}{int64(7)},
		},
		{
			name: "association and period",
			filter: domain.HistoryFilter{
				AssociationID: ptr.Ptr(int64(7)),
				FromDate:      &from,
				ToDate:        &to,
			},
			wantSQL:  "SELECT COUNT(*) FROM bookings b WHERE b.association_id = $1 AND b.booking_date >= $2 AND b.booking_date <= $3",
			wantArgs: []interface{}{int64(7), "2025-11-01", "2025-11-30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := applyHistoryFilter(
				psqlbuilder.Select("COUNT(*)").From(bookingsTable),
				tt.filter,
			).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, query)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
