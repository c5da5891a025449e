package dbmetrics

import (
	"database/sql"
	"time"

	"github.com/m04kA/RoomBookingService/pkg/metrics"
)

// DefaultPoolStatsInterval интервал сбора статистики connection pool
const DefaultPoolStatsInterval = 15 * time.Second

// CollectPoolStats периодически публикует sql.DBStats до закрытия stopCh
func CollectPoolStats(db *sql.DB, m *metrics.Metrics, service string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	publishPoolStats(db.Stats(), m, service)

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			publishPoolStats(db.Stats(), m, service)
		}
	}
}

func publishPoolStats(stats sql.DBStats, m *metrics.Metrics, service string) {
	m.DBOpenConnections.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.DBInUse.WithLabelValues(service).Set(float64(stats.InUse))
	m.DBIdle.WithLabelValues(service).Set(float64(stats.Idle))
	m.DBWaitCount.WithLabelValues(service).Set(float64(stats.WaitCount))
}
