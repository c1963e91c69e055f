package database

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	poolTotalConnsDesc = prometheus.NewDesc(
		"pgx_pool_total_conns",
		"Total number of connections in the pool",
		[]string{"service"}, nil,
	)
	poolIdleConnsDesc = prometheus.NewDesc(
		"pgx_pool_idle_conns",
		"Number of idle connections in the pool",
		[]string{"service"}, nil,
	)
	poolAcquiredConnsDesc = prometheus.NewDesc(
		"pgx_pool_acquired_conns",
		"Number of currently acquired connections",
		[]string{"service"}, nil,
	)
)

// poolStatsCollector samples pool statistics on every scrape.
type poolStatsCollector struct {
	pool    *pgxpool.Pool
	service string
}

func (c *poolStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- poolTotalConnsDesc
	ch <- poolIdleConnsDesc
	ch <- poolAcquiredConnsDesc
}

func (c *poolStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stat := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(poolTotalConnsDesc, prometheus.GaugeValue, float64(stat.TotalConns()), c.service)
	ch <- prometheus.MustNewConstMetric(poolIdleConnsDesc, prometheus.GaugeValue, float64(stat.IdleConns()), c.service)
	ch <- prometheus.MustNewConstMetric(poolAcquiredConnsDesc, prometheus.GaugeValue, float64(stat.AcquiredConns()), c.service)
}

// RegisterPoolMetrics exposes pgx pool statistics as Prometheus gauges.
func RegisterPoolMetrics(pool *pgxpool.Pool, service string) {
	prometheus.DefaultRegisterer.MustRegister(&poolStatsCollector{pool: pool, service: service})
}
