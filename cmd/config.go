package cmd

import "os"

// Config holds the file layout and server settings of the application.
// All values come from the environment (optionally via a .env file); every
// path defaults to the fixed artifact names in the working directory, so the
// batch binary runs with no arguments inside a data directory.
type Config struct {
	OrdersPath         string
	CouriersPath       string
	ZonesPath          string
	ScanLogPath        string
	CleanOrdersPath    string
	PlanPath           string
	ReconciliationPath string

	HTTPPort string
	// RefreshSchedule is a standard cron expression; blank disables the
	// refresh job in server mode.
	RefreshSchedule string
}

// NewConfig reads the configuration from the environment.
func NewConfig() Config {
	return Config{
		OrdersPath:         envOrDefault("ORDERS_PATH", "orders.json"),
		CouriersPath:       envOrDefault("COURIERS_PATH", "couriers.json"),
		ZonesPath:          envOrDefault("ZONES_PATH", "zones.csv"),
		ScanLogPath:        envOrDefault("SCAN_LOG_PATH", "log.csv"),
		CleanOrdersPath:    envOrDefault("CLEAN_ORDERS_PATH", "clean_orders.json"),
		PlanPath:           envOrDefault("PLAN_PATH", "plan.json"),
		ReconciliationPath: envOrDefault("RECONCILIATION_PATH", "reconciliation.json"),
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		RefreshSchedule:    os.Getenv("PLAN_REFRESH_SCHEDULE"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
