package config

import "time"

// Configuration file paths
const (
	ConfigPathItems = "configs/items.json"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultDBName            = "crossbot"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultAnnounceCron      = "0 9 * * *"
	DefaultAnnounceTimezone  = "America/New_York"
	DefaultCatalogCacheTTL   = 10 * time.Minute
	DefaultLogDir            = "logs"
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 16
)
