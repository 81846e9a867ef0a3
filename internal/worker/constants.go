package worker

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// Log messages for the announce worker
const (
	LogMsgAnnounceScheduled   = "Announcements scheduled"
	LogMsgAnnounceTriggered   = "Announcement run triggered"
	LogMsgAnnounceBuilt       = "Announcement built"
	LogMsgAnnounceFailed      = "Announcement failed"
	LogMsgAnnounceStopping    = "Shutting down announce worker"
	LogMsgAnnounceStopped     = "Announce worker shutdown complete"
	LogMsgAnnounceStopTimeout = "Announce worker shutdown timeout, some announcements may still be running"
)

// Error message formats
const (
	ErrMsgInvalidSchedule = "invalid announce schedule %q: %w"
	ErrMsgAnnounceFailed  = "failed to announce %s: %w"
)

const announceJobPrefix = "announce:"
