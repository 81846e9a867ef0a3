package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameCompletionsRecorded = "completions_recorded_total"
	MetricNameCompletionsRemoved  = "completions_removed_total"
	MetricNameCurrencyAwarded     = "currency_awarded_total"
	MetricNameStreakRewards       = "streak_reward_currency_total"
	MetricNameItemsDropped        = "items_dropped_total"
	MetricNameStorageConflicts    = "storage_conflicts_total"
	MetricNameAnnouncements       = "announcements_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextCompletionsRecorded = "Total number of puzzle times recorded"
	HelpTextCompletionsRemoved  = "Total number of puzzle times removed"
	HelpTextCurrencyAwarded     = "Total currency credited for solves"
	HelpTextStreakRewards       = "Portion of awarded currency that came from streak tiers"
	HelpTextItemsDropped        = "Total number of items dropped on solves"
	HelpTextStorageConflicts    = "Total number of write conflicts reported by the store"
	HelpTextAnnouncements       = "Total number of scheduled announcements built"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelPuzzle  = "puzzle"
	LabelOutcome = "outcome"
	LabelItem    = "item"
	LabelResult  = "result"
)

// Outcome label values
const (
	OutcomeSolved      = "solved"
	OutcomeFail        = "fail"
	OutcomeResurrected = "resurrected"
	OutcomeDuplicate   = "duplicate"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Route label used when no chi route matched
const UnmatchedRoute = "unmatched"
