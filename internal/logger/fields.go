package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// ============================================
// Standard Tracing Fields (Context level)
// These fields are propagated through the call chain
// ============================================

const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldCampaignID is the lead-generation campaign ID
	FieldCampaignID = "campaign_id"

	// FieldRunID is the ingestion run ID (UUID)
	FieldRunID = "run_id"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldSource is the business-data source identifier
	FieldSource = "source"

	// FieldUserID is the authenticated user ID
	FieldUserID = "user_id"
)

// ============================================
// Standard Metric Fields (Entry level)
// These fields are used for aggregation and alerting
// ============================================

const (
	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldCount is a generic count field
	FieldCount = "count"

	// FieldSize is the data size in bytes
	FieldSize = "size"

	// FieldStatus is the operation status
	FieldStatus = "status"

	// FieldLeadsFound is the number of records returned by a source
	FieldLeadsFound = "leads_found"

	// FieldLeadsCreated is the number of leads created by a run
	FieldLeadsCreated = "leads_created"

	// FieldDuplicates is the number of duplicate records skipped by a run
	FieldDuplicates = "duplicates"
)
