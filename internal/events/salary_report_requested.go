package events

import "time"

const SalaryReportRequestedTopic = "salary.report.requested.v1"

type SalaryReportRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	ReportID   uint      `json:"report_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
