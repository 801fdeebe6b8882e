package commander

import "time"

// ReportKind is kind of requested report.
type ReportKind string

// Report kinds.
const (
	KindCompetitor  ReportKind = "competitor"
	KindDistributor ReportKind = "distributor"
)

// ReportCommand is request for backend report generation.
type ReportCommand struct {
	ID   string     `json:"id"`
	Kind ReportKind `json:"kind"`
	// Subject is analysed product for competitor reports and store name for distributor reports.
	Subject string `json:"subject"`
	// Items are selected competitors or products.
	Items       []string  `json:"items"`
	DateStart   string    `json:"dateStart"`
	DateEnd     string    `json:"dateEnd"`
	Format      string    `json:"format"`
	CCEmail     string    `json:"ccEmail,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}

// NoticeStatus is status of report request.
type NoticeStatus string

// Report request statuses.
const (
	NoticeQueued    NoticeStatus = "queued"
	NoticeDelivered NoticeStatus = "delivered"
	NoticeFailed    NoticeStatus = "failed"
)

// ReportNotice is notification about report request progress sent back by backend.
type ReportNotice struct {
	RequestID string       `json:"requestId"`
	Status    NoticeStatus `json:"status"`
	URL       string       `json:"url,omitempty"`
	Message   string       `json:"message,omitempty"`
}
