package app

import (
	"time"

	"github.com/evanmoss/outlay/internal/domain"
	"github.com/evanmoss/outlay/internal/evm"
)

// ReportRequest asks for a full EVM report on one project. ProjectRef accepts
// either a project UUID or a short ID. AsOf overrides the report date for
// reproducible output; nil means now.
type ReportRequest struct {
	ProjectRef string
	AsOf       *time.Time
}

func NewReportRequest(projectRef string) ReportRequest {
	return ReportRequest{ProjectRef: projectRef}
}

type ReportResponse struct {
	Project      *domain.Project
	GeneratedAt  time.Time
	Metrics      evm.Snapshot
	CriticalPath evm.CriticalPathImpact
	Forecast     evm.CompletionForecast
	TaskCount    int
	OpenTasks    int
}

// TrendRequest asks for the historical metric series of one project.
// LastN limits the series to the most recent N points; 0 means all.
type TrendRequest struct {
	ProjectRef string
	LastN      int
}

func NewTrendRequest(projectRef string) TrendRequest {
	return TrendRequest{ProjectRef: projectRef}
}

type TrendResponse struct {
	Project *domain.Project
	Points  []evm.TrendPoint
}

type ReportErrorCode string

const (
	ReportErrUnknownProject ReportErrorCode = "UNKNOWN_PROJECT"
	ReportErrNoBudget       ReportErrorCode = "NO_BUDGET"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
