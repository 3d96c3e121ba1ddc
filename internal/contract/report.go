package contract

import "github.com/evanmoss/outlay/internal/app"

type ReportRequest = app.ReportRequest

func NewReportRequest(projectRef string) ReportRequest {
	return app.NewReportRequest(projectRef)
}

type ReportResponse = app.ReportResponse

type TrendRequest = app.TrendRequest

func NewTrendRequest(projectRef string) TrendRequest {
	return app.NewTrendRequest(projectRef)
}

type TrendResponse = app.TrendResponse

type ReportErrorCode = app.ReportErrorCode

const (
	ReportErrUnknownProject ReportErrorCode = app.ReportErrUnknownProject
	ReportErrNoBudget       ReportErrorCode = app.ReportErrNoBudget
)

type ReportError = app.ReportError
