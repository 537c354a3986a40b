package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /reports/summary
func (rh *ReportHandler) Summary(c *gin.Context) {
	summary, err := rh.reportService.Summary(c.Request.Context())
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, summary)
}
