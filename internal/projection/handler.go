package projection

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/revenue-grid/internal/core/errors"
	"github.com/aevon-lab/revenue-grid/internal/core/storage"
	"github.com/aevon-lab/revenue-grid/internal/pipeline"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/revenue", s.HandleQueryRevenue)
	r.GET("/v1/runs/latest", s.HandleLatestRun)
	r.POST("/v1/runs", s.HandleTriggerRun)
}

// HandleQueryRevenue handles GET /v1/revenue
// Query parameters: start, end (YYYY-MM-DD, inclusive), sku_id, granularity
func (s *Service) HandleQueryRevenue(c *gin.Context) {
	var query RevenueQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.QueryRevenue(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid revenue query",
				Details:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to query revenue",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleLatestRun handles GET /v1/runs/latest
func (s *Service) HandleLatestRun(c *gin.Context) {
	run, err := s.LatestRun(c.Request.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNoRuns) {
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpNotFoundError,
				Message:   "No pipeline runs recorded yet",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to read latest run",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, run)
}

// HandleTriggerRun handles POST /v1/runs
func (s *Service) HandleTriggerRun(c *gin.Context) {
	report, err := s.TriggerRun(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrRunInProgress):
			c.JSON(http.StatusConflict, httperr.ErrorResponse{
				ErrorType: httperr.HttpRunInProgressError,
				Message:   "A pipeline run is already in progress",
			})
		case errors.Is(err, ErrRunsDisabled):
			c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
				ErrorType: httperr.HttpRunsDisabledError,
				Message:   "Pipeline runs are not enabled on this server",
			})
		default:
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpPipelineError,
				Message:   "Pipeline run failed",
				Details:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
