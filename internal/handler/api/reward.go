package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"brainbox-retailplus/internal/domain/reward"
	reqdto "brainbox-retailplus/internal/handler/dto/request"
	resdto "brainbox-retailplus/internal/handler/dto/response"
	"brainbox-retailplus/internal/handler/httperr"
	"brainbox-retailplus/internal/handler/middleware"
	"brainbox-retailplus/internal/usecase/commands"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RewardHandler struct {
	rewardCommands commands.RewardCommands
	rewardQueries  queries.RewardQueries
}

func NewRewardHandler(rewardCommands commands.RewardCommands, rewardQueries queries.RewardQueries) *RewardHandler {
	return &RewardHandler{
		rewardCommands: rewardCommands,
		rewardQueries:  rewardQueries,
	}
}

// @Summary Request a reward
// @Description Record a pending reward request for a customer on behalf of the authenticated staff member
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRewardRequest true "Reward request"
// @Success 201 {object} resdto.CreateRewardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reward-requests [post]
func (h *RewardHandler) RequestReward(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errStaffContextMissing, httperr.MsgInternal, nil)
		return
	}

	var req reqdto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.rewardCommands.RequestReward(c.Request.Context(), req, staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRewardResponse{ID: id, Status: reward.RequestPending.String()})
}

// @Summary List reward requests
// @Description List reward requests by status, newest first
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending (default) or approved"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.RewardRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /reward-requests [get]
func (h *RewardHandler) ListRequests(c *gin.Context) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.rewardQueries.ListRequests(c.Request.Context(), q.Status, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromRewardRequestViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get a reward request
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RewardRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reward-requests/{id} [get]
func (h *RewardHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	view, err := h.rewardQueries.GetRequest(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromRewardRequestView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Approve a reward request
// @Description Approve a pending request and issue its redemption slip. Only approver roles may call this.
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ApproveRewardRequest false "Final reward overrides"
// @Success 200 {object} resdto.ApproveRewardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reward-requests/{id}/approve [post]
func (h *RewardHandler) ApproveReward(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errStaffContextMissing, httperr.MsgInternal, nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	// every override is optional, so an empty body approves the request as asked
	var req reqdto.ApproveRewardRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.rewardCommands.ApproveReward(c.Request.Context(), id, req, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromApproveResult(result))
}

// @Summary List redemptions
// @Description List redemptions by status, newest first
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param status query string false "approved (default), applied or completed"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Router /redemptions [get]
func (h *RewardHandler) ListRedemptions(c *gin.Context) {
	var q reqdto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.rewardQueries.ListRedemptions(c.Request.Context(), q.Status, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromRedemptionViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Look up a redemption slip
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param slip path string true "Redemption slip"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 404 {object} httperr.Response
// @Router /redemptions/{slip} [get]
func (h *RewardHandler) GetRedemption(c *gin.Context) {
	view, err := h.rewardQueries.GetRedemptionBySlip(c.Request.Context(), c.Param("slip"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromRedemptionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Apply a reward to a sale
// @Description Compute the discount for the sale and deduct free-item stock
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slip path string true "Redemption slip"
// @Param request body reqdto.ApplyRewardRequest true "Sale items"
// @Success 200 {object} resdto.ApplyRewardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /redemptions/{slip}/apply [post]
func (h *RewardHandler) ApplyReward(c *gin.Context) {
	var req reqdto.ApplyRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.rewardCommands.ApplyRewardToSale(c.Request.Context(), c.Param("slip"), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromApplyResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Complete a redemption
// @Description Link the applied reward to the finished sale. Unknown slips are ignored.
// @Tags redemptions
// @Accept json
// @Security BearerAuth
// @Param slip path string true "Redemption slip"
// @Param request body reqdto.CompleteRewardRequest true "Sale reference"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /redemptions/{slip}/complete [post]
func (h *RewardHandler) CompleteReward(c *gin.Context) {
	var req reqdto.CompleteRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.rewardCommands.CompleteReward(c.Request.Context(), c.Param("slip"), req); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reward report
// @Description Totals and breakdowns for requests and redemptions created in the period
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date inclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.RewardReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reward-reports [get]
func (h *RewardHandler) GetReport(c *gin.Context) {
	var q reqdto.RewardReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	period, err := q.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	report, err := h.rewardQueries.GenerateReport(c.Request.Context(), period)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Export reward report
// @Description The reward report as an xlsx workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date inclusive (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reward-reports/export [get]
func (h *RewardHandler) ExportReport(c *gin.Context) {
	var q reqdto.RewardReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	period, err := q.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	file, err := h.rewardQueries.ExportReport(c.Request.Context(), period)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

func actorFromContext(c *gin.Context) (commands.Actor, bool) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, ok := middleware.GetStaffRole(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.Actor{StaffID: staffID, Role: role}, true
}
