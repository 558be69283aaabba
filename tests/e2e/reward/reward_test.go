//go:build e2e

package reward_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"brainbox-retailplus/internal/domain/staff"
	resdto "brainbox-retailplus/internal/handler/dto/response"
	"brainbox-retailplus/internal/infra/readstore"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/usecase/queries"
	"brainbox-retailplus/internal/usecase/shared"
	"brainbox-retailplus/tests/common/authtest"
	"brainbox-retailplus/tests/common/dbtest"
	"brainbox-retailplus/tests/common/httptest"
	"brainbox-retailplus/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestsURL    = "/api/reward-requests"
	redemptionsURL = "/api/redemptions"
	reportsURL     = "/api/reward-reports"
)

type rewardSuite struct {
	e2e.SharedSuite
	cashierToken string
	managerToken string
	ownerToken   string
	managerID    uuid.UUID
}

func TestRewardSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(rewardSuite))
}

func (s *rewardSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	t := s.T()

	s.cashierToken = authtest.CreateAndLogin(t, s.DB, s.Router, "cashier@retailplus.test", staff.RoleCashier.String())
	s.managerID = dbtest.CreateTestStaff(t, s.DB, "manager@retailplus.test", staff.RoleManager.String())
	s.managerToken = authtest.LoginUser(t, s.Router, "manager@retailplus.test", dbtest.TestPassword)
	s.ownerToken = authtest.LoginUser(t, s.Router, dbtest.DefaultOwnerEmail, dbtest.TestPassword)
}

func (s *rewardSuite) requestReward(body map[string]any) uuid.UUID {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, s.cashierToken)
	var res resdto.CreateRewardResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res.ID
}

func (s *rewardSuite) approve(requestID uuid.UUID, token string, body any) *resdto.ApproveRewardResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%s/approve", requestsURL, requestID), body, token)
	var res resdto.ApproveRewardResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func percentageRequest() map[string]any {
	return map[string]any{
		"customer_id":   uuid.New(),
		"customer_name": "Chioma Okafor",
		"reward_type":   "percentage_off",
		"reward_amount": 10,
		"reason":        "tenth visit",
	}
}

func (s *rewardSuite) TestPercentageRewardLifecycle() {
	t := s.T()
	rice := dbtest.CreateTestProduct(t, s.DB, "RICE-5KG", "Rice 5kg", "2000", 10)

	requestID := s.requestReward(percentageRequest())
	require.Equal(t, "pending", dbtest.RequestStatus(t, s.DB, requestID))

	approved := s.approve(requestID, s.managerToken, nil)
	require.Regexp(t, `^RW-\d{8}-[A-Z0-9]{6}$`, approved.RedemptionSlip)
	require.Equal(t, "approved", dbtest.RequestStatus(t, s.DB, requestID))

	slipURL := redemptionsURL + "/" + approved.RedemptionSlip

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, slipURL+"/apply", map[string]any{
		"sale_items": []map[string]any{
			{"product_id": rice, "product_name": "Rice 5kg", "unit_price": 2000, "quantity": 1, "stock": 10},
		},
	}, s.cashierToken)
	var applied resdto.ApplyRewardResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &applied)
	require.True(t, applied.TotalDiscount.Equal(decimal.NewFromInt(200)), applied.TotalDiscount.String())
	require.Equal(t, 10, dbtest.ProductStock(t, s.DB, rice), "percentage rewards never touch stock")

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, slipURL+"/complete", map[string]any{"sale_id": "SALE-1001"}, s.cashierToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, slipURL, nil, s.cashierToken)
	var redemption resdto.RedemptionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &redemption)
	require.Equal(t, "completed", redemption.Status)
	require.NotNil(t, redemption.AppliedToSale)
	require.Equal(t, "SALE-1001", *redemption.AppliedToSale)
	require.NotNil(t, redemption.CompletedAt)

	// completion leaves one queued job per configured channel
	jobs, err := readstore.NewNotificationReadStore(sqlc.New(), s.DB).ListByTopic(t.Context(), shared.TopicRewardCompleted, 10)
	require.NoError(t, err)
	require.Len(t, jobs, len(s.Config.Notifier.Channels))
	require.Equal(t, shared.NotificationStatusQueued, jobs[0].Status)

	var event shared.RewardCompletedEvent
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &event))
	require.Equal(t, approved.RedemptionSlip, event.Slip)
	require.Equal(t, "200.00", event.AppliedDiscount)

	processed, err := s.Notifier.RunOnce(t.Context())
	require.NoError(t, err)
	require.Equal(t, len(jobs), processed)

	jobs, err = readstore.NewNotificationReadStore(sqlc.New(), s.DB).ListByTopic(t.Context(), shared.TopicRewardCompleted, 10)
	require.NoError(t, err)
	for _, job := range jobs {
		require.Equal(t, shared.NotificationStatusSent, job.Status)
		require.EqualValues(t, 1, job.Attempts)
	}

	// delivered jobs are never claimed again
	processed, err = s.Notifier.RunOnce(t.Context())
	require.NoError(t, err)
	require.Zero(t, processed)
}

func (s *rewardSuite) TestFreeItemsDeductStock() {
	t := s.T()
	soap := dbtest.CreateTestProduct(t, s.DB, "SOAP-BAR", "Bar soap", "350", 12)

	requestID := s.requestReward(map[string]any{
		"customer_id":   uuid.New(),
		"customer_name": "Emeka Obi",
		"reward_type":   "free_items",
		"free_items": []map[string]any{
			{"product_id": soap, "product_name": "Bar soap", "quantity": 2, "total_value": 700},
		},
	})
	approved := s.approve(requestID, s.ownerToken, nil)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL+"/"+approved.RedemptionSlip+"/apply", map[string]any{
		"sale_items": []map[string]any{
			{"product_id": soap, "product_name": "Bar soap", "unit_price": 350, "quantity": 3, "stock": 12},
		},
	}, s.cashierToken)
	var applied resdto.ApplyRewardResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &applied)

	require.True(t, applied.TotalDiscount.Equal(decimal.NewFromInt(700)), applied.TotalDiscount.String())
	require.Len(t, applied.FreeItems, 1)
	require.Equal(t, 10, dbtest.ProductStock(t, s.DB, soap))
}

func (s *rewardSuite) TestCashierCannotApprove() {
	t := s.T()
	requestID := s.requestReward(percentageRequest())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%s/approve", requestsURL, requestID), nil, s.cashierToken)
	httptest.AssertErrorResponse(t, w, http.StatusForbidden, "cannot approve")

	require.Equal(t, "pending", dbtest.RequestStatus(t, s.DB, requestID))
	require.Zero(t, dbtest.CountRedemptions(t, s.DB, requestID))
}

func (s *rewardSuite) TestTransitionsHappenOnce() {
	t := s.T()
	requestID := s.requestReward(map[string]any{
		"customer_id":   uuid.New(),
		"customer_name": "Bisi Adeyemi",
		"reward_type":   "cash_discount",
		"reward_amount": 500,
	})
	approved := s.approve(requestID, s.managerToken, map[string]any{"final_reward_amount": 300, "approval_notes": "capped"})

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%s/approve", requestsURL, requestID), nil, s.managerToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "already processed")
	require.Equal(t, 1, dbtest.CountRedemptions(t, s.DB, requestID))

	apply := map[string]any{"sale_items": []map[string]any{
		{"product_id": uuid.New(), "product_name": "Groceries", "unit_price": 5000, "quantity": 1},
	}}
	applyURL := redemptionsURL + "/" + approved.RedemptionSlip + "/apply"

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, apply, s.cashierToken)
	var applied resdto.ApplyRewardResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &applied)
	require.True(t, applied.TotalDiscount.Equal(decimal.NewFromInt(300)))

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, applyURL, apply, s.cashierToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "not approved or already used")
}

func (s *rewardSuite) TestUnknownSlips() {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, redemptionsURL+"/RW-20260101-ZZZZZZ", nil, s.cashierToken)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "invalid redemption slip")

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL+"/RW-20260101-ZZZZZZ/apply", map[string]any{
		"sale_items": []map[string]any{{"product_id": uuid.New(), "unit_price": 100, "quantity": 1}},
	}, s.cashierToken)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "invalid redemption slip")

	// completing an unknown slip is a logged no-op
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL+"/RW-20260101-ZZZZZZ/complete", map[string]any{"sale_id": "SALE-9"}, s.cashierToken)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func (s *rewardSuite) TestListings() {
	t := s.T()
	first := s.requestReward(percentageRequest())
	second := s.requestReward(percentageRequest())
	s.approve(first, s.managerToken, nil)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, s.cashierToken)
	var pending []resdto.RewardRequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
	require.Len(t, pending, 1)
	require.Equal(t, second, pending[0].ID)
	require.Equal(t, "cashier", pending[0].RequestedByName)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, redemptionsURL, nil, s.cashierToken)
	var slips []resdto.RedemptionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &slips)
	require.Len(t, slips, 1)
	require.Equal(t, first, slips[0].RequestID)
	require.Equal(t, s.managerID, slips[0].ApprovedBy)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"?status=archived", nil, s.cashierToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func (s *rewardSuite) TestReports() {
	t := s.T()
	requestID := s.requestReward(map[string]any{
		"customer_id":   uuid.New(),
		"customer_name": "Ngozi Eze",
		"reward_type":   "cash_discount",
		"reward_amount": 500,
	})
	s.requestReward(percentageRequest())
	s.approve(requestID, s.managerToken, nil)

	today := dbtest.Today()
	query := "?from=" + today + "&to=" + today

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, reportsURL+query, nil, s.cashierToken)
	httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, reportsURL+query, nil, s.ownerToken)
	var report resdto.RewardReportResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
	require.Equal(t, 2, report.Totals.Requests)
	require.Equal(t, 1, report.Totals.Pending)
	require.Equal(t, 1, report.Totals.Redemptions)
	require.True(t, report.Totals.TotalValue.Equal(decimal.NewFromInt(500)))
	require.Len(t, report.ByApprover, 1)
	require.Equal(t, "manager", report.ByApprover[0].ApproverName)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, reportsURL+"/export"+query, nil, s.managerToken)
	file := httptest.AssertAttachment(t, w, queries.XLSXContentType, "reward-report_"+strings.ReplaceAll(today, "-", "")+"_"+strings.ReplaceAll(today, "-", "")+".xlsx")
	require.Equal(t, "PK", string(file[:2]), "xlsx is a zip container")
}
