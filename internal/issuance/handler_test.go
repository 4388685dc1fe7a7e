package issuance

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"medsupply-backend/internal/audit"
)

func testApp(store *stubStore, recorded *[]audit.LogOptions) *fiber.App {
	svc := testService(store, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	recordAudit := func(opts audit.LogOptions) error {
		if recorded != nil {
			*recorded = append(*recorded, opts)
		}
		return nil
	}

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/issue", CreateIssueHandler(svc, recordAudit))
	api.Get("/issues", ListIssuesHandler(svc))
	api.Get("/issues/:id", GetIssueHandler(svc))
	return app
}

func postIssue(t *testing.T, app *fiber.App, payload map[string]any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/issue", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestPostIssueCreated(t *testing.T) {
	store := newStubStore()
	var recorded []audit.LogOptions
	app := testApp(store, &recorded)

	status, body := postIssue(t, app, map[string]any{
		"branch_id":   2,
		"employee_id": 5,
		"issue_date":  "2024-03-01",
		"status":      "Draft",
		"items": []map[string]any{
			{"product_id": 10, "qty": 3, "uom": "BOX"},
		},
		"userId": 4,
	})

	require.Equal(t, fiber.StatusCreated, status)
	require.Equal(t, "Issuance created successfully!", body["message"])
	require.Equal(t, float64(7), body["issueId"])
	require.Equal(t, "ISS-2024-000007", body["issueNo"])

	require.Len(t, recorded, 1)
	require.Equal(t, "issue", recorded[0].EntityType)
	require.Equal(t, uint(7), recorded[0].EntityID)
}

func TestPostIssueEmptyItems(t *testing.T) {
	store := newStubStore()
	app := testApp(store, nil)

	status, body := postIssue(t, app, map[string]any{
		"branch_id":   2,
		"employee_id": 5,
		"issue_date":  "2024-03-01",
		"status":      "Draft",
		"items":       []map[string]any{},
		"userId":      4,
	})

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body, "message")
	require.Empty(t, store.issues)
	require.Empty(t, store.lines)
}

func TestPostIssueItemMissingQty(t *testing.T) {
	store := newStubStore()
	app := testApp(store, nil)

	status, body := postIssue(t, app, map[string]any{
		"branch_id":   2,
		"employee_id": 5,
		"issue_date":  "2024-03-01",
		"status":      "Draft",
		"items": []map[string]any{
			{"product_id": 10, "qty": 3},
			{"product_id": 11},
		},
		"userId": 4,
	})

	require.Equal(t, fiber.StatusBadRequest, status)
	require.Equal(t, "Each item must have a product and quantity.", body["message"])
	// the otherwise-valid first item must not survive either
	require.Empty(t, store.issues)
	require.Empty(t, store.lines)
}

func TestPostIssueApproved(t *testing.T) {
	store := newStubStore()
	app := testApp(store, nil)

	status, _ := postIssue(t, app, map[string]any{
		"branch_id":   2,
		"employee_id": 5,
		"issue_date":  "2024-03-01",
		"status":      "Approved",
		"items": []map[string]any{
			{"product_id": 10, "qty": 3},
		},
		"userId": 9,
	})

	require.Equal(t, fiber.StatusCreated, status)
	header := store.issues[0]
	require.NotNil(t, header.ApprovedBy)
	require.Equal(t, uint(9), *header.ApprovedBy)
	require.NotNil(t, header.ApprovedAt)
}

func TestPostIssueInfrastructureFailure(t *testing.T) {
	store := newStubStore()
	store.failSetIssueNo = true
	app := testApp(store, nil)

	status, body := postIssue(t, app, map[string]any{
		"branch_id":   2,
		"employee_id": 5,
		"issue_date":  "2024-03-01",
		"status":      "Draft",
		"items": []map[string]any{
			{"product_id": 10, "qty": 3},
		},
		"userId": 4,
	})

	require.Equal(t, fiber.StatusInternalServerError, status)
	require.Equal(t, "Failed to create issuance.", body["message"])
	require.Contains(t, body["error"], "assign issue number")
	require.Empty(t, store.issues)
}

func TestGetIssueRoundTrip(t *testing.T) {
	store := newStubStore()
	app := testApp(store, nil)

	status, created := postIssue(t, app, map[string]any{
		"branch_id":   2,
		"employee_id": 5,
		"issue_date":  "2024-03-01",
		"status":      "Draft",
		"items": []map[string]any{
			{"product_id": 10, "qty": 3, "uom": "BOX", "batch_no": "B-9", "expiry_date": "2025-06-30"},
			{"product_id": 11, "qty": 2, "expiry_date": ""},
		},
		"userId": 4,
	})
	require.Equal(t, fiber.StatusCreated, status)

	req := httptest.NewRequest("GET", "/api/issues/7", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var issue IssueResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&issue))
	require.Equal(t, created["issueNo"], issue.IssueNo)
	require.Len(t, issue.Items, 2)
	require.Equal(t, uint(10), issue.Items[0].ProductID)
	require.Equal(t, 3.0, issue.Items[0].Qty)
	require.Equal(t, "BOX", issue.Items[0].UOM)
	require.Equal(t, "B-9", issue.Items[0].BatchNo)
	require.NotNil(t, issue.Items[0].ExpiryDate)
	require.Equal(t, "2025-06-30", *issue.Items[0].ExpiryDate)
	require.Nil(t, issue.Items[1].ExpiryDate)
}

func TestGetIssueMissingID(t *testing.T) {
	app := testApp(newStubStore(), nil)

	req := httptest.NewRequest("GET", "/api/issues/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
