package recon

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ledger-reconciler/core/reconcile"
	"ledger-reconciler/core/storage/mocks"
)

func newTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()
	app := fiber.New()
	f := NewFeature(client, testBucket, zaptest.NewLogger(t), nil, reconcile.Options{})
	require.NoError(t, f.Load(app))
	return app
}

func TestHandler_Run(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return(objectChannel(minio.ObjectInfo{Key: "in/details/export.csv"}))
	client.On("GetObject", mock.Anything, testBucket, "in/details/export.csv", mock.Anything).
		Return(body(detailCSV), nil)
	client.On("GetObject", mock.Anything, testBucket, "in/aggregator.csv", mock.Anything).
		Return(body(aggregatorCSV), nil)
	client.On("PutObject", mock.Anything, testBucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	app := newTestApp(t, client)

	req := httptest.NewRequest("POST", "/reconcile/",
		strings.NewReader(`{"detail_prefix":"in/details/","aggregator_object":"in/aggregator.csv"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 1, result.Summary.Matched)
	assert.Len(t, result.Rows, 2)
}

func TestHandler_Run_BadRequest(t *testing.T) {
	app := newTestApp(t, new(mocks.Client))

	t.Run("InvalidBody", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/reconcile/", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingFields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/reconcile/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

// TestHandler_ListRuns verifies the no-database case returns an empty
// list rather than null or an error.
func TestHandler_ListRuns(t *testing.T) {
	app := newTestApp(t, new(mocks.Client))

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/runs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var runs []json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Empty(t, runs)
}
