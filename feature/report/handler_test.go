package report

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	svc := NewService(populatedSystem(), zap.NewNop())
	NewHandler(svc, 10).RegisterRoutes(app)
	return app
}

func TestHandler_Vouchers(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/vouchers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Vouchers []Voucher `json:"vouchers"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Vouchers, 2)
	assert.Equal(t, Voucher{CustomerID: 3, OrderID: 20, Barcodes: []string{"b1", "b2"}}, payload.Vouchers[0])
	assert.Equal(t, Voucher{CustomerID: 7, OrderID: 10, Barcodes: []string{"a1"}}, payload.Vouchers[1])
}

func TestHandler_Summary(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, Summary{Orders: 2, Customers: 2, AvailableBarcodes: 2, TotalBarcodes: 5}, summary)
}

func TestHandler_TopCustomers(t *testing.T) {
	t.Run("DefaultLimit", func(t *testing.T) {
		app := newTestApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/customers/top", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		app := newTestApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/customers/top?limit=1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var payload struct {
			Customers []struct {
				CustomerID int `json:"customer_id"`
				Barcodes   int `json:"barcodes"`
			} `json:"customers"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Len(t, payload.Customers, 1)
		assert.Equal(t, 3, payload.Customers[0].CustomerID)
		assert.Equal(t, 2, payload.Customers[0].Barcodes)
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		app := newTestApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/customers/top?limit=-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NonNumericLimit", func(t *testing.T) {
		app := newTestApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/customers/top?limit=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
