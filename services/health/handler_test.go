package health

import (
	"io"
	"net/http/httptest"
	"testing"

	"graphsense-dashboard/pkg/logger"
	"graphsense-dashboard/pkg/storage"
	mock_storage "graphsense-dashboard/pkg/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeathRoute(t *testing.T) {
	tests := []struct {
		description  string
		route        string
		prepare      func(m *mock_storage.MockClient)
		expectedCode int
		expectedBody string
	}{
		{
			description:  "get HTTP status 200",
			route:        "/health",
			expectedCode: 200,
			expectedBody: "{\"status\":\"OK\"}",
		},
		{
			description: "get HTTP status 200, when storage answers",
			route:       "/health/storage",
			prepare: func(m *mock_storage.MockClient) {
				m.EXPECT().Statistics(gomock.Any()).Return(storage.Statistics{}, nil)
			},
			expectedCode: 200,
			expectedBody: "{\"status\":\"OK\"}",
		},
		{
			description: "get HTTP status 502, when storage is down",
			route:       "/health/storage",
			prepare: func(m *mock_storage.MockClient) {
				m.EXPECT().Statistics(gomock.Any()).Return(nil, &storage.RemoteError{URL: "http://storage/", Status: 503, Body: "down"})
			},
			expectedCode: 502,
			expectedBody: "{\"error\":\"[storage] GET http://storage/ returned 503: down\",\"status\":\"UNAVAILABLE\"}",
		},
		{
			description:  "get HTTP status 404, when route is not exists",
			route:        "/not-found",
			expectedCode: 404,
			expectedBody: "{\"error\":\"page not found\"}",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			client := mock_storage.NewMockClient(controller)
			if test.prepare != nil {
				test.prepare(client)
			}

			h, err := NewHandler(client, logger.Nop())
			require.NoError(t, err)

			app := fiber.New()
			app.Route("/api/v1", func(router fiber.Router) {
				h.SetupRoutes(router)
			})
			app.Use(func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusNotFound).JSON(map[string]string{"error": "page not found"})
			})

			req := httptest.NewRequest("GET", "/api/v1"+test.route, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equalf(t, test.expectedCode, resp.StatusCode, test.description)
			assert.Equalf(t, test.expectedBody, string(body), test.description)
		})
	}
}

func TestNewHandler(t *testing.T) {
	h, err := NewHandler(nil, logger.Nop())
	assert.Nil(t, h)
	assert.EqualError(t, err, "[health_handler] invalid storage client")
}
