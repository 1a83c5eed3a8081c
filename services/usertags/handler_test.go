package usertags_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"graphsense-dashboard/pkg/logger"
	"graphsense-dashboard/pkg/storage"
	mock_storage "graphsense-dashboard/pkg/storage/mocks"
	"graphsense-dashboard/services/explorer"
	mock_explorer "graphsense-dashboard/services/explorer/mocks"
	"graphsense-dashboard/services/usertags"
	mock_usertags "graphsense-dashboard/services/usertags/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const satoshiAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func setupApp(t *testing.T) (*fiber.App, *mock_usertags.MockService) {
	controller := gomock.NewController(t)
	t.Cleanup(controller.Finish)

	explorerHandler, err := explorer.NewHandler(mock_explorer.NewMockService(controller),
		mock_storage.NewMockClient(controller), allowed, logger.Nop())
	require.NoError(t, err)

	svc := mock_usertags.NewMockService(controller)
	h, err := usertags.NewHandler(svc, logger.Nop())
	require.NoError(t, err)

	app := fiber.New()
	h.SetupRoutes(explorerHandler.SetupRoutes(app), explorerHandler.ValidateCurrency)
	return app, svc
}

func doRequest(t *testing.T, app *fiber.App, method, target, contentType, body string) (*http.Response, string) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestAddUserTagHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		prepare    func(svc *mock_usertags.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"address":"` + satoshiAddress + `","label":"genesis","source":"https://example.org"}`,
			prepare: func(svc *mock_usertags.MockService) {
				svc.EXPECT().AddUserTag(gomock.Any(), storage.Currency("btc"), usertags.AddUserTagBody{
					Address: satoshiAddress, Label: "genesis", Source: "https://example.org",
				}).Return(&usertags.UserTag{Currency: "btc", Address: satoshiAddress, Label: "genesis"}, nil)
			},
			wantStatus: fiber.StatusCreated,
			wantBody:   `"label":"genesis"`,
		},
		{
			name:       "missing label",
			body:       `{"address":"` + satoshiAddress + `"}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   "Label - is required",
		},
		{
			name:       "malformed address",
			body:       `{"address":"../../etc","label":"x"}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   "Address - incorrect address",
		},
		{
			name:       "malformed source",
			body:       `{"address":"` + satoshiAddress + `","label":"x","source":"not a url"}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   "Source - incorrect url",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, svc := setupApp(t)
			if tc.prepare != nil {
				tc.prepare(svc)
			}

			resp, body := doRequest(t, app, http.MethodPost, "/btc/usertags", fiber.MIMEApplicationJSON, tc.body)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestListUserTagsHandler(t *testing.T) {
	app, svc := setupApp(t)
	svc.EXPECT().ListUserTags(gomock.Any(), storage.Currency("ltc"), satoshiAddress, 3).Return([]*usertags.UserTag{}, nil)

	resp, body := doRequest(t, app, http.MethodGet, "/ltc/usertags?address="+satoshiAddress+"&page=3", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", body)
}

func TestDeleteUserTagHandler(t *testing.T) {
	tests := []struct {
		name       string
		tag        *usertags.UserTag
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deleted tag is returned",
			tag:        &usertags.UserTag{Currency: "btc", Address: satoshiAddress, Label: "genesis"},
			wantStatus: fiber.StatusOK,
			wantBody:   `"label":"genesis"`,
		},
		{name: "unknown", err: usertags.ErrUserTagNotFound, wantStatus: fiber.StatusNotFound},
		{name: "malformed id", err: usertags.ErrInvalidID, wantStatus: fiber.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, svc := setupApp(t)
			svc.EXPECT().DeleteUserTag(gomock.Any(), storage.Currency("btc"), "65f0c0ffee").Return(tc.tag, tc.err)

			resp, body := doRequest(t, app, http.MethodDelete, "/btc/usertags/65f0c0ffee", "", "")
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestTagpackHandlers(t *testing.T) {
	t.Run("export", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.EXPECT().ExportTagpack(gomock.Any(), storage.Currency("btc"), "analyst").Return([]byte("title: x\n"), nil)

		resp, body := doRequest(t, app, http.MethodGet, "/btc/usertags/tagpack.yaml?creator=analyst", "", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/yaml", resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "tagpack.yaml")
		assert.Equal(t, "title: x\n", body)
	})

	t.Run("import", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.EXPECT().ImportTagpack(gomock.Any(), storage.Currency("btc"), []byte("title: x\n")).Return(4, nil)

		resp, body := doRequest(t, app, http.MethodPost, "/btc/usertags/tagpack", "application/yaml", "title: x\n")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"OK","imported":4}`, body)
	})

	t.Run("import rejects invalid tagpack", func(t *testing.T) {
		app, svc := setupApp(t)
		svc.EXPECT().ImportTagpack(gomock.Any(), storage.Currency("btc"), gomock.Any()).Return(0, usertags.ErrInvalidTagpack)

		resp, _ := doRequest(t, app, http.MethodPost, "/btc/usertags/tagpack", "application/yaml", "tags: [")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUnknownCurrency(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/doge/usertags", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
