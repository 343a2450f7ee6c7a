package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"racetrack-licensing-api/src/models"
	"racetrack-licensing-api/src/services/forms"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newTestApp wires the controller over a lazily-connected client; every case
// below fails validation or identifier parsing before any database call.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	fc := NewFormController(forms.NewService(client.Database("controller-test")))

	app := fiber.New()
	group := app.Group("/forms")
	group.Post("/", fc.CreateForm)
	group.Get("/", fc.GetAllForms)
	group.Get("/:id", fc.GetFormByID)
	group.Put("/:id", fc.UpdateForm)
	group.Post("/:id/submit", fc.SubmitForm)
	group.Delete("/:id", fc.DeleteForm)

	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) models.ErrorResponse {
	t.Helper()
	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	return errResp
}

func TestFormControllerRejectsBadRequests(t *testing.T) {
	app := newTestApp(t)

	t.Run("CreateWithoutName", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/forms", `{}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("CreateWithOverlongName", func(t *testing.T) {
		name := strings.Repeat("x", 101)
		resp, err := app.Test(jsonRequest(http.MethodPost, "/forms", `{"formName":"`+name+`"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("CreateWithMalformedJSON", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/forms", `{"formName":`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UpdateWithNeitherShape", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/forms/abc", `{}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UpdateWithBothShapes", func(t *testing.T) {
		body := `{"formName":"New name","page":"applicantDetails","data":{"telephone":"01234"}}`
		resp, err := app.Test(jsonRequest(http.MethodPut, "/forms/abc", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UpdateWithUnknownPage", func(t *testing.T) {
		body := `{"page":"paymentDetails","data":{"x":1}}`
		resp, err := app.Test(jsonRequest(http.MethodPut, "/forms/abc", body))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ListWithUnknownStatus", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/forms?status=archived", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFormControllerMalformedIdentifiers(t *testing.T) {
	app := newTestApp(t)

	t.Run("GetReturnsNotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/forms/not-an-object-id", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		errResp := decodeError(t, resp)
		assert.Equal(t, http.StatusNotFound, errResp.Status)
		assert.Equal(t, "Form not found", errResp.Message)
	})

	t.Run("DeleteReturnsNotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/forms/not-an-object-id", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("SubmitReturnsNotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/forms/not-an-object-id/submit", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
