package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	menuhttp "github.com/dpandit24/digital-menu-management-system/internal/modules/menu/http"
	plathttp "github.com/dpandit24/digital-menu-management-system/internal/platform/http"
	"github.com/dpandit24/digital-menu-management-system/internal/platform/security"
)

func newTestApp(t *testing.T) (*fiber.App, *security.SessionCodec) {
	t.Helper()
	codec := security.NewSessionCodec("test-secret", "dmms", 30*24*time.Hour)
	module := menuhttp.NewModule(codec, "https://menu.example.com")
	app := plathttp.NewServer(plathttp.Options{AppName: "dmms-test"}, module)
	return app, codec
}

func cookieFor(t *testing.T, codec *security.SessionCodec, userID string) *http.Cookie {
	t.Helper()
	cred, _, err := codec.Issue(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: plathttp.SessionCookie, Value: cred}
}

func do(t *testing.T, app *fiber.App, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createRestaurant(t *testing.T, app *fiber.App, ck *http.Cookie, name string) (id, slug string) {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/v1/restaurants", fiber.Map{"name": name, "location": "Lisbon"}, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	return body["id"].(string), body["slug"].(string)
}

func TestCreateRestaurant(t *testing.T) {
	app, codec := newTestApp(t)
	ck := cookieFor(t, codec, "owner-1")

	_, slug := createRestaurant(t, app, ck, "Tasty Corner")
	assert.Equal(t, "tasty-corner", slug)

	// same name gets a suffixed slug
	_, slug2 := createRestaurant(t, app, ck, "Tasty Corner")
	assert.Equal(t, "tasty-corner-1", slug2)
}

func TestRestaurantRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)
	resp := do(t, app, http.MethodPost, "/api/v1/restaurants", fiber.Map{"name": "X Y", "location": "Lisbon"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOwnershipIsEnforced(t *testing.T) {
	app, codec := newTestApp(t)
	owner := cookieFor(t, codec, "owner-1")
	stranger := cookieFor(t, codec, "owner-2")

	id, _ := createRestaurant(t, app, owner, "Tasty Corner")

	// foreign restaurants are indistinguishable from missing ones
	resp := do(t, app, http.MethodGet, "/api/v1/restaurants/"+id, nil, stranger)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/v1/restaurants/"+id, nil, stranger)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/restaurants/"+id, nil, owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicMenu(t *testing.T) {
	app, codec := newTestApp(t)
	ck := cookieFor(t, codec, "owner-1")

	id, slug := createRestaurant(t, app, ck, "Tasty Corner")

	resp := do(t, app, http.MethodPost, "/api/v1/restaurants/"+id+"/categories", fiber.Map{"name": "Starters"}, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	starters := decode(t, resp)["id"].(string)

	resp = do(t, app, http.MethodPost, "/api/v1/restaurants/"+id+"/categories", fiber.Map{"name": "Mains"}, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mains := decode(t, resp)
	assert.Equal(t, float64(2), mains["sort_order"])

	resp = do(t, app, http.MethodPost, "/api/v1/restaurants/"+id+"/dishes", fiber.Map{
		"name":         "Bruschetta",
		"image_url":    "https://img.example.com/bruschetta.jpg",
		"description":  "Grilled bread, tomatoes, basil",
		"price_cents":  650,
		"category_ids": []string{starters},
	}, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// diners read the menu without a session
	resp = do(t, app, http.MethodGet, "/api/v1/public/menu/"+slug, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	menu := decode(t, resp)
	rest := menu["restaurant"].(map[string]any)
	assert.Equal(t, "Tasty Corner", rest["name"])
	cats := menu["categories"].([]any)
	require.Len(t, cats, 2)
	first := cats[0].(map[string]any)
	assert.Equal(t, "Starters", first["name"])
	dishes := first["dishes"].([]any)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Bruschetta", dishes[0].(map[string]any)["name"])
	// Mains is empty but still present
	assert.Empty(t, cats[1].(map[string]any)["dishes"])
}

func TestPublicMenuUnknownSlug(t *testing.T) {
	app, _ := newTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/v1/public/menu/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMenuQR(t *testing.T) {
	app, codec := newTestApp(t)
	ck := cookieFor(t, codec, "owner-1")
	_, slug := createRestaurant(t, app, ck, "Tasty Corner")

	resp := do(t, app, http.MethodGet, "/api/v1/public/menu/"+slug+"/qr.png", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestDeleteRestaurantCascades(t *testing.T) {
	app, codec := newTestApp(t)
	ck := cookieFor(t, codec, "owner-1")
	id, slug := createRestaurant(t, app, ck, "Tasty Corner")

	resp := do(t, app, http.MethodPost, "/api/v1/restaurants/"+id+"/categories", fiber.Map{"name": "Starters"}, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/v1/restaurants/"+id, nil, ck)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/public/menu/"+slug, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCategory(t *testing.T) {
	app, codec := newTestApp(t)
	ck := cookieFor(t, codec, "owner-1")
	id, slug := createRestaurant(t, app, ck, "Tasty Corner")

	resp := do(t, app, http.MethodPost, "/api/v1/restaurants/"+id+"/categories", fiber.Map{"name": "Starters"}, ck)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	catID := decode(t, resp)["id"].(string)

	resp = do(t, app, http.MethodDelete, "/api/v1/categories/"+catID, nil, ck)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/public/menu/"+slug, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode(t, resp)["categories"])
}
