package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vellaperfumeria/storefront/internal/application/session"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/staticdata"
	"github.com/vellaperfumeria/storefront/internal/infrastructure/storage"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/dto"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/middleware"
	"github.com/vellaperfumeria/storefront/internal/interfaces/http/router"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	registry := session.NewRegistry(session.Deps{
		Products: staticdata.NewDefaultCatalogRepository(),
		Posts:    staticdata.NewDefaultPostRepository(),
		Carts:    storage.NewInMemoryCartStore(),
	}, time.Hour)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.NewRouter(engine).
		Register(NewSessionHandler(registry)).
		Register(NewCatalogHandler(staticdata.NewDefaultCatalogRepository(), staticdata.NewDefaultPostRepository())).
		Register(NewSystemHandler(registry, "test")).
		Setup()
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func createSession(t *testing.T, engine *gin.Engine, query string) (string, session.Result) {
	t.Helper()

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions", gin.H{"query": query})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Snapshot.SessionID)
	return result.Snapshot.SessionID, result
}

func TestCreateSession(t *testing.T) {
	engine := newTestServer(t)

	id, result := createSession(t, engine, "product_id=3")

	assert.Equal(t, "productDetail", result.Snapshot.State.Current.String())
	assert.Equal(t, "product_id=3", result.Snapshot.Query)

	w, env := do(t, engine, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestGetUnknownSession(t *testing.T) {
	engine := newTestServer(t)

	w, env := do(t, engine, http.MethodGet, "/api/v1/sessions/5f0c2a9c-98aa-4f55-8b64-1f1f4de3c001", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeSessionNotFound, env.Error.Code)
	assert.NotEmpty(t, env.Error.RequestID)
}

func TestNavigate(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/navigate",
		gin.H{"view": "productDetail", "product_id": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "productDetail", result.Snapshot.State.Current.String())
	assert.Equal(t, "product_id=5", result.Snapshot.Query)
	assert.True(t, result.Effects.URLChanged)
}

func TestNavigateUnknownProduct(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/navigate",
		gin.H{"view": "productDetail", "product_id": 999})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeNotFound, env.Error.Code)
}

func TestNavigateMissingView(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/navigate", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeValidation, env.Error.Code)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "view", env.Error.Details[0].Field)
}

func TestHistoryChange(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/history",
		gin.H{"query": "view=blogPost&post_id=2"})
	require.Equal(t, http.StatusOK, w.Code)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "blogPost", result.Snapshot.State.Current.String())
	assert.False(t, result.Effects.URLChanged)
}

func TestCartFlow(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items",
		gin.H{"product_id": 3, "variant": gin.H{"Tono": "Rojo"}})
	require.Equal(t, http.StatusOK, w.Code)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.Snapshot.ItemCount)
	assert.True(t, result.Snapshot.CartOpen)
	require.Len(t, result.Snapshot.Cart.Items, 1)
	assert.Equal(t, "3-Rojo", result.Snapshot.Cart.Items[0].ID)

	w, env = do(t, engine, http.MethodPatch, "/api/v1/sessions/"+id+"/cart/items/3-Rojo",
		gin.H{"quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 4, result.Snapshot.ItemCount)

	w, env = do(t, engine, http.MethodDelete, "/api/v1/sessions/"+id+"/cart/items/3-Rojo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 0, result.Snapshot.ItemCount)
}

func TestUpdateItemMissingQuantity(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPatch, "/api/v1/sessions/"+id+"/cart/items/1", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeValidation, env.Error.Code)
}

func TestBuyNow(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/cart/buy-now",
		gin.H{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "checkoutSummary", result.Snapshot.State.Current.String())
	assert.Equal(t, 1, result.Snapshot.ItemCount)
	assert.False(t, result.Snapshot.CartOpen)
}

func TestCartPanel(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPut, "/api/v1/sessions/"+id+"/cart/panel", gin.H{"open": true})
	require.Equal(t, http.StatusOK, w.Code)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Snapshot.CartOpen)
}

func TestCheckoutMissingFields(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	addItem(t, engine, id, gin.H{"product_id": 1})

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/checkout",
		gin.H{"email": "laura@example.com", "method": "card"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeMissingCheckout, env.Error.Code)
	assert.Contains(t, env.Error.Message, "first_name")
}

func TestCheckoutEmptyCart(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/checkout", validCheckoutBody())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrCodeInvalidState, env.Error.Code)
}

func TestCheckoutWithoutRemoteShop(t *testing.T) {
	engine := newTestServer(t)
	id, _ := createSession(t, engine, "")

	addItem(t, engine, id, gin.H{"product_id": 2})

	w, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+id+"/checkout", validCheckoutBody())
	require.Equal(t, http.StatusOK, w.Code)

	var result session.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotNil(t, result.Snapshot.Confirmation)
	assert.Contains(t, result.Snapshot.Confirmation.Reference, "ERR-SAVE-")
	assert.Equal(t, "checkoutSummary", result.Snapshot.State.Current.String())
}

func TestHealth(t *testing.T) {
	engine := newTestServer(t)

	w, env := do(t, engine, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

// addItem adds a product to the session cart
func addItem(t *testing.T, engine *gin.Engine, sessionID string, body gin.H) {
	t.Helper()
	_, env := do(t, engine, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cart/items", body)
	if !env.Success {
		t.Fatalf("add to cart failed: %+v", env.Error)
	}
}

func validCheckoutBody() gin.H {
	return gin.H{
		"email":  "laura@example.com",
		"method": "card",
		"shipping": gin.H{
			"first_name": "Laura",
			"address":    "Calle Mayor 12",
			"city":       "Madrid",
			"zip":        "28013",
			"phone":      "600111222",
		},
	}
}
