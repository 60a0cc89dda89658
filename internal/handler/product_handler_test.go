package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-products-api/internal/model"
)

type stubProductService struct {
	created []*model.Product
	userIDs []uuid.UUID
	err     error
}

func (s *stubProductService) CreateProduct(product *model.Product, userID uuid.UUID, username string) error {
	if s.err != nil {
		return s.err
	}
	product.CreatedByID = userID
	product.UpdatedByID = userID
	product.Active = true
	s.created = append(s.created, product)
	s.userIDs = append(s.userIDs, userID)
	return nil
}

func newProductApp(t *testing.T, svc *stubProductService, userID uuid.UUID) *fiber.App {
	t.Helper()
	h := NewProductHandler(svc, t.TempDir())
	app := fiber.New()
	create := app.Group("/api/v1/products", fakeAuth(userID, "alice"))
	create.Get("/create", h.CreateForm)
	create.Post("/create", h.Create)
	return app
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateForm_RendersEmptyForm(t *testing.T) {
	app := newProductApp(t, &stubProductService{}, uuid.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/create", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	form, ok := body["form"].(map[string]interface{})
	require.True(t, ok)
	fields, ok := form["fields"].([]interface{})
	require.True(t, ok)
	assert.Len(t, fields, 4)
}

func TestCreate_ValidSubmission(t *testing.T) {
	svc := &stubProductService{}
	userID := uuid.New()
	app := newProductApp(t, svc, userID)

	body, contentType := multipartBody(t, map[string]string{
		"nombre":      "Widget",
		"descripcion": "A fine widget",
		"precio":      "19.99",
	}, "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/create", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, svc.created, 1)
	saved := svc.created[0]
	assert.Equal(t, "Widget", saved.Nombre)
	assert.Equal(t, 19.99, saved.Precio)
	assert.Equal(t, userID, saved.CreatedByID)
	assert.Equal(t, userID, saved.UpdatedByID)
	assert.True(t, saved.Active)
	assert.Equal(t, "Product created successfully", decodeBody(t, resp)["message"])
}

func TestCreate_WithImageUpload(t *testing.T) {
	svc := &stubProductService{}
	app := newProductApp(t, svc, uuid.New())

	body, contentType := multipartBody(t, map[string]string{
		"nombre": "Widget",
		"precio": "5.00",
	}, "imagen", "widget.png")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/create", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, svc.created, 1)
	require.NotNil(t, svc.created[0].Imagen)
	assert.Contains(t, *svc.created[0].Imagen, "products/")
	assert.Contains(t, *svc.created[0].Imagen, ".png")
}

func TestCreate_MissingNombre(t *testing.T) {
	svc := &stubProductService{}
	app := newProductApp(t, svc, uuid.New())

	body, contentType := multipartBody(t, map[string]string{"precio": "19.99"}, "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/create", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	respBody := decodeBody(t, resp)
	assert.Equal(t, "Error creating product", respBody["error"])
	fields, ok := respBody["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "nombre")
	assert.NotContains(t, fields, "precio")
	assert.Empty(t, svc.created, "nothing may be persisted on validation failure")
}

func TestCreate_InvalidPrecioEchoesValues(t *testing.T) {
	svc := &stubProductService{}
	app := newProductApp(t, svc, uuid.New())

	body, contentType := multipartBody(t, map[string]string{
		"nombre": "Widget",
		"precio": "nineteen",
	}, "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/create", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	respBody := decodeBody(t, resp)
	fields := respBody["fields"].(map[string]interface{})
	assert.Contains(t, fields, "precio")

	values := respBody["values"].(map[string]interface{})
	assert.Equal(t, "Widget", values["nombre"])
	assert.Equal(t, "nineteen", values["precio"])
	assert.Empty(t, svc.created)
}
