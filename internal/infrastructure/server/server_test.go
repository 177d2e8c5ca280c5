package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	httpHandlers "github.com/shopstack/core/internal/adapters/http"
	"github.com/shopstack/core/internal/adapters/storage"
	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/config"
	"github.com/shopstack/core/internal/infrastructure/datastore"
	"github.com/shopstack/core/internal/infrastructure/logger"
)

type APITestSuite struct {
	suite.Suite
	server    *Server
	workspace *datastore.Workspace
}

func (s *APITestSuite) SetupTest() {
	dir := s.T().TempDir()

	cfg := &config.Config{
		App:    config.AppConfig{Name: "ShopStack", Version: "test", Environment: "test"},
		Server: config.ServerConfig{Port: 3000, Host: "127.0.0.1"},
		Storage: config.StorageConfig{
			Dir:          dir,
			ProductsFile: "products.json",
			BasketFile:   "basket.json",
			UsersFile:    "users.json",
			UploadDir:    "photos",
			PublicPrefix: "photos",
		},
		Logger: config.LoggerConfig{Level: "error", Format: "json", Output: "stdout"},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "*",
			RateLimitRequests:  1000,
			RateLimitWindow:    time.Minute,
			MaxUploadSize:      "8M",
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}

	appLogger, err := logger.New(cfg.Logger)
	s.Require().NoError(err)

	workspace, err := datastore.New(cfg.Storage)
	s.Require().NoError(err)

	srv, err := New(cfg, workspace, appLogger)
	s.Require().NoError(err)

	s.server = srv
	s.workspace = workspace
}

func (s *APITestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.server.echo.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return s.do(req)
}

func (s *APITestSuite) productForm(fields map[string]string, imageName string) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		s.Require().NoError(writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		s.Require().NoError(err)
		_, err = part.Write([]byte("image-bytes"))
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	return buf, writer.FormDataContentType()
}

func (s *APITestSuite) message(rec *httptest.ResponseRecorder) string {
	var resp httpHandlers.MessageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

func (s *APITestSuite) Test_ListProductsEmpty() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/products", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())
}

func (s *APITestSuite) Test_CreateProduct() {
	body, contentType := s.productForm(map[string]string{
		"name":        "mug",
		"description": "a mug",
	}, "mug.png")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(httpHandlers.MsgProductAdded, s.message(rec))

	products, err := storage.ReadCollection[entities.Product](s.workspace.ProductsPath())
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("mug", products[0].Name)
	s.True(strings.HasPrefix(products[0].Image, "photos/"), "got %q", products[0].Image)

	storedName := strings.TrimPrefix(products[0].Image, "photos/")
	data, err := os.ReadFile(filepath.Join(s.workspace.UploadPath(), storedName))
	s.Require().NoError(err)
	s.Equal([]byte("image-bytes"), data)
}

func (s *APITestSuite) Test_CreateProductMissingFieldWritesNothing() {
	seeded := []entities.Product{{Name: "mug", Description: "a mug", Image: "photos/1-mug.png"}}
	s.Require().NoError(storage.WriteCollection(s.workspace.ProductsPath(), seeded))
	before, err := os.ReadFile(s.workspace.ProductsPath())
	s.Require().NoError(err)

	cases := []struct {
		name      string
		fields    map[string]string
		imageName string
	}{
		{"missing name", map[string]string{"description": "a cap"}, "cap.png"},
		{"missing description", map[string]string{"name": "cap"}, "cap.png"},
		{"missing image", map[string]string{"name": "cap", "description": "a cap"}, ""},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body, contentType := s.productForm(tc.fields, tc.imageName)

			req := httptest.NewRequest(http.MethodPost, "/api/products", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := s.do(req)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(httpHandlers.MsgMissingFields, s.message(rec))

			after, err := os.ReadFile(s.workspace.ProductsPath())
			s.Require().NoError(err)
			s.Equal(before, after, "persisted file must be untouched")
		})
	}
}

func (s *APITestSuite) Test_UploadedImageServedStatically() {
	body, contentType := s.productForm(map[string]string{
		"name":        "mug",
		"description": "a mug",
	}, "mug.png")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	s.Require().Equal(http.StatusOK, s.do(req).Code)

	products, err := storage.ReadCollection[entities.Product](s.workspace.ProductsPath())
	s.Require().NoError(err)
	s.Require().Len(products, 1)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/"+products[0].Image, nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image-bytes", rec.Body.String())
}

func (s *APITestSuite) Test_RegisterTwiceWithSameUsername() {
	rec := s.postJSON("/api/register", map[string]string{
		"username": "a", "email": "a@x.com", "password": "p",
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(httpHandlers.MsgRegistered, s.message(rec))

	rec = s.postJSON("/api/register", map[string]string{
		"username": "a", "email": "other@x.com", "password": "q",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(httpHandlers.MsgUserExists, s.message(rec))

	users, err := storage.ReadCollection[entities.User](s.workspace.UsersPath())
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("a", users[0].Username)
}

func (s *APITestSuite) Test_RegisterMissingFieldWritesNothing() {
	seeded := []entities.User{{Username: "a", Email: "a@x.com", Password: "p"}}
	s.Require().NoError(storage.WriteCollection(s.workspace.UsersPath(), seeded))
	before, err := os.ReadFile(s.workspace.UsersPath())
	s.Require().NoError(err)

	rec := s.postJSON("/api/register", map[string]string{"username": "b"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(httpHandlers.MsgMissingFields, s.message(rec))

	after, err := os.ReadFile(s.workspace.UsersPath())
	s.Require().NoError(err)
	s.Equal(before, after, "persisted file must be untouched")
}

func (s *APITestSuite) Test_Login() {
	seeded := []entities.User{{Username: "a", Email: "a@x.com", Password: "p"}}
	s.Require().NoError(storage.WriteCollection(s.workspace.UsersPath(), seeded))

	rec := s.postJSON("/api/login", map[string]string{"username": "a", "password": "p"})
	s.Equal(http.StatusOK, rec.Code)

	var resp httpHandlers.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(httpHandlers.MsgLoggedIn, resp.Message)

	// Wrong password, unknown user and empty payload all get the same
	// generic answer.
	for _, payload := range []map[string]string{
		{"username": "a", "password": "wrong"},
		{"username": "unknown", "password": "p"},
		{},
	} {
		rec := s.postJSON("/api/login", payload)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(httpHandlers.MsgInvalidLogin, s.message(rec))
	}
}

func (s *APITestSuite) Test_BasketListAndDelete() {
	seeded := []entities.BasketEntry{
		{"id": "1", "name": "mug"},
		{"id": "2", "name": "cap"},
	}
	s.Require().NoError(storage.WriteCollection(s.workspace.BasketPath(), seeded))

	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/basket", nil))
	s.Equal(http.StatusOK, rec.Code)

	var entries []entities.BasketEntry
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
	s.Len(entries, 2)

	rec = s.do(httptest.NewRequest(http.MethodDelete, "/api/basket/2", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(httpHandlers.MsgBasketRemoved, s.message(rec))

	remaining, err := storage.ReadCollection[entities.BasketEntry](s.workspace.BasketPath())
	s.Require().NoError(err)
	s.Require().Len(remaining, 1)
	s.Equal("1", remaining[0].ID())

	// Deleting an id that is not present still succeeds.
	rec = s.do(httptest.NewRequest(http.MethodDelete, "/api/basket/99", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(httpHandlers.MsgBasketRemoved, s.message(rec))

	unchanged, err := storage.ReadCollection[entities.BasketEntry](s.workspace.BasketPath())
	s.Require().NoError(err)
	s.Len(unchanged, 1)
}

func (s *APITestSuite) Test_HealthEndpoints() {
	s.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	s.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/ready", nil)).Code)
	s.Equal(http.StatusOK, s.do(httptest.NewRequest(http.MethodGet, "/health/detailed", nil)).Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
