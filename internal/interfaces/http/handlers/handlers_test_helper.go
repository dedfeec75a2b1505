package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clubs.backend/internal/config"
	"clubs.backend/internal/infrastructure/accounts"
	"clubs.backend/internal/infrastructure/models"
	"clubs.backend/internal/infrastructure/repositories"
	"clubs.backend/internal/infrastructure/storage"
	"clubs.backend/internal/interfaces/http/middleware"
	"clubs.backend/internal/usecases"
)

// test identity headers consumed by the fixture's identity middleware
const (
	testIDHeader    = "X-Test-Innohassle-Id"
	testEmailHeader = "X-Test-Email"
)

type fakeGateway struct {
	byID    map[string]*accounts.UserInfo
	byEmail map[string]*accounts.UserInfo
}

func newGateway() *fakeGateway {
	return &fakeGateway{
		byID:    make(map[string]*accounts.UserInfo),
		byEmail: make(map[string]*accounts.UserInfo),
	}
}

func (g *fakeGateway) addUser(id, name, email string) {
	info := &accounts.UserInfo{ID: id, InnopolisSSO: &accounts.InnopolisSSO{Name: name, Email: email}}
	g.byID[id] = info
	g.byEmail[email] = info
}

func (g *fakeGateway) GetUserByID(ctx context.Context, innohassleID string) (*accounts.UserInfo, error) {
	return g.byID[innohassleID], nil
}

func (g *fakeGateway) GetUserByEmail(ctx context.Context, email string) (*accounts.UserInfo, error) {
	return g.byEmail[email], nil
}

type fixture struct {
	router  *gin.Engine
	gateway *fakeGateway
}

// newFixture wires real usecases over a sqlite store and a local file
// store, with authentication replaced by test identity headers.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Club{}, &models.User{}))

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	gateway := newGateway()
	clubRepo := repositories.NewClubRepository(db)
	userRepo := repositories.NewUserRepository(db)

	accountsCfg := config.AccountsConfig{SuperadminEmails: []string{"boss@innopolis.university"}}
	logoCfg := config.LogoConfig{ThumbnailSize: 512, Quality: 80}

	clubUC := usecases.NewClubUsecase(clubRepo, gateway)
	logoUC := usecases.NewLogoUsecase(clubRepo, store, logoCfg)
	leaderUC := usecases.NewLeaderUsecase(clubRepo, gateway)
	userUC := usecases.NewUserUsecase(userRepo, clubRepo, gateway, accountsCfg)

	clubHandler := NewClubHandler(clubUC, logoUC)
	leaderHandler := NewLeaderHandler(leaderUC)
	userHandler := NewUserHandler(userUC)

	identity := func(c *gin.Context) {
		if id := c.GetHeader(testIDHeader); id != "" {
			c.Set(middleware.InnohassleIDKey, id)
		}
		if email := c.GetHeader(testEmailHeader); email != "" {
			c.Set(middleware.UserEmailKey, email)
		}
		c.Next()
	}

	router := gin.New()
	api := router.Group("/api/v1")

	clubs := api.Group("/clubs")
	clubs.GET("", clubHandler.List)
	clubs.POST("", clubHandler.Create)
	clubs.GET("/by-id/:id", clubHandler.GetByID)
	clubs.POST("/by-id/:id", clubHandler.UpdateByID)
	clubs.DELETE("/by-id/:id", clubHandler.Delete)
	clubs.GET("/by-slug/:slug", clubHandler.GetBySlug)
	clubs.POST("/by-slug/:slug", clubHandler.UpdateBySlug)
	clubs.GET("/by-id/:id/logo", clubHandler.GetLogo)
	clubs.POST("/by-id/:id/logo", clubHandler.SetLogo)

	leaders := api.Group("/leaders")
	leaders.GET("", leaderHandler.List)
	leaders.GET("/by-club-id/:id", leaderHandler.GetByClubID)
	leaders.GET("/by-club-slug/:slug", leaderHandler.GetByClubSlug)

	users := api.Group("/users", identity)
	users.GET("/me", userHandler.GetMe)
	users.POST("/change-role", userHandler.ChangeRole)

	return &fixture{router: router, gateway: gateway}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) uploadLogo(t *testing.T, clubID string, data []byte, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="logoFile"; filename="logo"`)
	if contentType != "" {
		header["Content-Type"] = []string{contentType}
	}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clubs/by-id/"+clubID+"/logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
