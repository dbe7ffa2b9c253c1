package user_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gatherchat/internal/common"
	"gatherchat/internal/dbmysql"
	"gatherchat/internal/user"
	"gatherchat/internal/user/mocks"
)

func newTestRouter(svc user.ProfileService) *mux.Router {
	r := mux.NewRouter()
	user.NewHandler(svc, zap.NewNop()).RegisterRoutes(r.PathPrefix("/api/v1").Subrouter())
	return r
}

func withCaller(req *http.Request, id string) *http.Request {
	return req.WithContext(common.WithIdentity(req.Context(), common.Identity{UserID: id, Email: id + "@example.com"}))
}

func TestHandler_AuthCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProfileService(ctrl)

	svc.EXPECT().
		HandleAuthCallback(gomock.Any(), common.Identity{UserID: "user-1", Email: "user-1@example.com"}).
		Return(&dbmysql.Profile{ID: "user-1"}, nil)

	rec := httptest.NewRecorder()
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/auth/callback", nil), "user-1")
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"user-1"`)
}

func TestHandler_GetMe(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		setup      func(svc *mocks.MockProfileService)
		wantStatus int
	}{
		{
			name:   "returns profile",
			caller: "user-1",
			setup: func(svc *mocks.MockProfileService) {
				svc.EXPECT().GetCurrentUser(gomock.Any(), "user-1").Return(&dbmysql.Profile{ID: "user-1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing profile",
			caller: "user-1",
			setup: func(svc *mocks.MockProfileService) {
				svc.EXPECT().GetCurrentUser(gomock.Any(), "user-1").Return(nil, common.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no identity",
			setup:      func(svc *mocks.MockProfileService) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockProfileService(ctrl)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.caller != "" {
				req = withCaller(req, tt.caller)
			}
			rec := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_UpdateMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProfileService(ctrl)

	svc.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u user.ProfileUpdate) (*dbmysql.Profile, error) {
			require.NotNil(t, u.Bio)
			assert.Equal(t, "hello", *u.Bio)
			assert.Nil(t, u.Username)
			return &dbmysql.Profile{ID: "user-1", Bio: "hello"}, nil
		})

	rec := httptest.NewRecorder()
	req := withCaller(httptest.NewRequest(http.MethodPatch, "/api/v1/me", strings.NewReader(`{"bio":"hello"}`)), "user-1")
	newTestRouter(svc).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = withCaller(httptest.NewRequest(http.MethodPatch, "/api/v1/me", strings.NewReader(`{"email":"x"}`)), "user-1")
	newTestRouter(svc).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UploadAvatar(t *testing.T) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte(pngHeader))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProfileService(ctrl)
	svc.EXPECT().UpdateAvatar(gomock.Any(), "user-1", "me.png", gomock.Any()).
		Return(nil, errors.New("gridfs unavailable"))

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/me/avatar", body), "user-1")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "gridfs")
}

func TestHandler_UploadAvatar_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockProfileService(ctrl)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/me/avatar", strings.NewReader("")), "user-1")
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
