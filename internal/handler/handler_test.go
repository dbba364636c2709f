package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"recipebox/internal/api"
	"recipebox/internal/handler"
	sessionmocks "recipebox/internal/infrastructure/session/mocks"
	"recipebox/internal/models"
	service "recipebox/internal/services"
	servicemocks "recipebox/internal/services/mocks"
	pkgerrors "recipebox/pkg/errors"
)

type testServer struct {
	svc      *servicemocks.MockRecipeBoxService
	sessions *sessionmocks.MockStore
	router   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := servicemocks.NewMockRecipeBoxService(ctrl)
	sessions := sessionmocks.NewMockStore(ctrl)
	router := api.SetupRouter(handler.NewHandler(svc), sessions)
	return &testServer{svc: svc, sessions: sessions, router: router}
}

func (ts *testServer) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: "session_token", Value: token}
}

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.svc.EXPECT().
			Signup(gomock.Any(), service.SignupInput{Username: "ana", Password: "secret"}).
			Return(&models.User{ID: 1, Username: "ana"}, "tok-1", nil)

		rec := ts.do(http.MethodPost, "/signup", `{"username":"ana","password":"secret"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1,"username":"ana","bio":null,"image_url":null}`, rec.Body.String())

		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, "session_token", cookies[0].Name)
			assert.Equal(t, "tok-1", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPost, "/signup", `{"username":"ana"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "username and password required")
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		ts := newTestServer(t)
		ts.svc.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(nil, "", pkgerrors.ErrUsernameExists)

		rec := ts.do(http.MethodPost, "/signup", `{"username":"ana","password":"secret"}`, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "username already exists")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("BadJSON", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPost, "/signup", `{"username":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.svc.EXPECT().
			Login(gomock.Any(), "ana", "secret").
			Return(&models.User{ID: 1, Username: "ana"}, "tok-1", nil)

		rec := ts.do(http.MethodPost, "/login", `{"username":"ana","password":"secret"}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"username":"ana","bio":null,"image_url":null}`, rec.Body.String())
		if cookies := rec.Result().Cookies(); assert.Len(t, cookies, 1) {
			assert.Equal(t, "tok-1", cookies[0].Value)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ts := newTestServer(t)
		ts.svc.EXPECT().
			Login(gomock.Any(), "ana", "wrong").
			Return(nil, "", pkgerrors.ErrInvalidCredentials)

		rec := ts.do(http.MethodPost, "/login", `{"username":"ana","password":"wrong"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		ts := newTestServer(t)
		ts.svc.EXPECT().
			Login(gomock.Any(), "", "").
			Return(nil, "", pkgerrors.ErrInvalidCredentials)

		rec := ts.do(http.MethodPost, "/login", `{}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestCheckSession(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(int64(1), nil)
		ts.svc.EXPECT().
			CurrentUser(gomock.Any(), int64(1)).
			Return(&models.User{ID: 1, Username: "ana"}, nil)

		rec := ts.do(http.MethodGet, "/check_session", "", sessionCookie("tok-1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"username":"ana","bio":null,"image_url":null}`, rec.Body.String())
	})

	t.Run("NoCookie", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodGet, "/check_session", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("UnknownToken", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "stale").Return(int64(0), pkgerrors.ErrSessionNotFound)

		rec := ts.do(http.MethodGet, "/check_session", "", sessionCookie("stale"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UserDeletedSinceLogin", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(int64(77), nil)
		ts.svc.EXPECT().
			CurrentUser(gomock.Any(), int64(77)).
			Return(nil, pkgerrors.ErrUserNotFound)

		rec := ts.do(http.MethodGet, "/check_session", "", sessionCookie("tok-1"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestLogout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(int64(1), nil)
		ts.svc.EXPECT().Logout(gomock.Any(), "tok-1").Return(nil)

		rec := ts.do(http.MethodDelete, "/logout", "", sessionCookie("tok-1"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		if cookies := rec.Result().Cookies(); assert.Len(t, cookies, 1) {
			assert.Equal(t, "session_token", cookies[0].Name)
			assert.Empty(t, cookies[0].Value)
			assert.Negative(t, cookies[0].MaxAge)
		}
	})

	t.Run("WithoutSession", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodDelete, "/logout", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListRecipes(t *testing.T) {
	t.Run("OwnRecipesOnly", func(t *testing.T) {
		ts := newTestServer(t)
		userID := int64(1)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(userID, nil)
		ts.svc.EXPECT().
			ListRecipes(gomock.Any(), userID).
			Return([]models.Recipe{
				{ID: 1, Title: "Soup", Instructions: strings.Repeat("a", 50), UserID: &userID},
			}, nil)

		rec := ts.do(http.MethodGet, "/recipes", "", sessionCookie("tok-1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": 1,
			"title": "Soup",
			"instructions": "`+strings.Repeat("a", 50)+`",
			"minutes_to_complete": null,
			"user_id": 1
		}]`, rec.Body.String())
	})

	t.Run("EmptyList", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(int64(1), nil)
		ts.svc.EXPECT().ListRecipes(gomock.Any(), int64(1)).Return(nil, nil)

		rec := ts.do(http.MethodGet, "/recipes", "", sessionCookie("tok-1"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Anonymous", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodGet, "/recipes", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateRecipe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		userID := int64(1)
		instructions := strings.Repeat("a", 50)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(userID, nil)
		ts.svc.EXPECT().
			CreateRecipe(gomock.Any(), userID, service.RecipeInput{Title: "Soup", Instructions: instructions}).
			Return(&models.Recipe{ID: 5, Title: "Soup", Instructions: instructions, UserID: &userID}, nil)

		rec := ts.do(http.MethodPost, "/recipes", `{"title":"Soup","instructions":"`+instructions+`"}`, sessionCookie("tok-1"))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":5`)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(int64(1), nil)
		ts.svc.EXPECT().
			CreateRecipe(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, pkgerrors.ErrValidation)

		rec := ts.do(http.MethodPost, "/recipes", `{"title":"Soup","instructions":"too short"}`, sessionCookie("tok-1"))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation failed")
	})

	t.Run("Anonymous", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPost, "/recipes", `{"title":"Soup"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(int64(1), nil)
		ts.svc.EXPECT().DeleteAccount(gomock.Any(), int64(1), "tok-1").Return(nil)

		rec := ts.do(http.MethodDelete, "/me", "", sessionCookie("tok-1"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Anonymous", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodDelete, "/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
