package delivery_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "userhub-backend/cmd/api"
	authusecase "userhub-backend/internal/auth/usecase"
	userdomain "userhub-backend/internal/user/domain"
	userusecase "userhub-backend/internal/user/usecase"
	"userhub-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*userdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*userdomain.User)}
}

func (f *fakeUserRepo) Create(user *userdomain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return userdomain.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = "id-" + user.Email
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*userdomain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id string) (*userdomain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindAll(limit, offset int) ([]*userdomain.User, int64, error) {
	var out []*userdomain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func newTestRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}

	authUc := authusecase.NewAuthUsecase(repo, cfg)
	userUc := userusecase.NewUserUsecase(repo, authUc)

	r := gin.New()
	api.SetupRoutes(r, userUc, authUc)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupHandler(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, "POST", "/api/users/signup", gin.H{
		"email":    "a@x.com",
		"password": "longenough1",
		"name":     "A",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a@x.com", got["email"])
	assert.Equal(t, "A", got["name"])
	assert.NotEmpty(t, got["id"])

	// The password (even hashed) must never be serialized out.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "longenough1")
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	body := gin.H{"email": "a@x.com", "password": "longenough1", "name": "A"}
	w := doJSON(t, r, "POST", "/api/users/signup", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/users/signup", body, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupHandler_RejectsShortPassword(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, "POST", "/api/users/signup", gin.H{
		"email":    "a@x.com",
		"password": "short",
		"name":     "A",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSigninHandler(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, "POST", "/api/users/signup", gin.H{
		"email":    "a@x.com",
		"password": "longenough1",
		"name":     "A",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/users/signin", gin.H{
		"email":    "a@x.com",
		"password": "longenough1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "A", got["name"])
	assert.Equal(t, "a@x.com", got["email"])
	assert.NotEmpty(t, got["jwtToken"])
}

func TestSigninHandler_Failures(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, "POST", "/api/users/signup", gin.H{
		"email":    "a@x.com",
		"password": "longenough1",
		"name":     "A",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/users/signin", gin.H{
		"email":    "a@x.com",
		"password": "wrongpassword",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "POST", "/api/users/signin", gin.H{
		"email":    "nobody@x.com",
		"password": "longenough1",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHandler_RequiresToken(t *testing.T) {
	r := newTestRouter(newFakeUserRepo())

	w := doJSON(t, r, "GET", "/api/users", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "GET", "/api/users", nil, http.Header{"Authorization": {"Bearer"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "GET", "/api/users", nil, http.Header{"Authorization": {"Bearer garbage"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListHandler_WithToken(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestRouter(repo)

	w := doJSON(t, r, "POST", "/api/users/signup", gin.H{
		"email":    "a@x.com",
		"password": "longenough1",
		"name":     "A",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/users/signin", gin.H{
		"email":    "a@x.com",
		"password": "longenough1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var signin map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signin))
	token := signin["jwtToken"]
	require.NotEmpty(t, token)

	auth := http.Header{"Authorization": {"Bearer " + token}}
	w = doJSON(t, r, "GET", "/api/users", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Users []map[string]any `json:"users"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Users, 1)
	assert.EqualValues(t, 1, list.Total)

	// Deleting the account makes its still-valid token useless.
	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(user.ID))

	w = doJSON(t, r, "GET", "/api/users", nil, auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
