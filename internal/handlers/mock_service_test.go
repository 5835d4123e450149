package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"courses_api/internal/models"
	"courses_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// ---- Service Mocks ----

// mockAuth accepts exactly one email/password pair.
type mockAuth struct {
	user     *models.User
	password string
	err      error

	calls int
}

func (m *mockAuth) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || email != m.user.EmailAddress || password != m.password {
		return nil, service.ErrUnauthenticated
	}
	return m.user, nil
}

type mockUsers struct {
	signUpID    int64
	signUpErr   error
	current     *models.User
	currentErr  error
	lastSignUp  models.NewUserInput
	signUpCalls int
}

func (m *mockUsers) SignUp(_ context.Context, in models.NewUserInput) (int64, error) {
	m.signUpCalls++
	m.lastSignUp = in
	return m.signUpID, m.signUpErr
}

func (m *mockUsers) Current(_ context.Context, _ string) (*models.User, error) {
	return m.current, m.currentErr
}

type mockCourses struct {
	list      []models.Course
	listErr   error
	course    *models.Course
	getErr    error
	createID  int64
	createErr error
	updateErr error
	authErr   error
	deleteErr error

	lastOwner     *models.User
	lastInput     models.CourseInput
	lastID        int64
	createCalls   int
	updateCalls   int
	deleteCalls   int
	authorizeCall int
}

func (m *mockCourses) List(context.Context) ([]models.Course, error) { return m.list, m.listErr }

func (m *mockCourses) Get(_ context.Context, id int64) (*models.Course, error) {
	m.lastID = id
	return m.course, m.getErr
}

func (m *mockCourses) Create(_ context.Context, owner *models.User, in models.CourseInput) (int64, error) {
	m.createCalls++
	m.lastOwner = owner
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockCourses) Update(_ context.Context, requester *models.User, id int64, in models.CourseInput) error {
	m.updateCalls++
	m.lastOwner = requester
	m.lastID = id
	m.lastInput = in
	return m.updateErr
}

func (m *mockCourses) Authorize(_ context.Context, _ *models.User, id int64) error {
	m.authorizeCall++
	m.lastID = id
	return m.authErr
}

func (m *mockCourses) Delete(_ context.Context, requester *models.User, id int64) error {
	m.deleteCalls++
	m.lastOwner = requester
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

var joe = &models.User{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "$2a$10$hash"}

const joePassword = "joepassword"

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts...)
	return h.InitRoutes()
}

func newMockService() (*service.Service, *mockAuth, *mockUsers, *mockCourses) {
	auth := &mockAuth{user: joe, password: joePassword}
	users := &mockUsers{}
	courses := &mockCourses{}
	return &service.Service{Authorization: auth, Users: users, Courses: courses}, auth, users, courses
}

type credentials struct{ email, password string }

var joeCreds = &credentials{email: joe.EmailAddress, password: joePassword}

// do issues a request; body may be nil, a string (sent raw) or any value (JSON encoded).
func do(t *testing.T, r http.Handler, method, path string, body any, creds *credentials) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil {
		req.SetBasicAuth(creds.email, creds.password)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessages(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var out struct {
		Message []string       `json:"message"`
		Error   map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body=%s", w.Body.String())
	require.NotNil(t, out.Error)
	require.Empty(t, out.Error)
	return out.Message
}
