package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rsinnovationhub/hub/internal/catalog"
	"github.com/rsinnovationhub/hub/internal/config"
	"github.com/rsinnovationhub/hub/internal/gateway"
	"github.com/rsinnovationhub/hub/internal/handler/mocks"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/rsinnovationhub/hub/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	mux      *http.ServeMux
	sessions *session.Store
	tmpl     *mocks.MockTemplateRenderer
}

func newTestEnv(t *testing.T, gw gateway.Gateway) *testEnv {
	t.Helper()
	content, err := catalog.Default()
	require.NoError(t, err)
	sessions, err := session.NewStore(time.Minute, content, gw)
	require.NoError(t, err)
	t.Cleanup(sessions.Close)

	tmpl := mocks.NewMockTemplateRenderer(t)
	h, err := New(content, sessions, tmpl)
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return &testEnv{mux: mux, sessions: sessions, tmpl: tmpl}
}

func (e *testEnv) post(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

func (e *testEnv) home(t *testing.T, query string, cookie *http.Cookie) model.PageData {
	t.Helper()
	var rendered model.PageData
	e.tmpl.EXPECT().Render(mock.Anything, "home.html", mock.Anything).Run(func(w io.Writer, name string, data any) {
		rendered = data.(model.PageData)
	}).Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	return rendered
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == config.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func applicationForm() url.Values {
	return url.Values{
		"name":            {"Asha"},
		"email":           {"asha@example.com"},
		"phone":           {"9876543210"},
		"experienceLevel": {"beginner"},
		"motivation":      {"Build a product"},
	}
}

func TestNewHandler(t *testing.T) {
	content, err := catalog.Default()
	require.NoError(t, err)
	sessions, err := session.NewStore(time.Minute, content, gateway.NewSimulated())
	require.NoError(t, err)
	t.Cleanup(sessions.Close)
	tmpl := mocks.NewMockTemplateRenderer(t)

	t.Run("nil content returns error", func(t *testing.T) {
		h, err := New(nil, sessions, tmpl)
		assert.Nil(t, h)
		assert.ErrorContains(t, err, "content provider")
	})

	t.Run("nil sessions returns error", func(t *testing.T) {
		h, err := New(content, nil, tmpl)
		assert.Nil(t, h)
		assert.ErrorContains(t, err, "session store")
	})

	t.Run("nil templates returns error", func(t *testing.T) {
		h, err := New(content, sessions, nil)
		assert.Nil(t, h)
		assert.ErrorContains(t, err, "templates")
	})

	t.Run("valid dependencies returns handler", func(t *testing.T) {
		h, err := New(content, sessions, tmpl)
		assert.NoError(t, err)
		assert.NotNil(t, h)
	})
}

func TestHome(t *testing.T) {
	env := newTestEnv(t, gateway.NewSimulated(gateway.WithLatency(0, 0, 0)))

	t.Run("all programs without session", func(t *testing.T) {
		data := env.home(t, "", nil)

		assert.Equal(t, "RS INNOVATION HUB", data.Hero.Title)
		assert.Equal(t, catalog.CategoryAll, data.Category)
		assert.Len(t, data.Programs, 4)
		assert.Len(t, data.Events, 3)
		require.NotNil(t, data.FeaturedEvent)
		assert.Equal(t, "haryanahack-2024", data.FeaturedEvent.ID)
		assert.Empty(t, data.Dialogs)
		assert.Empty(t, data.Notices)
		require.Len(t, data.Categories, 5)
		assert.True(t, data.Categories[0].Active)
	})

	t.Run("category filter", func(t *testing.T) {
		data := env.home(t, "?category=courses", nil)

		assert.Equal(t, "courses", data.Category)
		require.Len(t, data.Programs, 1)
		assert.Equal(t, "technology-courses", data.Programs[0].ID)
		assert.True(t, data.Categories[2].Active)
	})

	t.Run("unknown category shows all", func(t *testing.T) {
		data := env.home(t, "?category=cooking", nil)
		assert.Equal(t, catalog.CategoryAll, data.Category)
		assert.Len(t, data.Programs, 4)
	})

	t.Run("render error returns 500", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())
		env.tmpl.EXPECT().Render(mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		env.mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts/x", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOpenDialog(t *testing.T) {
	t.Run("application binds the selected program", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())

		w := env.post("/programs/technology-courses/apply", url.Values{"category": {"courses"}}, nil)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/?category=courses#programs", w.Header().Get("Location"))

		cookie := sessionCookie(t, w)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		data := env.home(t, "?category=courses", cookie)
		require.Len(t, data.Dialogs, 1)
		d := data.Dialogs[0]
		assert.Equal(t, model.FormApplication, d.Kind)
		assert.Equal(t, "Apply for Technology Courses", d.Title)
		assert.Equal(t, "Submit Application", d.SubmitLabel)
		assert.Equal(t, "courses", d.Category)
		require.Len(t, d.Fields, 5)
		assert.Equal(t, model.FieldExperienceLevel, d.Fields[3].Name)
		assert.Equal(t, model.ExperienceLevels, d.Fields[3].Options)
		assert.True(t, d.Fields[3].Required)
	})

	t.Run("existing session is reused", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())
		cookie := sessionCookie(t, env.post("/contact", nil, nil))

		w := env.post("/events/haryanahack-2024/register", nil, cookie)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Equal(t, "/#events", w.Header().Get("Location"))

		data := env.home(t, "", cookie)
		require.Len(t, data.Dialogs, 2)
		assert.Equal(t, model.FormEventRegistration, data.Dialogs[0].Kind)
		assert.Equal(t, "Register for HaryanaHack 2024", data.Dialogs[0].Title)
		assert.Equal(t, model.FormContact, data.Dialogs[1].Kind)
		assert.Equal(t, 1, env.sessions.Len())
	})

	t.Run("unknown program is not found", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())
		w := env.post("/programs/Technology%20Courses/apply", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("completed event reports closed registration", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())
		w := env.post("/events/tech-talk-ai-agriculture/register", nil, nil)
		require.Equal(t, http.StatusSeeOther, w.Code)

		data := env.home(t, "", sessionCookie(t, w))
		assert.Empty(t, data.Dialogs)
		require.Len(t, data.Notices, 1)
		assert.Equal(t, model.Notice{Level: "error", Message: "Registration for this event is closed."}, data.Notices[0])
	})
}

func TestSubmitDialog(t *testing.T) {
	t.Run("success closes dialog and notifies", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated(gateway.WithLatency(0, 0, 0)))
		cookie := sessionCookie(t, env.post("/programs/technology-courses/apply", nil, nil))

		w := env.post("/dialogs/application/submit", applicationForm(), cookie)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/#programs", w.Header().Get("Location"))

		data := env.home(t, "", cookie)
		assert.Empty(t, data.Dialogs)
		require.Len(t, data.Notices, 1)
		assert.Equal(t, model.Notice{
			Level:   "success",
			Message: "Your courses application has been submitted successfully!",
		}, data.Notices[0])

		again := env.home(t, "", cookie)
		assert.Empty(t, again.Notices, "notices are shown once")
	})

	t.Run("missing fields keep dialog open", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated(gateway.WithLatency(0, 0, 0)))
		cookie := sessionCookie(t, env.post("/contact", nil, nil))

		form := url.Values{"name": {"Asha"}, "subject": {"lottery"}}
		w := env.post("/dialogs/contact/submit", form, cookie)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/#contact", w.Header().Get("Location"))

		data := env.home(t, "", cookie)
		require.Len(t, data.Dialogs, 1)
		assert.Equal(t, "Asha", data.Dialogs[0].Fields[0].Value)
		require.Len(t, data.Notices, 1)
		assert.Equal(t, "error", data.Notices[0].Level)
		assert.Equal(t,
			"Please fill in: Email Address, Phone Number, Message. Please choose a valid Subject.",
			data.Notices[0].Message)
	})

	t.Run("registration without organization", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated(gateway.WithLatency(0, 0, 0)))
		cookie := sessionCookie(t, env.post("/events/startup-showcase/register", nil, nil))

		form := url.Values{"name": {"Ravi"}, "email": {"ravi@example.com"}, "phone": {"12345"}}
		env.post("/dialogs/event-registration/submit", form, cookie)

		data := env.home(t, "", cookie)
		assert.Empty(t, data.Dialogs)
		require.Len(t, data.Notices, 1)
		assert.Equal(t, gateway.RegistrationAcknowledgement, data.Notices[0].Message)
	})

	t.Run("without session redirects", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())
		w := env.post("/dialogs/contact/submit", url.Values{"name": {"Asha"}}, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Zero(t, env.sessions.Len())
	})

	t.Run("closed dialog is ignored", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated(gateway.WithLatency(0, 0, 0)))
		cookie := sessionCookie(t, env.post("/contact", nil, nil))
		env.post("/dialogs/contact/close", nil, cookie)

		w := env.post("/dialogs/contact/submit", url.Values{"name": {"Asha"}}, cookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		data := env.home(t, "", cookie)
		assert.Empty(t, data.Dialogs)
		assert.Empty(t, data.Notices)
	})

	t.Run("unknown kind is not found", func(t *testing.T) {
		env := newTestEnv(t, gateway.NewSimulated())
		w := env.post("/dialogs/newsletter/submit", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCloseDialog(t *testing.T) {
	env := newTestEnv(t, gateway.NewSimulated())
	cookie := sessionCookie(t, env.post("/programs/startup-incubation/apply", nil, nil))

	w := env.post("/dialogs/application/close", url.Values{"category": {"incubation"}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?category=incubation#programs", w.Header().Get("Location"))

	data := env.home(t, "", cookie)
	assert.Empty(t, data.Dialogs)
}

func TestTruncateField(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, truncateField(short))

	long := strings.Repeat("a", config.MaxFieldLength+10)
	assert.Len(t, truncateField(long), config.MaxFieldLength)

	// A two-byte rune straddling the limit is dropped whole.
	straddle := strings.Repeat("a", config.MaxFieldLength-1) + "é"
	got := truncateField(straddle)
	assert.Len(t, got, config.MaxFieldLength-1)
}
