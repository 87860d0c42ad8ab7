package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"safesteps/internal/capability"
	"safesteps/internal/catalog"
	"safesteps/internal/chat"
	"safesteps/internal/checklist"
	"safesteps/internal/models/request_models"
	"safesteps/internal/quiz"
	"safesteps/internal/services"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/middleware"
	"safesteps/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(request_models.Validators); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	checklistCatalog, err := checklist.NewCatalog(catalog.ChecklistItems)
	require.NoError(t, err)
	catalogs := &services.Catalogs{
		Questions:  catalog.QuizQuestions,
		Checklist:  checklistCatalog,
		Contacts:   catalog.EmergencyContacts,
		Answers:    catalog.CannedAnswers,
		Categories: catalog.DisasterCategories,
	}

	responder := chat.NewKeywordResponder(catalogs.Answers, chat.DefaultFallback, nil)
	ctrl := Controllers{
		Page:      NewPageController(services.NewPageService(catalogs, catalog.QuickQuestions)),
		Chat:      NewChatController(services.NewChatService(responder, mem.NewSessions[chat.Transcript](time.Hour), catalog.QuickQuestions, zap.NewNop())),
		Quiz:      NewQuizController(services.NewQuizService(catalogs, mem.NewSessions[quiz.Session](time.Hour), nil)),
		Checklist: NewChecklistController(services.NewChecklistService(catalogs, mem.NewSessions[checklist.State](time.Hour), nil)),
		Contacts:  NewContactsController(services.NewContactService(catalogs, catalog.QuickTips)),
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(), ClientMiddleware())
	RegisterRoutes(r, ctrl)
	return r
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type sessionData struct {
	SessionID string `json:"session_id"`
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, env := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.TraceID)
}

func TestPageRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/page", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Hero struct {
			Badge string `json:"badge"`
		} `json:"hero"`
		Categories []struct {
			ID string `json:"id"`
		} `json:"categories"`
	}](t, env.Data)
	assert.Equal(t, "Trusted by 10,000+ Students", page.Hero.Badge)
	assert.Len(t, page.Categories, 3)

	w, _ = do(t, r, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[sessionData](t, env.Data).SessionID
	require.NotEmpty(t, id)

	w, env = do(t, r, http.MethodPost, "/chat/sessions/"+id+"/messages",
		map[string]string{"text": "Heart attack symptoms?"},
		capability.Header, "speech-synthesis")
	require.Equal(t, http.StatusOK, w.Code)

	turn := decode[struct {
		Transcript struct {
			Messages []struct {
				Text   string `json:"text"`
				IsUser bool   `json:"is_user"`
			} `json:"messages"`
		} `json:"transcript"`
		Effects []struct {
			Kind string  `json:"kind"`
			Rate float64 `json:"rate"`
		} `json:"effects"`
	}](t, env.Data)
	require.Len(t, turn.Transcript.Messages, 3)
	assert.Equal(t, catalog.CannedAnswers[2].Text, turn.Transcript.Messages[2].Text)
	require.Len(t, turn.Effects, 1)
	assert.Equal(t, "speak", turn.Effects[0].Kind)
	assert.Equal(t, 0.9, turn.Effects[0].Rate)

	w, _ = do(t, r, http.MethodPost, "/chat/sessions/"+id+"/recognition", map[string]string{"type": "hiccup"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodPost, "/chat/sessions/"+id+"/listen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listen := decode[struct {
		Notice struct {
			Level string `json:"level"`
		} `json:"notice"`
	}](t, env.Data)
	assert.Equal(t, "error", listen.Notice.Level)

	w, env = do(t, r, http.MethodPost, "/chat/sessions/nope/messages", map[string]string{"text": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)

	w, env = do(t, r, http.MethodGet, "/chat/quick-questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]string](t, env.Data), 5)
}

func TestQuizRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/quiz/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[sessionData](t, env.Data).SessionID

	w, _ = do(t, r, http.MethodPost, "/quiz/sessions/"+id+"/select", map[string]int{"option": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/quiz/sessions/"+id+"/select", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/quiz/sessions/"+id+"/select", map[string]int{"option": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodPost, "/quiz/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[struct {
		Revealed bool `json:"revealed"`
		Correct  bool `json:"correct"`
		Question struct {
			CorrectAnswer *int `json:"correct_answer"`
		} `json:"question"`
	}](t, env.Data)
	assert.True(t, s.Revealed)
	assert.False(t, s.Correct)
	require.NotNil(t, s.Question.CorrectAnswer)
	assert.Equal(t, 1, *s.Question.CorrectAnswer)

	w, env = do(t, r, http.MethodPost, "/quiz/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct {
		Index int `json:"index"`
	}](t, env.Data).Index)

	w, _ = do(t, r, http.MethodGet, "/quiz/sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChecklistRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/checklist/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[sessionData](t, env.Data).SessionID

	w, env = do(t, r, http.MethodPost, "/checklist/sessions/"+id+"/toggle", map[string]string{"item_id": "radio"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[struct {
		Completed int `json:"completed"`
	}](t, env.Data).Completed)

	w, _ = do(t, r, http.MethodPost, "/checklist/sessions/"+id+"/toggle", map[string]string{"item_id": "jetpack"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPut, "/checklist/sessions/"+id+"/filter", map[string]string{"category": "garage"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodPut, "/checklist/sessions/"+id+"/filter", map[string]string{"category": "kit"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[struct {
		Items []json.RawMessage `json:"items"`
	}](t, env.Data).Items, 6)

	w, _ = do(t, r, http.MethodGet, "/checklist/sessions/"+id+"?category=attic", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/checklist/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="safety-checklist.txt"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "EMERGENCY KIT\n  ☐ Water supply (1 gal/person/day) - 3-day minimum supply stored")
}

func TestContactsRoutes(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodGet, "/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dir := decode[struct {
		Hotline struct {
			Number string `json:"number"`
		} `json:"hotline"`
		Contacts []json.RawMessage `json:"contacts"`
	}](t, env.Data)
	assert.Equal(t, "911", dir.Hotline.Number)
	assert.Len(t, dir.Contacts, 5)

	type action struct {
		Kind string `json:"kind"`
		URI  string `json:"uri"`
	}

	w, env = do(t, r, http.MethodPost, "/contacts/call", map[string]string{"name": "Fire", "number": "101"},
		"User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, action{Kind: "dial", URI: "tel:101"}, decode[action](t, env.Data))

	w, env = do(t, r, http.MethodPost, "/contacts/call", map[string]string{"name": "Fire", "number": "101"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "copy", decode[action](t, env.Data).Kind)

	w, _ = do(t, r, http.MethodPost, "/contacts/call", map[string]string{"name": "Fire"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/contacts/share", map[string]string{"url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, r, http.MethodPost, "/contacts/share", map[string]string{"url": "https://safesteps.example/"}, capability.Header, "share")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "share", decode[action](t, env.Data).Kind)

	w, _ = do(t, r, http.MethodGet, "/contacts/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="emergency-contacts.txt"`, w.Header().Get("Content-Disposition"))
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t)
	w, env := do(t, r, http.MethodGet, "/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
}
