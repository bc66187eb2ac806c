package server_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/appleboy/gofight/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fastjson"
)

func TestRequestSignup(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	params := gofight.D{
		"password": "password42",
	}
	r.POST("/auth/signup").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"error":"No username or password provided."}`, r.Body.String())
	})

	params["username"] = "alice"
	r.POST("/auth/signup").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		v, err := fastjson.Parse(r.Body.String())
		assert.NoError(t, err)

		assert.Regexp(t, `^[1-9A-HJ-NP-Za-km-z]{24}$`, string(v.GetStringBytes("data", "session_id")))

		expireAt, err := time.Parse(time.RFC3339Nano, string(v.GetStringBytes("data", "expire_at")))
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(ctrl.SessionTTL), expireAt, time.Minute)
	})

	user, err := ctrl.Database.FindUserByUsername("alice")
	assert.NoError(t, err)
	assert.NotEqual(t, "password42", user.Password)

	// Already registered
	r.POST("/auth/signup").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusConflict, r.Code)
		assert.JSONEq(t, `{"error":"This username is already registered."}`, r.Body.String())
	})
}

func TestRequestLogin(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	user := createUser(ctrl, "alice")

	params := gofight.D{
		"username": "alice",
	}
	r.POST("/auth/login").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"error":"No username or password provided."}`, r.Body.String())
	})

	params["password"] = "wrong"
	r.POST("/auth/login").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, `{"error":"Invalid username or password."}`, r.Body.String())
	})

	r.POST("/auth/login").SetJSON(gofight.D{"username": "bob", "password": "password42"}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, `{"error":"Invalid username or password."}`, r.Body.String())
	})

	var sessions []string
	params["password"] = "password42"
	for i := 0; i < 2; i++ {
		r.POST("/auth/login").SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusOK, r.Code)

			v, err := fastjson.Parse(r.Body.String())
			assert.NoError(t, err)
			sessions = append(sessions, string(v.GetStringBytes("data", "session_id")))
		})
	}

	assert.Len(t, sessions, 2)
	assert.NotEqual(t, sessions[0], sessions[1], "each login opens a new session")
	for _, id := range sessions {
		session, err := ctrl.Database.FindSessionByToken(id)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, session.UserID)
	}
}
