package sferror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/mdouchement/simpleauthstore/internal/sferror"
	"github.com/stretchr/testify/assert"
)

func TestSFError(t *testing.T) {
	err := sferror.New(http.StatusForbidden, "some message")

	assert.Equal(t, "some message", err.Error())
	assert.Equal(t, http.StatusForbidden, sferror.StatusCode(err))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, sferror.StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, sferror.StatusCode(&sferror.SFError{Message: "no code"}))
}
