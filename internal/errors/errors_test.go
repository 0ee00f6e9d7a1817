package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/companion-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "profile not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "profile not found", err.Message)
	assert.Equal(t, "NOT_FOUND: profile not found", err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("grant not found")
	wrapped := errors.Wrap(inner, "failed to resolve ability")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrapUnclassifiedBecomesInternal(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("connection refused"), "failed to load enemies")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := errors.WrapWithCode(stderrors.New("redis down"), errors.CodeUnavailable, "store unreachable")

	assert.Equal(t, errors.CodeUnavailable, wrapped.Code)
	assert.True(t, errors.IsUnavailable(wrapped))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("no uses left")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", errors.GetMessage(nil))
	assert.Equal(t, "no uses left", errors.GetMessage(errors.FailedPrecondition("no uses left")))
	assert.Equal(t, "plain", errors.GetMessage(stderrors.New("plain")))
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad level").WithMeta("field", "level")

	assert.Equal(t, "level", err.Meta["field"])
}
