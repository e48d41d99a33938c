package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantKind   Kind
		wantStatus int
	}{
		{name: "validation", err: Validation("bad input"), wantKind: KindValidation, wantStatus: http.StatusBadRequest},
		{name: "conflict maps to 400", err: Conflict("User exists"), wantKind: KindConflict, wantStatus: http.StatusBadRequest},
		{name: "not found", err: NotFound("User doesn't exist"), wantKind: KindNotFound, wantStatus: http.StatusNotFound},
		{name: "authentication", err: Authentication("Invalid Password supplied!"), wantKind: KindAuthentication, wantStatus: http.StatusBadRequest},
		{name: "persistence", err: Persistence("repository.Create", errors.New("boom")), wantKind: KindPersistence, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
		})
	}
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "User exists", Conflict("User exists").Error())

	annotated := Persistence("repository.Create", errors.New("boom"))
	assert.Equal(t, "repository.Create: database error", annotated.Error())
}

func TestInternal_WrapsUnclassified(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("AuthService.Login", cause)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "internal server error @ AuthService.Login", appErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestInternal_PassesThroughClassified(t *testing.T) {
	conflict := Conflict("User exists")
	err := Internal("AuthService.CreateUser", conflict)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Same(t, conflict, appErr)

	wrapped := Internal("ProductService.UpdateProduct", Persistence("repository.Update", errors.New("boom")))
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, KindPersistence, appErr.Kind)
}
