package errorutil_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

func TestTaxonomyCodesAndStatuses(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{apperrors.NewDuplicateEnrollment(), "DUPLICATE_ENROLLMENT", http.StatusConflict},
		{apperrors.NewAuthFailure(), "AUTH_FAILURE", http.StatusUnauthorized},
		{apperrors.NewUnauthenticated(), "UNAUTHENTICATED", http.StatusUnauthorized},
		{apperrors.NewInvalidMessPass(), "INVALID_MESS_PASS", http.StatusForbidden},
		{apperrors.NewPreorderNotFound(5), "PREORDER_NOT_FOUND", http.StatusNotFound},
		{apperrors.NewStudentNotFound(), "STUDENT_NOT_FOUND", http.StatusNotFound},
		{apperrors.NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, tc.err, &domainErr)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := apperrors.NewInvalidMessPass()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, original, &domainErr)
	assert.Same(t, domainErr, apperrors.ToDomainError(original))
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := apperrors.ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("disk on fire")
	mapped := apperrors.ToDomainError(cause)
	assert.Equal(t, "PERSISTENCE_FAILURE", mapped.Code)
	assert.ErrorIs(t, mapped, cause)
}
