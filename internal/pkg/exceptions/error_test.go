package exceptions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"climed-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	t.Run("Wraps underlying error", func(t *testing.T) {
		err := ErrSendHTTPRequest(context.DeadlineExceeded)

		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
		assert.Equal(t, constvars.ErrClientClinicAPIUnavailable, err.ClientMessage)
		assert.True(t, errors.Is(err, context.DeadlineExceeded), "should unwrap to the transport error")
		assert.Contains(t, err.DevMessage, constvars.ErrDevSendHTTPRequest)
	})

	t.Run("Without underlying error", func(t *testing.T) {
		err := ErrOperationRejected(constvars.ErrClientRegisterPatientFailed, constvars.ResourceNamePatient)

		assert.Nil(t, err.Unwrap())
		assert.Equal(t, constvars.StatusUnprocessableEntity, err.StatusCode)
		assert.Equal(t, "clinic API rejected patient request", err.DevMessage)
	})

	t.Run("Location points at the caller", func(t *testing.T) {
		err := ErrMissingConfig("API_URL")

		if assert.NotNil(t, err.Location) {
			assert.True(t, strings.HasSuffix(err.Location.File, "error_test.go"), "got %s", err.Location.File)
			assert.Contains(t, err.Location.FunctionName, "TestCustomError")
		}
	})

	t.Run("errors.As finds the custom error", func(t *testing.T) {
		var wrapped error = ErrGetClinicResource(500, constvars.ResourceNameDoctor)

		var customErr *CustomError
		assert.True(t, errors.As(wrapped, &customErr))
		assert.Equal(t, "failed to get doctor from clinic API, status 500", customErr.DevMessage)
	})
}
