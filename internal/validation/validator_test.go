package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rootsapp/roots-server/internal/errors"
	"github.com/rootsapp/roots-server/internal/validation"
)

type testRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"gte=0,lte=5"`
	Status string `json:"status" validate:"oneof=want-to-read reading finished"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := testRequest{
		Text:   "some text",
		Rating: 4,
		Status: "reading",
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
	}{
		{
			name:      "missing required field",
			req:       testRequest{Text: "", Rating: 3, Status: "reading"},
			wantField: "text",
		},
		{
			name:      "rating out of range",
			req:       testRequest{Text: "x", Rating: 9, Status: "reading"},
			wantField: "rating",
		},
		{
			name:      "unknown status",
			req:       testRequest{Text: "x", Rating: 3, Status: "abandoned"},
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok, "details should be a field error map")
			assert.Contains(t, details, tt.wantField)
		})
	}
}
