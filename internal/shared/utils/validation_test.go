package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/errors"
)

type sampleRequest struct {
	Title  string `json:"title" validate:"required,max=5"`
	Email  string `json:"reporter_email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=open resolved"`
	Code   int    `json:"response_code" validate:"gte=100,lte=599"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		in          sampleRequest
		wantErr     bool
		wantDetails []string
	}{
		{name: "valid", in: sampleRequest{Title: "ok", Code: 200}},
		{name: "missing title", in: sampleRequest{Code: 200}, wantErr: true, wantDetails: []string{"title is required"}},
		{name: "title too long", in: sampleRequest{Title: "toolong", Code: 200}, wantErr: true, wantDetails: []string{"title must be at most 5 characters long"}},
		{
			name:    "several fields",
			in:      sampleRequest{Title: "ok", Email: "nope", Status: "closed", Code: 42},
			wantErr: true,
			wantDetails: []string{
				"reporter_email must be a valid email address",
				"status must be one of [open resolved]",
				"response_code must be greater than or equal to 100",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			for _, d := range tt.wantDetails {
				assert.Contains(t, errors.GetAppError(err).Details, d)
			}
		})
	}
}

func TestTranslateBindingError(t *testing.T) {
	var target struct {
		Code int `json:"response_code"`
	}

	typeErr := json.Unmarshal([]byte(`{"response_code":"abc"}`), &target)

	tests := []struct {
		name    string
		err     error
		wantNil bool
		wantMsg string
	}{
		{name: "syntax", err: json.Unmarshal([]byte(`{bad`), &target), wantMsg: "Malformed JSON body"},
		{name: "truncated stream", err: io.ErrUnexpectedEOF, wantMsg: "Malformed JSON body"},
		{name: "type mismatch", err: typeErr, wantMsg: "Validation failed"},
		{name: "empty body", err: io.EOF, wantMsg: "Request body is required"},
		{name: "unrelated", err: fmt.Errorf("db down"), wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateBindingError(tt.err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, errors.ErrorTypeValidation, got.Type)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}
