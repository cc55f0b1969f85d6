package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/subsave/internal/store"
	"github.com/roach88/subsave/internal/subscription"
)

var sampleRecord = subscription.Subscription{
	ID:         "id-1",
	CustomerID: "amzn1.account.CUST",
	ASIN:       "B00006IEJB",
	Frequency:  3,
}

func TestOutputFormatter_RecordJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Record(sampleRecord))

	var resp struct {
		Status string                    `json:"status"`
		Data   subscription.Subscription `json:"data"`
		Error  *CLIError                 `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, sampleRecord, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_RecordText(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Record(sampleRecord))
	assert.Equal(t, "id-1 customer=amzn1.account.CUST asin=B00006IEJB frequency=3\n", buf.String())
}

func TestOutputFormatter_Records(t *testing.T) {
	tests := []struct {
		name   string
		format string
		subs   []subscription.Subscription
		want   string
	}{
		{"text empty", "text", nil, "No subscriptions\n"},
		{"text one", "text", []subscription.Subscription{sampleRecord},
			"id-1 customer=amzn1.account.CUST asin=B00006IEJB frequency=3\n1 subscription(s)\n"},
		{"json nil", "json", nil, `{"status":"ok","data":[]}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{Format: tt.format, Writer: buf}

			require.NoError(t, formatter.Records(tt.subs))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Error(ErrCodeNotFound, "subscription not found", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E002", resp.Error.Code)
	assert.Equal(t, "subscription not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestOutputFormatter_TextErrorDetails(t *testing.T) {
	details := FailureDetails{File: "subscriptions.csv", Line: 7}

	quiet := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: quiet}).Error("E004", "bad line", details))
	assert.Equal(t, "Error [E004]: bad line\n", quiet.String(), "details only in verbose mode")

	verbose := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: verbose, Verbose: true}).Error("E004", "bad line", details))
	assert.Equal(t, "Error [E004]: bad line\nDetails: subscriptions.csv:7\n", verbose.String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"invalid argument", fmt.Errorf("update: %w", store.ErrInvalidArgument), ErrCodeInvalidArgument, ExitFailure},
		{"not found", fmt.Errorf("get: %w", store.ErrNotFound), ErrCodeNotFound, ExitFailure},
		{"both prefers invalid", errors.Join(store.ErrNotFound, store.ErrInvalidArgument), ErrCodeInvalidArgument, ExitFailure},
		{"malformed", &store.ParseError{Line: 1, Code: store.ErrCodeFieldCount}, ErrCodeMalformedFile, ExitCommandError},
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), ErrCodeFileNotFound, ExitCommandError},
		{"other", errors.New("disk full"), ErrCodeGeneric, ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := classify(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	err := formatter.Fail("get failed", fmt.Errorf("get: %w", store.ErrNotFound))

	assert.True(t, IsReported(err))
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, "Error [E002]: get: subscription not found\n", buf.String())
}

func TestOutputFormatter_FailDetails(t *testing.T) {
	formatter := &OutputFormatter{Format: "json", File: "subs.csv"}

	parseErr := &store.ParseError{Line: 3, Code: store.ErrCodeFrequency}
	assert.Equal(t, FailureDetails{File: "subs.csv", Line: 3}, formatter.details(ErrCodeMalformedFile, parseErr))
	assert.Equal(t, FailureDetails{File: "subs.csv"}, formatter.details(ErrCodeFileNotFound, os.ErrNotExist))
	assert.Nil(t, formatter.details(ErrCodeNotFound, store.ErrNotFound))
}

func TestExitError(t *testing.T) {
	plain := exitError(ExitCommandError, "bad", nil)
	assert.Equal(t, "bad", plain.Error())
	assert.Equal(t, ExitCommandError, ExitCode(plain))
	assert.False(t, IsReported(plain))

	wrapped := exitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
	assert.Equal(t, "inner", errors.Unwrap(wrapped).Error())

	assert.Equal(t, ExitFailure, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, ExitCode(fmt.Errorf("ctx: %w", plain)))
}
