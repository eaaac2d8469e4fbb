package brado

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

func TestStartInterviewNormalizesFirstQuestion(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, APIPrefix+"/interview/start", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"session_id": "s-1",
			"next_question": {"question_id": "q1", "statement": "O Estado deve taxar grandes fortunas."},
			"answered_count": 0
		}`)
	})

	resp, err := env.client.StartInterview(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "s-1", resp.SessionID)

	q := resp.FirstQuestion()
	require.NotNil(t, q)
	assert.Equal(t, "q1", q.Key())
	assert.Equal(t, "O Estado deve taxar grandes fortunas.", q.Text)
}

func TestAnswerInterviewRejectsOutOfRangeLocally(t *testing.T) {
	var resourceCalls atomic.Int64
	env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		resourceCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	for _, answer := range []int{0, 8, -3} {
		_, err := env.client.AnswerInterview(context.Background(), "s-1", domain.InterviewAnswerRequest{Answer: answer})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.EqualValues(t, 0, resourceCalls.Load(), "invalid answers never reach the API")
}

func TestFinishInterviewNormalizesLooseResult(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, APIPrefix+"/interview/s-1/finish", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"session_id": "s-1",
			"similaridade": [{"name": "Partido A", "score": 0.88}]
		}`)
	})

	result, err := env.client.FinishInterview(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, result.Ranking, 1)
	assert.Equal(t, "Partido A", result.Ranking[0].Nome)
	assert.InDelta(t, 0.88, result.Ranking[0].Similaridade, 1e-9)
}

func TestExportInterviewReturnsRawBlob(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, APIPrefix+"/interview/s-1/export", r.URL.Path)
		require.Equal(t, "pdf", r.URL.Query().Get("format"))
		require.NotEmpty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})

	body, contentType, err := env.client.ExportInterview(context.Background(), "s-1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, pdf, body)
	assert.Equal(t, "application/pdf", contentType)
}

func TestExportInterviewDoesNotRetryOn401(t *testing.T) {
	var exportCalls atomic.Int64
	env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		exportCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"expired"}`)
	})

	_, _, err := env.client.ExportInterview(context.Background(), "s-1", "json")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.EqualValues(t, 1, exportCalls.Load(), "export is a single attempt")
}

func TestExportInterviewRejectsUnknownFormat(t *testing.T) {
	env := newTestEnv(t, nil)
	_, _, err := env.client.ExportInterview(context.Background(), "s-1", "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
