package brado

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

type interviewStartRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// StartInterview opens a Likert interview session.
func (c *Client) StartInterview(ctx context.Context, userID string) (domain.InterviewStartResponse, error) {
	var resp domain.InterviewStartResponse
	err := c.Call(ctx, http.MethodPost, APIPrefix+"/interview/start", interviewStartRequest{UserID: userID}, &resp, true)
	if err != nil {
		return domain.InterviewStartResponse{}, fmt.Errorf("start interview: %w", err)
	}
	return resp, nil
}

// AnswerInterview records one Likert answer for the session.
func (c *Client) AnswerInterview(
	ctx context.Context,
	sessionID string,
	req domain.InterviewAnswerRequest,
) (domain.InterviewAnswerResponse, error) {
	if !domain.ValidLikert(req.Answer) {
		return domain.InterviewAnswerResponse{}, fmt.Errorf(
			"%w: answer %d outside %d..%d", domain.ErrInvalidInput, req.Answer, domain.LikertMin, domain.LikertMax)
	}

	path := fmt.Sprintf("%s/interview/%s/answer", APIPrefix, url.PathEscape(sessionID))
	var resp domain.InterviewAnswerResponse
	if err := c.Call(ctx, http.MethodPost, path, req, &resp, true); err != nil {
		return domain.InterviewAnswerResponse{}, fmt.Errorf("answer interview: %w", err)
	}
	return resp, nil
}

// FinishInterview closes the session and returns the scored result.
func (c *Client) FinishInterview(ctx context.Context, sessionID string) (domain.InterviewResult, error) {
	path := fmt.Sprintf("%s/interview/%s/finish", APIPrefix, url.PathEscape(sessionID))
	return c.fetchResult(ctx, http.MethodPost, path)
}

// InterviewResult re-fetches the result of a finished session.
func (c *Client) InterviewResult(ctx context.Context, sessionID string) (domain.InterviewResult, error) {
	path := fmt.Sprintf("%s/interview/%s/result", APIPrefix, url.PathEscape(sessionID))
	return c.fetchResult(ctx, http.MethodGet, path)
}

// fetchResult retrieves a result payload and normalizes its loose
// field spellings at the boundary.
func (c *Client) fetchResult(ctx context.Context, method, path string) (domain.InterviewResult, error) {
	var raw json.RawMessage
	if err := c.Call(ctx, method, path, nil, &raw, true); err != nil {
		return domain.InterviewResult{}, fmt.Errorf("interview result: %w", err)
	}
	return domain.NormalizeResult(raw), nil
}

// ExportInterview downloads the session result as a file. Format is
// "json" or "pdf". Single attempt: exports sit outside the 401 retry
// policy.
func (c *Client) ExportInterview(ctx context.Context, sessionID, format string) ([]byte, string, error) {
	if format != "json" && format != "pdf" {
		return nil, "", fmt.Errorf("%w: export format %q", domain.ErrInvalidInput, format)
	}
	path := fmt.Sprintf("%s/interview/%s/export?format=%s", APIPrefix, url.PathEscape(sessionID), format)
	body, contentType, err := c.download(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("export interview: %w", err)
	}
	return body, contentType, nil
}
