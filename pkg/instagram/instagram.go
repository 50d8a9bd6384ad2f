package instagram

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"automation-srv/pkg/metrics"

	"github.com/goccy/go-json"
)

func (i *instagramImpl) SendMessage(ctx context.Context, accessToken string, req SendMessageRequest) (*SendMessageResponse, error) {
	if req.SenderID == "" {
		return nil, fmt.Errorf("sender id is required")
	}
	endpoint := fmt.Sprintf("%s/%s/messages", i.baseURL, url.PathEscape(req.SenderID))

	res, err := i.post(ctx, endpointMessages, endpoint, accessToken, req)
	if err != nil {
		return nil, err
	}

	var out SendMessageResponse
	if err := json.Unmarshal(res.body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &out, nil
}

func (i *instagramImpl) ReplyToComment(ctx context.Context, accessToken, commentID, message string) (*ReplyResponse, error) {
	if commentID == "" {
		return nil, fmt.Errorf("comment id is required")
	}
	endpoint := fmt.Sprintf("%s/%s/replies", i.baseURL, url.PathEscape(commentID))
	body := map[string]string{"message": message}

	res, err := i.post(ctx, endpointReplies, endpoint, accessToken, body)
	if err != nil {
		return nil, err
	}

	var out ReplyResponse
	if err := json.Unmarshal(res.body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &out, nil
}

func (i *instagramImpl) GetUserProfile(ctx context.Context, accessToken, userID string, fields []string) (*UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if len(fields) == 0 {
		fields = ProfileFields
	}
	q := url.Values{}
	q.Set("fields", strings.Join(fields, ","))
	q.Set("access_token", accessToken)
	endpoint := fmt.Sprintf("%s/%s?%s", i.baseURL, url.PathEscape(userID), q.Encode())

	start := time.Now()
	res, err := i.execute(ctx, func() (response, error) {
		body, status, err := i.client.Get(ctx, endpoint, nil)
		return checkStatus(body, status, err)
	})
	metrics.ObserveGraphRequest(endpointProfile, statusLabel(res.status, err), start)
	if err != nil {
		return nil, err
	}

	var out UserProfile
	if err := json.Unmarshal(res.body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &out, nil
}

func (i *instagramImpl) post(ctx context.Context, label, endpoint, accessToken string, body interface{}) (response, error) {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}

	start := time.Now()
	res, err := i.execute(ctx, func() (response, error) {
		b, status, err := i.client.Post(ctx, endpoint, body, headers)
		return checkStatus(b, status, err)
	})
	metrics.ObserveGraphRequest(label, statusLabel(res.status, err), start)
	return res, err
}

func checkStatus(body []byte, status int, err error) (response, error) {
	res := response{body: body, status: status}
	if err != nil {
		return res, err
	}
	if status >= 200 && status < 300 {
		return res, nil
	}
	return res, parseAPIError(status, body)
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var env graphErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Code = env.Error.Code
		apiErr.Subcode = env.Error.ErrorSubcode
		apiErr.Type = env.Error.Type
		apiErr.Message = env.Error.Message
		apiErr.FBTraceID = env.Error.FBTraceID
	}
	return apiErr
}

func statusLabel(status int, err error) string {
	if status == 0 && err != nil {
		return "error"
	}
	return strconv.Itoa(status)
}
