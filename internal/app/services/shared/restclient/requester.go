package restclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"

	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/exceptions"
	"climed-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Requester performs single request/response round trips against the
// clinic API. It never retries and keeps no state between calls.
type Requester struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewRequester(baseUrl string, httpClient *http.Client, logger *zap.Logger) *Requester {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Requester{
		BaseUrl:    baseUrl,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

// FetchJSON sends a GET to path and decodes the whole response body into
// out. Non-2xx statuses and bodies that are not the expected JSON document
// are errors.
func (r *Requester) FetchJSON(ctx context.Context, operation, resourceName, path string, query url.Values, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)

	endpoint := r.BaseUrl + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		r.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	r.setHeaders(req, requestID, false)

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.Log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUrlKey, endpoint),
			zap.Error(err),
		)
		return transportError(err)
	}
	defer resp.Body.Close()

	if !isSuccessStatus(resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		r.Log.Error(operation+" unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrGetClinicResource(resp.StatusCode, resourceName)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.Log.Error(operation+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}

	if err := decodeDocument(body, out); err != nil {
		r.Log.Error(operation+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingResponseLengthKey, len(body)),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, resourceName)
	}
	return nil
}

// Send issues a mutating request with a JSON body. It reports whether the
// clinic API answered with a 2xx status; the response body is discarded
// unread.
func (r *Requester) Send(ctx context.Context, operation, method, path string, payload interface{}) (bool, error) {
	requestID := utils.RequestIDFromContext(ctx)

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		r.Log.Error(operation+" error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := r.BaseUrl + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(requestJSON))
	if err != nil {
		r.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrCreateHTTPRequest(err)
	}
	r.setHeaders(req, requestID, true)

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.Log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUrlKey, endpoint),
			zap.Error(err),
		)
		return false, transportError(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if !isSuccessStatus(resp.StatusCode) {
		r.Log.Warn(operation+" rejected by clinic API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return false, nil
	}
	return true, nil
}

func (r *Requester) setHeaders(req *http.Request, requestID string, hasBody bool) {
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if hasBody {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
}

// transportError tells a request that ran out of time apart from a clinic
// API that could not be reached.
func transportError(err error) *exceptions.CustomError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

var jsonNull = []byte("null")

func decodeDocument(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return errEmptyBody
	}
	if bytes.Equal(trimmed, jsonNull) {
		return errNullBody
	}
	return json.Unmarshal(trimmed, out)
}
