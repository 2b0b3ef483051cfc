package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/failures"
	"github.com/temirov/utilkit/internal/structdata"
)

const (
	getOperationNameConstant         = "SendGetRequest"
	postOperationNameConstant        = "SendPostRequest"
	requestBuildFailureMessage       = "unable to build HTTP request"
	requestFailureMessageConstant    = "HTTP request failed"
	statusFailureMessageConstant     = "HTTP response reported failure status"
	bodyReadFailureMessageConstant   = "unable to read HTTP response body"
	bodyDecodeFailureMessageConstant = "unable to decode HTTP response body"
	payloadEncodeFailureMessage      = "unable to encode HTTP request payload"
	statusFailureTemplateConstant    = "unexpected status %s"
	logFieldURLConstant              = "url"
	logFieldMethodConstant           = "method"
	logFieldStatusConstant           = "status"
	contentTypeHeaderNameConstant    = "Content-Type"
	jsonContentTypeConstant          = "application/json"
	defaultRequestTimeoutConstant    = 10 * time.Second
)

// DefaultRequestTimeout bounds every request issued with a default transport.
const DefaultRequestTimeout = defaultRequestTimeoutConstant

// Transport executes a single HTTP exchange.
type Transport interface {
	Do(request *http.Request) (*http.Response, error)
}

// Client issues synchronous JSON-in, JSON-out HTTP requests.
type Client struct {
	logger    *zap.Logger
	transport Transport
}

// NewClient constructs a Client; a nil transport falls back to an http.Client
// with the default ten-second timeout.
func NewClient(logger *zap.Logger, transport Transport) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if transport == nil {
		transport = &http.Client{Timeout: DefaultRequestTimeout}
	}
	return &Client{logger: logger, transport: transport}
}

// Get issues a GET request with optional query parameters and headers and
// returns the response body decoded as JSON.
func (client *Client) Get(executionContext context.Context, requestURL string, queryParameters map[string]string, headers map[string]string) (structdata.Value, error) {
	resolvedURL := requestURL
	if len(queryParameters) > 0 {
		parsedURL, parseError := url.Parse(requestURL)
		if parseError != nil {
			client.logger.Error(requestBuildFailureMessage, zap.String(logFieldURLConstant, requestURL), zap.Error(parseError))
			return structdata.Value{}, failures.NewNetwork(getOperationNameConstant, parseError)
		}
		queryValues := parsedURL.Query()
		for parameterName, parameterValue := range queryParameters {
			queryValues.Set(parameterName, parameterValue)
		}
		parsedURL.RawQuery = queryValues.Encode()
		resolvedURL = parsedURL.String()
	}

	request, requestError := http.NewRequestWithContext(executionContext, http.MethodGet, resolvedURL, nil)
	if requestError != nil {
		client.logger.Error(requestBuildFailureMessage, zap.String(logFieldURLConstant, requestURL), zap.Error(requestError))
		return structdata.Value{}, failures.NewNetwork(getOperationNameConstant, requestError)
	}

	return client.execute(request, headers, getOperationNameConstant)
}

// Post issues a POST request carrying requestBody serialized as JSON and
// returns the response body decoded as JSON.
func (client *Client) Post(executionContext context.Context, requestURL string, requestBody structdata.Value, headers map[string]string) (structdata.Value, error) {
	payloadBytes, encodeError := structdata.Encode(requestBody)
	if encodeError != nil {
		client.logger.Error(payloadEncodeFailureMessage, zap.String(logFieldURLConstant, requestURL), zap.Error(encodeError))
		return structdata.Value{}, failures.NewParse(postOperationNameConstant, encodeError)
	}

	request, requestError := http.NewRequestWithContext(executionContext, http.MethodPost, requestURL, bytes.NewReader(payloadBytes))
	if requestError != nil {
		client.logger.Error(requestBuildFailureMessage, zap.String(logFieldURLConstant, requestURL), zap.Error(requestError))
		return structdata.Value{}, failures.NewNetwork(postOperationNameConstant, requestError)
	}
	request.Header.Set(contentTypeHeaderNameConstant, jsonContentTypeConstant)

	return client.execute(request, headers, postOperationNameConstant)
}

func (client *Client) execute(request *http.Request, headers map[string]string, operationName string) (structdata.Value, error) {
	for headerName, headerValue := range headers {
		request.Header.Set(headerName, headerValue)
	}

	response, transportError := client.transport.Do(request)
	if transportError != nil {
		client.logger.Error(requestFailureMessageConstant,
			zap.String(logFieldMethodConstant, request.Method),
			zap.String(logFieldURLConstant, request.URL.String()),
			zap.Error(transportError))
		return structdata.Value{}, failures.NewNetwork(operationName, transportError)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		statusError := fmt.Errorf(statusFailureTemplateConstant, response.Status)
		client.logger.Error(statusFailureMessageConstant,
			zap.String(logFieldMethodConstant, request.Method),
			zap.String(logFieldURLConstant, request.URL.String()),
			zap.String(logFieldStatusConstant, response.Status))
		return structdata.Value{}, failures.NewNetwork(operationName, statusError)
	}

	bodyBytes, readError := io.ReadAll(response.Body)
	if readError != nil {
		client.logger.Error(bodyReadFailureMessageConstant, zap.String(logFieldURLConstant, request.URL.String()), zap.Error(readError))
		return structdata.Value{}, failures.NewNetwork(operationName, readError)
	}

	decodedValue, decodeError := structdata.Decode(bodyBytes)
	if decodeError != nil {
		client.logger.Error(bodyDecodeFailureMessageConstant, zap.String(logFieldURLConstant, request.URL.String()), zap.Error(decodeError))
		return structdata.Value{}, failures.NewParse(operationName, decodeError)
	}

	return decodedValue, nil
}
