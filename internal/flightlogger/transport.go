// Package flightlogger
package flightlogger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TransportError 表示可重试的瞬时传输错误(连接错误, 服务器错误, 限流)
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport error: server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// QueryError 表示查询本身被服务端拒绝, 属于数据质量问题, 不会重试
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query rejected by server: %v", e.Messages)
}

type Transport interface {
	// Execute 执行一次查询, 返回响应的data对象
	Execute(query string, variables map[string]interface{}) (map[string]interface{}, error)
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type HttpTransport struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewHttpTransport(endpoint string, token string, timeout time.Duration) *HttpTransport {
	return &HttpTransport{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
	}
}

func (transport *HttpTransport) Execute(query string, variables map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(&graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("error encoding request: %w", err)
	}

	request, err := http.NewRequest(http.MethodPost, transport.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", transport.token)

	response, err := transport.client.Do(request)
	if err != nil {
		// 连接错误视为瞬时传输错误
		return nil, &TransportError{Err: err}
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(response.Body)

	if response.StatusCode >= http.StatusInternalServerError || response.StatusCode == http.StatusTooManyRequests {
		return nil, &TransportError{StatusCode: response.StatusCode}
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned unexpected status %d", response.StatusCode)
	}

	payload := &graphQLResponse{}
	if err := json.NewDecoder(response.Body).Decode(payload); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	if len(payload.Errors) > 0 {
		messages := make([]string, 0, len(payload.Errors))
		for _, queryError := range payload.Errors {
			messages = append(messages, queryError.Message)
		}
		return nil, &QueryError{Messages: messages}
	}

	if payload.Data == nil {
		return nil, fmt.Errorf("server returned no data object")
	}

	return payload.Data, nil
}
