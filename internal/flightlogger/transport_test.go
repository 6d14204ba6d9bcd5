// Package flightlogger
package flightlogger

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpTransportExecute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		request := &graphQLRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Contains(t, request.Query, "aircrafts")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"aircrafts": map[string]interface{}{"nodes": []interface{}{}},
			},
		})
	}))
	defer server.Close()

	transport := NewHttpTransport(server.URL, "test-token", time.Second)
	data, err := transport.Execute("query { aircrafts { nodes { id } } }", nil)
	require.NoError(t, err)
	assert.Contains(t, data, "aircrafts")
}

func TestHttpTransportServerErrorIsRetryable(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusTooManyRequests} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		transport := NewHttpTransport(server.URL, "test-token", time.Second)
		_, err := transport.Execute("query", nil)
		server.Close()

		var transportError *TransportError
		require.ErrorAs(t, err, &transportError, "status %d", status)
		assert.Equal(t, status, transportError.StatusCode)
	}
}

func TestHttpTransportConnectionErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	transport := NewHttpTransport(server.URL, "test-token", time.Second)
	_, err := transport.Execute("query", nil)

	var transportError *TransportError
	require.ErrorAs(t, err, &transportError)
	assert.Equal(t, 0, transportError.StatusCode)
}

func TestHttpTransportClientErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	transport := NewHttpTransport(server.URL, "bad-token", time.Second)
	_, err := transport.Execute("query", nil)
	require.Error(t, err)

	var transportError *TransportError
	assert.False(t, errors.As(err, &transportError))
}

func TestHttpTransportQueryError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{
				{"message": "Field 'bogus' doesn't exist on type 'Query'"},
			},
		})
	}))
	defer server.Close()

	transport := NewHttpTransport(server.URL, "test-token", time.Second)
	_, err := transport.Execute("query", nil)

	var queryError *QueryError
	require.ErrorAs(t, err, &queryError)
	assert.Contains(t, queryError.Messages[0], "bogus")
}
