package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkb/rag-be/types"
)

func TestFetchDocument_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewFetchService(5*time.Second, t.TempDir())
	_, err := svc.FetchDocument(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrFetch))
}

func TestFetchDocument_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := NewFetchService(5*time.Second, t.TempDir())
	_, err := svc.FetchDocument(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrFetch))
}

func TestFetchDocument_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	svc := NewFetchService(50*time.Millisecond, t.TempDir())
	_, err := svc.FetchDocument(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTimeout))
}

func TestFetchDocument_UnparseablePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a pdf"))
	}))
	defer server.Close()

	tempDir := t.TempDir()
	svc := NewFetchService(5*time.Second, tempDir)
	_, err := svc.FetchDocument(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExtraction))

	// The transient copy must be gone on the error path too.
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp payload must not be retained")
}

func TestFetchDocument_NoTempRetentionOnFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tempDir := t.TempDir()
	svc := NewFetchService(5*time.Second, tempDir)
	_, err := svc.FetchDocument(context.Background(), server.URL)
	require.Error(t, err)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
