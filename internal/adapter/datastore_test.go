package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReqBuilder = models.DatastoreReqBuilder{AuthKey: "key-1", Collection: models.LibraryCollection}

// datastoreServer проверяет путь и тело запроса и отвечает заданным body.
func datastoreServer(t *testing.T, wantPath, wantBody string, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if wantBody != "" {
			assert.JSONEq(t, wantBody, string(raw))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func newTestDatastoreAdapter(t *testing.T, url string) DatastoreAdapter {
	t.Helper()
	a, err := NewHTTPDatastoreAdapter(config.ClientAdapter{APIURL: url}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"http://api.test/", "http://api.test", false},
		{"  https://api.test:8443 ", "https://api.test:8443", false},
		{"localhost:8080", "http://localhost:8080", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPDatastoreAdapter_Meta(t *testing.T) {
	url := datastoreServer(t, "/api/datastoreMeta",
		`{"authKey":"key-1","collection":"libraryItem"}`,
		http.StatusOK, `{"result":[["a",1700000000000],["b",5]]}`)

	got, err := newTestDatastoreAdapter(t, url).Meta(context.Background(), testReqBuilder.WithCmd(models.DatastoreCmdMeta{}))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, int64(1700000000000), got[0].MTime.UnixMilli())
	assert.Equal(t, time.UnixMilli(5).UTC(), got[1].MTime)
}

func TestHTTPDatastoreAdapter_Get(t *testing.T) {
	url := datastoreServer(t, "/api/datastoreGet",
		`{"authKey":"key-1","collection":"libraryItem","ids":["a"],"all":false}`,
		http.StatusOK, `{"result":[{"_id":"a","name":"A","type":"movie","removed":false,"temp":true,"_mtime":"2024-05-01T10:00:00Z","state":{"timeOffset":12}}]}`)

	got, err := newTestDatastoreAdapter(t, url).Get(context.Background(),
		testReqBuilder.WithCmd(models.DatastoreCmdGet{IDs: []string{"a"}}))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.True(t, got[0].Temp)
	assert.JSONEq(t, `{"timeOffset":12}`, string(got[0].State))
}

func TestHTTPDatastoreAdapter_Put(t *testing.T) {
	item := models.LibItem{ID: "a", Name: "A", TypeName: "movie", MTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	t.Run("acknowledged", func(t *testing.T) {
		url := datastoreServer(t, "/api/datastorePut",
			`{"authKey":"key-1","collection":"libraryItem","changes":[{"_id":"a","name":"A","type":"movie","removed":false,"temp":false,"_mtime":"2024-05-01T10:00:00Z"}]}`,
			http.StatusOK, `{"result":{"success":true}}`)

		err := newTestDatastoreAdapter(t, url).Put(context.Background(),
			testReqBuilder.WithCmd(models.DatastoreCmdPut{Changes: []models.LibItem{item}}))
		assert.NoError(t, err)
	})

	t.Run("not acknowledged", func(t *testing.T) {
		url := datastoreServer(t, "/api/datastorePut", "", http.StatusOK, `{"result":{"success":false}}`)

		err := newTestDatastoreAdapter(t, url).Put(context.Background(),
			testReqBuilder.WithCmd(models.DatastoreCmdPut{Changes: []models.LibItem{item}}))
		assert.ErrorIs(t, err, ErrDatastoreFailure)
	})
}

func TestHTTPDatastoreAdapter_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   error
		wantAPI   *APIError
		notAPIErr bool
	}{
		{
			name:    "envelope error with 401",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"session does not exist","code":1}}`,
			wantErr: ErrDatastoreFailure,
			wantAPI: &APIError{Message: "session does not exist", Code: 1},
		},
		{
			name:    "envelope error with 200",
			status:  http.StatusOK,
			body:    `{"error":{"message":"unknown collection","code":3}}`,
			wantErr: ErrDatastoreFailure,
			wantAPI: &APIError{Message: "unknown collection", Code: 3},
		},
		{
			name:      "plain 502",
			status:    http.StatusBadGateway,
			body:      `bad gateway`,
			wantErr:   ErrNetworkFailure,
			notAPIErr: true,
		},
		{
			name:      "neither result nor error",
			status:    http.StatusOK,
			body:      `{}`,
			wantErr:   ErrDecodeFailure,
			notAPIErr: true,
		},
		{
			name:      "broken mtime pair",
			status:    http.StatusOK,
			body:      `{"result":[["a"]]}`,
			wantErr:   ErrDecodeFailure,
			notAPIErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := datastoreServer(t, "/api/datastoreMeta", "", tt.status, tt.body)

			_, err := newTestDatastoreAdapter(t, url).Meta(context.Background(), testReqBuilder.WithCmd(models.DatastoreCmdMeta{}))

			require.ErrorIs(t, err, tt.wantErr)
			var apiErr *APIError
			if tt.notAPIErr {
				assert.False(t, errors.As(err, &apiErr))
				return
			}
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantAPI, apiErr)
		})
	}
}

func TestNewHTTPDatastoreAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPDatastoreAdapter(config.ClientAdapter{APIURL: "  "}, logger.Nop())
	assert.Error(t, err)
}
