package s3

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-bucket")
	c.BaseURL = srv.URL
	return c, srv
}

func TestListFollowsContinuationTokens(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("list-type"))
		require.Equal(t, "ABI-L2-CMIPF/2025/335/00/", r.URL.Query().Get("prefix"))

		if r.URL.Query().Get("continuation-token") == "" {
			fmt.Fprint(w, `<?xml version="1.0"?>
<ListBucketResult>
  <IsTruncated>true</IsTruncated>
  <NextContinuationToken>tok1</NextContinuationToken>
  <Contents><Key>a.nc</Key><Size>10</Size></Contents>
</ListBucketResult>`)
			return
		}
		fmt.Fprint(w, `<?xml version="1.0"?>
<ListBucketResult>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>b.nc</Key><Size>20</Size></Contents>
</ListBucketResult>`)
	}))
	defer srv.Close()

	keys, err := c.List("ABI-L2-CMIPF/2025/335/00/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.nc", "b.nc"}, keys)
}

func TestListHTTPError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := c.List("whatever/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP403")
}

func TestDownloadWritesAndReuses(t *testing.T) {
	hits := 0
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/prefix/scene.nc", r.URL.Path)
		fmt.Fprint(w, "netcdf-bytes")
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := c.Download("prefix/scene.nc", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scene.nc"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "netcdf-bytes", string(data))

	// A second download must be served from disk.
	_, err = c.Download("prefix/scene.nc", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestFindABIUsesFirstKey(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<ListBucketResult>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>first.nc</Key></Contents>
  <Contents><Key>second.nc</Key></Contents>
</ListBucketResult>`)
	}))
	defer srv.Close()

	key, err := c.FindABI(2025, 335, 0, 13)
	require.NoError(t, err)
	assert.Equal(t, "first.nc", key)
}

func TestFindGLMNoObjects(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><ListBucketResult><IsTruncated>false</IsTruncated></ListBucketResult>`)
	}))
	defer srv.Close()

	_, err := c.FindGLM(2025, 335, 0)
	require.Error(t, err)
	var noObj *NoObjectsError
	require.ErrorAs(t, err, &noObj)
	assert.Equal(t, "test-bucket", noObj.Bucket)
}
