package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `
<html>
	<head><title>Senior Go Developer - Initech</title></head>
	<body>
		<nav>Jobs Home Login</nav>
		<h1>Senior Go Developer</h1>
		<div class="job-description">
			<p>We are hiring a remote Senior Go Developer in Austin, TX.</p>
			<p>Required: Go, PostgreSQL, Kubernetes and Docker experience.</p>
		</div>
		<footer>About us</footer>
	</body>
</html>`

func TestFetchPageExtractsPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	page, err := FetchPage(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Equal(t, "Senior Go Developer", page.Title)
	assert.Contains(t, page.Text, "PostgreSQL, Kubernetes and Docker")
	assert.NotContains(t, page.Text, "Jobs Home Login")
	assert.NotContains(t, page.Text, "About us")
}

func TestFetchPageInvalidURL(t *testing.T) {
	_, err := FetchPage(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestFetchPageHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := FetchPage(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchPageBodyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div>Plain posting text here.</div></body></html>`))
	}))
	defer server.Close()

	page, err := FetchPage(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, page.Text, "Plain posting text here")
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser(&Page{Text: "loading..."}))

	long := make([]byte, minTextLength)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, NeedsBrowser(&Page{Text: string(long)}))
}
