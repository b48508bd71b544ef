package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_template_202610/pkg/net"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestUpstream(t *testing.T) *httptest.Server {
	r := gin.New()
	r.GET("/hello", func(c *gin.Context) {
		c.String(http.StatusNotFound, "not here")
	})
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, c.GetHeader("Content-Type")+"|"+string(body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Setenv("APP_LOGGING_LEVEL", "error")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"template"}, args...))
	return out.String(), err
}

func TestHttpGet(t *testing.T) {
	srv := newTestUpstream(t)

	out, err := runApp(t, "", "http", "get", srv.URL+"/hello")
	require.NoError(t, err)
	assert.Equal(t, "not here", out)
}

func TestHttpPost(t *testing.T) {
	srv := newTestUpstream(t)

	file := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"from":"file"}`), 0o644))

	tests := []struct {
		name  string
		arg   string
		stdin string
		want  string
	}{
		{name: "字面量", arg: `{"a":1}`, want: `application/json|{"a":1}`},
		{name: "文件", arg: "@" + file, want: `application/json|{"from":"file"}`},
		{name: "标准输入", arg: "-", stdin: `{"from":"stdin"}`, want: `application/json|{"from":"stdin"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.stdin, "http", "post", srv.URL+"/echo", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHttpGet_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := runApp(t, "", "http", "get", url)
	require.Error(t, err)
	assert.ErrorIs(t, err, net.ErrTransport)
}

func TestDatabasePing(t *testing.T) {
	t.Setenv("APP_DATABASE_DRIVER", "sqlite")
	t.Setenv("APP_DATABASE_DSN", filepath.Join(t.TempDir(), "app.db"))
	t.Setenv("APP_DATABASE_LOG_LEVEL", "silent")

	out, err := runApp(t, "", "db", "ping")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("APP_DATABASE_DRIVER", "mysql")

	_, err := runApp(t, "", "http", "get", "http://localhost")
	assert.Error(t, err)
}

func TestReadPayload_MissingFile(t *testing.T) {
	_, err := readPayload("@"+filepath.Join(t.TempDir(), "nope.json"), strings.NewReader(""))
	assert.Error(t, err)
}
