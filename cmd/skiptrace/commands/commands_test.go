package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSkipEngine(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Output":{"Identity":{
			"Phones":{"Phone":{"Phone":"5125550100","PhoneType":"M"},"Phone2":{"Phone":"5125550199","PhoneType":"L"}},
			"Emails":{"Email":{"Email":"jane@example.com"}}}}}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setEnv(t *testing.T, endpoint string) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SKIPENGINE_API_KEY", "key")
	t.Setenv("SKIPENGINE_ENDPOINT", endpoint)
	t.Setenv("SKIPTRACE_DELAY", "0s")
}

func TestLookupCommandPrintsJSON(t *testing.T) {
	setEnv(t, fakeSkipEngine(t).URL)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"lookup", "--first", "Jane", "--last", "Doe", "--state", "texas", "--zip", "78701"})
	require.NoError(t, root.Execute())

	assert.JSONEq(t, `{"mobile_phone":"512-555-0100","landline":"512-555-0199","email":"jane@example.com"}`, out.String())
}

func TestRunCommandEnrichesFile(t *testing.T) {
	setEnv(t, fakeSkipEngine(t).URL)

	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"First Name,Last Name,Street Address,City,State,Zip\nJane,Doe,1 Main,Austin,TX,78701\n"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"run", "--file", path, "--delay", "0s"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mobile Phone,Landline,Email")
	assert.Contains(t, string(data), "512-555-0100,512-555-0199,jane@example.com")
}

func TestRunCommandMissingFile(t *testing.T) {
	setEnv(t, fakeSkipEngine(t).URL)

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"run", "--file", filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, root.Execute())
}

func TestLookupCommandDisabledWithoutKey(t *testing.T) {
	setEnv(t, "http://127.0.0.1:1")
	t.Setenv("SKIPENGINE_API_KEY", "")
	t.Setenv("API_KEY", "")

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"lookup", "--first", "Jane"})
	assert.ErrorIs(t, root.Execute(), errDisabled)
}
