package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewerVersion(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"v1.0.0", "v1.0.1", true},
		{"v1.0.0", "v1.0.0", false},
		{"v1.2.0", "v1.1.9", false},
		{"1.0.0", "v1.1.0", true},
		{"v1.0.0", "2.0.0", true},
		{"(devel)", "v1.0.0", false},
		{"v1.0.0", "not-a-version", false},
		{"", "v1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tt.current, tt.latest), func(t *testing.T) {
			assert.Equal(t, tt.want, newerVersion(tt.current, tt.latest))
		})
	}
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "arm64", "quizdeck_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "quizdeck_Darwin_all.tar.gz", false},
		{"linux", "amd64", "quizdeck_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "quizdeck_Linux_arm64.tar.gz", false},
		{"linux", "386", "quizdeck_Linux_i386.tar.gz", false},
		{"windows", "amd64", "quizdeck_Windows_x86_64.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"_"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	data := []byte(`abc123  quizdeck_Linux_x86_64.tar.gz
def456  quizdeck_Darwin_all.tar.gz

malformed-line
`)
	got := parseChecksums(data)
	require.Len(t, got, 2)
	assert.Equal(t, "abc123", got["quizdeck_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", got["quizdeck_Darwin_all.tar.gz"])
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release payload")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "deadbeef")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func makeTarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, data := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o755,
			Size:     int64(len(data)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func makeZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractBinaryTarGz(t *testing.T) {
	binary := []byte("fake elf binary")
	archive := makeTarGz(t, map[string][]byte{
		"README.md": []byte("docs"),
		"quizdeck":  binary,
	})

	got, err := extractBinary(archive, "quizdeck_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, binary, got)
}

func TestExtractBinaryZip(t *testing.T) {
	binary := []byte("fake pe binary")
	archive := makeZip(t, map[string][]byte{
		"quizdeck.exe": binary,
		"LICENSE":      []byte("mit"),
	})

	got, err := extractBinary(archive, "quizdeck_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, binary, got)
}

func TestExtractBinaryMissing(t *testing.T) {
	archive := makeTarGz(t, map[string][]byte{"other-tool": []byte("nope")})
	_, err := extractBinary(archive, "quizdeck_Linux_x86_64.tar.gz")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ishara/quizdeck/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name":"v1.4.0","html_url":"https://github.com/ishara/quizdeck/releases/tag/v1.4.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL), WithHTTPClient(srv.Client()))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker()
	result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestUpdateEndToEnd(t *testing.T) {
	binary := []byte("new quizdeck build")
	asset, err := assetName()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	name := "quizdeck"
	if filepath.Ext(asset) == ".zip" {
		name = "quizdeck.exe"
	}
	var archive []byte
	if filepath.Ext(asset) == ".zip" {
		archive = makeZip(t, map[string][]byte{name: binary})
	} else {
		archive = makeTarGz(t, map[string][]byte{name: binary})
	}
	sum := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/ishara/quizdeck/releases/latest":
			fmt.Fprint(w, `{"tag_name":"v2.0.0","html_url":""}`)
		case r.URL.Path == "/ishara/quizdeck/releases/download/v2.0.0/"+asset:
			_, _ = w.Write(archive)
		case r.URL.Path == "/ishara/quizdeck/releases/download/v2.0.0/checksums.txt":
			fmt.Fprint(w, checksums)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	target := filepath.Join(t.TempDir(), "quizdeck")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0o755))

	c := NewChecker(
		WithBaseURLs(srv.URL, srv.URL),
		WithHTTPClient(srv.Client()),
		WithExecPath(func() (string, error) { return target, nil }),
	)

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binary, got)

	require.NotEmpty(t, stages)
	assert.Equal(t, "done", stages[len(stages)-1])
}

func TestUpdateAlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v1.0.0","html_url":""}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL), WithHTTPClient(srv.Client()))
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdateDevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateBadChecksum(t *testing.T) {
	asset, err := assetName()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}
	archive := makeTarGz(t, map[string][]byte{"quizdeck": []byte("payload")})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/ishara/quizdeck/releases/download/v2.0.0/"+asset:
			_, _ = w.Write(archive)
		case r.URL.Path == "/ishara/quizdeck/releases/download/v2.0.0/checksums.txt":
			fmt.Fprintf(w, "%064d  %s\n", 0, asset)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL), WithHTTPClient(srv.Client()))
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v2.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}
