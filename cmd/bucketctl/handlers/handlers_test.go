package handlers

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/imamik/bucketctl/internal/config"
	"github.com/imamik/bucketctl/internal/platform/s3"
	"github.com/imamik/bucketctl/internal/ui"
)

// mockStore records calls and returns canned results.
type mockStore struct {
	calls []string

	createErr  error
	existsVal  bool
	existsErr  error
	emptiedVal int
	getData    []byte
	getErr     error
	objects    []s3.ObjectInfo
	buckets    []string
	presignURL string

	putBucket, putKey, putContentType, putOriginal string
	putBody                                        []byte
}

func (m *mockStore) CreateBucket(_ context.Context, bucketName string) error {
	m.calls = append(m.calls, "create:"+bucketName)
	return m.createErr
}

func (m *mockStore) EnsureBucket(_ context.Context, bucketName string) error {
	m.calls = append(m.calls, "ensure:"+bucketName)
	return nil
}

func (m *mockStore) BucketExists(_ context.Context, bucketName string) (bool, error) {
	m.calls = append(m.calls, "exists:"+bucketName)
	return m.existsVal, m.existsErr
}

func (m *mockStore) DeleteBucket(_ context.Context, bucketName string) error {
	m.calls = append(m.calls, "deleteBucket:"+bucketName)
	return nil
}

func (m *mockStore) EmptyBucket(_ context.Context, bucketName string) (int, error) {
	m.calls = append(m.calls, "empty:"+bucketName)
	return m.emptiedVal, nil
}

func (m *mockStore) ListBuckets(_ context.Context) ([]string, error) {
	m.calls = append(m.calls, "listBuckets")
	return m.buckets, nil
}

func (m *mockStore) PutObject(_ context.Context, bucketName, key string, body io.Reader, contentType, originalName string) error {
	m.calls = append(m.calls, "put:"+key)
	m.putBucket = bucketName
	m.putKey = key
	m.putContentType = contentType
	m.putOriginal = originalName
	m.putBody, _ = io.ReadAll(body)
	return nil
}

func (m *mockStore) GetObject(_ context.Context, bucketName, key string) ([]byte, error) {
	m.calls = append(m.calls, "get:"+key)
	return m.getData, m.getErr
}

func (m *mockStore) DeleteObject(_ context.Context, bucketName, key string) error {
	m.calls = append(m.calls, "deleteObject:"+key)
	return nil
}

func (m *mockStore) ListObjects(_ context.Context, bucketName, prefix string) ([]s3.ObjectInfo, error) {
	m.calls = append(m.calls, "list:"+prefix)
	return m.objects, nil
}

func (m *mockStore) PresignGet(_ context.Context, bucketName, key string, _ time.Duration) (string, error) {
	m.calls = append(m.calls, "presign:"+key)
	return m.presignURL, nil
}

// testDeps captures the writers the swapped factory variables point at.
type testDeps struct {
	stdout *bytes.Buffer
	status *bytes.Buffer
	store  *mockStore
}

// withTestDeps swaps the handler factory variables for the duration of
// a test and restores them afterwards.
func withTestDeps(t *testing.T, cfg *config.Config, store *mockStore) *testDeps {
	t.Helper()

	deps := &testDeps{
		stdout: &bytes.Buffer{},
		status: &bytes.Buffer{},
		store:  store,
	}

	origLoad := loadConfig
	origStore := newObjectStore
	origPrinter := newPrinter
	origStdout := stdout
	origWrite := writeFile
	t.Cleanup(func() {
		loadConfig = origLoad
		newObjectStore = origStore
		newPrinter = origPrinter
		stdout = origStdout
		writeFile = origWrite
	})

	loadConfig = func(_ string) (*config.Config, error) { return cfg, nil }
	newObjectStore = func(_ context.Context, _ *config.Config) (ObjectStore, error) { return store, nil }
	newPrinter = func() *ui.Printer { return ui.NewPlainPrinter(deps.status) }
	stdout = deps.stdout

	return deps
}
