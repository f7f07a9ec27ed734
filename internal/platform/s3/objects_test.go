package s3

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestPutObject(t *testing.T) {
	t.Parallel()

	var gotBody, gotContentType, gotMetadata string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			w.WriteHeader(400)
			return
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		gotMetadata = r.Header.Get("X-Amz-Meta-Original-Filename")
		w.WriteHeader(200)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	err := client.PutObject(context.Background(), "test-bucket", "uploads/a.txt",
		strings.NewReader("hello"), "text/plain", "a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != "hello" {
		t.Errorf("expected body 'hello', got %q", gotBody)
	}
	if gotContentType != "text/plain" {
		t.Errorf("expected content type text/plain, got %q", gotContentType)
	}
	if gotMetadata != "a.txt" {
		t.Errorf("expected original-filename metadata a.txt, got %q", gotMetadata)
	}
}

func TestGetObject(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "GET" && r.URL.Path == "/test-bucket/uploads/a.txt" {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("object contents"))
			return
		}
		w.WriteHeader(404)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	data, err := client.GetObject(context.Background(), "test-bucket", "uploads/a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "object contents" {
		t.Errorf("unexpected contents: %q", data)
	}
}

func TestGetObject_NotFound(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 404, `<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>NoSuchKey</Code>
  <Message>The specified key does not exist.</Message>
</Error>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	_, err := client.GetObject(context.Background(), "test-bucket", "missing.txt")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound to classify the error, got: %v", err)
	}
}

func TestDeleteObject(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "DELETE" && r.URL.Path == "/test-bucket/uploads/a.txt" {
			w.WriteHeader(204)
			return
		}
		w.WriteHeader(400)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	if err := client.DeleteObject(context.Background(), "test-bucket", "uploads/a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListObjects_WithPrefix(t *testing.T) {
	t.Parallel()

	var gotPrefix string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefix = r.URL.Query().Get("prefix")
		xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
  <Name>test-bucket</Name>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>uploads/a.txt</Key><Size>5</Size></Contents>
  <Contents><Key>uploads/b.txt</Key><Size>7</Size></Contents>
</ListBucketResult>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	objects, err := client.ListObjects(context.Background(), "test-bucket", "uploads/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPrefix != "uploads/" {
		t.Errorf("expected prefix uploads/, got %q", gotPrefix)
	}
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objects))
	}
	if objects[0].Key != "uploads/a.txt" || objects[0].Size != 5 {
		t.Errorf("unexpected first object: %+v", objects[0])
	}
	if objects[1].Key != "uploads/b.txt" || objects[1].Size != 7 {
		t.Errorf("unexpected second object: %+v", objects[1])
	}
}

func TestListObjects_Empty(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		xmlResponse(w, 200, `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
  <Name>test-bucket</Name>
  <IsTruncated>false</IsTruncated>
</ListBucketResult>`)
	})

	client, server := testClient(t, handler)
	defer server.Close()

	objects, err := client.ListObjects(context.Background(), "test-bucket", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objects) != 0 {
		t.Errorf("expected no objects, got %v", objects)
	}
}
