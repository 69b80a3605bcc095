package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"record-importer/core/reconcile"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ErrNoSnapshot is returned when a resource has never been archived.
var ErrNoSnapshot = errors.New("no snapshot found")

// Latest selects the most recent snapshot when passed as an object name.
const Latest = "latest"

// Archiver stores raw remote payloads as JSON objects and reads them back.
//
// Objects are named <prefix>/<resource>/<UTC timestamp>-<uuid>.json so that
// lexical order is chronological order.
type Archiver struct {
	client Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewArchiver creates an archiver writing to bucket under prefix.
func NewArchiver(client Client, bucket, prefix string) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

// Bucket returns the snapshot bucket name.
func (a *Archiver) Bucket() string {
	return a.bucket
}

// BucketExists reports whether the snapshot bucket exists.
func (a *Archiver) BucketExists(ctx context.Context) (bool, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	return exists, nil
}

// EnsureBucket creates the snapshot bucket when it does not exist.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.BucketExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Archive writes records as one snapshot object for resource.
func (a *Archiver) Archive(ctx context.Context, resource string, records []reconcile.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := path.Join(a.resourcePrefix(resource), fmt.Sprintf("%s-%s.json", a.now().UTC().Format("20060102T150405Z"), uuid.NewString()))

	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	return nil
}

// List returns the snapshot object names for resource, oldest first.
func (a *Archiver) List(ctx context.Context, resource string) ([]string, error) {
	var names []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    a.resourcePrefix(resource) + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			names = append(names, obj.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LatestName returns the newest snapshot object name for resource.
func (a *Archiver) LatestName(ctx context.Context, resource string) (string, error) {
	names, err := a.List(ctx, resource)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s: %w", resource, ErrNoSnapshot)
	}
	return names[len(names)-1], nil
}

// Load reads a snapshot object back into raw records.
func (a *Archiver) Load(ctx context.Context, objectName string) ([]reconcile.Record, error) {
	reader, err := a.client.GetObject(ctx, a.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", objectName, err)
	}

	var records []reconcile.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", objectName, err)
	}
	return records, nil
}

// Source replays a snapshot as an import source. objectName may be Latest.
func (a *Archiver) Source(resource, objectName string) reconcile.Source {
	return reconcile.SourceFunc(func(ctx context.Context) ([]reconcile.Record, error) {
		name := objectName
		if name == "" || name == Latest {
			var err error
			if name, err = a.LatestName(ctx, resource); err != nil {
				return nil, err
			}
		}
		return a.Load(ctx, name)
	})
}

func (a *Archiver) resourcePrefix(resource string) string {
	if a.prefix == "" {
		return resource
	}
	return a.prefix + "/" + resource
}
