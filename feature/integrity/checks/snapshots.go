package checks

import (
	"context"
	"errors"

	"record-importer/core/storage"
)

// SnapshotReport describes the snapshot bucket and the newest snapshot per resource.
type SnapshotReport struct {
	Bucket string            `json:"bucket"`
	Exists bool              `json:"exists"`
	Latest map[string]string `json:"latest"`
}

// CheckSnapshots reports whether the bucket exists and which snapshot is newest
// for each resource. Resources never archived map to an empty name.
func CheckSnapshots(ctx context.Context, archiver *storage.Archiver, resources ...string) (*SnapshotReport, error) {
	report := &SnapshotReport{
		Bucket: archiver.Bucket(),
		Latest: make(map[string]string, len(resources)),
	}

	exists, err := archiver.BucketExists(ctx)
	if err != nil {
		return nil, err
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	for _, res := range resources {
		name, err := archiver.LatestName(ctx, res)
		if errors.Is(err, storage.ErrNoSnapshot) {
			report.Latest[res] = ""
			continue
		}
		if err != nil {
			return nil, err
		}
		report.Latest[res] = name
	}

	return report, nil
}
