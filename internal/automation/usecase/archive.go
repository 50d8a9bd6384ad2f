package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"automation-srv/pkg/minio"

	"github.com/google/uuid"
)

const archivePrefix = "dropped"

func archiveObjectName(now time.Time) string {
	return fmt.Sprintf("%s/%s/%s.json", archivePrefix, now.UTC().Format("2006/01/02"), uuid.New().String())
}

// archive stores the body of a dropped message. Best effort.
func (uc *implUseCase) archive(ctx context.Context, reason string, body []byte) {
	if uc.minio == nil {
		return
	}

	info, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.bucket,
		ObjectName:  archiveObjectName(time.Now()),
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"drop-reason": reason},
	})
	if err != nil {
		uc.l.Warnf(ctx, "automation.usecase.archive: %v", err)
		return
	}
	uc.l.Debugf(ctx, "automation.usecase.archive: stored %s (%s)", info.ObjectName, reason)
}
