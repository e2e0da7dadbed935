package storage

import (
	"context"
	"encoding/json"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NiraJ01010101/chaiBackend/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Kind selects the object folder and whether a duration is probed.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

type Asset struct {
	URL      string
	PublicID string
	Duration float64
}

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	probe     func(localPath string) (float64, error)
}

func NewMinio(ctx context.Context, cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	s := &MinioStore{client: client, bucket: cfg.Bucket, publicURL: cfg.PublicURL, probe: ProbeDuration}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"endpoint": cfg.Endpoint, "bucket": cfg.Bucket}).Info("connected to MinIO")
	return s, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "create bucket")
	}
	return nil
}

// Upload stores the local file and removes it afterwards, whatever the
// outcome. An empty path uploads nothing and returns nil.
func (s *MinioStore) Upload(ctx context.Context, localPath string, kind Kind) (*Asset, error) {
	if localPath == "" {
		return nil, nil
	}
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", localPath).Warn("failed to remove temp upload")
		}
	}()

	publicID := NewPublicID(localPath)
	object := ObjectName(kind, publicID)
	if _, err := s.client.FPutObject(ctx, s.bucket, object, localPath, minio.PutObjectOptions{
		ContentType: contentType(localPath),
	}); err != nil {
		return nil, errors.Wrapf(err, "upload %s", object)
	}

	asset := &Asset{
		URL:      s.publicURL + "/" + s.bucket + "/" + object,
		PublicID: publicID,
	}
	if kind == KindVideo && s.probe != nil {
		d, err := s.probe(localPath)
		if err != nil {
			logrus.WithError(err).WithField("object", object).Warn("failed to probe video duration")
		}
		asset.Duration = d
	}
	return asset, nil
}

func (s *MinioStore) Delete(ctx context.Context, publicID string, kind Kind) error {
	if publicID == "" {
		return nil
	}
	object := ObjectName(kind, publicID)
	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "delete %s", object)
	}
	return nil
}

func NewPublicID(localPath string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
}

func ObjectName(kind Kind, publicID string) string {
	return string(kind) + "/" + publicID
}

// PublicIDFromURL recovers the id Upload embedded in an asset URL.
func PublicIDFromURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return path.Base(url)
}

func contentType(localPath string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// ProbeDuration asks ffprobe for the container duration in seconds.
func ProbeDuration(localPath string) (float64, error) {
	out, err := ffmpeg.Probe(localPath)
	if err != nil {
		return 0, errors.WithMessage(err, "ffprobe")
	}
	return ParseProbeDuration(out)
}

func ParseProbeDuration(probeJSON string) (float64, error) {
	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probeJSON), &probe); err != nil {
		return 0, errors.Wrap(err, "decode ffprobe output")
	}
	if probe.Format.Duration == "" {
		return 0, errors.New("ffprobe output has no duration")
	}
	d, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse duration")
	}
	return d, nil
}
