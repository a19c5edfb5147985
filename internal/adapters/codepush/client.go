package codepush

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

const requestTimeout = 5 * time.Minute

// Client publishes update bundles to a CodePush compatible release service.
type Client struct {
	baseURL   string
	accessKey string
	http      *http.Client
	logger    ports.Logger
}

func NewClient(baseURL, accessKey string, logger ports.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		accessKey: accessKey,
		http:      &http.Client{Timeout: requestTimeout},
		logger:    logger,
	}
}

func (c *Client) Release(ctx context.Context, bundleDir string, req domain.ReleaseRequest) (string, error) {
	if _, err := semver.NewConstraint(req.TargetBinaryVersion); err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrInvalidTargetVersion, err.Error()),
			"targetBinaryVersion", req.TargetBinaryVersion,
		)
	}

	archive, err := zipBundle(bundleDir)
	if err != nil {
		return "", err
	}

	body, contentType, err := releaseForm(archive, req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/apps/%s/deployments/%s/releases",
		c.baseURL, req.Descriptor.Name, req.Deployment)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", zerr.Wrap(err, "failed to build release request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "Bearer "+c.accessKey)
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Info(fmt.Sprintf("uploading bundle to %s deployment of %s", req.Deployment, req.Descriptor.Name))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", zerr.Wrap(err, "release upload failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		rejectedErr := zerr.With(zerr.New("release service rejected the upload"), "status", resp.StatusCode)
		return "", zerr.With(rejectedErr, "body", string(msg))
	}

	var result struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", zerr.Wrap(err, "failed to decode release response")
	}
	if result.Label == "" {
		return "", zerr.New("release service returned no label")
	}
	return result.Label, nil
}

// releaseForm builds the multipart body the release endpoint expects: the
// zipped bundle under "package" plus the release metadata fields.
func releaseForm(archive []byte, req domain.ReleaseRequest) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("package", "bundle.zip")
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to create upload form")
	}
	if _, err := part.Write(archive); err != nil {
		return nil, "", zerr.Wrap(err, "failed to write bundle archive")
	}

	fields := map[string]string{
		"appVersion":  req.TargetBinaryVersion,
		"isMandatory": strconv.FormatBool(req.Mandatory),
		"rollout":     strconv.Itoa(req.Rollout),
		"packageHash": req.PackageHash,
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return nil, "", zerr.Wrap(err, "failed to write form field")
		}
	}

	if err := form.Close(); err != nil {
		return nil, "", zerr.Wrap(err, "failed to finalize upload form")
	}
	return body, form.FormDataContentType(), nil
}

// zipBundle archives the bundle tree with forward slash paths so the
// archive is identical across platforms.
func zipBundle(bundleDir string) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	err := filepath.WalkDir(bundleDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(bundleDir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to archive bundle")
	}
	if err := zw.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to finalize bundle archive")
	}
	return buf.Bytes(), nil
}
