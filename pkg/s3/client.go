// Package s3 lists and downloads objects from a public S3 bucket over plain
// HTTPS. Requests are unsigned; the NOAA GOES buckets allow anonymous reads,
// so no AWS SDK or credentials are involved.
package s3

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "s3")

// DefaultBucket holds GOES-19 ABI and GLM products.
const DefaultBucket = "noaa-goes19"

// Client accesses one public bucket.
type Client struct {
	Bucket     string
	HTTPClient *http.Client

	// BaseURL overrides the bucket endpoint, for tests.
	BaseURL string
}

// NewClient creates a client for the given bucket, or DefaultBucket when
// empty.
func NewClient(bucket string) *Client {
	if bucket == "" {
		bucket = DefaultBucket
	}
	return &Client{
		Bucket:     bucket,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com", c.Bucket)
}

type listBucketResult struct {
	XMLName               xml.Name `xml:"ListBucketResult"`
	IsTruncated           bool     `xml:"IsTruncated"`
	NextContinuationToken string   `xml:"NextContinuationToken"`
	Contents              []struct {
		Key  string `xml:"Key"`
		Size int64  `xml:"Size"`
	} `xml:"Contents"`
}

// List returns all object keys under prefix, following continuation tokens.
func (c *Client) List(prefix string) ([]string, error) {
	var keys []string
	token := ""
	for {
		listURL := fmt.Sprintf("%s/?list-type=2&prefix=%s", c.endpoint(), url.QueryEscape(prefix))
		if token != "" {
			listURL += "&continuation-token=" + url.QueryEscape(token)
		}

		resp, err := c.HTTPClient.Get(listURL)
		if err != nil {
			return nil, fmt.Errorf("unable to list bucket %s: %w", c.Bucket, err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("unable to list bucket %s: HTTP%d", c.Bucket, resp.StatusCode)
		}

		var result listBucketResult
		err = xml.NewDecoder(resp.Body).Decode(&result)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("unable to parse bucket listing: %w", err)
		}

		for _, obj := range result.Contents {
			keys = append(keys, obj.Key)
		}
		if !result.IsTruncated || result.NextContinuationToken == "" {
			break
		}
		token = result.NextContinuationToken
	}

	log.WithFields(logrus.Fields{"prefix": prefix, "keys": len(keys)}).Debug("Listed bucket prefix")
	return keys, nil
}

// Download fetches key into dir and returns the local path. A file that is
// already present is reused without touching the network.
func (c *Client) Download(key, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	localPath := filepath.Join(dir, filepath.Base(key))
	if _, err := os.Stat(localPath); err == nil {
		log.WithField("path", localPath).Debug("File already downloaded")
		return localPath, nil
	}

	objectURL := c.endpoint() + "/" + key
	resp, err := c.HTTPClient.Get(objectURL)
	if err != nil {
		return "", fmt.Errorf("unable to download %s: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unable to download %s: HTTP%d", key, resp.StatusCode)
	}

	dst, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(dst, resp.Body)
	closeErr := dst.Close()
	if err != nil {
		_ = os.Remove(localPath)
		return "", fmt.Errorf("unable to write %s: %w", localPath, err)
	}
	if closeErr != nil {
		_ = os.Remove(localPath)
		return "", closeErr
	}

	log.WithFields(logrus.Fields{"key": key, "bytes": written}).Info("Downloaded object")
	return localPath, nil
}
