package s3

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ABIPrefix returns the key prefix of full-disk cloud and moisture imagery
// (ABI L2 CMIPF, mode 6) for one band and hour.
func ABIPrefix(year, dayOfYear, hour, band int) string {
	return fmt.Sprintf("ABI-L2-CMIPF/%04d/%03d/%02d/OR_ABI-L2-CMIPF-M6C%02d_G19_",
		year, dayOfYear, hour, band)
}

// GLMPrefix returns the key prefix of GLM lightning files for one hour.
func GLMPrefix(year, dayOfYear, hour int) string {
	return fmt.Sprintf("GLM-L2-LCFA/%04d/%03d/%02d/OR_GLM-L2-LCFA_G19_",
		year, dayOfYear, hour)
}

var sceneTimeRe = regexp.MustCompile(`_s(\d{4})(\d{3})(\d{2})(\d{2})`)

// SceneTime extracts the scan start time encoded in a GOES object name,
// e.g. OR_ABI-L2-CMIPF-M6C13_G19_s20253350000208_... -> 2025-12-01 00:00 UTC.
func SceneTime(key string) (time.Time, error) {
	m := sceneTimeRe.FindStringSubmatch(key)
	if m == nil {
		return time.Time{}, &SceneTimeError{Key: key}
	}
	year, _ := strconv.Atoi(m[1])
	doy, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])

	t := time.Date(year, time.January, 1, hour, minute, 0, 0, time.UTC)
	return t.AddDate(0, 0, doy-1), nil
}

// FindABI lists the bucket and returns the first imagery key for the given
// scene, matching the original dashboard behavior of taking the first file
// of the hour.
func (c *Client) FindABI(year, dayOfYear, hour, band int) (string, error) {
	return c.first(ABIPrefix(year, dayOfYear, hour, band))
}

// FindGLM returns the first GLM lightning key for the given hour.
func (c *Client) FindGLM(year, dayOfYear, hour int) (string, error) {
	return c.first(GLMPrefix(year, dayOfYear, hour))
}

func (c *Client) first(prefix string) (string, error) {
	keys, err := c.List(prefix)
	if err != nil {
		return "", err
	}
	if len(keys) == 0 {
		return "", &NoObjectsError{Bucket: c.Bucket, Prefix: prefix}
	}
	return keys[0], nil
}

// NoObjectsError is returned when a listing matches nothing, typically a
// date/hour/band with no published scene.
type NoObjectsError struct {
	Bucket string
	Prefix string
}

func (e *NoObjectsError) Error() string {
	return fmt.Sprintf("no objects in %s under %s", e.Bucket, e.Prefix)
}

// SceneTimeError is returned when an object name carries no scan timestamp.
type SceneTimeError struct {
	Key string
}

func (e *SceneTimeError) Error() string {
	return fmt.Sprintf("no scene timestamp in key %q", e.Key)
}
