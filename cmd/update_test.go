package cmd

import (
	"context"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptySource is a release source with no published releases.
type emptySource struct{}

func (emptySource) ListReleases(ctx context.Context, repository selfupdate.Repository) ([]selfupdate.SourceRelease, error) {
	return nil, nil
}

func (emptySource) DownloadReleaseAsset(ctx context.Context, rel *selfupdate.Release, assetID int64) (io.ReadCloser, error) {
	return nil, errors.New("no release assets")
}

func TestDetectLatestNoSuitableRelease(t *testing.T) {
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: emptySource{}})
	require.NoError(t, err)

	latest, err := detectLatest(context.Background(), updater, "1.0.0")
	require.Error(t, err)
	assert.Nil(t, latest)
	assert.Contains(t, err.Error(), "could not be found")
	assert.Contains(t, err.Error(), runtime.GOOS+"/"+runtime.GOARCH)
}

func TestDetectLatestUnparseableVersion(t *testing.T) {
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: emptySource{}})
	require.NoError(t, err)

	_, err = detectLatest(context.Background(), updater, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse version")
}
