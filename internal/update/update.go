// Package update checks GitHub releases for newer clipreview builds and
// replaces the running binary on request.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	repoOwner     = "pengelbrecht"
	repoName      = "clipreview"
	checkInterval = 24 * time.Hour
	cacheFile     = "update-cache.yaml"
)

// Sentinel errors returned by Upgrade.
var (
	ErrDevBuild      = errors.New("cannot update dev builds")
	ErrHomebrew      = errors.New("installed via Homebrew, run: brew upgrade pengelbrecht/tap/clipreview")
	ErrNoRelease     = errors.New("no releases found")
	ErrAlreadyLatest = errors.New("already at latest version")
	errNoCacheDir    = errors.New("no cache directory")
)

// Release describes the newest published build.
type Release struct {
	Version    string
	ReleaseURL string
}

// Detector finds the latest release. The GitHub implementation is used
// unless a Checker is given another one.
type Detector interface {
	DetectLatest(ctx context.Context) (*Release, error)
}

// cache records the result of the last release lookup.
type cache struct {
	LastCheck     time.Time `yaml:"last_check"`
	LatestVersion string    `yaml:"latest_version,omitempty"`
}

// Checker looks up new releases at most once per check interval.
type Checker struct {
	// Current is the running version, with or without a leading "v".
	Current string
	// CacheDir holds the check cache. Empty disables caching.
	CacheDir string
	Detector Detector
	Logger   zerolog.Logger

	now func() time.Time
}

// NewChecker returns a Checker backed by GitHub releases.
func NewChecker(current, cacheDir string, log zerolog.Logger) *Checker {
	return &Checker{
		Current:  current,
		CacheDir: cacheDir,
		Detector: githubDetector{},
		Logger:   log,
	}
}

func (c *Checker) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// isDev reports whether v is an unversioned build.
func isDev(v string) bool {
	v = strings.TrimPrefix(v, "v")
	return v == "" || v == "dev"
}

// Notice returns a one-line update notice, or "" when the running build is
// current, is a dev build, or the lookup fails. Lookups are cached.
func (c *Checker) Notice(ctx context.Context) string {
	if isDev(c.Current) {
		return ""
	}

	latest := ""
	if cached, err := c.loadCache(); err == nil && c.clock().Sub(cached.LastCheck) < checkInterval {
		latest = cached.LatestVersion
	} else {
		rel, err := c.Detector.DetectLatest(ctx)
		if err != nil {
			c.Logger.Debug().Err(err).Msg("update check failed")
			return ""
		}
		if rel != nil {
			latest = rel.Version
		}
		if err := c.saveCache(cache{LastCheck: c.clock(), LatestVersion: latest}); err != nil {
			c.Logger.Debug().Err(err).Msg("write update cache")
		}
	}

	// The cache may predate an upgrade, so compare every time.
	if latest == "" || !isNewerVersion(latest, c.Current) {
		return ""
	}
	return formatUpdateNotice(c.Current, latest, DetectInstallMethod())
}

func (c *Checker) cachePath() (string, error) {
	if c.CacheDir == "" {
		return "", errNoCacheDir
	}
	return filepath.Join(c.CacheDir, cacheFile), nil
}

func (c *Checker) loadCache() (cache, error) {
	var out cache
	path, err := c.cachePath()
	if err != nil {
		return out, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

func (c *Checker) saveCache(v cache) error {
	path, err := c.cachePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// isNewerVersion reports whether a is a higher semantic version than b.
// Unparseable versions are never newer.
func isNewerVersion(a, b string) bool {
	av, err := semver.NewVersion(a)
	if err != nil {
		return false
	}
	bv, err := semver.NewVersion(b)
	if err != nil {
		return false
	}
	return av.GreaterThan(bv)
}

// InstallMethod is how the binary was installed.
type InstallMethod int

const (
	InstallUnknown InstallMethod = iota
	InstallHomebrew
	InstallScript
)

func (m InstallMethod) String() string {
	switch m {
	case InstallHomebrew:
		return "homebrew"
	case InstallScript:
		return "script"
	default:
		return "unknown"
	}
}

// DetectInstallMethod inspects the resolved executable path.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallUnknown
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return InstallUnknown
	}
	return installMethodForPath(exe)
}

func installMethodForPath(exe string) InstallMethod {
	if strings.Contains(exe, "/Cellar/") ||
		strings.HasPrefix(exe, "/opt/homebrew/") ||
		strings.HasPrefix(exe, "/usr/local/Homebrew/") ||
		strings.Contains(exe, "linuxbrew") {
		return InstallHomebrew
	}
	return InstallScript
}

func formatUpdateNotice(current, latest string, method InstallMethod) string {
	cmd := "clipreview upgrade"
	if method == InstallHomebrew {
		cmd = "brew upgrade pengelbrecht/tap/clipreview"
	}
	return fmt.Sprintf("Update available: %s -> %s (run: %s)", current, latest, cmd)
}

// Upgrade replaces the running binary with the latest GitHub release.
func Upgrade(ctx context.Context, current string, log zerolog.Logger) (*Release, error) {
	if DetectInstallMethod() == InstallHomebrew {
		return nil, ErrHomebrew
	}
	if isDev(current) {
		return nil, ErrDevBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.NewRepositorySlug(repoOwner, repoName))
	if err != nil {
		return nil, fmt.Errorf("detect latest version: %w", err)
	}
	if !found {
		return nil, ErrNoRelease
	}
	if !latest.GreaterThan(strings.TrimPrefix(current, "v")) {
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyLatest, current)
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}

	log.Info().Str("from", current).Str("to", latest.Version()).Str("exe", exe).Msg("upgrading")
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	return &Release{Version: latest.Version(), ReleaseURL: latest.URL}, nil
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create GitHub source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// githubDetector looks up releases of pengelbrecht/clipreview.
type githubDetector struct{}

func (githubDetector) DetectLatest(ctx context.Context) (*Release, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}
	latest, found, err := updater.DetectLatest(ctx, selfupdate.NewRepositorySlug(repoOwner, repoName))
	if err != nil {
		return nil, fmt.Errorf("detect latest version: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &Release{Version: latest.Version(), ReleaseURL: latest.URL}, nil
}
