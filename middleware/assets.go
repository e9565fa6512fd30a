package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"

	"farida_law_site_go/logger"

	"go.uber.org/zap"
)

var (
	cssVersion        string
	faviconVersion    string
	formsJSVersion    string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		cssVersion = versionOf(filepath.Join(staticDir, "css", "style.css"))
		faviconVersion = versionOf(filepath.Join(staticDir, "images", "favicon.png"))
		formsJSVersion = versionOf(filepath.Join(staticDir, "js", "forms.js"))

		logger.Info("asset versions initialized",
			zap.String("css", cssVersion),
			zap.String("favicon", faviconVersion),
			zap.String("forms_js", formsJSVersion),
		)
	})
}

func versionOf(path string) string {
	if v := computeFileHash(path); v != "" {
		return v
	}
	return "1"
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		logger.Warn("failed to open file for hashing", zap.String("path", path), zap.Error(err))
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Warn("failed to hash file", zap.String("path", path), zap.Error(err))
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetCSSVersion returns the CSS file version hash for cache busting.
// ctx is unused; it keeps the helpers callable from views like the other context helpers.
func GetCSSVersion(ctx context.Context) string {
	if cssVersion == "" {
		return "1"
	}
	return cssVersion
}

// GetFaviconVersion returns the favicon file version hash for cache busting
func GetFaviconVersion(ctx context.Context) string {
	if faviconVersion == "" {
		return "1"
	}
	return faviconVersion
}

// GetFormsJSVersion returns the forms.js file version hash for cache busting
func GetFormsJSVersion(ctx context.Context) string {
	if formsJSVersion == "" {
		return "1"
	}
	return formsJSVersion
}
