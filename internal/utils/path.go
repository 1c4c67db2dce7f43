package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver resolves config and input-file locations for the
// strandsolve binary across platforms.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a path resolver rooted at the running
// executable's location.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the platform-appropriate config directory.
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "strandsolve")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "strandsolve")
		}
		return filepath.Join(homeDir, ".config", "strandsolve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "strandsolve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "strandsolve")
	default:
		return filepath.Join(homeDir, ".strandsolve")
	}
}

// ResolveInputPath finds a user-specified input file (a word list or a
// grid file), trying the path as-is, then relative to the executable,
// then relative to the current working directory.
func (pr *PathResolver) ResolveInputPath(userSpecifiedPath string) (string, error) {
	candidates := []string{userSpecifiedPath}

	if !filepath.IsAbs(userSpecifiedPath) {
		candidates = append(candidates, filepath.Join(pr.executableDir, userSpecifiedPath))
		if cwd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(cwd, userSpecifiedPath))
		}
	}

	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			return path, nil
		}
	}
	return "", os.ErrNotExist
}

// GetConfigPath returns the full path for a config file, ensuring the
// config directory exists and falling back to progressively less
// preferred writable locations.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if pr.ensureConfigDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".strandsolve"),
		filepath.Join(os.TempDir(), "strandsolve"),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureConfigDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ensureConfigDir creates dir if needed and verifies it is writable.
func (pr *PathResolver) ensureConfigDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("cannot create config directory %s: %v", dir, err)
		return false
	}
	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		log.Debugf("config directory %s is not writable: %v", dir, err)
		return false
	}
	os.Remove(testFile)
	return true
}
