package domain

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "dumpfiles.yaml"

	// ManifestFileName is the default name of the asset manifest.
	ManifestFileName = "assets.yaml"

	// CacheFilePrefix prefixes the dependency cache file name.
	CacheFilePrefix = "dumpfiles_"

	// PIDFileSuffix is appended to the socket path to name the server PID file.
	PIDFileSuffix = ".pid"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm is the permission of the command server socket (rw-------).
	SocketPerm = 0o600
)

// CacheFilePath returns the dependency cache file for the project at root.
// Distinct project roots map to distinct files inside cacheDir.
func CacheFilePath(cacheDir, root string) string {
	id := fmt.Sprintf("%016x", xxhash.Sum64String(filepath.Clean(root)))
	return filepath.Join(cacheDir, CacheFilePrefix+id+".json")
}

// PIDFilePath returns the PID file written next to a server socket.
func PIDFilePath(socketPath string) string {
	return socketPath + PIDFileSuffix
}
