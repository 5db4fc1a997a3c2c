package domain

import "go.trai.ch/zerr"

var (
	// ErrAssetNotFound is returned when a requested asset is not declared in the catalog.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrInvalidAssetName is returned when a manifest entry has an empty name.
	ErrInvalidAssetName = zerr.New("asset name must not be empty")

	// ErrDuplicateAssetName is returned when two manifest entries share a name.
	ErrDuplicateAssetName = zerr.New("duplicate asset name")

	// ErrMissingOutput is returned when a manifest entry has no output path.
	ErrMissingOutput = zerr.New("asset has no output path")

	// ErrUnknownTransform is returned when an asset names a transform that is not registered.
	ErrUnknownTransform = zerr.New("unknown transform")

	// ErrInputNotFound is returned when a declared input file does not exist.
	ErrInputNotFound = zerr.New("input not found")

	// ErrCatalogLoadFailed is returned when the asset manifest cannot be read or parsed.
	ErrCatalogLoadFailed = zerr.New("failed to load asset catalog")

	// ErrImportNotFound is returned when an @import statement cannot be resolved.
	ErrImportNotFound = zerr.New("import not found")

	// ErrMalformedImport is returned when an @import list cannot be parsed.
	ErrMalformedImport = zerr.New("malformed @import statement")

	// ErrImportCycle is returned when inlining imports revisits a file.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrReferenceCycle is returned when rendering an asset reaches itself through references.
	ErrReferenceCycle = zerr.New("asset reference cycle detected")

	// ErrAssetBuildFailed is returned when the dependency walk of an asset fails.
	ErrAssetBuildFailed = zerr.New("failed to build asset dependencies")

	// ErrMaterializationFailed is returned when an asset cannot be dumped.
	ErrMaterializationFailed = zerr.New("failed to dump asset")

	// ErrCacheCorrupt is returned when the cache file does not hold a dependency map.
	ErrCacheCorrupt = zerr.New("dependency cache is corrupt")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write dependency cache")

	// ErrSocketBindFailed is returned when the command server cannot listen on its socket.
	ErrSocketBindFailed = zerr.New("could not bind to socket")

	// ErrServerUnreachable is returned when a client cannot connect to the command server.
	ErrServerUnreachable = zerr.New("command server is unreachable")

	// ErrNoSocket is returned when a command needs a socket path and none is configured.
	ErrNoSocket = zerr.New("no socket path configured")

	// ErrDumpFailed is returned by the one-shot dump when any asset failed.
	// The individual failures have already been reported.
	ErrDumpFailed = zerr.New("some assets failed to dump")

	// ErrConfigLoadFailed is returned when the configuration cannot be read.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrInvalidMatchPolicy is returned for an unknown path-matching policy.
	ErrInvalidMatchPolicy = zerr.New("invalid match policy")
)
