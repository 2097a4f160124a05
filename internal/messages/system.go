package messages

// System messages for filesystem and process operations.
const (
	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"
	FsutilOpenDirFmt        = "open dir %s: %w"
	FsutilSyncDirFmt        = "sync dir %s: %w"

	// AttestOpenFileFmt formats hash input open failures.
	AttestOpenFileFmt          = "open %s: %w"
	AttestHashFileFmt          = "hash %s: %w"
	AttestChmodToolFailedFmt   = "%s +x %s exited %d: %w"
	AttestChmodToolStderrFmt   = "%s +x %s exited %d: %s"
	AttestMarkExecutableFailed = "could not mark file executable; continuing"
	AttestMarkExecutableSkip   = "platform has no executable bit; skipping chmod"
	AttestMarkExecutableDone   = "marked file executable"

	// ArtifactsUnknownResourceFmt formats unknown embedded resource lookups.
	ArtifactsUnknownResourceFmt = "unknown embedded resource %q"
	ArtifactsOpenResourceFmt    = "open embedded resource %q: %w"
)
