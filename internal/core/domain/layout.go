package domain

import (
	"path/filepath"
	"time"
)

const (
	// MetaDirName is the directory holding the index files inside a repository root.
	MetaDirName = ".meta"

	// ArtifactsIndexFileName is the index of artifacts held by the local repository.
	ArtifactsIndexFileName = "p2-artifacts.properties"

	// MetadataIndexFileName is the index of metadata held by the local repository.
	MetadataIndexFileName = "p2-local-metadata.properties"

	// LockSuffix is appended to a data file path to name its lock marker.
	LockSuffix = ".lock"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "p2local.yaml"

	// ClassifierP2Artifacts is the classifier of the per-GAV artifact descriptor file.
	ClassifierP2Artifacts = "p2artifacts"

	// ClassifierP2Metadata is the classifier of the per-GAV metadata file.
	ClassifierP2Metadata = "p2metadata"

	// ExtensionXML is the extension of descriptor and metadata files.
	ExtensionXML = "xml"

	// DefaultLockTimeout is used when no lock timeout is configured.
	DefaultLockTimeout = 30 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultArtifactsIndexPath returns the artifacts index path below root.
// It joins root, .meta and p2-artifacts.properties.
func DefaultArtifactsIndexPath(root string) string {
	return filepath.Join(root, MetaDirName, ArtifactsIndexFileName)
}

// DefaultMetadataIndexPath returns the metadata index path below root.
// It joins root, .meta and p2-local-metadata.properties.
func DefaultMetadataIndexPath(root string) string {
	return filepath.Join(root, MetaDirName, MetadataIndexFileName)
}

// LockPathFor returns the lock marker path guarding the given data file.
func LockPathFor(dataFile string) string {
	return dataFile + LockSuffix
}
