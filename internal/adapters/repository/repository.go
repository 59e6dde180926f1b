// Package repository implements the local artifact repository: a directory in
// Maven layout with an artifacts index and a metadata index.
package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/p2local/internal/adapters/index"
	"go.trai.ch/p2local/internal/core/domain"
	"go.trai.ch/p2local/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const defaultExtension = "jar"

// LocalRepository pairs the two indices of a repository root.
type LocalRepository struct {
	root      string
	artifacts ports.ArtifactIndex
	metadata  ports.ArtifactIndex
	logger    ports.Logger
}

// Open loads both indices under root. They are independent files and are read concurrently.
func Open(root string, locker ports.Locker, logger ports.Logger, opts ...index.Option) (*LocalRepository, error) {
	r := &LocalRepository{root: root, logger: logger}

	var g errgroup.Group
	g.Go(func() error {
		x, err := index.Open(domain.DefaultArtifactsIndexPath(root), locker, logger, opts...)
		r.artifacts = x
		return err
	})
	g.Go(func() error {
		x, err := index.Open(domain.DefaultMetadataIndexPath(root), locker, logger, opts...)
		r.metadata = x
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrRepositoryOpenFailed, err), "failed to open local repository"), "root", root)
	}

	return r, nil
}

// New assembles a repository from already opened indices.
func New(root string, artifacts, metadata ports.ArtifactIndex, logger ports.Logger) *LocalRepository {
	return &LocalRepository{root: root, artifacts: artifacts, metadata: metadata, logger: logger}
}

// Root returns the repository directory.
func (r *LocalRepository) Root() string {
	return r.root
}

// Artifacts returns the index of artifacts stored in the repository.
func (r *LocalRepository) Artifacts() ports.ArtifactIndex {
	return r.artifacts
}

// Metadata returns the index of installable unit metadata stored in the repository.
func (r *LocalRepository) Metadata() ports.ArtifactIndex {
	return r.metadata
}

// ArtifactPath returns where the file for gav with the given classifier and
// extension lives: <group as dirs>/<artifact>/<version>/<artifact>-<version>[-<classifier>].<extension>.
// An empty extension means "jar".
func (r *LocalRepository) ArtifactPath(gav domain.GAV, classifier, extension string) string {
	if extension == "" {
		extension = defaultExtension
	}

	name := gav.Artifact + "-" + gav.Version
	if classifier != "" {
		name += "-" + classifier
	}
	name += "." + extension

	parts := append(strings.Split(gav.Group, "."), gav.Artifact, gav.Version, name)
	return filepath.Join(append([]string{r.root}, parts...)...)
}

// Prune drops artifacts whose p2artifacts.xml descriptor is gone from disk, for
// example because it was deleted by hand, then saves the artifacts index.
// It returns the removed entries.
func (r *LocalRepository) Prune() ([]domain.GAV, error) {
	var removed []domain.GAV
	for _, gav := range r.artifacts.GAVs() {
		path := r.ArtifactPath(gav, domain.ClassifierP2Artifacts, domain.ExtensionXML)
		_, err := os.Stat(path)
		switch {
		case err == nil:
			continue
		case errors.Is(err, fs.ErrNotExist):
			r.artifacts.Remove(gav)
			removed = append(removed, gav)
			r.logger.Info("pruned " + gav.String())
		default:
			return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrIndexIO, err), "failed to check artifact descriptor"), "path", path)
		}
	}

	if err := r.artifacts.Save(); err != nil {
		return nil, err
	}
	return removed, nil
}

// Save writes the artifacts index, then the metadata index.
func (r *LocalRepository) Save() error {
	if err := r.artifacts.Save(); err != nil {
		return err
	}
	return r.metadata.Save()
}
