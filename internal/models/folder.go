package models

import (
	"fmt"
	"time"
)

// FolderType names the four per-client buckets. References holds client
// inspiration material; the other three form the photo pipeline.
type FolderType string

const (
	FolderReferences     FolderType = "references"
	FolderAllPhotos      FolderType = "all-photos"
	FolderSelectedPhotos FolderType = "selected-photos"
	FolderFinalPhotos    FolderType = "final-photos"
)

// pipeline order for stage moves; references is never a move source/target
var pipeline = []FolderType{FolderAllPhotos, FolderSelectedPhotos, FolderFinalPhotos}

func ParseFolderType(s string) (FolderType, error) {
	switch FolderType(s) {
	case FolderReferences, FolderAllPhotos, FolderSelectedPhotos, FolderFinalPhotos:
		return FolderType(s), nil
	}
	return "", fmt.Errorf("unknown folder type %q", s)
}

// PipelineIndex returns the stage's position in the move pipeline, or -1 for
// folders outside it.
func (f FolderType) PipelineIndex() int {
	for i, s := range pipeline {
		if s == f {
			return i
		}
	}
	return -1
}

// AdjacentStages reports whether target is the stage directly after source
// in the pipeline. Moves only ever advance one stage.
func AdjacentStages(source, target FolderType) bool {
	si, ti := source.PipelineIndex(), target.PipelineIndex()
	return si >= 0 && ti >= 0 && ti == si+1
}

// QuotaStages reports whether the folder's object count is bounded by the
// package's max_edited_photos.
func (f FolderType) Quotaed() bool {
	return f == FolderSelectedPhotos || f == FolderFinalPhotos
}

type FileInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuotaInfo struct {
	Max       int `json:"max"`
	Current   int `json:"current"`
	Remaining int `json:"remaining"`
}

// FolderListing is a folder's file list; Quota is set only for quota-bounded
// stages when the client has a package, so the UI can cap selections before
// attempting a move.
type FolderListing struct {
	Files []FileInfo `json:"files"`
	Quota *QuotaInfo `json:"quota,omitempty"`
}

type MoveRequest struct {
	Source    FolderType `json:"source" validate:"required"`
	Target    FolderType `json:"target" validate:"required"`
	FileNames []string   `json:"file_names" validate:"required,min=1"`
}

type BatchFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// BatchResult reports a multi-file operation. Successes are never rolled
// back when later files fail; Warnings carries non-fatal inconsistencies
// such as a file left present in two stages.
type BatchResult struct {
	Succeeded []string       `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
	Warnings  []string       `json:"warnings,omitempty"`
}

func (b *BatchResult) AllSucceeded() bool {
	return len(b.Failed) == 0
}
