// Package media holds the metadata contract between the timeline engine
// and the media-processing collaborator. The collaborator registers each
// asset's duration and natural dimensions before any element references
// it; the engine only ever looks metadata up, never triggers decoding.
package media
