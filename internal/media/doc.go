// Package media contains the leaf transforms of the gallery build pipeline:
// source enumeration, derivative staleness checks, output-name normalization,
// the image transform itself, and video reference resolution.
//
// The image transform produces two derivatives per source image:
//
//   - thumb: the source is contain-fitted into a fixed square bounding box
//     (aspect ratio preserved, no cropping) and composited centered onto an
//     opaque square canvas, so every thumbnail has identical pixel dimensions.
//   - large: the source is downscaled proportionally when its longer edge
//     exceeds the configured maximum; smaller sources are never upscaled.
//
// Both derivatives are flattened onto an opaque background before JPEG
// encoding so sources with an alpha channel never carry transparency into the
// output. Orientation metadata is applied at decode time, so pixel data always
// matches the intended display orientation.
package media
