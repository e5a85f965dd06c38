// Package world orchestrates the rigid-body simulation step: force
// application, integration, boundary resolution, broadphase candidate
// discovery and impulse-based collision response.
//
// # Step pipeline
//
// [World.Step] runs a fixed pipeline once per externally supplied time
// increment:
//
//  1. reset the per-step collision counter
//  2. apply gravity as an accumulated force and integrate every body
//  3. clamp every body against the world bounds
//  4. bucket bodies into a unit-cell spatial hash at their
//     post-integration positions
//  5. test all unordered pairs within each cell and resolve overlaps
//
// # Known limitations
//
// Only homogeneous shape pairs (sphere-sphere, box-box,
// cylinder-cylinder) are detected; heterogeneous and compound pairs
// pass through untouched. Cross-cell pairs are never tested, so
// fast-moving or boundary-straddling bodies can miss collisions. Box
// and cylinder pairs use a centroid-difference normal and a fixed
// positional correction rather than true contact geometry.
package world
