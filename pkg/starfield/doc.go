// Package starfield builds the star graph of a single constellation.
//
// Building a constellation is four steps, each exposed separately so callers
// and tests can inspect intermediate results:
//
//  1. [PlaceStars] rejection-samples star positions inside a disk.
//  2. [NearestNeighborPairs] links each unconsumed star to its nearest
//     neighbor, which leaves the stars split into small groups.
//  3. [GroupConnected] collects those groups in a single pass.
//  4. [RepairComponents] bridges groups with the shortest edge that does not
//     cross an existing edge.
//
// The grouping and repair passes are deliberately bounded single passes: a
// constellation can end up with more than one component when no
// crossing-free bridge exists. That is an accepted outcome, not an error.
//
// All functions are pure apart from consuming draws from the [rng.Source].
package starfield
