// Package snap resolves proposed timeline positions against nearby snap
// candidates: same-track element edges and the playhead.
//
// The resolver is a pure function. The caller supplies the candidate
// elements, the pixel threshold, and the current zoom; the threshold is
// converted to a time delta and the nearest candidate within it wins.
// Ties are broken deterministically (element edges over playhead, earlier
// track order over later) so repeated queries with identical inputs always
// produce identical results.
package snap
