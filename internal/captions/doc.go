// Package captions parses caption tracks and keeps a secondary-language track
// in step with a primary-language track.
//
// A load reads two independently timed tracks, splits run-on secondary
// captions at sentence boundaries, and re-keys the secondary track onto the
// primary timeline by best time overlap so that every primary caption has
// exactly one secondary partner (possibly empty). Timeline queries then answer
// which caption is active on each track at a given playback position.
//
// Everything here is synchronous and allocation-owning: results never alias
// their inputs, and "no data" outcomes are reported in-band rather than as
// errors so a polling playback watcher never has to handle failures.
package captions
