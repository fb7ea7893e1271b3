// Package session owns the caption set for the video that is currently open.
//
// A Session publishes each loaded captions.Set through an atomic pointer:
// Open builds a fresh set and swaps it in, so a query running against the
// previous set keeps seeing consistent data. Watcher polls a playback
// position and pushes the active caption pair to a display whenever it
// changes.
package session
