// Package library finds caption files next to a video and remembers which
// videos were opened recently.
//
// Discover looks for sidecar files such as "episode.ja.vtt" and
// "episode.zh-Hant.srt" using the suffix lists from the language package.
// Store keeps the recent-video list in SQLite. The database only holds
// bookkeeping that can be rebuilt by reopening videos; schema changes bump
// schemaVersion and users delete the file to adopt the new schema.
package library
