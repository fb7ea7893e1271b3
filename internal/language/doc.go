// Package language provides language code normalization for caption tracks.
//
// Configuration values, sidecar file suffixes and API parameters all arrive
// in different spellings (ISO 639-1, ISO 639-2, BCP 47 tags with scripts or
// regions, English words). Everything is funnelled through here so the
// loader, the library scanner and config validation agree on what "ja" and
// "zh" mean.
package language
