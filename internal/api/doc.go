// Package api serves the local HTTP API used by the player UI.
//
// The router is built with chi. Every handler answers JSON and reads the
// shared session, so the UI, the CLI watcher and tests observe the same
// caption set. CORS origins come from the [api] config section.
package api
