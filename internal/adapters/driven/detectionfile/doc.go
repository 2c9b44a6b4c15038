// Package detectionfile loads detection passes from the JSON files the
// upstream CV pipeline writes, and optionally watches them for changes.
//
// A loaded pass replaces the detection store's contents wholesale; the
// watcher coalesces filesystem event bursts so an editor save or an
// in-progress pipeline write triggers a single reload.
package detectionfile
