// Package structdata models arbitrary JSON-compatible trees as tagged
// values and moves them between memory and UTF-8 files.
//
// Object fields keep the key order observed on decode or insertion, and
// files are written with stable four-space indentation so that written
// documents stay diffable and round-trip losslessly.
package structdata
