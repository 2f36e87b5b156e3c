// Package state shares background data between the quote refresher and the UI.
//
// The refresher calls Store.Record or Store.Fail after every attempt and the
// UI reads Store.Snapshot on its own schedule. A same-day quote read from the
// local cache at startup is installed with Seed so the header has something
// to show before the first network round trip. A failed refresh keeps the last
// quote and records the error; two failures in a row mark the snapshot
// offline.
//
// The zero Store is ready to use.
package state
