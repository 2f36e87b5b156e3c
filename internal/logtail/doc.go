// Package logtail reads and formats the tail of yourenergy's JSON log.
//
// Tail scans the file once and keeps only the last N matching lines, so large
// logs are never loaded whole. A missing file reads as empty. Options.MinLevel
// drops zap records below a level; lines that are not JSON are always kept.
//
// Format turns one zap JSON line into "15:04:05 LEVEL message key=value" with
// the extra fields sorted by key. Lines that are not JSON pass through
// unchanged.
//
//	lines, err := logtail.Tail(cfg.LogPath(), logtail.Options{Lines: 50})
//	for _, line := range lines {
//		fmt.Println(logtail.Format(line))
//	}
package logtail
