package model

import "time"

// DateSource tells where a modification date was resolved from
type DateSource string

const (
	// SourceGit means the date comes from the most recent commit touching the file
	SourceGit DateSource = "git"

	// SourceFilesystem means the date comes from the file's modification timestamp
	SourceFilesystem DateSource = "filesystem"
)

// ResolvedDate is the outcome of resolving a template file's last modification date.
// Computed fresh on each run, never persisted outside the sitemap itself.
type ResolvedDate struct {
	Date    time.Time
	Source  DateSource
	Tracked bool
}

// Lastmod renders the resolved date as a <lastmod> value
func (r ResolvedDate) Lastmod() string {
	return r.Date.Format(DateFormat)
}
