package quota

import "time"

// TypeUsage is the running total for one file type. LatestDate is the zero
// time when the account has no files of that type.
type TypeUsage struct {
	Size       int64     `json:"size"`
	LatestDate time.Time `json:"latestDate"`
}

// QuotaReport is a point-in-time snapshot of an account's owned storage.
type QuotaReport struct {
	Document TypeUsage `json:"document"`
	Image    TypeUsage `json:"image"`
	Video    TypeUsage `json:"video"`
	Audio    TypeUsage `json:"audio"`
	Other    TypeUsage `json:"other"`
	// Used is the grand total across all types
	Used int64 `json:"used"`
	// All is the account's fixed storage ceiling
	All int64 `json:"all"`
}
