package usage

// Report is the JSON document printed by `ccusage blocks --json`.
type Report struct {
	Blocks []ReportBlock `json:"blocks"`
}

// ReportBlock is one usage block from the report. Reset and burn-rate fields
// are optional.
type ReportBlock struct {
	ID                  string    `json:"id,omitempty"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	UsageLimitResetTime *string   `json:"usageLimitResetTime,omitempty"`
	IsActive            bool      `json:"isActive"`
	IsGap               bool      `json:"isGap"`
	Entries             int       `json:"entries"`
	TotalTokens         int64     `json:"totalTokens"`
	CostUSD             float64   `json:"costUSD"`
	BurnRate            *BurnRate `json:"burnRate,omitempty"`
}

// BurnRate is the block's consumption rate.
type BurnRate struct {
	TokensPerMinute float64 `json:"tokensPerMinute"`
	CostPerHour     float64 `json:"costPerHour,omitempty"`
}
