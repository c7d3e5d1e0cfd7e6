package source

import (
	"encoding/json"
	"time"
)

// RawEntry represents a single line in a Claude Code JSONL transcript.
type RawEntry struct {
	Type              string      `json:"type,omitempty"`
	Timestamp         string      `json:"timestamp,omitempty"`
	SessionID         string      `json:"sessionId,omitempty"`
	IsSidechain       bool        `json:"isSidechain,omitempty"`
	IsAPIErrorMessage bool        `json:"isApiErrorMessage,omitempty"`
	Message           *RawMessage `json:"message,omitempty"`
}

// RawMessage represents the message envelope. Usage is kept raw so an empty
// object can be told apart from a populated one.
type RawMessage struct {
	ID    string          `json:"id,omitempty"`
	Model string          `json:"model,omitempty"`
	Usage json.RawMessage `json:"usage,omitempty"`
}

// RawUsage holds token counts from the API response.
type RawUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
}

// Transcript is the result of one pass over a transcript file.
type Transcript struct {
	// ContextLength is the prompt-side token count of the latest main-chain
	// record carrying usage.
	ContextLength int64
	// Timestamps of records with both input and output tokens, ascending.
	Timestamps []time.Time
	// Lines is the number of lines read; Skipped counts the malformed ones.
	Lines   int
	Skipped int
}
