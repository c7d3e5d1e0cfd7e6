// Package model defines domain types for ccline status rendering.
package model

// StatusInput is the JSON payload the host editor pipes to the status line on stdin.
type StatusInput struct {
	SessionID      string         `json:"session_id,omitempty"`
	TranscriptPath string         `json:"transcript_path,omitempty"`
	Model          InputModel     `json:"model"`
	Workspace      InputWorkspace `json:"workspace"`
	Cost           InputCost      `json:"cost"`
}

// InputModel identifies the active model.
type InputModel struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
}

// InputWorkspace holds the session's working directories.
type InputWorkspace struct {
	CurrentDir string `json:"current_dir"`
	ProjectDir string `json:"project_dir,omitempty"`
}

// InputCost holds session cost and code-change counters.
type InputCost struct {
	TotalCostUSD      float64 `json:"total_cost_usd,omitempty"`
	TotalLinesAdded   int     `json:"total_lines_added"`
	TotalLinesRemoved int     `json:"total_lines_removed"`
}

// DisplayModel returns the model name to show, defaulting to "Claude".
func (in StatusInput) DisplayModel() string {
	if in.Model.DisplayName == "" {
		return "Claude"
	}
	return in.Model.DisplayName
}

// WorkDir returns the workspace directory, defaulting to ".".
func (in StatusInput) WorkDir() string {
	if in.Workspace.CurrentDir == "" {
		return "."
	}
	return in.Workspace.CurrentDir
}
