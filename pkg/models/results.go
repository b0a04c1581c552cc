package models

import (
	"time"
)

// AnalysisResult contains the results of a sample pairs analysis over one file
type AnalysisResult struct {
	FileType         string          `json:"fileType"`
	Filename         string          `json:"filename"`
	Width            int             `json:"width"`
	Height           int             `json:"height"`
	Threshold        float64         `json:"threshold"`  // change-rate above which a channel is flagged
	Suspicious       bool            `json:"suspicious"` // true if any channel exceeds Threshold
	Channels         []ChannelResult `json:"channels"`
	Findings         []Finding       `json:"findings"`
	AnalysisTime     time.Time       `json:"analysisTime"`
	AnalysisDuration time.Duration   `json:"analysisDuration"`
}

// ChannelResult is the SPA estimate for a single colour channel
type ChannelResult struct {
	Channel       ColorChannel         `json:"channel"`
	ChangeRate    float64              `json:"changeRate"`    // estimated fraction of flipped LSBs
	EmbeddingRate float64              `json:"embeddingRate"` // bits per pixel, 2 * ChangeRate
	Suspicious    bool                 `json:"suspicious"`
	Counts        ClassificationCounts `json:"counts"`
}

// ClassificationCounts holds the pair accounting of one channel
type ClassificationCounts struct {
	X            int `json:"x"`
	Y            int `json:"y"`
	K            int `json:"k"`
	Unclassified int `json:"unclassified"`
	Pairs        int `json:"pairs"`
}

// Residual returns the number of pairs not accounted for by X, Y or K
func (c ClassificationCounts) Residual() int {
	return c.Pairs - c.X - c.Y - c.K
}

// Finding represents a specific detection or discovery during analysis
type Finding struct {
	Description string  `json:"description"`
	Channel     string  `json:"channel"`
	ChangeRate  float64 `json:"changeRate"`
	Details     string  `json:"details"`
}

// ExtractionResult contains the outcome of a bitplane extraction
type ExtractionResult struct {
	Success     bool                   `json:"success"`
	FileType    string                 `json:"fileType"`
	Algorithm   string                 `json:"algorithm"`
	Planes      int                    `json:"planes"`
	Details     map[string]interface{} `json:"details"`
	OutputFiles []string               `json:"outputFiles"` // Paths to the saved bitplane images
	MimeType    string                 `json:"mimeType"`
}

// AddFinding adds a finding to the analysis result
func (r *AnalysisResult) AddFinding(description string, channel ColorChannel, changeRate float64, details string) {
	r.Findings = append(r.Findings, Finding{
		Description: description,
		Channel:     channel.String(),
		ChangeRate:  changeRate,
		Details:     details,
	})
}

// SuspiciousChannels returns the channels whose estimate exceeded the threshold
func (r *AnalysisResult) SuspiciousChannels() []ChannelResult {
	var out []ChannelResult
	for _, c := range r.Channels {
		if c.Suspicious {
			out = append(out, c)
		}
	}
	return out
}
