package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"censor/internal/engine"
)

// ReportArtifact is the immutable, hashed form of an evaluation report
type ReportArtifact struct {
	ReportVersion string          `json:"reportVersion"` // sha256:hex
	Total         int             `json:"total"`
	Violations    []ViolationItem `json:"violations"`
}

// ViolationItem is one violation inside an artifact
type ViolationItem struct {
	Count  int    `json:"count"`
	Kind   string `json:"kind"`
	Letter string `json:"letter"`
	Result string `json:"result,omitempty"`
}

// Generate creates an artifact from a report.
// Identical reports always produce identical artifacts.
func Generate(report engine.Report) ReportArtifact {
	items := make([]ViolationItem, 0, len(report.Violations))
	for _, v := range report.Violations {
		items = append(items, ViolationItem{
			Count:  v.Count,
			Kind:   string(v.Kind),
			Letter: v.Letter.String(),
			Result: v.Result,
		})
	}
	return ReportArtifact{
		ReportVersion: ComputeReportVersion(report.Total, items),
		Total:         report.Total,
		Violations:    items,
	}
}

// ComputeReportVersion computes the SHA-256 hash of the report content in canonical form.
// Returns the hash prefixed with "sha256:".
func ComputeReportVersion(total int, items []ViolationItem) string {
	hash := sha256.Sum256(canonicalContentJSON(total, items))
	return "sha256:" + hex.EncodeToString(hash[:])
}

// ToCanonicalJSON serializes the artifact to canonical JSON (sorted keys, no whitespace).
func (a ReportArtifact) ToCanonicalJSON() []byte {
	versionJSON, _ := json.Marshal(a.ReportVersion)
	// reportVersion sorts before total and violations
	result := []byte(`{"reportVersion":`)
	result = append(result, versionJSON...)
	result = append(result, ',')
	result = append(result, canonicalContentJSON(a.Total, a.Violations)[1:]...)
	return result
}

// ToJSON serializes the artifact to pretty-printed JSON for human readability.
func (a ReportArtifact) ToJSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// canonicalContentJSON produces {"total":N,"violations":[...]} with keys
// sorted alphabetically and no whitespace. Violations keep report order.
func canonicalContentJSON(total int, items []ViolationItem) []byte {
	result := []byte(`{"total":`)
	result = strconv.AppendInt(result, int64(total), 10)
	result = append(result, `,"violations":[`...)
	for i, item := range items {
		if i > 0 {
			result = append(result, ',')
		}
		result = append(result, canonicalItemJSON(item)...)
	}
	result = append(result, "]}"...)
	return result
}

// canonicalItemJSON encodes one violation with sorted keys.
// An empty result is omitted.
func canonicalItemJSON(item ViolationItem) []byte {
	kindJSON, _ := json.Marshal(item.Kind)
	letterJSON, _ := json.Marshal(item.Letter)

	result := []byte(`{"count":`)
	result = strconv.AppendInt(result, int64(item.Count), 10)
	result = append(result, `,"kind":`...)
	result = append(result, kindJSON...)
	result = append(result, `,"letter":`...)
	result = append(result, letterJSON...)
	if item.Result != "" {
		resultJSON, _ := json.Marshal(item.Result)
		result = append(result, `,"result":`...)
		result = append(result, resultJSON...)
	}
	result = append(result, '}')
	return result
}
