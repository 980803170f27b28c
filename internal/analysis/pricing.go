package analysis

import (
	_ "embed"
	"encoding/json"
	"sort"
)

//go:embed pricing.json
var defaultPricingJSON []byte

// DefaultPricingSource is the provenance tag attached to estimates
// computed from the built-in table.
const DefaultPricingSource = "built-in"

// ModelRates holds per-1K-token USD rates for one canonical model.
type ModelRates struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// PricingTable maps canonical model names to their rates. It is treated
// as immutable by the analyzer; callers build the table they want up
// front and inject it.
type PricingTable map[string]ModelRates

// DefaultTable loads the built-in pricing table.
func DefaultTable() (PricingTable, error) {
	var table PricingTable
	if err := json.Unmarshal(defaultPricingJSON, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// Merge adds entries from other into t. Existing keys are overwritten.
func (t PricingTable) Merge(other PricingTable) {
	for k, v := range other {
		t[k] = v
	}
}

// Models returns the table's keys in sorted order.
func (t PricingTable) Models() []string {
	models := make([]string, 0, len(t))
	for k := range t {
		models = append(models, k)
	}
	sort.Strings(models)
	return models
}
