// Package ingestion - Ingestion governance and validation
package ingestion

import (
	"fmt"

	"qualitymap/core/catalog"
	"qualitymap/core/quality"
)

// Contract defines requirements a stored table must meet
type Contract struct {
	Table          string
	MinEntries     int
	RequiredLevels []quality.Level
	Rules          []catalog.ValidationRule
}

// DefaultContracts returns the default ingestion contracts
func DefaultContracts() []Contract {
	return []Contract{
		{
			Table:          catalog.UTILMDStromSource.Name,
			MinEntries:     100,
			RequiredLevels: quality.Levels,
			Rules:          catalog.DefaultValidationRules(),
		},
	}
}

// Validator checks tables against their contracts. Tables without a
// contract are checked with the default catalog rules only.
type Validator struct {
	contracts map[string]Contract
}

// NewValidator creates a new validator with default contracts
func NewValidator() *Validator {
	v := &Validator{
		contracts: make(map[string]Contract),
	}
	for _, c := range DefaultContracts() {
		v.contracts[c.Table] = c
	}
	return v
}

// AddContract adds or replaces a contract
func (v *Validator) AddContract(contract Contract) {
	v.contracts[contract.Table] = contract
}

// ValidationResult contains validation outcome
type ValidationResult struct {
	IsValid       bool
	Contracted    bool
	EntryCount    int
	MissingLevels []quality.Level
	Errors        []string
}

// Validate checks r against the contract of table
func (v *Validator) Validate(table string, r *quality.Registry) *ValidationResult {
	result := &ValidationResult{
		IsValid:    true,
		EntryCount: r.Len(),
	}

	contract, ok := v.contracts[table]
	result.Contracted = ok
	if !ok {
		contract = Contract{Table: table, Rules: catalog.DefaultValidationRules()}
	}

	if r.Len() < contract.MinEntries {
		result.Errors = append(result.Errors,
			fmt.Sprintf("only %d entries, need %d", r.Len(), contract.MinEntries))
	}

	stats := r.Stats()
	for _, level := range contract.RequiredLevels {
		if stats.ByLevel[level] == 0 {
			result.MissingLevels = append(result.MissingLevels, level)
			result.Errors = append(result.Errors, fmt.Sprintf("no entry with quality %s", level))
		}
	}

	for _, err := range catalog.Validate(r, contract.Rules) {
		result.Errors = append(result.Errors, err.Error())
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
