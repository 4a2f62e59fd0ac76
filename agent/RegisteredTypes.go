package agent

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	// Tabular methods
	EGreedySarsaTabular Type = "EGreedySarsa-Tabular"
)
