package entities

// ProcedureCategory is the taxonomy classification of a procedure code
// (dim_proc lookup). The zero value means the code is unknown to the
// taxonomy.

type ProcedureCategory struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Description string `json:"proc_desc,omitempty"`
}

// Known reports whether the taxonomy actually classified the code.
func (c ProcedureCategory) Known() bool {
	return c.Category != "" || c.Subcategory != ""
}

// Key is the comparable (category, subcategory) pair used for category
// matching.
func (c ProcedureCategory) Key() CategoryKey {
	return CategoryKey{Category: c.Category, Subcategory: c.Subcategory}
}

// CategoryKey identifies a taxonomy bucket. Two differing procedure codes
// in the same bucket are considered clinically equivalent for matching.

type CategoryKey struct {
	Category    string
	Subcategory string
}

// NetworkStatus is the provider-network indicator that selects the rate
// source. The values mirror the provider records as extracted.

type NetworkStatus string

const (
	NetworkIn  NetworkStatus = "In Network"
	NetworkOut NetworkStatus = "Out of Network"
)
