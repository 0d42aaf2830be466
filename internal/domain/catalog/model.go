package catalog

// Variant is one sealed-bid auction mechanism in the catalog.
type Variant struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Summary    string   `json:"summary" yaml:"summary"`
	Signature  string   `json:"signature" yaml:"signature"`
	Focus      []string `json:"focus" yaml:"focus"`
	Phases     []Phase  `json:"phases" yaml:"phases"`
	CodePath   string   `json:"code_path" yaml:"code_path"`
	TestPath   string   `json:"test_path" yaml:"test_path"`
	Blog       string   `json:"blog" yaml:"blog"`
	SampleNote string   `json:"sample_note,omitempty" yaml:"sample_note"`
}

// Phase is one step of a variant's canonical lifecycle.
type Phase struct {
	Title       string   `json:"title" yaml:"title"`
	Duration    string   `json:"duration" yaml:"duration"`
	Description string   `json:"description" yaml:"description"`
	Checklist   []string `json:"checklist" yaml:"checklist"`
}

// Snapshot is the condensed view of a variant used for overview cards.
type Snapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PhaseCount int    `json:"phase_count"`
	Signature  string `json:"signature"`
}

func (v Variant) clone() Variant {
	out := v
	out.Focus = append([]string(nil), v.Focus...)
	out.Phases = make([]Phase, len(v.Phases))
	for i, p := range v.Phases {
		p.Checklist = append([]string(nil), p.Checklist...)
		out.Phases[i] = p
	}
	return out
}
