package domain

// DimensionInstanceID is the dimension name CloudWatch uses to scope a metric
// to a single EC2 instance.
const DimensionInstanceID = "InstanceId"

type Dimension struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is a raw item produced by a paged catalog source.
type Record interface {
	// PrimaryKey is the type or name field substring criteria are evaluated against.
	PrimaryKey() string
	Dimensions() []Dimension
}

type MatchMode int

const (
	// MatchSubstring compares the record key case-insensitively.
	MatchSubstring MatchMode = iota
	// MatchDimension requires an exact key/value dimension pair.
	MatchDimension
)

// Criterion selects which records of a catalog are of interest.
type Criterion struct {
	Mode  MatchMode
	Key   string
	Value string
}

func SubstringCriterion(fragment string) Criterion {
	return Criterion{Mode: MatchSubstring, Value: fragment}
}

func DimensionCriterion(key, value string) Criterion {
	return Criterion{Mode: MatchDimension, Key: key, Value: value}
}

// InstanceCriterion matches records carrying an InstanceId dimension equal to id.
func InstanceCriterion(id string) Criterion {
	return DimensionCriterion(DimensionInstanceID, id)
}

// Enrichment is the outcome of joining a record against a secondary source.
// The zero value is unavailable.
type Enrichment struct {
	value     string
	available bool
}

func Available(value string) Enrichment {
	return Enrichment{value: value, available: true}
}

func Unavailable() Enrichment {
	return Enrichment{}
}

func (e Enrichment) Value() (string, bool) {
	return e.value, e.available
}

func (e Enrichment) IsAvailable() bool {
	return e.available
}

// Entry is a record that survived filtering together with its enrichment value.
type Entry[R Record] struct {
	Record R
	Value  string
}
