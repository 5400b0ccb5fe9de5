package domain

import (
	"fmt"
	"strings"
)

// InstanceTypeRecord describes one instance type offered in a region.
type InstanceTypeRecord struct {
	Type      string
	VCPUs     *int32
	MemoryMiB *int64
}

func (r InstanceTypeRecord) PrimaryKey() string { return r.Type }

func (r InstanceTypeRecord) Dimensions() []Dimension { return nil }

// PricedInstanceType is an instance type joined with its on-demand hourly price.
type PricedInstanceType struct {
	Type            string `json:"instance_type"`
	VCPUs           *int32 `json:"vcpus,omitempty"`
	MemoryMiB       *int64 `json:"memory_mib,omitempty"`
	PricePerHour    string `json:"price_per_hour"`
	OperatingSystem string `json:"operating_system"`
}

func NewPricedInstanceType(entry Entry[InstanceTypeRecord], operatingSystem string) PricedInstanceType {
	return PricedInstanceType{
		Type:            entry.Record.Type,
		VCPUs:           entry.Record.VCPUs,
		MemoryMiB:       entry.Record.MemoryMiB,
		PricePerHour:    entry.Value,
		OperatingSystem: operatingSystem,
	}
}

// Describe renders the type as a single line. Numeric segments are omitted
// when the provider did not report them.
func (p PricedInstanceType) Describe() string {
	var b strings.Builder
	b.WriteString("Instance Type: ")
	b.WriteString(p.Type)
	if p.VCPUs != nil {
		fmt.Fprintf(&b, ", vCPUs: %d", *p.VCPUs)
	}
	if p.MemoryMiB != nil {
		fmt.Fprintf(&b, ", Memory: %d MiB", *p.MemoryMiB)
	}
	fmt.Fprintf(&b, ", Price per Hour on %s: %s", p.OperatingSystem, p.PricePerHour)
	return b.String()
}
