package domain

import (
	"strconv"
	"time"
)

// AlarmRecord is a metric alarm as listed by the monitoring service.
type AlarmRecord struct {
	Name       string      `json:"name"`
	Namespace  string      `json:"namespace,omitempty"`
	MetricName string      `json:"metric_name,omitempty"`
	State      string      `json:"state,omitempty"`
	Threshold  *float64    `json:"threshold,omitempty"`
	Dims       []Dimension `json:"dimensions,omitempty"`
}

func (a AlarmRecord) PrimaryKey() string { return a.Name }

func (a AlarmRecord) Dimensions() []Dimension { return a.Dims }

// AlarmSpec is a request for a CPU-utilization alarm on one instance.
type AlarmSpec struct {
	InstanceID string  `hcl:"instance_id" validate:"required"`
	Name       string  `hcl:"name,label" validate:"required"`
	Threshold  float64 `hcl:"threshold" validate:"gte=0,lte=100"`
}

// CPUAlarmPolicy holds the fixed shape every provisioned CPU alarm shares.
type CPUAlarmPolicy struct {
	Namespace         string
	MetricName        string
	Period            time.Duration
	EvaluationPeriods int32
	ActionTarget      string
}

func DefaultCPUAlarmPolicy(actionTarget string) CPUAlarmPolicy {
	return CPUAlarmPolicy{
		Namespace:         "AWS/EC2",
		MetricName:        "CPUUtilization",
		Period:            5 * time.Minute,
		EvaluationPeriods: 1,
		ActionTarget:      actionTarget,
	}
}

// NotificationText is the one-line message sent once an alarm is in place.
func (s AlarmSpec) NotificationText() string {
	return "ALERT: A CloudWatch alarm for high CPU utilization over " +
		strconv.FormatFloat(s.Threshold, 'f', -1, 64) +
		" % has been created for your EC2 instance " + s.InstanceID + " !"
}

// Description is stored on the alarm so operators can tell what created it.
func (s AlarmSpec) Description() string {
	return "CPU utilization of " + s.InstanceID + " above " +
		strconv.FormatFloat(s.Threshold, 'f', -1, 64) + "%"
}
