package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/service"
	"github.com/olusolaa/ec2ctl/internal/errors"
	"github.com/olusolaa/ec2ctl/internal/reporting"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := api.NewEncoder(w).Encode(body); err != nil {
		s.logger.Errorf(r.Context(), err, "Failed to write response for %s", r.URL.Path)
	}
}

// writeError maps err to a status. Internal failures keep their details in
// the log only.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	msg, hint, userFacing := errors.GetUserFacingMessage(err)
	if !userFacing && status != http.StatusInternalServerError {
		msg = err.Error()
		hint = ""
	}
	if status >= http.StatusInternalServerError {
		s.logger.Errorf(r.Context(), err, "%s %s failed", r.Method, r.URL.Path)
	}
	s.writeJSON(w, r, status, errorBody{Error: string(errors.GetCode(err)), Message: msg, Hint: hint})
}

func (s *Server) writeData(w http.ResponseWriter, r *http.Request, report domain.Report) {
	s.writeJSON(w, r, http.StatusOK, report.Data)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listInstances(w http.ResponseWriter, r *http.Request) {
	// Unknown keys are dropped by the filter builder.
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if v := strings.TrimSpace(strings.Join(values, ",")); v != "" {
			filters[key] = v
		}
	}
	instances, err := s.services.Control.ListInstances(r.Context(), filters)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.Instances(instances))
}

func (s *Server) describeInstance(w http.ResponseWriter, r *http.Request) {
	inst, err := s.services.Control.DescribeInstance(r.Context(), r.PathValue("instanceId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.Instance(inst))
}

func (s *Server) instanceOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.services.Control.Overview(r.Context(), r.PathValue("instanceId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.Overview(overview))
}

func (s *Server) startInstance(w http.ResponseWriter, r *http.Request) {
	s.changeState(w, r, domain.PowerOn, s.services.Control.StartInstance)
}

func (s *Server) stopInstance(w http.ResponseWriter, r *http.Request) {
	s.changeState(w, r, domain.PowerOff, s.services.Control.StopInstance)
}

func (s *Server) changeState(w http.ResponseWriter, r *http.Request, action domain.PowerAction,
	fn func(ctx context.Context, id string) (domain.StateChange, error)) {
	change, err := fn(r.Context(), r.URL.Query().Get("instanceId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report := reporting.StateChange(change, action)
	s.writeJSON(w, r, http.StatusOK, messageBody{Message: report.Rows[0].Cells[0], Data: report.Data})
}

func (s *Server) listSecurityGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.services.Control.ListSecurityGroups(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.SecurityGroups(groups))
}

func (s *Server) describeSecurityGroup(w http.ResponseWriter, r *http.Request) {
	groups, err := s.services.Control.DescribeSecurityGroup(r.Context(), r.PathValue("groupId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.SecurityGroupRules(groups))
}

func (s *Server) createSecurityGroup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := domain.NewSecurityGroup{
		Name:        strings.TrimSpace(query.Get("groupName")),
		Description: strings.TrimSpace(query.Get("description")),
		VPCID:       strings.TrimSpace(query.Get("vpcId")),
		SourceIP:    strings.TrimSpace(query.Get("myIpAddress")),
	}
	id, err := s.services.Control.CreateSecurityGroup(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report := reporting.SecurityGroupCreated(id, req)
	s.writeJSON(w, r, http.StatusCreated, messageBody{Message: report.Rows[0].Cells[0], Data: report.Data})
}

func (s *Server) instanceTypes(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("name")
	priced, err := s.services.Discovery.InstanceTypes(r.Context(), fragment)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.InstanceTypes(fragment, priced))
}

func (s *Server) images(w http.ResponseWriter, r *http.Request) {
	images, err := s.services.Control.ListImages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.Images(images))
}

func (s *Server) listAlarms(w http.ResponseWriter, r *http.Request) {
	instanceID := r.URL.Query().Get("instanceId")
	names, err := s.services.Discovery.AlarmsForInstance(r.Context(), instanceID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.Alarms(instanceID, names))
}

func (s *Server) createAlarm(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	threshold, err := service.ParseThreshold(query.Get("threshold"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	spec := domain.AlarmSpec{
		InstanceID: query.Get("instanceId"),
		Name:       query.Get("alarmName"),
		Threshold:  threshold,
	}
	if err := s.services.Alarms.Create(r.Context(), spec); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, messageBody{
		Message: "CloudWatch alarm " + strings.TrimSpace(spec.Name) + " created and notification sent",
	})
}

func (s *Server) identity(w http.ResponseWriter, r *http.Request) {
	id, err := s.services.Control.Identity(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, r, reporting.Identity(id))
}
