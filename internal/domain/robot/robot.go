package robot

import (
	"fmt"
	"strings"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// Robot is owned by an end customer (OrgID) and serviced by a provider.
// Robots are never hard deleted.
type Robot struct {
	id                uint
	orgID             uint
	serviceProviderID uint
	sn                string
	name              string
	model             string
	location          string
	status            Status
	isDeleted         bool
	createdBy         uint
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRobot(orgID, serviceProviderID uint, sn, name, model, location string, createdBy uint) (*Robot, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("owner organization ID is required")
	}
	sn = strings.TrimSpace(sn)
	if sn == "" {
		return nil, fmt.Errorf("serial number is required")
	}
	if len(sn) > 100 {
		return nil, fmt.Errorf("serial number cannot exceed 100 characters")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &Robot{
		orgID:             orgID,
		serviceProviderID: serviceProviderID,
		sn:                sn,
		name:              name,
		model:             model,
		location:          location,
		status:            StatusActive,
		createdBy:         createdBy,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructRobot(
	id, orgID, serviceProviderID uint,
	sn, name, model, location string,
	status Status,
	isDeleted bool,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Robot, error) {
	if id == 0 {
		return nil, fmt.Errorf("robot ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid robot status: %s", status)
	}
	return &Robot{
		id:                id,
		orgID:             orgID,
		serviceProviderID: serviceProviderID,
		sn:                sn,
		name:              name,
		model:             model,
		location:          location,
		status:            status,
		isDeleted:         isDeleted,
		createdBy:         createdBy,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (r *Robot) ID() uint                { return r.id }
func (r *Robot) OrgID() uint             { return r.orgID }
func (r *Robot) ServiceProviderID() uint { return r.serviceProviderID }
func (r *Robot) SN() string              { return r.sn }
func (r *Robot) Name() string            { return r.name }
func (r *Robot) Model() string           { return r.model }
func (r *Robot) Location() string        { return r.location }
func (r *Robot) Status() Status          { return r.status }
func (r *Robot) IsDeleted() bool         { return r.isDeleted }
func (r *Robot) CreatedBy() uint         { return r.createdBy }
func (r *Robot) CreatedAt() time.Time    { return r.createdAt }
func (r *Robot) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Robot) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("robot ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("robot ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateDetails overwrites the non-nil fields.
func (r *Robot) UpdateDetails(name, model, location *string) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return fmt.Errorf("name cannot be empty")
		}
		r.name = n
	}
	if model != nil {
		r.model = *model
	}
	if location != nil {
		r.location = *location
	}
	r.touch()
	return nil
}

func (r *Robot) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid robot status: %s", status)
	}
	if r.isDeleted {
		return fmt.Errorf("robot is deleted")
	}
	r.status = status
	r.touch()
	return nil
}

// MarkUnderMaintenance is applied when a ticket is opened against the robot.
func (r *Robot) MarkUnderMaintenance() {
	if r.isDeleted {
		return
	}
	r.status = StatusMaintenance
	r.touch()
}

// MarkActive is applied when a ticket is confirmed resolved.
func (r *Robot) MarkActive() {
	if r.isDeleted {
		return
	}
	r.status = StatusActive
	r.touch()
}

// SoftDelete retires the robot.
func (r *Robot) SoftDelete() {
	r.status = StatusInactive
	r.isDeleted = true
	r.touch()
}

func (r *Robot) touch() {
	r.updatedAt = biztime.NowUTC()
}
