package domain

import "strings"

// DefaultStatus is assigned to staff members created without a status.
const DefaultStatus = "active"

// Member is an employee record.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type CreateMemberInput struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

func (in CreateMemberInput) Build(id string) Member {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = DefaultStatus
	}
	return Member{ID: id, Name: in.Name, Role: in.Role, Email: in.Email, Phone: in.Phone, Status: status}
}

type MemberPatch struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

func (p MemberPatch) Apply(m Member) Member {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	return m
}
