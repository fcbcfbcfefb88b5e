package tasks

import "smarthrms/internal/matching"

type requiredSkillRequest struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Importance string `json:"importance"`
	Category   string `json:"category"`
}

type createRequest struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Priority       string                 `json:"priority"`
	EstimatedHours float64                `json:"estimatedHours"`
	DueDate        string                 `json:"dueDate"`
	RequiredSkills []requiredSkillRequest `json:"requiredSkills"`
}

func (req createRequest) toInput() CreateInput {
	required := make([]matching.RequiredSkill, 0, len(req.RequiredSkills))
	for _, r := range req.RequiredSkills {
		required = append(required, matching.RequiredSkill{
			Name:       r.Name,
			Level:      r.Level,
			Importance: matching.Importance(r.Importance),
			Category:   r.Category,
		})
	}
	return CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       Priority(req.Priority),
		EstimatedHours: req.EstimatedHours,
		DueDate:        req.DueDate,
		RequiredSkills: required,
	}
}

type updateRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Status         *string  `json:"status"`
	Priority       *string  `json:"priority"`
	EstimatedHours *float64 `json:"estimatedHours"`
	Progress       *int     `json:"progress"`
	DueDate        *string  `json:"dueDate"`
}

func (req updateRequest) toInput() UpdateInput {
	in := UpdateInput{
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		Progress:       req.Progress,
		DueDate:        req.DueDate,
	}
	if req.Status != nil {
		status := Status(*req.Status)
		in.Status = &status
	}
	if req.Priority != nil {
		priority := Priority(*req.Priority)
		in.Priority = &priority
	}
	return in
}

type assignRequest struct {
	EmployeeID string `json:"employeeId"`
}
