package employees

import "smarthrms/internal/matching"

type skillRequest struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type createRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Department   string         `json:"department"`
	Position     string         `json:"position"`
	Phone        string         `json:"phone"`
	Experience   int            `json:"experience"`
	Availability *int           `json:"availability"`
	JoinDate     string         `json:"joinDate"`
	Skills       []skillRequest `json:"skills"`
}

func (req createRequest) toInput() CreateInput {
	skills := make([]matching.Skill, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, matching.Skill{Name: s.Name, Level: s.Level, Category: s.Category})
	}
	return CreateInput{
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		Position:     req.Position,
		Phone:        req.Phone,
		Experience:   req.Experience,
		Availability: req.Availability,
		JoinDate:     req.JoinDate,
		Skills:       skills,
	}
}
