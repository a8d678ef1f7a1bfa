package usecase

import (
	"strings"

	"azure-devops-mcp/internal/workitem"
)

func (uc *implUseCase) project(p string) string {
	if p = strings.TrimSpace(p); p != "" {
		return p
	}
	return uc.defaultProject
}

func planMode(p Plan) workitem.DateFilterMode {
	switch {
	case p.ServerClause != "":
		return workitem.DateFilterServer
	case p.ClientFilter != "":
		return workitem.DateFilterClient
	default:
		return workitem.DateFilterNone
	}
}
