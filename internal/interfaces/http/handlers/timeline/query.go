// Package timeline serves the audit trail of robots and tickets.
package timeline

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

// ParseListQuery reads event_types (comma separated), from, to and pagination.
// Robot and ticket scoping is left to the caller.
func ParseListQuery(c *gin.Context, p *authorization.Principal) (usecases.ListEventsQuery, error) {
	from, err := utils.ParseOptionalDate("from", c.Query("from"))
	if err != nil {
		return usecases.ListEventsQuery{}, err
	}
	to, err := utils.ParseOptionalDate("to", c.Query("to"))
	if err != nil {
		return usecases.ListEventsQuery{}, err
	}

	var types []string
	for _, t := range strings.Split(c.Query("event_types"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	pagination := utils.ParsePagination(c)
	return usecases.ListEventsQuery{
		Principal:  p,
		EventTypes: types,
		From:       from,
		To:         to,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}, nil
}
