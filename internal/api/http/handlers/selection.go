package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/performance-dashboard/internal/domain"
)

// departmentParam is the repeated query parameter carrying the selection.
const departmentParam = "department"

func selectionFromQuery(c *fiber.Ctx) domain.Selection {
	raw := c.Context().QueryArgs().PeekMulti(departmentParam)
	names := make([]string, 0, len(raw))
	for _, v := range raw {
		names = append(names, string(v))
	}
	return domain.NewSelection(names...)
}

func selectionQuery(selection domain.Selection) string {
	if selection.IsEmpty() {
		return ""
	}
	return url.Values{departmentParam: selection.Names()}.Encode()
}
