package controller

import (
	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/serverutils"
	"nolij-demo-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListTopics(ctx *fiber.Ctx) error
}

// catalogController serves the static playback catalog. The topics are
// compiled in, so there is no service layer behind it.
type catalogController struct{}

func NewCatalogController() ICatalogController {
	return &catalogController{}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/topics", c.ListTopics)
}

func (c *catalogController) ListTopics(ctx *fiber.Ctx) error {
	topics := catalog.All()
	res := make([]dto.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		res = append(res, dto.TopicResponse{
			Id:          topic.Id,
			Title:       topic.Title,
			Description: topic.Description,
			Icon:        topic.Icon,
			TurnCount:   len(topic.Turns),
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Topics retrieved", res))
}
