package controller

import (
	"notehub-be/internal/dto"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Themes(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/themes", c.Themes)
	h.Get("/:id", c.Show)
	h.Put("/:id/settings", c.UpdateSettings)
	h.Put("/:id/profile", c.UpdateProfile)
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success Register User", res))
}

func (c *userController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success Login", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *userController) UpdateSettings(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	req.Id = id

	res, err := c.service.UpdateSettings(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success Updated Settings", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	req.Id = id

	res, err := c.service.UpdateProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success Updated Profile", res))
}

func (c *userController) Themes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success", c.service.Themes(ctx.Context())))
}
