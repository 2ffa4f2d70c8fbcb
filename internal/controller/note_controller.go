package controller

import (
	"fmt"
	"io"
	"strconv"

	"notehub-be/internal/dto"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListByCategory(ctx *fiber.Ctx) error
	HomeFeed(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	CategoryStats(ctx *fiber.Ctx) error
	RecentStats(ctx *fiber.Ctx) error
	TagStats(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
}

type noteController struct {
	service         service.INoteService
	transferService service.ITransferService
}

func NewNoteController(service service.INoteService, transferService service.ITransferService) INoteController {
	return &noteController{service: service, transferService: transferService}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Post("/", c.Create)
	h.Get("/user/:userId", c.List)
	h.Get("/home/:userId", c.HomeFeed)
	h.Get("/stats/categories/:userId", c.CategoryStats)
	h.Get("/stats/recent/:userId", c.RecentStats)
	h.Get("/stats/tags/:userId", c.TagStats)
	h.Get("/export/:userId", c.Export)
	h.Post("/import/:userId", c.Import)
	h.Get("/categories/:userId/:categoryId", c.ListByCategory)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success Create Note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
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

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	filter := dto.NoteFilter{
		Keyword:    ctx.Query("keyword"),
		CategoryId: int64(ctx.QueryInt("categoryId", 0)),
		SortOrder:  ctx.Query("sortOrder"),
	}

	res, err := c.service.List(ctx.Context(), userId, &filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *noteController) ListByCategory(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	categoryId, err := parseIdParam(ctx, "categoryId")
	if err != nil {
		return err
	}

	res, err := c.service.ListByCategory(ctx.Context(), userId, categoryId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *noteController) HomeFeed(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	res, err := c.service.HomeFeed(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	req.Id = id

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success Updated Note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	err = c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success Delete Note", nil))
}

func (c *noteController) CategoryStats(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	res, err := c.service.CategoryStats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *noteController) RecentStats(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	res, err := c.service.RecentStats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *noteController) TagStats(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	res, err := c.service.TagStats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// Export streams the user's notes as a downloadable JSON document. The body
// is the bare note array so the file can be re-imported as-is.
func (c *noteController) Export(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	var noteId *int64
	if q := ctx.Query("noteId"); q != "" {
		v, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "noteId must be a number")
		}
		noteId = &v
	}

	notes, err := c.transferService.Export(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("notes_export_%d.json", userId)
	if noteId != nil {
		filename = fmt.Sprintf("notes_export_%d_note_%d.json", userId, *noteId)
	}
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)

	return ctx.JSON(notes)
}

func (c *noteController) Import(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx, "userId")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "a JSON file is required in the 'file' field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.transferService.Import(ctx.Context(), userId, document)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ImportNotesResponse{
		Message: fmt.Sprintf("successfully imported %d notes", res.Imported),
		Success: true,
	})
}

func parseIdParam(ctx *fiber.Ctx, name string) (int64, error) {
	v, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be a number", name))
	}
	return v, nil
}
