package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"referral-tracker-backend/controllers"
	"referral-tracker-backend/lib/candidate"
	xlsexport "referral-tracker-backend/lib/export/xls"
	"referral-tracker-backend/middleware"
	apimodels "referral-tracker-backend/models/api"
	candidateapimodels "referral-tracker-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("stats", controller.stats)
		router.Get("export", controller.export)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Get("resume", controller.getResume) // скачать резюме кандидата
			idRouter.Put("status", controller.updateStatus)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Добавить кандидата
// @Tags Кандидат
// @Description Добавить кандидата по рекомендации, опционально с файлом резюме (PDF, до 5МБ)
// @Param   Authorization	header		string	true	"Authorization token"
// @Param   name		formData	string	true	"имя кандидата"
// @Param   email		formData	string	true	"email кандидата"
// @Param   phone		formData	string	true	"телефон кандидата"
// @Param   jobTitle		formData	string	true	"должность"
// @Param   notes		formData	string	false	"заметки"
// @Param   resume		formData	file	false	"file to upload"
// @Success 201 {object} candidateapimodels.CandidateResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	data := candidateapimodels.CandidateData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var resume *candidate.ResumeUpload
	file, err := ctx.FormFile("resume")
	if err == nil && file != nil {
		buffer, err := file.Open()
		if err != nil {
			log.WithError(err).Error("Ошибка при получении файла резюме")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unable to read resume file"))
		}
		fileBody, err := io.ReadAll(buffer)
		buffer.Close()
		if err != nil {
			log.WithError(err).Error("Ошибка при чтении файла резюме")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unable to read resume file"))
		}
		resume = &candidate.ResumeUpload{
			Body:        fileBody,
			ContentType: file.Header.Get(fiber.HeaderContentType),
		}
	}

	referrer := candidate.Referrer{
		ID:    middleware.GetUserID(ctx),
		Name:  middleware.GetUserName(ctx),
		Email: middleware.GetUserEmail(ctx),
	}
	view, err := candidate.Instance.Create(ctx.UserContext(), referrer, data, resume)
	if err != nil {
		return c.sendError(ctx, err, "Server error while creating candidate")
	}
	return ctx.Status(fiber.StatusCreated).JSON(candidateapimodels.NewCandidateResponse("Candidate referred successfully", view))
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Список кандидатов с поиском, фильтром по статусу и пагинацией
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   search	query	string	false	"поиск по имени, должности или email"
// @Param   status	query	string	false	"статус кандидата или all"
// @Param   page	query	int	false	"страница (1,2,3..)"
// @Param   limit	query	int	false	"записей на странице"
// @Success 200 {object} candidateapimodels.CandidateListResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	filter := candidateapimodels.CandidateFilter{}
	if err := ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить данные из запроса"))
	}
	list, rowCount, err := candidate.Instance.List(filter)
	if err != nil {
		return c.sendError(ctx, err, "Server error while fetching candidates")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(candidateapimodels.CandidateListResponse{
		Response:   apimodels.NewResponse(""),
		Candidates: list,
		Pagination: apimodels.NewPaginationView(page, limit, rowCount),
	})
}

// @Summary Статистика по кандидатам
// @Tags Кандидат
// @Description Количество кандидатов всего и по статусам
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} candidateapimodels.StatsResponse
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/stats [get]
func (c *candidateApiController) stats(ctx *fiber.Ctx) error {
	stats, err := candidate.Instance.Stats()
	if err != nil {
		return c.sendError(ctx, err, "Server error while fetching statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(candidateapimodels.StatsResponse{
		Response: apimodels.NewResponse(""),
		Stats:    stats,
	})
}

// @Summary Выгрузка кандидатов в xlsx
// @Tags Кандидат
// @Description Выгрузить список кандидатов с учетом фильтра в файл xlsx
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   search	query	string	false	"поиск по имени, должности или email"
// @Param   status	query	string	false	"статус кандидата или all"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/export [get]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	filter := candidateapimodels.CandidateFilter{}
	if err := ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить данные из запроса"))
	}
	list, err := candidate.Instance.ListAll(filter)
	if err != nil {
		return c.sendError(ctx, err, "Server error while exporting candidates")
	}
	buf, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return c.sendError(ctx, err, "Server error while exporting candidates")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Карточка кандидата
// @Tags Кандидат
// @Description Получить кандидата по ид
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"ID кандидата"
// @Success 200 {object} candidateapimodels.CandidateResponse
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidate.Instance.GetByID(id)
	if err != nil {
		return c.sendError(ctx, err, "Server error while fetching candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(candidateapimodels.NewCandidateResponse("", view))
}

// @Summary Скачать резюме кандидата
// @Tags Кандидат
// @Description Скачать файл резюме кандидата
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"ID кандидата"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id}/resume [get]
func (c *candidateApiController) getResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := candidate.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.sendError(ctx, err, "Server error while fetching resume")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Изменить статус кандидата
// @Tags Кандидат
// @Description Перевести кандидата в новый статус (Pending, Reviewed, Hired, Rejected)
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"ID кандидата"
// @Param   body	body	candidateapimodels.StatusData	true	"новый статус"
// @Success 200 {object} candidateapimodels.CandidateResponse
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id}/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := candidateapimodels.StatusData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidate.Instance.UpdateStatus(ctx.UserContext(), id, data.Status)
	if err != nil {
		return c.sendError(ctx, err, "Server error while updating candidate status")
	}
	return ctx.Status(fiber.StatusOK).JSON(candidateapimodels.NewCandidateResponse("Candidate status updated successfully", view))
}

// @Summary Удалить кандидата
// @Tags Кандидат
// @Description Удалить кандидата вместе с файлом резюме
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"ID кандидата"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidate.Instance.Delete(ctx.UserContext(), id); err != nil {
		return c.sendError(ctx, err, "Server error while deleting candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("Candidate deleted successfully"))
}

// sendError транслирует ошибки сервиса в коды ответа, детали неожиданных ошибок остаются в логе
func (c *candidateApiController) sendError(ctx *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, candidate.ErrCandidateNotFound) || errors.Is(err, candidate.ErrResumeNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, candidate.ErrEmailAlreadyUsed) || candidate.IsValidationError(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	default:
		log.WithError(err).Error(fallback)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(fallback))
	}
}
