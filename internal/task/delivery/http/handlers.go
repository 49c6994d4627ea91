package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-scheduler/pkg/response"
)

// Analyze godoc
// @Summary     Analyze text into scheduled tasks
// @Description Sends the text to the AI backend, extracts task candidates, resolves time conflicts and persists the results.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Text to analyze"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No tasks extractable"
// @Failure     502 {object} response.Resp "AI backend unavailable"
// @Router      /api/v1/tasks/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// AnalyzeMedia godoc
// @Summary     Analyze a media upload into scheduled tasks
// @Description Multipart variant of analyze: an image or audio file, with optional accompanying text.
// @Tags        Task
// @Accept      multipart/form-data
// @Produce     json
// @Param       media formData file   false "Media file (image or audio)"
// @Param       text  formData string false "Accompanying text"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Media too large"
// @Failure     502 {object} response.Resp "AI backend unavailable"
// @Router      /api/v1/tasks/analyze/media [POST]
func (h *handler) AnalyzeMedia(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAnalyzeMediaReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns all tasks ordered by scheduled time ascending.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its id.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Edit godoc
// @Summary     Edit a task
// @Description Partially updates a task's title and/or description. The scheduled time is not editable here.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path int     true "Task ID"
// @Param       body body editReq true "Fields to update"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. Deleting an unknown id succeeds.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Reorder godoc
// @Summary     Reorder tasks
// @Description Re-derives timestamps for the supplied id sequence, one hour apart starting at the day anchor.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body reorderReq true "New id sequence"
// @Success     200 {object} reorderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/reorder [POST]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reorder(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reorder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReorderResp(output))
}

// ResolveAll godoc
// @Summary     Resolve schedule conflicts
// @Description Runs one conflict resolution sweep over the whole schedule.
// @Tags        Task
// @Produce     json
// @Success     200 {object} resolveAllResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/resolve [POST]
func (h *handler) ResolveAll(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResolveAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ResolveAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResolveAllResp(output))
}
