package http

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-task-scheduler/internal/task"
	"ai-task-scheduler/pkg/response"
)

// maxMediaBytes bounds uploaded analysis attachments (inline Gemini media
// tops out well below this).
const maxMediaBytes = 10 << 20

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAnalyzeMediaReq reads the multipart analyze request: an optional
// "text" field plus a "media" file part.
func (h *handler) processAnalyzeMediaReq(c *gin.Context) (task.AnalyzeInput, error) {
	input := task.AnalyzeInput{Text: c.PostForm("text")}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		// Text-only multipart is still a valid analyze request.
		return input, nil
	}
	if fileHeader.Size > maxMediaBytes {
		return input, response.NewHTTPError(413, "media file too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return input, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return input, err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	input.Media = &task.Media{Data: data, MimeType: mimeType}
	return input, nil
}

// processEditReq binds and validates the edit request body + URI param.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// processReorderReq binds and validates the reorder request body.
func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// parseID reads the :id URI param as a positive integer.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewHTTPError(400, "invalid task id")
	}
	return id, nil
}
