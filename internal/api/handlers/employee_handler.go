package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/skillbridge/internal/document"
	"github.com/yoockh/skillbridge/internal/models"
	"github.com/yoockh/skillbridge/internal/services"
	"github.com/yoockh/skillbridge/internal/utils"
)

type EmployeeHandler struct {
	svc            services.EmployeeService
	maxUploadBytes int64
}

func NewEmployeeHandler(svc services.EmployeeService, maxUploadBytes int64) *EmployeeHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &EmployeeHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

type GithubRequest struct {
	GithubUsername string `json:"githubUsername"`
}

type userResponse struct {
	Msg  string       `json:"msg"`
	User *models.User `json:"user"`
}

func (h *EmployeeHandler) Profile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	u, err := h.svc.Profile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *EmployeeHandler) UpdateGithub(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req GithubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidBody("EmployeeHandler.UpdateGithub", err))
		return
	}

	u, err := h.svc.UpdateGithub(c.Request.Context(), userID, req.GithubUsername)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{Msg: "Github username updated", User: u})
}

func (h *EmployeeHandler) UploadResume(c *gin.Context) {
	const op = "EmployeeHandler.UploadResume"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	// leave room for multipart framing around the file
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+(1<<20))

	fh, err := c.FormFile("resume")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, h.tooLargeMessage(), err))
		return
	}
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", err))
		return
	}
	if !document.AllowedExtension(fh.Filename) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Only .pdf, .docx and .txt resumes are supported", nil))
		return
	}
	if fh.Size <= 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No file uploaded", nil))
		return
	}
	if fh.Size > h.maxUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, h.tooLargeMessage(), nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "Server error: "+err.Error(), err))
		return
	}
	defer file.Close()

	res, err := h.svc.UploadResume(c.Request.Context(), userID, services.ResumeFile{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: document.ContentType(fh.Filename),
		Body:        file,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	msg := "Resume uploaded and skills parsed"
	if res.Cached {
		msg = "Using cached skills for this resume"
	}
	c.JSON(http.StatusOK, userResponse{Msg: msg, User: res.User})
}

func (h *EmployeeHandler) tooLargeMessage() string {
	return "File too large (max " + strconv.FormatInt(h.maxUploadBytes>>20, 10) + "MB)"
}

func (h *EmployeeHandler) ResumeHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, err := h.svc.ResumeHistory(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
