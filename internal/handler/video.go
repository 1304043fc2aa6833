package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infosoft-ph/video-rental-service/internal/model"
)

// GetVideos godoc
// @Summary List videos
// @Tags videos
// @Produce json
// @Success 200 {array} model.Video
// @Router /videos [get]
func (h *Handler) GetVideos(c echo.Context) error {
	videos, err := h.videoSvc.ListVideos(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, videos)
}

// GetVideo godoc
// @Summary Get video by id
// @Tags videos
// @Produce json
// @Param id path int true "video id"
// @Success 200 {object} model.Video
// @Failure 404 {object} echo.HTTPError
// @Router /videos/{id} [get]
func (h *Handler) GetVideo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	video, err := h.videoSvc.GetVideo(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, video)
}

// CreateVideo godoc
// @Summary Create video
// @Description Category must be DVD (50) or VCD (25); the price has to match the category.
// @Tags videos
// @Accept json
// @Produce json
// @Param video body model.CreateVideoRequest true "video"
// @Success 201 {object} model.Video
// @Failure 400 {object} echo.HTTPError
// @Router /videos [post]
func (h *Handler) CreateVideo(c echo.Context) error {
	var req model.CreateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	video, err := h.videoSvc.CreateVideo(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, video)
}

// UpdateVideo godoc
// @Summary Update video
// @Description The body must carry the version previously read; stale versions get 409.
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "video id"
// @Param video body model.UpdateVideoRequest true "video"
// @Success 200 {object} model.Video
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /videos/{id} [put]
func (h *Handler) UpdateVideo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != 0 && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "id in path and body differ")
	}
	req.ID = id
	if err := c.Validate(req); err != nil {
		return err
	}
	video, err := h.videoSvc.UpdateVideo(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary Delete video
// @Tags videos
// @Param id path int true "video id"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Router /videos/{id} [delete]
func (h *Handler) DeleteVideo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.videoSvc.DeleteVideo(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
