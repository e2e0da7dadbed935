package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"
	"github.com/NiraJ01010101/chaiBackend/internal/services"
	"github.com/NiraJ01010101/chaiBackend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	Svc  VideoService
	Opts Options
}

// @Summary      List videos
// @Description  Paginated video cards with the owner's name and avatar. Filters by text and owner.
// @Tags         videos
// @Produce      json
// @Param        page      query  int     false  "Page number (>=1)" default(1)
// @Param        limit     query  int     false  "Page size (>=1)" default(10)
// @Param        query     query  string  false  "Case-insensitive match on title or description"
// @Param        sortBy    query  string  false  "createdAt | views | duration | title"
// @Param        sortType  query  string  false  "asc | desc"
// @Param        userId    query  string  false  "Owner id (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=dto.VideoPage}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/videos [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	var q dto.ListVideosQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}

	p, err := readmodel.ParsePage(q.Page, q.Limit, h.Opts.DefaultLimit, h.Opts.MaxLimit)
	if err != nil {
		return err
	}
	sort, err := readmodel.NewVideoSort(q.SortBy, q.SortType)
	if err != nil {
		return err
	}
	f := readmodel.VideoFilter{Query: q.Query, Sort: sort}
	if q.UserID != "" {
		owner, err := utils.Oid(q.UserID)
		if err != nil {
			return err
		}
		f.Owner = &owner
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	res, err := h.Svc.List(ctx, f, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.VideoPage{
		Videos:     res.Items,
		TotalCount: res.TotalCount,
		Page:       res.Page,
		Limit:      res.Limit,
	}, "videos fetched successfully")
}

// @Summary      Get a video
// @Description  Video with owner, like count and comment count. Counts a view.
// @Tags         videos
// @Produce      json
// @Param        videoId  path  string  true  "Video ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=dto.VideoDetail}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/videos/{videoId} [get]
func (h *VideoHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	v, err := h.Svc.Get(ctx, id, middleware.ViewerID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, v, "video fetched successfully")
}

// @Summary      Publish a video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  true   "Description"
// @Param        videoFile    formData  file    true   "Video file"
// @Param        thumbnail    formData  file    false  "Thumbnail image"
// @Success      201  {object}  dto.ApiResponse{data=models.Video}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/videos [post]
func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.PublishVideoReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	videoPath, err := h.Opts.saveUpload(c, "videoFile")
	if err != nil {
		return err
	}
	thumbPath, err := h.Opts.saveUpload(c, "thumbnail")
	if err != nil {
		discardUploads(videoPath)
		return err
	}
	defer discardUploads(videoPath, thumbPath)

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	v, err := h.Svc.Publish(ctx, services.PublishVideoInput{
		Owner:         uid,
		Title:         body.Title,
		Description:   body.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, v, "video published successfully")
}

// @Summary      Update a video
// @Description  Owner only. Blank fields keep their value; a new thumbnail replaces the old one.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId      path      string  true   "Video ID (hex ObjectID)"
// @Param        title        formData  string  false  "Title"
// @Param        description  formData  string  false  "Description"
// @Param        thumbnail    formData  file    false  "Thumbnail image"
// @Success      200  {object}  dto.ApiResponse{data=models.Video}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/videos/{videoId} [patch]
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}
	var body dto.UpdateVideoReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	thumbPath, err := h.Opts.saveUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer discardUploads(thumbPath)

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	v, err := h.Svc.Update(ctx, services.UpdateVideoInput{
		User:          uid,
		VideoID:       id,
		Title:         body.Title,
		Description:   body.Description,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, v, "video updated successfully")
}

// @Summary      Delete a video
// @Description  Owner only. Also removes its comments, likes and stored files.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string  true  "Video ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.Delete(ctx, uid, id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "video deleted successfully")
}

// @Summary      Set or flip the publish flag
// @Description  Owner only. Omit isPublished to flip the current value.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string                 true   "Video ID (hex ObjectID)"
// @Param        body     body  dto.TogglePublishReq  false  "Explicit value"
// @Success      200  {object}  dto.ApiResponse{data=dto.PublishStatusResp}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/videos/{videoId}/publish [patch]
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}
	var body dto.TogglePublishReq
	if len(c.Body()) > 0 {
		if err := parseBody(c, &body); err != nil {
			return err
		}
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	published, err := h.Svc.TogglePublish(ctx, uid, id, body.IsPublished)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.PublishStatusResp{IsPublished: published}, "publish status updated")
}
