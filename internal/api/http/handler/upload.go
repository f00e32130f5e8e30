package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/posts"
	"github.com/blogapp/blog-server/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	DefaultMaxUploadSize = 5 << 20
	imageFormField       = "imagem"
	msgUploadFail        = "Erro ao enviar a imagem."
	// multipartOverhead covers boundaries and part headers around the file.
	multipartOverhead = 1 << 20
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type UploadHandler struct {
	postService   *posts.Service
	store         storage.ImageStore
	maxUploadSize int64
}

func NewUploadHandler(postService *posts.Service, store storage.ImageStore, maxUploadSize int64) *UploadHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &UploadHandler{
		postService:   postService,
		store:         store,
		maxUploadSize: maxUploadSize,
	}
}

// UploadImage stores the multipart "imagem" file and points the post at it.
// The previous image, if any, is removed from the store.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()
	postID := c.Param("id")

	exists, err := h.postService.Exists(ctx, postID)
	if err != nil {
		respondInternal(c, "check post", err)
		return
	}
	if !exists {
		respondMessage(c, http.StatusNotFound, msgPostNotFound)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)

	file, header, err := c.Request.FormFile(imageFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.tooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msgUploadFail, Error: "Nenhuma imagem enviada no campo imagem."})
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		h.tooLarge(c)
		return
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		respondInternal(c, "detect image type", err)
		return
	}
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: msgUploadFail,
			Error:   fmt.Sprintf("Tipo de arquivo não suportado: %s.", mtype.String()),
		})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondInternal(c, "rewind upload", err)
		return
	}

	key := fmt.Sprintf("postagens/%s/%s%s", postID, uuid.NewString(), mtype.Extension())
	location, err := h.store.Put(ctx, storage.Object{
		Key:         key,
		ContentType: mtype.String(),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondInternal(c, "store image", err)
		return
	}

	post, previous, err := h.postService.SetImage(ctx, postID, location)
	if err != nil {
		if delErr := h.store.Delete(ctx, location); delErr != nil {
			slog.Warn("Failed to remove orphaned image", "location", location, "error", delErr)
		}
		if errors.Is(err, posts.ErrPostNotFound) {
			respondMessage(c, http.StatusNotFound, msgPostNotFound)
			return
		}
		respondInternal(c, "set post image", err)
		return
	}

	if previous != nil && *previous != location {
		if err := h.store.Delete(ctx, *previous); err != nil {
			slog.Warn("Failed to remove previous image", "post_id", postID, "location", *previous, "error", err)
		}
	}

	slog.Info("Post image uploaded", "post_id", postID, "location", location, "size", header.Size)
	c.JSON(http.StatusOK, post)
}

func (h *UploadHandler) tooLarge(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: msgUploadFail,
		Error:   fmt.Sprintf("A imagem deve ter no máximo %d bytes.", h.maxUploadSize),
	})
}
