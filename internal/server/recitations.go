package server

import (
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MarcoPoloResearchLab/tilawah/internal/auth"
	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	"github.com/MarcoPoloResearchLab/tilawah/internal/uploads"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	formFieldAudio       = "audio"
	formFieldSurahNumber = "surahNumber"
	formFieldReciterName = "reciterName"
	formFieldDescription = "description"

	multipartOverhead = 1 << 20
)

func (h *httpHandler) handleCreateRecitation(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}
	defer func() {
		if c.Request.MultipartForm != nil {
			_ = c.Request.MultipartForm.RemoveAll()
		}
	}()

	record, err := h.pipeline.Submit(c.Request.Context(), uploads.Request{
		ClientKey:  clientKey(c),
		Credential: auth.CredentialFromRequest(c.Request),
		ReadForm:   multipartFormReader(c),
	})
	if err != nil {
		h.writeIntakeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *httpHandler) writeIntakeError(c *gin.Context, err error) {
	var intakeErr *uploads.IntakeError
	if !errors.As(err, &intakeErr) {
		h.logger.Error("upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload recitation"})
		return
	}

	switch {
	case errors.Is(err, uploads.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": intakeErr.Message})
	case errors.Is(err, uploads.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": intakeErr.Message})
	case errors.Is(err, uploads.ErrRateLimited):
		if intakeErr.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(intakeErr.RetryAfter.Seconds()))))
		}
		c.JSON(http.StatusTooManyRequests, gin.H{"error": intakeErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload recitation"})
	}
}

func multipartFormReader(c *gin.Context) uploads.FormReader {
	return func() (uploads.Form, error) {
		form, err := c.MultipartForm()
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
				return uploads.Form{}, errors.Join(uploads.ErrPayloadTooLarge, err)
			}
			return uploads.Form{}, err
		}

		parsed := uploads.Form{
			SurahNumber: firstValue(form, formFieldSurahNumber),
			ReciterName: firstValue(form, formFieldReciterName),
			Description: firstValue(form, formFieldDescription),
		}
		if files := form.File[formFieldAudio]; len(files) > 0 && files[0] != nil {
			header := files[0]
			parsed.Audio = &uploads.FilePart{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Open: func() (io.ReadCloser, error) {
					return header.Open()
				},
			}
		}
		return parsed, nil
	}
}

func firstValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func (h *httpHandler) handleRecordPlay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recitation not found"})
		return
	}

	record, err := h.recitationsService.RecordPlay(c.Request.Context(), uint(id))
	if errors.Is(err, recitations.ErrRecitationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recitation not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to record play", zap.Uint64("recitation_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record play"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, record)
}
