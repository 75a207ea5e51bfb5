package uploads

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MarcoPoloResearchLab/tilawah/internal/catalog"
	"github.com/go-playground/validator/v10"
)

const (
	MinReciterNameLength = 1
	MaxReciterNameLength = 100
	MaxDescriptionLength = 500
)

const (
	messageMissingFields = "Missing required fields"
	messageMissingAudio  = "Audio file is required"
)

var (
	messageInvalidSurah = fmt.Sprintf("Invalid surah number. Must be between %d and %d",
		catalog.MinSurahNumber, catalog.MaxSurahNumber)
	messageInvalidReciter = fmt.Sprintf("Invalid reciter name. Must be between %d and %d characters",
		MinReciterNameLength, MaxReciterNameLength)
	messageDescriptionTooLong = fmt.Sprintf("Description too long (max %d characters)", MaxDescriptionLength)
)

// submissionFields holds the parsed text fields of a submission.
type submissionFields struct {
	SurahNumber int     `validate:"min=1,max=114"`
	ReciterName string  `validate:"min=1,max=100"`
	Description *string `validate:"omitempty,max=500"`
}

var fieldMessages = map[string]string{
	"SurahNumber": messageInvalidSurah,
	"ReciterName": messageInvalidReciter,
	"Description": messageDescriptionTooLong,
}

type fieldValidator struct {
	validate *validator.Validate
}

func newFieldValidator() *fieldValidator {
	return &fieldValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// parse converts raw form values and checks their bounds. The returned message names the violated bound.
func (v *fieldValidator) parse(form Form) (submissionFields, string, error) {
	rawSurah := strings.TrimSpace(form.SurahNumber)
	if rawSurah == "" || form.ReciterName == "" {
		return submissionFields{}, messageMissingFields, errors.New("required field absent")
	}

	surahNumber, err := strconv.Atoi(rawSurah)
	if err != nil {
		return submissionFields{}, messageInvalidSurah, err
	}

	fields := submissionFields{
		SurahNumber: surahNumber,
		ReciterName: strings.TrimSpace(form.ReciterName),
	}
	if form.Description != "" {
		description := form.Description
		fields.Description = &description
	}

	if err := v.validate.Struct(fields); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			if message, ok := fieldMessages[validationErrors[0].StructField()]; ok {
				return submissionFields{}, message, err
			}
		}
		return submissionFields{}, messageMissingFields, err
	}
	return fields, "", nil
}

type fileRules struct {
	maxFileSize       int64
	allowedTypes      map[string]struct{}
	allowedExtensions map[string]struct{}
	typeMessage       string
	extensionMessage  string
	sizeMessage       string
}

func newFileRules(cfg Config) fileRules {
	return fileRules{
		maxFileSize:       cfg.MaxFileSize,
		allowedTypes:      toSet(cfg.AllowedTypes),
		allowedExtensions: toSet(cfg.AllowedExtensions),
		typeMessage:       "Invalid file type. Allowed: " + strings.Join(cfg.AllowedTypes, ", "),
		extensionMessage:  "Invalid file extension. Allowed: " + strings.Join(cfg.AllowedExtensions, ", "),
		sizeMessage:       "File too large. Maximum size is " + formatByteSize(cfg.MaxFileSize),
	}
}

// check applies the declared type, extension and size rules independently.
func (r fileRules) check(file *FilePart) string {
	if file == nil {
		return messageMissingAudio
	}
	if _, ok := r.allowedTypes[declaredMediaType(file.ContentType)]; !ok {
		return r.typeMessage
	}
	if _, ok := r.allowedExtensions[strings.ToLower(filepath.Ext(file.Filename))]; !ok {
		return r.extensionMessage
	}
	if file.Size > r.maxFileSize {
		return r.sizeMessage
	}
	return ""
}

func declaredMediaType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func formatByteSize(size int64) string {
	const mebibyte = 1024 * 1024
	if size >= mebibyte && size%mebibyte == 0 {
		return strconv.FormatInt(size/mebibyte, 10) + "MB"
	}
	return strconv.FormatInt(size, 10) + " bytes"
}
