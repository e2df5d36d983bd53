package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/models"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules used by request DTOs.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
			return models.TaskStatus(fl.Field().String()).Valid()
		})
	})
}

// fieldName reports a field by the key the client used: its json name for
// bodies, its form name for query strings.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// respondBindingError reports a request that failed to bind or validate.
// Field-level failures are listed in details.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		apierrors.BadRequestWithDetails(c, "Invalid request body", details)
		return
	}
	apierrors.BadRequest(c, "Invalid request body")
}

// parseIDParam reads a UUID path parameter, answering 400 when malformed.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}
