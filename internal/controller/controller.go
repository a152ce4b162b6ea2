package controller

import (
	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RespondError translates a service error into the uniform error body.
// Internal causes are logged here and never serialized to the client.
func RespondError(ctx *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		log.Error().Err(appErr.Err).Str("path", ctx.FullPath()).Msg("Request failed with internal error")
	}
	ctx.JSON(appErr.HTTPStatus(), dto.ErrorResponse{
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}
