package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chirpnet/chirpnet/apperr"
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// Created returns a standard creation response.
func Created(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusCreated, 0, "success", data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

// Fail maps a typed application error onto the response envelope using the
// default kind-to-status mapping. Internal causes are logged, never leaked.
func Fail(ctx *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		msg := e.Message
		if e.Kind == apperr.KindInternal {
			if Sugar != nil {
				Sugar.Errorw("internal error", "path", ctx.FullPath(), "err", e.Err)
			}
			msg = "internal server error"
		}
		Error(ctx, apperr.HTTPStatus(err), e.Code, msg)
		return
	}
	if Sugar != nil {
		Sugar.Errorw("unclassified error", "path", ctx.FullPath(), "err", err)
	}
	Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
}
