package response

import (
	"context"
	"fmt"
	"net/http"

	"jewelbot-srv/pkg/discord"
	pkgErrors "jewelbot-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. Known HTTPErrors keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Internal error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Something went wrong",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Something went wrong",
	})
}
