package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dialogueHTTP "jewelbot-srv/internal/dialogue/delivery/http"
	dialogueUsecase "jewelbot-srv/internal/dialogue/usecase"
	"jewelbot-srv/internal/renderer"
)

func (srv *HTTPServer) setupDialogueDomain(ctx context.Context, r *gin.RouterGroup) error {
	uc := dialogueUsecase.New(srv.l, srv.dialogueRepo, srv.catalogUC, srv.geminiClient, srv.eventProducer)

	rnd := renderer.New(srv.l, srv.whatsappClient)

	handler := dialogueHTTP.New(dialogueHTTP.Config{
		Logger:      srv.l,
		UseCase:     uc,
		Renderer:    rnd,
		Redis:       srv.redisClient,
		Discord:     srv.discord,
		VerifyToken: srv.config.WhatsApp.VerifyToken,
	})
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Dialogue domain registered")
	return nil
}
