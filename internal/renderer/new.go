package renderer

import (
	"jewelbot-srv/pkg/log"
	"jewelbot-srv/pkg/whatsapp"
)

type implRenderer struct {
	l  log.Logger
	wa whatsapp.IWhatsApp
}

// New - Factory function
func New(l log.Logger, wa whatsapp.IWhatsApp) Renderer {
	return &implRenderer{
		l:  l,
		wa: wa,
	}
}
