package excel

import (
	"jewelbot-srv/internal/catalog/repository"
	"jewelbot-srv/pkg/log"
)

type implRepository struct {
	l         log.Logger
	filePath  string
	sheetName string // empty means first sheet
}

// New - Factory function
func New(l log.Logger, filePath, sheetName string) repository.Repository {
	return &implRepository{
		l:         l,
		filePath:  filePath,
		sheetName: sheetName,
	}
}
