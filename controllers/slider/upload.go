package sliderControllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devtalhaa/Outfitters/config"
)

func saveSlideImage(c *gin.Context, file *multipart.FileHeader, cfg *config.Config) (string, error) {
	dir := filepath.Join(cfg.UploadDir, "slider")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", sliderPublicPath, filename), nil
}
