package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	log "github.com/sirupsen/logrus"
)

// Telegram compresses photos; charts above this size go as documents so the
// axis labels stay readable.
const maxPhotoSize = 150000

// publishCharts sends every written chart to the configured chat. Delivery is
// best effort: a failed send is logged and the rest still go out.
func publishCharts(api *tgbotapi.BotAPI, chatID int64, paths []string) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).Errorf("failed to read chart %s", path)
			continue
		}

		pngFile := tgbotapi.FileBytes{
			Name:  filepath.Base(path),
			Bytes: data,
		}
		caption := chartCaption(path)

		var msg tgbotapi.Chattable
		if len(data) < maxPhotoSize {
			photo := tgbotapi.NewPhotoUpload(chatID, pngFile)
			photo.Caption = caption
			msg = photo
		} else {
			doc := tgbotapi.NewDocumentUpload(chatID, pngFile)
			doc.Caption = caption
			msg = doc
		}

		if _, err := api.Send(msg); err != nil {
			log.WithError(err).Errorf("failed to send chart %s", path)
		}
	}
}

// chartCaption recovers a readable title from a sanitized chart filename.
func chartCaption(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".png")
	return fmt.Sprintf("Chart: %s", strings.ReplaceAll(name, "_", " "))
}
