package bot

import (
	"log/slog"
	"math/rand"

	tele "gopkg.in/telebot.v4"
)

// Sticker file ids per event. Sending can fail when an id goes stale, so
// every helper falls back to a plain text message.
var (
	welcomeStickers = []string{
		"CAACAgIAAxkBAAEOd6RoIsd8Z1Gz2JyvVPrxpwRugDF89wAC8EAAAgMdyUh6q-4BL3FQLzYE",
		"CAACAgIAAxkBAAEOd6xoIshSMujqTxf8Od_p7PLDGn7sUwACWToAAqePcUmYZialrHxKnTYE",
	}
	stickerFirstCorrect  = "CAACAgIAAxkBAAEOd6hoIsgIXelJD9h0RgVTxLtEz_ZgMgACky4AAgFM6UhFC9JlyfY5rzYE"
	stickerNextCorrect   = "CAACAgIAAxkBAAEOd6poIsggr-5-2bwnZt7t_2pJP9HWwACyCoAAkj3cUng5lb0xkBC6DYE"
	stickerFirstWrong    = "CAACAgIAAxkBAAEOd6JoIsc8ZgvKw1T8QqL2CNIpNtLUzAAC_0gAApjKwEh4Jj7i8mL2AjYE"
	stickerNextWrong     = "CAACAgIAAxkBAAEOd6ZoIsfmsGJP3o0KdTMiriW8U9sVvAACHEUAAvkKiEjOqMQN3AH2PTYE"
	stickerLessonSuccess = "CAACAgIAAxkBAAEOd65oIsiE9oHP2Cxsg9wkj1LXFi0L1AACR18AAuphSUoma5l9yrkFmjYE"
	stickerLessonFail    = "CAACAgIAAxkBAAEOd7BoIsok2pkQSuPXBxRVf26hil-35gACEywAArBkcEno5QGUqynBvzYE"
	stickerTopicSuccess  = "CAACAgIAAxkBAAEOd7JoIspvfu0_4EUpFnUcpq6OUjVMEAACRFkAAnnRSUru1p89ZmyntTYE"
)

func sendSticker(c tele.Context, fileID, fallbackText string) error {
	if err := c.Send(&tele.Sticker{File: tele.File{FileID: fileID}}); err != nil {
		slog.Debug("sticker send failed, falling back to text", "error", err)
		return c.Send(fallbackText)
	}
	return nil
}

func sendWelcomeSticker(c tele.Context) error {
	id := welcomeStickers[rand.Intn(len(welcomeStickers))]
	return sendSticker(c, id, "👋 Welcome!")
}

func sendCorrectSticker(c tele.Context, first bool) error {
	if first {
		return sendSticker(c, stickerFirstCorrect, "✅ Correct!")
	}
	return sendSticker(c, stickerNextCorrect, "✅ Well done!")
}

func sendWrongSticker(c tele.Context, first bool) error {
	if first {
		return sendSticker(c, stickerFirstWrong, "❌ Wrong!")
	}
	return sendSticker(c, stickerNextWrong, "❌ Try again!")
}

func sendLessonSuccessSticker(c tele.Context) error {
	return sendSticker(c, stickerLessonSuccess, "🎉 Lesson completed!")
}

func sendLessonFailSticker(c tele.Context) error {
	return sendSticker(c, stickerLessonFail, "📝 Give the lesson another try!")
}

func sendCourseSuccessSticker(c tele.Context) error {
	return sendSticker(c, stickerTopicSuccess, "🏆 Congratulations, course completed!")
}
