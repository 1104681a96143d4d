// Package bot contains the Telegram frontend of riskmentor: command and
// message handlers, the quiz flow, inline keyboards and sticker helpers.
//
// This file is regenerated by the preflight command. Keep it free of
// imports.
package bot
