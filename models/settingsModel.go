package models

// TelegramConfig holds the delivery credentials for kitchen notifications.
// Both fields empty means notifications are switched off, which is a valid
// configuration, not an error.
type TelegramConfig struct {
	Bot_token string `json:"bot_token"`
	Chat_id   string `json:"chat_id"`
}

func (cfg TelegramConfig) Enabled() bool {
	return cfg.Bot_token != "" && cfg.Chat_id != ""
}

// Settings is the restaurant-level configuration edited from the admin panel.
type Settings struct {
	Restaurant_name string         `json:"restaurant_name" validate:"required,min=1,max=100"`
	Telegram        TelegramConfig `json:"telegram"`
}
